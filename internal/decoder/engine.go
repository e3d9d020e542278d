package decoder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"txlens/internal/chain"
	"txlens/internal/metrics"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var (
	errNoABI         = errors.New("no abi")
	errShortCalldata = errors.New("calldata shorter than a method selector")
	errDecodePanic   = errors.New("abi decoding panicked")
)

type Config struct {
	// DecodeNotAContractCalls lets calldata sent to addresses without code go through the decoder.
	DecodeNotAContractCalls bool
	// CandidatesLimit caps how many stored candidates are tried per selector.
	CandidatesLimit int
}

// Engine decodes transaction calldata into method calls.
type Engine struct {
	logs       *zap.SugaredLogger
	cfg        Config
	abis       ABIResolver
	candidates CandidateStore
	signatures SignatureLookup
	metrics    *metrics.Decoder
}

// NewEngine creates an Engine. signatures may be nil when no external lookup is configured.
func NewEngine(logger *zap.SugaredLogger, cfg Config, abis ABIResolver, candidates CandidateStore, signatures SignatureLookup) *Engine {
	if cfg.CandidatesLimit <= 0 {
		cfg.CandidatesLimit = 10
	}

	return &Engine{
		logs:       logger,
		cfg:        cfg,
		abis:       abis,
		candidates: candidates,
		signatures: signatures,
		metrics:    metrics.NewDecoder(),
	}
}

// Decode decodes the calldata of tx. caches may be shared by the decodes of
// one batch. When skipSignatureLookup is set the external signature lookup
// is never consulted.
func (e *Engine) Decode(ctx context.Context, tx chain.Transaction, skipSignatureLookup bool, caches *Caches) Outcome {
	if caches == nil {
		caches = NewCaches()
	}

	outcome := e.decode(ctx, tx, skipSignatureLookup, caches)
	e.metrics.ObserveOutcome(outcome.Status())

	return outcome
}

func (e *Engine) decode(ctx context.Context, tx chain.Transaction, skipSignatureLookup bool, caches *Caches) Outcome {
	if tx.To == nil {
		return failure(NoToAddress)
	}

	to, err := recipient(tx)
	if err != nil {
		return failure(NotLoaded)
	}

	if len(tx.Input) == 0 {
		return failure(NoInputData)
	}

	if !e.cfg.DecodeNotAContractCalls && !to.HasCode() {
		return failure(NotAContractCall)
	}

	switch to.SmartContract.State() {
	case chain.RefAbsent:
		return failure(ContractNotVerified)
	case chain.RefUnresolved:
		return e.decodeUnverified(ctx, tx, skipSignatureLookup, caches)
	}

	contract, _ := to.SmartContract.Get()
	address := contract.Address
	if address == (common.Address{}) {
		address = *tx.To
	}

	call, err := decodeMethod(e.fullABI(ctx, address, caches), tx.Input)
	if err == nil {
		return Outcome{Call: &call}
	}

	e.logs.Debugw("could not decode calldata with verified abi",
		"tx_hash", tx.Hash.Hex(),
		"contract", address.Hex(),
		"error", err)

	return e.verifiedFallback(ctx, tx, skipSignatureLookup, caches)
}

// verifiedFallback retries a verified contract through the unverified path.
// Any candidate found is reported under contract_verified.
func (e *Engine) verifiedFallback(ctx context.Context, tx chain.Transaction, skipSignatureLookup bool, caches *Caches) Outcome {
	selector, ok := tx.MethodSelector()
	if !ok {
		return failure(CouldNotDecode)
	}

	candidates := e.storedCandidates(ctx, tx, selector, caches)
	if len(candidates) == 0 && !skipSignatureLookup {
		candidates = e.lookupCandidates(ctx, tx)
	}

	if len(candidates) == 0 {
		return failure(CouldNotDecode)
	}

	return failure(ContractVerified, candidates...)
}

func (e *Engine) decodeUnverified(ctx context.Context, tx chain.Transaction, skipSignatureLookup bool, caches *Caches) Outcome {
	selector, ok := tx.MethodSelector()
	if !ok {
		return failure(ContractNotVerified)
	}

	candidates := e.storedCandidates(ctx, tx, selector, caches)
	if len(candidates) == 0 && !skipSignatureLookup {
		candidates = e.lookupCandidates(ctx, tx)
	}

	return failure(ContractNotVerified, candidates...)
}

// fullABI returns the parsed ABI of a verified contract, or nil when it
// cannot be resolved or parsed.
func (e *Engine) fullABI(ctx context.Context, address common.Address, caches *Caches) *abi.ABI {
	if cached, ok := caches.abis[address]; ok {
		return cached
	}

	var parsed *abi.ABI
	raw, err := e.abis.ResolveABI(ctx, address)
	switch {
	case err != nil:
		e.logs.Warnw("failed to resolve contract abi",
			"contract", address.Hex(),
			"error", err)
	case len(raw) > 0:
		contractABI, err := abi.JSON(bytes.NewReader(raw))
		if err != nil {
			e.logs.Warnw("failed to parse contract abi",
				"contract", address.Hex(),
				"error", err)
			break
		}
		parsed = &contractABI
	}

	caches.abis[address] = parsed
	return parsed
}

func (e *Engine) storedCandidates(ctx context.Context, tx chain.Transaction, selector [4]byte, caches *Caches) []Call {
	entries, ok := caches.candidates[selector]
	if !ok {
		var err error
		entries, err = e.candidates.MethodCandidates(ctx, selector, e.cfg.CandidatesLimit)
		if err != nil {
			e.logs.Warnw("failed to load method candidates",
				"tx_hash", tx.Hash.Hex(),
				"error", err)
			entries = nil
		}
		caches.candidates[selector] = entries
	}

	calls := make([]Call, 0, len(entries))
	for _, entry := range entries {
		call, err := decodeCall(singleEntryABI(entry), tx.Input)
		if err != nil {
			continue
		}
		calls = append(calls, call)
	}

	return calls
}

func (e *Engine) lookupCandidates(ctx context.Context, tx chain.Transaction) []Call {
	if e.signatures == nil || !e.signatures.Enabled() {
		return nil
	}

	funcs, err := e.signatures.DecodeFunctionCall(ctx, tx.Input)
	if err != nil {
		e.logs.Warnw("signature lookup failed",
			"tx_hash", tx.Hash.Hex(),
			"error", err)
		return nil
	}
	if len(funcs) == 0 {
		return nil
	}

	functionABI, err := funcs[0].ABI()
	if err != nil {
		e.logs.Debugw("signature lookup returned an unusable function",
			"tx_hash", tx.Hash.Hex(),
			"error", err)
		return nil
	}

	call, err := decodeCall(functionABI, tx.Input)
	if err != nil {
		e.logs.Debugw("calldata does not match looked up signature",
			"tx_hash", tx.Hash.Hex(),
			"error", err)
		return nil
	}

	return []Call{call}
}

func recipient(tx chain.Transaction) (chain.Address, error) {
	switch tx.ToAddress.State() {
	case chain.RefResolved:
		to, _ := tx.ToAddress.Get()
		return to, nil
	case chain.RefAbsent:
		// recipient has never been indexed, so it has no code and no contract
		return chain.Address{
			Hash:          *tx.To,
			SmartContract: chain.Absent[chain.Contract](),
		}, nil
	default:
		return chain.Address{}, fmt.Errorf("recipient %s not loaded", tx.To.Hex())
	}
}

// singleEntryABI wraps one ABI entry into an ABI array.
func singleEntryABI(entry json.RawMessage) []byte {
	if len(entry) == 0 {
		return nil
	}
	trimmed := bytes.TrimSpace(entry)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed
	}
	wrapped := make([]byte, 0, len(trimmed)+2)
	wrapped = append(wrapped, '[')
	wrapped = append(wrapped, trimmed...)
	return append(wrapped, ']')
}

func decodeCall(contractABI []byte, input []byte) (call Call, err error) {
	defer recoverDecode(&err)

	if len(contractABI) == 0 {
		return Call{}, errNoABI
	}

	parsed, err := abi.JSON(bytes.NewReader(contractABI))
	if err != nil {
		return Call{}, fmt.Errorf("parse abi: %w", err)
	}

	return decodeMethod(&parsed, input)
}

func decodeMethod(contractABI *abi.ABI, input []byte) (call Call, err error) {
	defer recoverDecode(&err)

	if contractABI == nil {
		return Call{}, errNoABI
	}
	if len(input) < 4 {
		return Call{}, errShortCalldata
	}

	method, err := contractABI.MethodById(input[:4])
	if err != nil {
		return Call{}, fmt.Errorf("find method: %w", err)
	}

	values, err := method.Inputs.Unpack(input[4:])
	if err != nil {
		return Call{}, fmt.Errorf("unpack inputs of %s: %w", method.Sig, err)
	}
	if len(values) != len(method.Inputs) {
		return Call{}, fmt.Errorf("unpack inputs of %s: got %d values", method.Sig, len(values))
	}

	params := make([]Param, len(method.Inputs))
	for i, arg := range method.Inputs {
		params[i] = Param{
			Name:  arg.Name,
			Type:  arg.Type.String(),
			Value: formatValue(values[i]),
		}
	}

	copy(call.MethodID[:], input[:4])
	call.Signature = signatureText(method.RawName, params)
	call.Params = params

	return call, nil
}

func recoverDecode(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", errDecodePanic, r)
	}
}
