package decoder

import (
	"context"
	"encoding/json"

	"txlens/internal/signature"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ABIResolver returns the full ABI of a verified contract, already combined
// with its implementation ABI for proxies. It returns (nil, nil) when the
// contract has no verified ABI.
//
//counterfeiter:generate -o fake -fake-name ABIResolver . ABIResolver
type ABIResolver interface {
	ResolveABI(ctx context.Context, address common.Address) (json.RawMessage, error)
}

// CandidateStore returns single-function ABI entries that share a method selector.
//
//counterfeiter:generate -o fake -fake-name CandidateStore . CandidateStore
type CandidateStore interface {
	MethodCandidates(ctx context.Context, selector [4]byte, limit int) ([]json.RawMessage, error)
}

//counterfeiter:generate -o fake -fake-name SignatureLookup . SignatureLookup
type SignatureLookup interface {
	Enabled() bool
	DecodeFunctionCall(ctx context.Context, calldata []byte) ([]signature.Function, error)
}
