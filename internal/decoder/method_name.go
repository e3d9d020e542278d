package decoder

import (
	"context"
	"unicode"
	"unicode/utf8"

	"txlens/internal/chain"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const transferLabel = "Transfer"

// MethodName returns a short label for the method tx invokes, for list views.
// Contract creations and transactions without a recipient have no label.
// It never consults the external signature lookup.
func (e *Engine) MethodName(ctx context.Context, tx chain.Transaction, caches *Caches) (string, bool) {
	if tx.CreatedContract != nil || tx.To == nil {
		return "", false
	}

	if tx.ToAddress.State() == chain.RefUnresolved {
		return transferLabel, true
	}
	if to, ok := tx.ToAddress.Get(); ok && to.SmartContract.State() == chain.RefResolved {
		return transferLabel, true
	}

	selector, ok := tx.MethodSelector()
	if !ok {
		return transferLabel, true
	}

	outcome := e.Decode(ctx, tx, true, caches)
	if outcome.Failure != ContractNotVerified {
		return transferLabel, true
	}

	switch len(outcome.Candidates) {
	case 0:
		return hexutil.Encode(selector[:]), true
	case 1:
		return capitalize(outcome.Candidates[0].Name()), true
	default:
		return transferLabel, true
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
