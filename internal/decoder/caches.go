package decoder

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Caches memoizes ABI and candidate lookups across the decodes of one batch.
// A Caches value must not be shared between goroutines. A nil ABI marks a
// contract whose ABI could not be resolved or parsed.
type Caches struct {
	abis       map[common.Address]*abi.ABI
	candidates map[[4]byte][]json.RawMessage
}

func NewCaches() *Caches {
	return &Caches{
		abis:       make(map[common.Address]*abi.ABI),
		candidates: make(map[[4]byte][]json.RawMessage),
	}
}
