package payload

import (
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
)

const maxTransactionHashes = 100

var (
	hashRegex    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	addressRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

type TransactionsRequest struct {
	Transactions []string
}

func (t TransactionsRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Transactions, validation.Required, validation.Length(1, maxTransactionHashes)),
		validation.Field(&t.Transactions, validation.Each(validation.Match(hashRegex))),
	)
}

func (t TransactionsRequest) Hashes() []common.Hash {
	hashes := make([]common.Hash, 0, len(t.Transactions))
	for _, h := range t.Transactions {
		hashes = append(hashes, common.HexToHash(h))
	}
	return hashes
}

// TransactionHashParam is a single transaction hash taken from the path.
type TransactionHashParam struct {
	Hash string
}

func (t TransactionHashParam) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Hash, validation.Required, validation.Match(hashRegex)),
	)
}

func (t TransactionHashParam) ToHash() common.Hash {
	return common.HexToHash(t.Hash)
}
