package feed

import (
	"math/big"

	"txlens/internal/chain"

	"github.com/ethereum/go-ethereum/common"
)

// Item is one feed entry: either a transaction or a block reward.
type Item struct {
	Transaction *chain.Transaction
	Reward      *chain.RewardEntry
}

func (i Item) identity() string {
	if i.Reward != nil {
		return "reward:" + i.Reward.BlockHash.Hex() + ":" + i.Reward.AddressHash.Hex() + ":" + string(i.Reward.AddressType)
	}
	return "tx:" + i.Transaction.Hash.Hex()
}

// position holds the fields the ordering looks at.
type position struct {
	reward     bool
	block      *uint64
	index      uint64
	insertedAt int64
	hash       common.Hash
	rewardType string
	value      *big.Int
	fee        *big.Int
}

func (i Item) position() position {
	if i.Reward != nil {
		block := i.Reward.BlockNumber
		return position{
			reward:     true,
			block:      &block,
			hash:       i.Reward.BlockHash,
			rewardType: string(i.Reward.AddressType),
		}
	}

	tx := i.Transaction
	p := position{
		block:      tx.BlockNumber,
		insertedAt: tx.InsertedAt.UnixMicro(),
		hash:       tx.Hash,
		value:      tx.Value,
	}
	if tx.Index != nil {
		p.index = *tx.Index
	}
	if fee, ok := tx.Fee(); ok {
		p.fee = fee
	}

	return p
}
