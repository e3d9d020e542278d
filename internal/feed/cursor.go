package feed

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
)

type CursorKind uint8

const (
	CursorTransaction CursorKind = iota + 1
	CursorPending
	CursorReward
)

// Cursor is the position of the last entry of a page.
type Cursor struct {
	Kind        CursorKind
	SortKey     SortKey
	BlockNumber uint64
	Index       uint64
	// InsertedAt is in unix microseconds.
	InsertedAt uint64
	// Hash is the transaction hash, or the block hash for rewards.
	Hash       common.Hash
	RewardType string
	// SortValue is the value or fee of the entry for value and fee sorts.
	SortValue *big.Int `rlp:"nil"`
	// SortNull marks an entry without a fee.
	SortNull bool
}

// CursorAt returns the cursor positioned at item under the sort s.
func CursorAt(item Item, s Sort) Cursor {
	if r := item.Reward; r != nil {
		return Cursor{
			Kind:        CursorReward,
			SortKey:     s.Key,
			BlockNumber: r.BlockNumber,
			Hash:        r.BlockHash,
			RewardType:  string(r.AddressType),
		}
	}

	tx := item.Transaction
	c := Cursor{
		Kind:       CursorTransaction,
		SortKey:    s.Key,
		InsertedAt: uint64(tx.InsertedAt.UnixMicro()),
		Hash:       tx.Hash,
	}
	if tx.BlockNumber == nil {
		c.Kind = CursorPending
	} else {
		c.BlockNumber = *tx.BlockNumber
	}
	if tx.Index != nil {
		c.Index = *tx.Index
	}

	switch s.Key {
	case SortValue:
		c.SortValue = new(big.Int).Set(orZero(tx.Value))
	case SortFee:
		if fee, ok := tx.Fee(); ok {
			c.SortValue = fee
		} else {
			c.SortNull = true
		}
	}

	return c
}

// Block returns the block number pointer for mined and reward cursors.
func (c Cursor) Block() *uint64 {
	if c.Kind == CursorPending {
		return nil
	}
	b := c.BlockNumber
	return &b
}

// Time returns InsertedAt as a time.
func (c Cursor) Time() time.Time {
	return time.UnixMicro(int64(c.InsertedAt)).UTC()
}

func (c Cursor) position() position {
	p := position{
		reward:     c.Kind == CursorReward,
		block:      c.Block(),
		index:      c.Index,
		insertedAt: int64(c.InsertedAt),
		hash:       c.Hash,
		rewardType: c.RewardType,
		value:      c.SortValue,
	}
	if !c.SortNull {
		p.fee = orZero(c.SortValue)
	}
	return p
}

// admits reports whether item sorts strictly after the cursor.
func (c Cursor) admits(s Sort, item Item) bool {
	return s.compare(c.position(), item.position()) < 0
}

func (c Cursor) validate() error {
	switch c.Kind {
	case CursorTransaction, CursorPending, CursorReward:
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidCursor, c.Kind)
	}
	if c.SortKey > SortFee {
		return fmt.Errorf("%w: unknown sort key %d", ErrInvalidCursor, c.SortKey)
	}
	if c.SortValue != nil && c.SortValue.Sign() < 0 {
		return fmt.Errorf("%w: negative sort value", ErrInvalidCursor)
	}
	return nil
}

// Encode returns the opaque string form of the cursor.
func (c Cursor) Encode() (string, error) {
	if err := c.validate(); err != nil {
		return "", err
	}
	data, err := rlp.EncodeToBytes(&c)
	if err != nil {
		return "", fmt.Errorf("rlp encode cursor: %w", err)
	}
	return hexutil.Encode(data), nil
}

func DecodeCursor(s string) (*Cursor, error) {
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}

	var c Cursor
	if err := rlp.DecodeBytes(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}
