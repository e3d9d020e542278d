package feed

import (
	"bytes"
	"math/big"
	"strings"
)

// compare reports whether a sorts before (-1), after (1) or together with (0) b.
// Value and fee keys apply to transactions only and fall back to the default order.
func (s Sort) compare(a, b position) int {
	if !a.reward && !b.reward {
		var c int
		switch s.Key {
		case SortValue:
			c = orZero(a.value).Cmp(orZero(b.value))
		case SortFee:
			c = compareFee(a.fee, b.fee)
		}
		if s.Order == OrderDesc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}

	return compareDefault(a, b)
}

// compareDefault orders newest first: block descending, rewards ahead of
// transactions of the same block, index descending, inserted_at descending,
// then hash ascending.
func compareDefault(a, b position) int {
	if c := compareBlockDesc(a.block, b.block); c != 0 {
		return c
	}

	if a.reward != b.reward {
		if a.reward {
			return -1
		}
		return 1
	}

	if a.reward {
		if c := strings.Compare(a.rewardType, b.rewardType); c != 0 {
			return c
		}
		return bytes.Compare(a.hash[:], b.hash[:])
	}

	switch {
	case a.index > b.index:
		return -1
	case a.index < b.index:
		return 1
	}

	switch {
	case a.insertedAt > b.insertedAt:
		return -1
	case a.insertedAt < b.insertedAt:
		return 1
	}

	return bytes.Compare(a.hash[:], b.hash[:])
}

// compareBlockDesc puts pending entries (nil block) first.
func compareBlockDesc(a, b *uint64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a > *b:
		return -1
	case *a < *b:
		return 1
	default:
		return 0
	}
}

// compareFee treats a missing fee as lower than any fee.
func compareFee(a, b *big.Int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Cmp(b)
	}
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
