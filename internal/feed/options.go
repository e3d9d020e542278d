package feed

import (
	"errors"
	"fmt"

	"txlens/internal/chain"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidOptions = errors.New("invalid feed options")
	ErrInvalidCursor  = errors.New("invalid cursor")
)

// Direction restricts which roles of the address are listed.
type Direction uint8

const (
	DirectionAny Direction = iota
	DirectionFrom
	DirectionTo
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "":
		return DirectionAny, nil
	case "from":
		return DirectionFrom, nil
	case "to":
		return DirectionTo, nil
	default:
		return DirectionAny, fmt.Errorf("%w: unknown direction %q", ErrInvalidOptions, s)
	}
}

// roles returns the address roles queried for the direction.
func (d Direction) roles() []chain.AddressRole {
	switch d {
	case DirectionFrom:
		return []chain.AddressRole{chain.RoleFrom}
	case DirectionTo:
		return []chain.AddressRole{chain.RoleTo, chain.RoleCreatedContract}
	default:
		return []chain.AddressRole{chain.RoleFrom, chain.RoleTo, chain.RoleCreatedContract}
	}
}

type SortKey uint8

const (
	SortDefault SortKey = iota
	SortValue
	SortFee
)

type Order uint8

const (
	OrderDesc Order = iota
	OrderAsc
)

// Sort is the page ordering. For SortFee a missing fee sorts first in
// ascending order and last in descending order.
type Sort struct {
	Key   SortKey
	Order Order
}

func ParseSort(key, order string) (Sort, error) {
	var s Sort

	switch key {
	case "":
		if order != "" {
			return Sort{}, fmt.Errorf("%w: order requires a sort key", ErrInvalidOptions)
		}
		return s, nil
	case "value":
		s.Key = SortValue
	case "fee":
		s.Key = SortFee
	default:
		return Sort{}, fmt.Errorf("%w: unknown sort key %q", ErrInvalidOptions, key)
	}

	switch order {
	case "", "desc":
		s.Order = OrderDesc
	case "asc":
		s.Order = OrderAsc
	default:
		return Sort{}, fmt.Errorf("%w: unknown sort order %q", ErrInvalidOptions, order)
	}

	return s, nil
}

// BlockRange bounds block numbers inclusively. Nil ends are open.
type BlockRange struct {
	From *uint64
	To   *uint64
}

type Options struct {
	Direction Direction
	Sort      Sort
	After     *Cursor
	PageSize  int
	// Pending lists transactions not yet included in a block instead of mined ones.
	Pending bool
	Range   BlockRange
	// Preload names the associations loaded with each transaction, such as "ToAddress.SmartContract".
	Preload    []string
	UseReplica bool
}

// Query asks the store for the transactions in which Address plays Role.
type Query struct {
	Address    common.Address
	Role       chain.AddressRole
	Pending    bool
	Range      BlockRange
	Sort       Sort
	After      *Cursor
	Limit      int
	Preload    []string
	UseReplica bool
}

// RewardQuery asks the store for block rewards paid to Address.
type RewardQuery struct {
	Address    common.Address
	Range      BlockRange
	After      *Cursor
	Limit      int
	UseReplica bool
}
