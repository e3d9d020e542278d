package repository

import (
	"fmt"

	"txlens/internal/chain"
	"txlens/internal/db"
	"txlens/internal/feed"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	droppedError = "dropped/replaced"
	// feeExpr ranks transactions without a fee below every other one.
	feeExpr = "COALESCE(gas_price * COALESCE(gas_used, gas), -1)"
)

func byRole(role chain.AddressRole, address common.Address) (db.Scope, error) {
	var column string
	switch role {
	case chain.RoleFrom:
		column = "from_address_hash"
	case chain.RoleTo:
		column = "to_address_hash"
	case chain.RoleCreatedContract:
		column = "created_contract_address_hash"
	default:
		return nil, fmt.Errorf("unknown address role %d", role)
	}

	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(column+" = ?", hexAddress(address))
	}, nil
}

func inRange(r feed.BlockRange) db.Scope {
	return func(tx *gorm.DB) *gorm.DB {
		if r.From != nil {
			tx = tx.Where("block_number >= ?", *r.From)
		}
		if r.To != nil {
			tx = tx.Where("block_number <= ?", *r.To)
		}
		return tx
	}
}

func view(pending bool) db.Scope {
	return func(tx *gorm.DB) *gorm.DB {
		if pending {
			return tx.Where("block_number IS NULL")
		}
		return tx.Where("block_number IS NOT NULL")
	}
}

func notDropped(tx *gorm.DB) *gorm.DB {
	return tx.Where("(error IS NULL OR error <> ?)", droppedError)
}

// sortColumn returns the expression a value or fee sort orders by.
func sortColumn(key feed.SortKey) string {
	switch key {
	case feed.SortValue:
		return "value"
	case feed.SortFee:
		return feeExpr
	default:
		return ""
	}
}

func direction(o feed.Order) string {
	if o == feed.OrderAsc {
		return "ASC"
	}
	return "DESC"
}

func transactionOrder(s feed.Sort, pending bool) db.Scope {
	return func(tx *gorm.DB) *gorm.DB {
		if col := sortColumn(s.Key); col != "" {
			tx = tx.Order(col + " " + direction(s.Order))
		}
		if pending {
			return tx.Order("inserted_at DESC").Order("hash ASC")
		}
		return tx.Order("block_number DESC").
			Order("transaction_index DESC").
			Order("inserted_at DESC").
			Order("hash ASC")
	}
}

// transactionsAfter keeps the transactions strictly after the cursor in the
// order of transactionOrder.
func transactionsAfter(s feed.Sort, c *feed.Cursor) db.Scope {
	return func(tx *gorm.DB) *gorm.DB {
		if c == nil {
			return tx
		}

		var cond string
		var args []any
		switch c.Kind {
		case feed.CursorReward:
			// transactions of the cursor block follow its rewards
			cond, args = "block_number <= ?", []any{c.BlockNumber}
		case feed.CursorPending:
			cond = "(inserted_at < ? OR (inserted_at = ? AND hash > ?))"
			args = []any{c.Time(), c.Time(), c.Hash.Hex()}
		default:
			cond = "(block_number < ? OR (block_number = ? AND transaction_index < ?))"
			args = []any{c.BlockNumber, c.BlockNumber, c.Index}
		}

		col := sortColumn(s.Key)
		if col == "" {
			return tx.Where(cond, args...)
		}

		cmp := "<"
		if s.Order == feed.OrderAsc {
			cmp = ">"
		}
		v := sortValue(c)
		return tx.Where(
			fmt.Sprintf("(%s %s ? OR (%s = ? AND %s))", col, cmp, col, cond),
			append([]any{v, v}, args...)...,
		)
	}
}

func sortValue(c *feed.Cursor) decimal.Decimal {
	if c.SortNull {
		return decimal.NewFromInt(-1)
	}
	return toDecimal(c.SortValue)
}

func rewardsAfter(c *feed.Cursor) db.Scope {
	return func(tx *gorm.DB) *gorm.DB {
		switch {
		case c == nil:
			return tx
		case c.Kind == feed.CursorReward:
			return tx.Where(
				"(block_number < ? OR (block_number = ? AND (address_type > ? OR (address_type = ? AND block_hash > ?))))",
				c.BlockNumber, c.BlockNumber, c.RewardType, c.RewardType, c.Hash.Hex(),
			)
		default:
			return tx.Where("block_number < ?", c.BlockNumber)
		}
	}
}

func rewardOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("block_number DESC").Order("address_type ASC").Order("block_hash ASC")
}

func limit(n int) db.Scope {
	return func(tx *gorm.DB) *gorm.DB {
		if n <= 0 {
			return tx
		}
		return tx.Limit(n)
	}
}

func withPreloads(names []string) (db.Scope, preloads, error) {
	var p preloads
	for _, name := range names {
		switch name {
		case "ToAddress":
			p.toAddress = true
		case "ToAddress.SmartContract":
			p.toAddress = true
			p.smartContract = true
		default:
			return nil, preloads{}, fmt.Errorf("%w: %q", ErrUnknownPreload, name)
		}
	}

	return func(tx *gorm.DB) *gorm.DB {
		if p.smartContract {
			return tx.Preload("ToAddress.SmartContract")
		}
		if p.toAddress {
			return tx.Preload("ToAddress")
		}
		return tx
	}, p, nil
}
