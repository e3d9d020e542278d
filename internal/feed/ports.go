package feed

import (
	"context"

	"txlens/internal/chain"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Store runs the per-role queries of the feed. Transactions must return
// entries ordered by q.Sort, strictly after q.After, at most q.Limit of them.
//
//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	Transactions(ctx context.Context, q Query) ([]chain.Transaction, error)
	Rewards(ctx context.Context, q RewardQuery) ([]chain.RewardEntry, error)
	IsRewardRecipient(ctx context.Context, address common.Address) (bool, error)
}
