package feed

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"txlens/internal/metrics"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBranchFailed = errors.New("feed branch failed")
	ErrTimeout      = errors.New("feed query timed out")
)

const (
	defaultTimeout  = 20 * time.Second
	defaultPageSize = 50
	maxPageSize     = 100
)

type Config struct {
	Timeout         time.Duration
	DefaultPageSize int
	MaxPageSize     int
	RewardsEnabled  bool
}

// Page is one page of the address feed. Next is nil on the last page.
type Page struct {
	Items []Item
	Next  *Cursor
}

// Aggregator builds the transaction feed of an address by querying each
// address role separately and merging the results.
type Aggregator struct {
	logs    *zap.SugaredLogger
	store   Store
	cfg     Config
	metrics *metrics.Feed
}

func NewAggregator(logger *zap.SugaredLogger, store Store, cfg Config) *Aggregator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = maxPageSize
	}
	if cfg.DefaultPageSize <= 0 || cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = min(defaultPageSize, cfg.MaxPageSize)
	}

	return &Aggregator{
		logs:    logger,
		store:   store,
		cfg:     cfg,
		metrics: metrics.NewFeed(),
	}
}

type branch struct {
	name  string
	fetch func(ctx context.Context) ([]Item, error)
}

// AddressTransactions returns one page of the feed of address. A failure or
// timeout of any branch fails the whole request.
func (a *Aggregator) AddressTransactions(ctx context.Context, address common.Address, opts Options) (Page, error) {
	if err := a.checkCursor(opts); err != nil {
		return Page{}, err
	}

	pageSize := a.pageSize(opts.PageSize)
	branches := a.branches(address, opts, pageSize)

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	results := make([][]Item, len(branches))
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range branches {
		g.Go(func() error {
			started := time.Now()
			items, err := b.fetch(gctx)
			a.metrics.ObserveBranch(b.name, err, started)
			if err != nil {
				return fmt.Errorf("%s: %w", b.name, err)
			}
			results[i] = items
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return Page{}, fmt.Errorf("%w after %s: %w", ErrTimeout, a.cfg.Timeout, err)
			}
			a.logs.Errorw("address feed branch failed",
				"address", address.Hex(),
				"error", err)
			return Page{}, fmt.Errorf("%w: %w", ErrBranchFailed, err)
		}
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			a.logs.Warnw("address feed timed out",
				"address", address.Hex(),
				"timeout", a.cfg.Timeout)
			return Page{}, fmt.Errorf("%w after %s", ErrTimeout, a.cfg.Timeout)
		}
		return Page{}, ctx.Err()
	}

	items := a.merge(results, opts)
	if len(items) > pageSize {
		items = items[:pageSize]
	}

	page := Page{Items: items}
	if len(items) == pageSize {
		next := CursorAt(items[len(items)-1], opts.Sort)
		page.Next = &next
	}

	return page, nil
}

func (a *Aggregator) pageSize(requested int) int {
	switch {
	case requested <= 0:
		return a.cfg.DefaultPageSize
	case requested > a.cfg.MaxPageSize:
		return a.cfg.MaxPageSize
	default:
		return requested
	}
}

func (a *Aggregator) checkCursor(opts Options) error {
	c := opts.After
	if c == nil {
		return nil
	}
	if c.SortKey != opts.Sort.Key {
		return fmt.Errorf("%w: cursor belongs to another sort", ErrInvalidCursor)
	}
	if opts.Pending != (c.Kind == CursorPending) {
		return fmt.Errorf("%w: cursor belongs to another view", ErrInvalidCursor)
	}
	return nil
}

// rewardsBlended reports whether block rewards take part in the feed.
// Rewards have no value or fee, so they only join the default order.
func (a *Aggregator) rewardsBlended(opts Options) bool {
	return a.cfg.RewardsEnabled &&
		opts.Direction != DirectionFrom &&
		!opts.Pending &&
		opts.Sort.Key == SortDefault
}

func (a *Aggregator) branches(address common.Address, opts Options, limit int) []branch {
	roles := opts.Direction.roles()
	branches := make([]branch, 0, len(roles)+1)

	for _, role := range roles {
		q := Query{
			Address:    address,
			Role:       role,
			Pending:    opts.Pending,
			Range:      opts.Range,
			Sort:       opts.Sort,
			After:      opts.After,
			Limit:      limit,
			Preload:    opts.Preload,
			UseReplica: opts.UseReplica,
		}
		branches = append(branches, branch{
			name: role.String(),
			fetch: func(ctx context.Context) ([]Item, error) {
				txs, err := a.store.Transactions(ctx, q)
				if err != nil {
					return nil, err
				}
				items := make([]Item, len(txs))
				for i := range txs {
					items[i] = Item{Transaction: &txs[i]}
				}
				return items, nil
			},
		})
	}

	if a.rewardsBlended(opts) {
		q := RewardQuery{
			Address:    address,
			Range:      opts.Range,
			After:      opts.After,
			Limit:      limit,
			UseReplica: opts.UseReplica,
		}
		branches = append(branches, branch{
			name: "rewards",
			fetch: func(ctx context.Context) ([]Item, error) {
				ok, err := a.store.IsRewardRecipient(ctx, address)
				if err != nil {
					return nil, fmt.Errorf("check reward recipient: %w", err)
				}
				if !ok {
					return nil, nil
				}
				rewards, err := a.store.Rewards(ctx, q)
				if err != nil {
					return nil, err
				}
				items := make([]Item, len(rewards))
				for i := range rewards {
					items[i] = Item{Reward: &rewards[i]}
				}
				return items, nil
			},
		})
	}

	return branches
}

// merge concatenates branch results, sorts them and drops duplicates and
// anything not strictly after the cursor.
func (a *Aggregator) merge(results [][]Item, opts Options) []Item {
	total := 0
	for _, r := range results {
		total += len(r)
	}

	all := make([]Item, 0, total)
	for _, r := range results {
		for _, item := range r {
			if item.Transaction == nil && item.Reward == nil {
				continue
			}
			if opts.After != nil && !opts.After.admits(opts.Sort, item) {
				continue
			}
			all = append(all, item)
		}
	}

	sort.SliceStable(all, func(i, j int) bool {
		return opts.Sort.compare(all[i].position(), all[j].position()) < 0
	})

	seen := make(map[string]struct{}, len(all))
	merged := all[:0]
	for _, item := range all {
		id := item.identity()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		merged = append(merged, item)
	}

	return merged
}
