package feed_test

import (
	"context"
	"errors"
	"time"

	"txlens/internal/chain"
	"txlens/internal/feed"
	"txlens/internal/feed/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Aggregator", func() {
	var (
		aggregator *feed.Aggregator
		cfg        feed.Config
		fakeStore  *fake.Store
		opts       feed.Options
		page       feed.Page
		err        error
		txs        []chain.Transaction
		rewards    []chain.RewardEntry
	)

	BeforeEach(func() {
		txs, rewards = fixture()
		cfg = feed.Config{
			Timeout:        time.Second,
			MaxPageSize:    100,
			RewardsEnabled: true,
		}
		opts = feed.Options{PageSize: 50}

		fakeStore = new(fake.Store)
		fakeStore.TransactionsStub = byRole(txs)
		fakeStore.IsRewardRecipientReturns(true, nil)
		fakeStore.RewardsReturns(rewards, nil)
	})

	JustBeforeEach(func() {
		aggregator = feed.NewAggregator(zap.NewNop().Sugar(), fakeStore, cfg)
		page, err = aggregator.AddressTransactions(context.Background(), owner, opts)
	})

	Describe("default order", func() {
		It("should merge all roles with rewards, newest first", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(hashes(page)).To(Equal([]string{
				"05", "reward:emission_funds", "reward:validator", "02", "01", "03", "04",
			}))
			Expect(page.Next).To(BeNil())
		})

		It("should query each role once", func() {
			Expect(fakeStore.TransactionsCallCount()).To(Equal(3))
			roles := map[chain.AddressRole]bool{}
			for i := 0; i < fakeStore.TransactionsCallCount(); i++ {
				_, q := fakeStore.TransactionsArgsForCall(i)
				Expect(q.Address).To(Equal(owner))
				Expect(q.Limit).To(Equal(50))
				roles[q.Role] = true
			}
			Expect(roles).To(HaveLen(3))
		})

		It("should list a self transfer once", func() {
			count := 0
			for _, item := range page.Items {
				if item.Transaction != nil && item.Transaction.Hash == txs[2].Hash {
					count++
				}
			}
			Expect(count).To(Equal(1))
		})
	})

	When("filtering outgoing transactions", func() {
		BeforeEach(func() {
			opts.Direction = feed.DirectionFrom
		})

		It("should only query the sender role and skip rewards", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(hashes(page)).To(Equal([]string{"01", "03"}))
			Expect(fakeStore.TransactionsCallCount()).To(Equal(1))
			Expect(fakeStore.IsRewardRecipientCallCount()).To(BeZero())
			Expect(fakeStore.RewardsCallCount()).To(BeZero())
		})
	})

	When("filtering incoming transactions", func() {
		BeforeEach(func() {
			opts.Direction = feed.DirectionTo
		})

		It("should include contract creations and rewards", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(hashes(page)).To(Equal([]string{
				"05", "reward:emission_funds", "reward:validator", "02", "03", "04",
			}))
			Expect(fakeStore.TransactionsCallCount()).To(Equal(2))
		})
	})

	When("the address never received rewards", func() {
		BeforeEach(func() {
			fakeStore.IsRewardRecipientReturns(false, nil)
		})

		It("should not load rewards", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStore.RewardsCallCount()).To(BeZero())
			Expect(hashes(page)).To(Equal([]string{"05", "02", "01", "03", "04"}))
		})
	})

	When("rewards are disabled", func() {
		BeforeEach(func() {
			cfg.RewardsEnabled = false
		})

		It("should not check reward recipients", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeStore.IsRewardRecipientCallCount()).To(BeZero())
		})
	})

	When("sorting by value", func() {
		BeforeEach(func() {
			opts.Sort = feed.Sort{Key: feed.SortValue, Order: feed.OrderDesc}
		})

		It("should order by value descending without rewards", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(hashes(page)).To(Equal([]string{"03", "01", "05", "02", "04"}))
			Expect(fakeStore.IsRewardRecipientCallCount()).To(BeZero())

			_, q := fakeStore.TransactionsArgsForCall(0)
			Expect(q.Sort).To(Equal(opts.Sort))
		})

		When("ascending", func() {
			BeforeEach(func() {
				opts.Sort.Order = feed.OrderAsc
			})

			It("should order by value ascending", func() {
				Expect(hashes(page)).To(Equal([]string{"04", "02", "05", "01", "03"}))
			})
		})
	})

	When("sorting by fee", func() {
		BeforeEach(func() {
			opts.Sort = feed.Sort{Key: feed.SortFee, Order: feed.OrderAsc}
		})

		It("should put a missing fee first when ascending", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(hashes(page)).To(Equal([]string{"04", "05", "02", "01", "03"}))
		})

		When("descending", func() {
			BeforeEach(func() {
				opts.Sort.Order = feed.OrderDesc
			})

			It("should put a missing fee last", func() {
				Expect(hashes(page)).To(Equal([]string{"03", "01", "02", "05", "04"}))
			})
		})
	})

	Describe("pagination", func() {
		BeforeEach(func() {
			opts.PageSize = 3
		})

		It("should walk the whole feed without repeats", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(hashes(page)).To(Equal([]string{"05", "reward:emission_funds", "reward:validator"}))
			Expect(page.Next).NotTo(BeNil())
			Expect(page.Next.Kind).To(Equal(feed.CursorReward))

			seen := hashes(page)
			next := page.Next
			for next != nil {
				encoded, err := next.Encode()
				Expect(err).NotTo(HaveOccurred())
				after, err := feed.DecodeCursor(encoded)
				Expect(err).NotTo(HaveOccurred())

				opts.After = after
				p, err := aggregator.AddressTransactions(context.Background(), owner, opts)
				Expect(err).NotTo(HaveOccurred())
				seen = append(seen, hashes(p)...)
				next = p.Next
			}

			Expect(seen).To(Equal([]string{
				"05", "reward:emission_funds", "reward:validator", "02", "01", "03", "04",
			}))
		})

		When("sorting by fee", func() {
			BeforeEach(func() {
				opts.PageSize = 2
				opts.Sort = feed.Sort{Key: feed.SortFee, Order: feed.OrderDesc}
			})

			It("should carry the sort key across pages", func() {
				Expect(hashes(page)).To(Equal([]string{"03", "01"}))
				seen := hashes(page)
				next := page.Next
				for next != nil {
					opts.After = next
					p, err := aggregator.AddressTransactions(context.Background(), owner, opts)
					Expect(err).NotTo(HaveOccurred())
					seen = append(seen, hashes(p)...)
					next = p.Next
				}
				Expect(seen).To(Equal([]string{"03", "01", "02", "05", "04"}))
			})
		})

		When("the cursor belongs to another sort", func() {
			BeforeEach(func() {
				opts.After = &feed.Cursor{Kind: feed.CursorTransaction, SortKey: feed.SortValue}
			})

			It("should reject it", func() {
				Expect(err).To(MatchError(feed.ErrInvalidCursor))
				Expect(fakeStore.TransactionsCallCount()).To(BeZero())
			})
		})
	})

	Describe("page size", func() {
		When("too large", func() {
			BeforeEach(func() {
				opts.PageSize = 1000
			})

			It("should be capped", func() {
				_, q := fakeStore.TransactionsArgsForCall(0)
				Expect(q.Limit).To(Equal(100))
			})
		})

		When("missing", func() {
			BeforeEach(func() {
				opts.PageSize = 0
			})

			It("should use the default", func() {
				_, q := fakeStore.TransactionsArgsForCall(0)
				Expect(q.Limit).To(Equal(50))
			})
		})
	})

	When("listing pending transactions", func() {
		BeforeEach(func() {
			opts.Pending = true
			pending := []chain.Transaction{
				txSpec{hash: "0x0a", from: owner, to: addr(stranger), inserted: minedAt.Add(time.Minute)}.build(),
				txSpec{hash: "0x0b", from: stranger, to: addr(owner), inserted: minedAt.Add(2 * time.Minute)}.build(),
				txSpec{hash: "0x0c", from: stranger, to: addr(owner), inserted: minedAt.Add(time.Minute)}.build(),
			}
			fakeStore.TransactionsStub = byRole(append(txs, pending...))
		})

		It("should order by insertion time then hash", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(hashes(page)).To(Equal([]string{"0b", "0a", "0c"}))
			Expect(fakeStore.IsRewardRecipientCallCount()).To(BeZero())
		})
	})

	When("a branch fails", func() {
		BeforeEach(func() {
			fakeStore.TransactionsStub = func(_ context.Context, q feed.Query) ([]chain.Transaction, error) {
				if q.Role == chain.RoleCreatedContract {
					return nil, errors.New("connection reset")
				}
				return byRole(txs)(context.Background(), q)
			}
		})

		It("should fail the whole request", func() {
			Expect(err).To(MatchError(feed.ErrBranchFailed))
			Expect(err).To(MatchError(ContainSubstring("connection reset")))
			Expect(page.Items).To(BeEmpty())
		})
	})

	When("the reward check fails", func() {
		BeforeEach(func() {
			fakeStore.IsRewardRecipientReturns(false, errors.New("boom"))
		})

		It("should fail the whole request", func() {
			Expect(err).To(MatchError(feed.ErrBranchFailed))
		})
	})

	When("a branch is too slow", func() {
		BeforeEach(func() {
			cfg.Timeout = 20 * time.Millisecond
			fakeStore.TransactionsStub = func(ctx context.Context, q feed.Query) ([]chain.Transaction, error) {
				if q.Role == chain.RoleTo {
					time.Sleep(time.Second)
				}
				return nil, nil
			}
		})

		It("should give up after the timeout", func() {
			Expect(err).To(MatchError(feed.ErrTimeout))
		})
	})

	When("a branch honours cancellation", func() {
		BeforeEach(func() {
			cfg.Timeout = 20 * time.Millisecond
			fakeStore.TransactionsStub = func(ctx context.Context, _ feed.Query) ([]chain.Transaction, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			}
		})

		It("should report a timeout", func() {
			Expect(err).To(MatchError(feed.ErrTimeout))
		})
	})
})
