package core_test

import (
	"context"
	"errors"

	"txlens/internal/chain"
	"txlens/internal/core"
	"txlens/internal/core/fake"
	"txlens/internal/decoder"
	"txlens/internal/feed"
	"txlens/internal/repository"
	tokenIssuer "txlens/pkg/jwt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func u64(v uint64) *uint64 {
	return &v
}

var _ = Describe("Explorer", func() {
	var (
		fakeRepo    *fake.Repository
		fakeJWT     *fake.JWTIssuer
		fakeEth     *fake.EthereumService
		fakeFeed    *fake.AddressFeed
		fakeDecoder *fake.CalldataDecoder
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		explorer *core.Explorer

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeEth = new(fake.EthereumService)
		fakeFeed = new(fake.AddressFeed)
		fakeDecoder = new(fake.CalldataDecoder)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		explorer = core.NewExplorer(fakeLogger, fakeRepo, fakeJWT, fakeEth, fakeFeed, fakeDecoder)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			hashedPassword = string(hash)
			genToken = jwt.New(jwt.SigningMethodHS256)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Expiration: 24,
			}
		})

		JustBeforeEach(func() {
			token, err = explorer.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserFromDBCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserFromDBArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				Expect(fakeJWT.GenerateArgsForCall(0)).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				Expect(fakeJWT.SignArgsForCall(0)).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserFromDBReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ValidateToken", func() {
		It("should return the subject", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)

			userID, err := explorer.ValidateToken("valid.token")
			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal("user123"))
			Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("valid.token"))
		})

		It("should reject tokens without a subject", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{}, nil)

			_, err := explorer.ValidateToken("valid.token")
			Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
		})

		It("should return validation errors", func() {
			fakeJWT.ValidateReturns(nil, fakeErr)

			_, err := explorer.ValidateToken("bad.token")
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("GetTransactions", func() {
		var (
			txHashes     []common.Hash
			transactions []chain.Transaction
			err          error
		)

		BeforeEach(func() {
			txHashes = []common.Hash{common.HexToHash("0x1"), common.HexToHash("0x2")}
		})

		JustBeforeEach(func() {
			transactions, err = explorer.GetTransactions(ctx, txHashes)
		})

		When("transactions exist in DB", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns([]chain.Transaction{
					{Hash: txHashes[0]},
					{Hash: txHashes[1]},
				}, nil)
			})

			It("should return transactions from DB", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))
				Expect(fakeRepo.GetTransactionsByHashCallCount()).To(Equal(1))
				_, argTxs := fakeRepo.GetTransactionsByHashArgsForCall(0)
				Expect(argTxs).To(Equal(txHashes))
				Expect(fakeEth.FetchTransactionsCallCount()).To(Equal(0))
				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(0))
			})
		})

		When("one or more transactions missing from DB", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns([]chain.Transaction{
					{Hash: txHashes[0]},
				}, nil)
				fakeEth.FetchTransactionsReturns([]chain.Transaction{
					{Hash: txHashes[1]},
				}, nil)
			})

			It("fetches missing transactions from ethereum node", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(2))
				Expect(fakeEth.FetchTransactionsCallCount()).To(Equal(1))
				_, argTxs := fakeEth.FetchTransactionsArgsForCall(0)
				Expect(argTxs).To(Equal([]common.Hash{txHashes[1]}))
			})

			It("stores only the fetched transactions", func() {
				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(1))
				_, saved := fakeRepo.SaveTransactionsArgsForCall(0)
				Expect(saved).To(Equal([]chain.Transaction{{Hash: txHashes[1]}}))
			})
		})

		When("storing fetched transactions fails", func() {
			BeforeEach(func() {
				fakeEth.FetchTransactionsReturns([]chain.Transaction{{Hash: txHashes[0]}}, nil)
				fakeRepo.SaveTransactionsReturns(fakeErr)
			})

			It("should return the transactions with the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(transactions).To(HaveLen(1))
			})
		})

		When("getting txs from db fails", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns(nil, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("node fetch fails", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionsByHashReturns([]chain.Transaction{
					{Hash: txHashes[0]},
				}, nil)
				fakeEth.FetchTransactionsReturns(nil, fakeErr)
			})

			It("should return partial results", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transactions).To(HaveLen(1))
				Expect(fakeRepo.SaveTransactionsCallCount()).To(Equal(0))
			})
		})
	})

	Describe("AddressTransactions", func() {
		var (
			address common.Address
			opts    feed.Options
			page    core.FeedPage
			err     error
			txs     []chain.Transaction
			reward  chain.RewardEntry
		)

		BeforeEach(func() {
			address = common.HexToAddress("0xa1")
			opts = feed.Options{PageSize: 3}
			to := common.HexToAddress("0xc3")
			txs = []chain.Transaction{
				{Hash: common.HexToHash("0x1"), BlockNumber: u64(10), Index: u64(1), To: &to},
				{Hash: common.HexToHash("0x2"), BlockNumber: u64(9), Index: u64(0)},
			}
			reward = chain.RewardEntry{BlockNumber: 10, AddressType: chain.RewardValidator}

			fakeFeed.AddressTransactionsReturns(feed.Page{
				Items: []feed.Item{
					{Reward: &reward},
					{Transaction: &txs[0]},
					{Transaction: &txs[1]},
				},
			}, nil)
			fakeDecoder.MethodNameStub = func(ctx context.Context, tx chain.Transaction, caches *decoder.Caches) (string, bool) {
				if tx.To == nil {
					return "", false
				}
				return "Transfer", true
			}
		})

		JustBeforeEach(func() {
			page, err = explorer.AddressTransactions(ctx, address, opts)
		})

		It("should label every transaction of the page", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(page.Entries).To(HaveLen(3))
			Expect(page.Entries[0].Reward).To(Equal(&reward))
			Expect(page.Entries[0].Method).To(BeEmpty())
			Expect(page.Entries[1].Method).To(Equal("Transfer"))
			Expect(page.Entries[2].Method).To(BeEmpty())
			Expect(page.NextCursor).To(BeEmpty())

			Expect(fakeDecoder.MethodNameCallCount()).To(Equal(2))
		})

		It("should share one cache across the page", func() {
			_, _, first := fakeDecoder.MethodNameArgsForCall(0)
			_, _, second := fakeDecoder.MethodNameArgsForCall(1)
			Expect(first).NotTo(BeNil())
			Expect(first).To(BeIdenticalTo(second))
		})

		It("should preload the recipient contract", func() {
			_, argAddress, argOpts := fakeFeed.AddressTransactionsArgsForCall(0)
			Expect(argAddress).To(Equal(address))
			Expect(argOpts.Preload).To(ConsistOf("ToAddress", "ToAddress.SmartContract"))
			Expect(argOpts.PageSize).To(Equal(3))
		})

		When("the page is full", func() {
			BeforeEach(func() {
				next := feed.CursorAt(feed.Item{Transaction: &txs[1]}, feed.Sort{})
				fakeFeed.AddressTransactionsReturns(feed.Page{
					Items: []feed.Item{{Transaction: &txs[1]}},
					Next:  &next,
				}, nil)
			})

			It("should encode the next cursor", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(page.NextCursor).To(HavePrefix("0x"))

				cursor, err := feed.DecodeCursor(page.NextCursor)
				Expect(err).NotTo(HaveOccurred())
				Expect(cursor.BlockNumber).To(Equal(uint64(9)))
			})
		})

		When("the feed fails", func() {
			BeforeEach(func() {
				fakeFeed.AddressTransactionsReturns(feed.Page{}, feed.ErrTimeout)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(feed.ErrTimeout))
				Expect(fakeDecoder.MethodNameCallCount()).To(Equal(0))
			})
		})
	})

	Describe("DecodeTransactionInput", func() {
		var (
			hash    common.Hash
			outcome decoder.Outcome
			err     error
		)

		BeforeEach(func() {
			hash = common.HexToHash("0x1")
			fakeRepo.GetTransactionReturns(chain.Transaction{Hash: hash}, nil)
			fakeDecoder.DecodeReturns(decoder.Outcome{Failure: decoder.NoToAddress})
		})

		JustBeforeEach(func() {
			outcome, err = explorer.DecodeTransactionInput(ctx, hash)
		})

		It("should decode with the signature lookup enabled", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.Failure).To(Equal(decoder.NoToAddress))

			_, argHash, preload := fakeRepo.GetTransactionArgsForCall(0)
			Expect(argHash).To(Equal(hash))
			Expect(preload).To(ContainElement("ToAddress.SmartContract"))

			_, tx, skip, caches := fakeDecoder.DecodeArgsForCall(0)
			Expect(tx.Hash).To(Equal(hash))
			Expect(skip).To(BeFalse())
			Expect(caches).NotTo(BeNil())
		})

		When("the transaction is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionReturns(chain.Transaction{}, repository.ErrTransactionNotFound)
			})

			It("should return ErrTransactionNotFound", func() {
				Expect(err).To(MatchError(core.ErrTransactionNotFound))
				Expect(fakeDecoder.DecodeCallCount()).To(Equal(0))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetTransactionReturns(chain.Transaction{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
