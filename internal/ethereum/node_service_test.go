package ethereum_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"txlens/internal/chain"
	"txlens/internal/ethereum"
	"txlens/internal/ethereum/fake"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()
		service = ethereum.NewEthService(zap.NewNop().Sugar(), fakeClient)
	})

	Describe("FetchTransactions", func() {
		var (
			hashes    []common.Hash
			results   []chain.Transaction
			err       error
			sender    common.Address
			recipient common.Address
			signedTx1 *types.Transaction
			signedTx2 *types.Transaction
			chainID   *big.Int
			txs       map[common.Hash]*types.Transaction
			receipts  map[common.Hash]*types.Receipt
			failing   map[common.Hash]bool
		)

		byHash := func(results []chain.Transaction, hash common.Hash) chain.Transaction {
			for _, tx := range results {
				if tx.Hash == hash {
					return tx
				}
			}
			Fail(fmt.Sprintf("transaction %s not in results", hash.Hex()))
			return chain.Transaction{}
		}

		BeforeEach(func() {
			privateKey, err := crypto.GenerateKey()
			Expect(err).NotTo(HaveOccurred())
			sender = crypto.PubkeyToAddress(privateKey.PublicKey)
			recipient = common.HexToAddress("0x00000000000000000000000000000000000000c3")

			chainID = big.NewInt(5)
			signer := types.LatestSignerForChainID(chainID)

			tx1 := types.NewTransaction(0, recipient, big.NewInt(7), 21000, big.NewInt(3), []byte{0xa9, 0x05, 0x9c, 0xbb})
			tx2 := types.NewContractCreation(1, big.NewInt(0), 90000, big.NewInt(4), []byte{0x60, 0x80})

			signedTx1, _ = types.SignTx(tx1, signer, privateKey)
			signedTx2, _ = types.SignTx(tx2, signer, privateKey)

			hashes = []common.Hash{signedTx1.Hash(), signedTx2.Hash()}

			txs = map[common.Hash]*types.Transaction{
				signedTx1.Hash(): signedTx1,
				signedTx2.Hash(): signedTx2,
			}
			receipts = map[common.Hash]*types.Receipt{
				signedTx1.Hash(): {
					Status:            types.ReceiptStatusSuccessful,
					BlockHash:         common.HexToHash("0xabc"),
					BlockNumber:       big.NewInt(100),
					TransactionIndex:  3,
					GasUsed:           21000,
					EffectiveGasPrice: big.NewInt(2),
				},
				signedTx2.Hash(): {
					Status:          types.ReceiptStatusFailed,
					BlockHash:       common.HexToHash("0xdef"),
					BlockNumber:     big.NewInt(101),
					ContractAddress: common.HexToAddress("0xd4"),
					GasUsed:         50000,
				},
			}
			failing = map[common.Hash]bool{}

			fakeClient.ChainIDReturns(chainID, nil)
			fakeClient.TransactionByHashStub = func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
				if failing[hash] {
					return nil, false, testErr
				}
				return txs[hash], false, nil
			}
			fakeClient.TransactionReceiptStub = func(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
				return receipts[hash], nil
			}
		})

		JustBeforeEach(func() {
			results, err = service.FetchTransactions(ctx, hashes)
		})

		When("all transactions are fetched successfully", func() {
			It("should return all transactions", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))

				Expect(fakeClient.ChainIDCallCount()).To(Equal(1))
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(2))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})

			It("should fill in the receipt fields", func() {
				tx := byHash(results, signedTx1.Hash())
				Expect(tx.From).To(Equal(sender))
				Expect(*tx.To).To(Equal(recipient))
				Expect(tx.CreatedContract).To(BeNil())
				Expect(tx.Input).To(Equal([]byte{0xa9, 0x05, 0x9c, 0xbb}))
				Expect(tx.Value.String()).To(Equal("7"))
				Expect(*tx.BlockNumber).To(Equal(uint64(100)))
				Expect(*tx.BlockHash).To(Equal(common.HexToHash("0xabc")))
				Expect(*tx.Index).To(Equal(uint64(3)))
				Expect(*tx.Status).To(Equal(types.ReceiptStatusSuccessful))
				Expect(tx.GasUsed.String()).To(Equal("21000"))
				Expect(tx.GasPrice.String()).To(Equal("2"))
				Expect(tx.Error).To(BeNil())
				Expect(tx.ToAddress.State()).To(Equal(chain.RefUnresolved))
			})

			It("should mark failed contract creations", func() {
				tx := byHash(results, signedTx2.Hash())
				Expect(tx.To).To(BeNil())
				Expect(*tx.CreatedContract).To(Equal(common.HexToAddress("0xd4")))
				Expect(tx.GasPrice.String()).To(Equal("4"))
				Expect(*tx.Error).To(Equal("Reverted"))
			})
		})

		When("a transaction is still pending", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					return txs[hash], true, nil
				}
			})

			It("should not ask for receipts", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Pending()).To(BeTrue())
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(0))
			})
		})

		When("some transactions fail to fetch", func() {
			BeforeEach(func() {
				failing[signedTx1.Hash()] = true
			})

			It("should return partial results with error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("fetching transaction %q: %s", hashes[0].Hex(), testErr.Error())))
				Expect(results).To(HaveLen(1))
				Expect(results[0].Hash).To(Equal(signedTx2.Hash()))
			})
		})

		When("the chain id is unavailable", func() {
			BeforeEach(func() {
				fakeClient.ChainIDReturns(nil, testErr)
			})

			It("should fail before fetching", func() {
				Expect(err).To(MatchError(testErr))
				Expect(results).To(BeEmpty())
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(0))
			})
		})

		When("no hashes are given", func() {
			BeforeEach(func() {
				hashes = nil
			})

			It("should do nothing", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.ChainIDCallCount()).To(Equal(0))
			})
		})

		When("context is cancelled", func() {
			BeforeEach(func() {
				var cancel context.CancelFunc
				ctx, cancel = context.WithCancel(ctx)
				cancel()

				fakeClient.TransactionByHashStub = func(ctx context.Context, hash common.Hash) (*types.Transaction, bool, error) {
					select {
					case <-ctx.Done():
						return nil, false, ctx.Err()
					case <-time.After(100 * time.Millisecond):
						return txs[hash], false, nil
					}
				}
			})

			It("should return context cancelled error", func() {
				Expect(err).To(MatchError(context.Canceled))
			})
		})
	})
})
