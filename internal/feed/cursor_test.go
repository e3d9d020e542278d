package feed_test

import (
	"math/big"

	"txlens/internal/chain"
	"txlens/internal/feed"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cursor", func() {
	var txs []chain.Transaction

	BeforeEach(func() {
		txs, _ = fixture()
	})

	Describe("CursorAt", func() {
		It("should position mined transactions by block and index", func() {
			c := feed.CursorAt(feed.Item{Transaction: &txs[1]}, feed.Sort{})
			Expect(c.Kind).To(Equal(feed.CursorTransaction))
			Expect(c.BlockNumber).To(Equal(uint64(10)))
			Expect(c.Index).To(Equal(uint64(1)))
			Expect(c.Hash).To(Equal(txs[1].Hash))
			Expect(c.Time()).To(BeTemporally("==", minedAt))
			Expect(c.SortValue).To(BeNil())
		})

		It("should position pending transactions by insertion time", func() {
			tx := txSpec{hash: "0x0a", from: owner}.build()
			c := feed.CursorAt(feed.Item{Transaction: &tx}, feed.Sort{})
			Expect(c.Kind).To(Equal(feed.CursorPending))
			Expect(c.Block()).To(BeNil())
		})

		It("should position rewards by block and type", func() {
			reward := chain.RewardEntry{BlockNumber: 7, BlockHash: common.HexToHash("0xb7"), AddressType: chain.RewardUncle}
			c := feed.CursorAt(feed.Item{Reward: &reward}, feed.Sort{})
			Expect(c.Kind).To(Equal(feed.CursorReward))
			Expect(*c.Block()).To(Equal(uint64(7)))
			Expect(c.RewardType).To(Equal("uncle"))
		})

		It("should carry the fee for fee sorts", func() {
			c := feed.CursorAt(feed.Item{Transaction: &txs[0]}, feed.Sort{Key: feed.SortFee})
			Expect(c.SortKey).To(Equal(feed.SortFee))
			Expect(c.SortValue).To(Equal(big.NewInt(200)))
			Expect(c.SortNull).To(BeFalse())
		})

		It("should flag a missing fee", func() {
			c := feed.CursorAt(feed.Item{Transaction: &txs[3]}, feed.Sort{Key: feed.SortFee})
			Expect(c.SortValue).To(BeNil())
			Expect(c.SortNull).To(BeTrue())
		})
	})

	Describe("Encode and DecodeCursor", func() {
		It("should restore every field", func() {
			c := feed.CursorAt(feed.Item{Transaction: &txs[2]}, feed.Sort{Key: feed.SortValue})
			encoded, err := c.Encode()
			Expect(err).NotTo(HaveOccurred())
			Expect(encoded).To(HavePrefix("0x"))

			decoded, err := feed.DecodeCursor(encoded)
			Expect(err).NotTo(HaveOccurred())
			Expect(decoded.Kind).To(Equal(c.Kind))
			Expect(decoded.SortKey).To(Equal(feed.SortValue))
			Expect(decoded.BlockNumber).To(Equal(uint64(9)))
			Expect(decoded.Index).To(Equal(uint64(3)))
			Expect(decoded.InsertedAt).To(Equal(c.InsertedAt))
			Expect(decoded.Hash).To(Equal(txs[2].Hash))
			Expect(decoded.SortValue).To(Equal(big.NewInt(7)))
		})

		It("should reject garbage", func() {
			_, err := feed.DecodeCursor("not-a-cursor")
			Expect(err).To(MatchError(feed.ErrInvalidCursor))

			_, err = feed.DecodeCursor("0xdeadbeef")
			Expect(err).To(MatchError(feed.ErrInvalidCursor))
		})

		It("should refuse to encode an unknown kind", func() {
			_, err := feed.Cursor{}.Encode()
			Expect(err).To(MatchError(feed.ErrInvalidCursor))
		})
	})
})

var _ = Describe("Options", func() {
	It("should parse directions", func() {
		d, err := feed.ParseDirection("to")
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(Equal(feed.DirectionTo))

		d, err = feed.ParseDirection("")
		Expect(err).NotTo(HaveOccurred())
		Expect(d).To(Equal(feed.DirectionAny))

		_, err = feed.ParseDirection("sideways")
		Expect(err).To(MatchError(feed.ErrInvalidOptions))
	})

	It("should parse sorts", func() {
		s, err := feed.ParseSort("fee", "asc")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(feed.Sort{Key: feed.SortFee, Order: feed.OrderAsc}))

		s, err = feed.ParseSort("value", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(Equal(feed.Sort{Key: feed.SortValue, Order: feed.OrderDesc}))

		_, err = feed.ParseSort("", "asc")
		Expect(err).To(MatchError(feed.ErrInvalidOptions))

		_, err = feed.ParseSort("gas", "asc")
		Expect(err).To(MatchError(feed.ErrInvalidOptions))
	})
})
