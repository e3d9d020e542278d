package payload_test

import (
	"net/http/httptest"
	"net/url"
	"strings"

	"txlens/internal/feed"
	"txlens/internal/http/payload"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	txHash  = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
	address = "0x00000000000000000000000000000000000000a1"
)

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	It("should decode and validate a payload", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"pass"}`))

		var auth payload.AuthRequest
		Expect(dv.DecodeJSONPayload(req, &auth)).To(Succeed())
		Expect(auth.ToMessage().Username).To(Equal("alice"))
	})

	It("should reject unknown fields", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice","password":"pass","admin":true}`))

		var auth payload.AuthRequest
		Expect(dv.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("should reject invalid payloads", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"username":"alice"}`))

		var auth payload.AuthRequest
		Expect(dv.DecodeJSONPayload(req, &auth)).To(MatchError(ContainSubstring("validating payload")))
	})
})

var _ = Describe("TransactionsRequest", func() {
	It("should accept full length hashes", func() {
		req := payload.TransactionsRequest{Transactions: []string{txHash}}
		Expect(req.Validate()).To(Succeed())
		Expect(req.Hashes()).To(Equal([]common.Hash{common.HexToHash(txHash)}))
	})

	It("should reject malformed hashes", func() {
		req := payload.TransactionsRequest{Transactions: []string{"0x1"}}
		Expect(req.Validate()).NotTo(Succeed())
	})

	It("should require at least one hash", func() {
		Expect(payload.TransactionsRequest{}.Validate()).NotTo(Succeed())
	})

	It("should validate path hashes", func() {
		Expect(payload.TransactionHashParam{Hash: txHash}.Validate()).To(Succeed())
		Expect(payload.TransactionHashParam{Hash: "nope"}.Validate()).NotTo(Succeed())
	})
})

var _ = Describe("AddressFeedRequest", func() {
	var query url.Values

	BeforeEach(func() {
		query = url.Values{}
	})

	It("should default to the full mined feed", func() {
		req := payload.NewAddressFeedRequest(address, query)
		Expect(req.Validate()).To(Succeed())

		addr, opts, err := req.ToOptions()
		Expect(err).NotTo(HaveOccurred())
		Expect(addr).To(Equal(common.HexToAddress(address)))
		Expect(opts.Direction).To(Equal(feed.DirectionAny))
		Expect(opts.Sort).To(Equal(feed.Sort{}))
		Expect(opts.Pending).To(BeFalse())
		Expect(opts.After).To(BeNil())
		Expect(opts.UseReplica).To(BeTrue())
	})

	It("should parse every option", func() {
		cursor, err := (&feed.Cursor{Kind: feed.CursorPending, SortKey: feed.SortFee, SortNull: true}).Encode()
		Expect(err).NotTo(HaveOccurred())

		query.Set("filter", "to")
		query.Set("sort", "fee")
		query.Set("order", "asc")
		query.Set("page_size", "20")
		query.Set("pending", "true")
		query.Set("cursor", cursor)
		query.Set("block_from", "5")
		query.Set("block_to", "9")

		req := payload.NewAddressFeedRequest(address, query)
		Expect(req.Validate()).To(Succeed())

		_, opts, err := req.ToOptions()
		Expect(err).NotTo(HaveOccurred())
		Expect(opts.Direction).To(Equal(feed.DirectionTo))
		Expect(opts.Sort).To(Equal(feed.Sort{Key: feed.SortFee, Order: feed.OrderAsc}))
		Expect(opts.PageSize).To(Equal(20))
		Expect(opts.Pending).To(BeTrue())
		Expect(opts.After.SortNull).To(BeTrue())
		Expect(*opts.Range.From).To(Equal(uint64(5)))
		Expect(*opts.Range.To).To(Equal(uint64(9)))
	})

	It("should reject unknown values", func() {
		query.Set("filter", "sideways")
		Expect(payload.NewAddressFeedRequest(address, query).Validate()).NotTo(Succeed())
	})

	It("should reject malformed addresses", func() {
		Expect(payload.NewAddressFeedRequest("0xabc", query).Validate()).NotTo(Succeed())
	})

	It("should reject an order without a sort key", func() {
		query.Set("order", "asc")
		req := payload.NewAddressFeedRequest(address, query)
		Expect(req.Validate()).To(Succeed())

		_, _, err := req.ToOptions()
		Expect(err).To(MatchError(feed.ErrInvalidOptions))
	})

	It("should reject an inverted block range", func() {
		query.Set("block_from", "9")
		query.Set("block_to", "5")

		_, _, err := payload.NewAddressFeedRequest(address, query).ToOptions()
		Expect(err).To(MatchError(feed.ErrInvalidOptions))
	})

	It("should reject undecodable cursors", func() {
		query.Set("cursor", "0xdeadbeef")
		req := payload.NewAddressFeedRequest(address, query)
		Expect(req.Validate()).To(Succeed())

		_, _, err := req.ToOptions()
		Expect(err).To(MatchError(feed.ErrInvalidCursor))
	})
})
