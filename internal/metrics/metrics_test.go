package metrics

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(collector prometheus.Collector, observe func()) float64 {
	before := testutil.ToFloat64(collector)
	observe()
	return testutil.ToFloat64(collector) - before
}

var _ = Describe("Metrics", func() {
	Describe("Decoder", func() {
		It("should label successful decodes as decoded", func() {
			m := NewDecoder()
			Expect(delta(decodeOutcomesTotal.WithLabelValues("decoded"), func() {
				m.ObserveOutcome("")
			})).To(Equal(1.0))
		})

		It("should label failures by kind", func() {
			m := NewDecoder()
			Expect(delta(decodeOutcomesTotal.WithLabelValues("contract_not_verified"), func() {
				m.ObserveOutcome("contract_not_verified")
			})).To(Equal(1.0))
		})

		It("should tolerate a nil receiver", func() {
			var m *Decoder
			Expect(func() { m.ObserveOutcome("decoded") }).NotTo(Panic())
		})
	})

	Describe("Feed", func() {
		It("should count branch errors", func() {
			m := NewFeed()
			Expect(delta(feedBranchTotal.WithLabelValues("to", "error"), func() {
				m.ObserveBranch("to", errors.New("boom"), time.Now())
			})).To(Equal(1.0))
		})
	})

	Describe("SignatureLookup", func() {
		It("should count lookups and cache results", func() {
			m := NewSignatureLookup()
			Expect(delta(signatureLookupsTotal.WithLabelValues("4byte", "success"), func() {
				m.ObserveLookup("4byte", nil)
			})).To(Equal(1.0))
			Expect(delta(signatureCacheTotal.WithLabelValues("hit"), func() {
				m.ObserveCache(true)
			})).To(Equal(1.0))
		})
	})
})
