package config_test

import (
	"os"
	"time"

	"txlens/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func setEnv(key, value string) {
	old, had := os.LookupEnv(key)
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(key, old)
		} else {
			os.Unsetenv(key)
		}
	})
}

func unsetEnv(key string) {
	old, had := os.LookupEnv(key)
	Expect(os.Unsetenv(key)).To(Succeed())
	DeferCleanup(func() {
		if had {
			os.Setenv(key, old)
		}
	})
}

var _ = Describe("NewApp", func() {
	BeforeEach(func() {
		setEnv("API_PORT", "8080")
		setEnv("ETH_NODE_URL", "http://node:8545")
		setEnv("DB_CONNECTION_URL", "postgres://txlens@db/txlens")
		setEnv("JWT_SECRET", "secret")
		for _, key := range []string{
			"TXLENS_FEED_TIMEOUT",
			"TXLENS_FEED_MAX_PAGE_SIZE",
			"TXLENS_CANDIDATES_LIMIT",
			"TXLENS_SIG_CACHE_TTL",
			"TXLENS_REWARDS_ENABLED",
			"TXLENS_DB_REPLICA_URL",
		} {
			unsetEnv(key)
		}
	})

	It("should load required values and defaults", func() {
		app, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Port).To(Equal("8080"))
		Expect(app.NodeURL).To(Equal("http://node:8545"))
		Expect(app.Tuning.FeedTimeout).To(Equal(20 * time.Second))
		Expect(app.Tuning.FeedMaxPageSize).To(Equal(100))
		Expect(app.Tuning.CandidatesLimit).To(Equal(10))
		Expect(app.Tuning.SigCacheTTL).To(Equal(time.Hour))
		Expect(app.Tuning.RewardsEnabled).To(BeTrue())
		Expect(app.Tuning.DBReplicaURL).To(BeEmpty())
	})

	It("should read prefixed overrides", func() {
		setEnv("TXLENS_FEED_TIMEOUT", "5s")
		setEnv("TXLENS_DB_REPLICA_URL", "postgres://replica/txlens")
		setEnv("TXLENS_REWARDS_ENABLED", "false")

		app, err := config.NewApp()
		Expect(err).NotTo(HaveOccurred())
		Expect(app.Tuning.FeedTimeout).To(Equal(5 * time.Second))
		Expect(app.Tuning.DBReplicaURL).To(Equal("postgres://replica/txlens"))
		Expect(app.Tuning.RewardsEnabled).To(BeFalse())
	})

	It("should fail on a missing required variable", func() {
		unsetEnv("JWT_SECRET")

		_, err := config.NewApp()
		Expect(err).To(MatchError(ContainSubstring("JWT_SECRET")))
	})

	It("should fail on malformed settings", func() {
		setEnv("TXLENS_FEED_TIMEOUT", "soon")

		_, err := config.NewApp()
		Expect(err).To(HaveOccurred())
	})
})
