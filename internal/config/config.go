package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey   = "API_PORT"
	ethNodeEnvKey   = "ETH_NODE_URL"
	dbConnEnvKey    = "DB_CONNECTION_URL"
	jwtSecretEnvKey = "JWT_SECRET"

	tuningPrefix = "TXLENS"
)

type App struct {
	Port            string
	NodeURL         string
	DBConnectionURL string
	JWTSecret       string
	Tuning          Tuning
}

// Tuning holds the optional settings, read from TXLENS_ prefixed variables.
type Tuning struct {
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	DBReplicaURL string `envconfig:"DB_REPLICA_URL"`

	DecodeNotAContractCalls bool `envconfig:"DECODE_NOT_A_CONTRACT_CALLS"`
	CandidatesLimit         int  `envconfig:"CANDIDATES_LIMIT" default:"10"`

	SigProviderEnabled bool          `envconfig:"SIG_PROVIDER_ENABLED"`
	SigProviderURL     string        `envconfig:"SIG_PROVIDER_URL"`
	FourByteURL        string        `envconfig:"FOUR_BYTE_URL" default:"https://www.4byte.directory"`
	SigLookupRate      int           `envconfig:"SIG_LOOKUP_RATE" default:"5"`
	SigCacheMB         int           `envconfig:"SIG_CACHE_MB" default:"16"`
	SigCacheTTL        time.Duration `envconfig:"SIG_CACHE_TTL" default:"1h"`

	FeedTimeout     time.Duration `envconfig:"FEED_TIMEOUT" default:"20s"`
	FeedMaxPageSize int           `envconfig:"FEED_MAX_PAGE_SIZE" default:"100"`
	RewardsEnabled  bool          `envconfig:"REWARDS_ENABLED" default:"true"`
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(ethNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, ethNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	var tuning Tuning
	if err := envconfig.Process(tuningPrefix, &tuning); err != nil {
		return App{}, fmt.Errorf("process %s settings: %w", tuningPrefix, err)
	}

	return App{
		Port:            port,
		NodeURL:         nodeURL,
		DBConnectionURL: dbConn,
		JWTSecret:       jwtSecret,
		Tuning:          tuning,
	}, nil
}
