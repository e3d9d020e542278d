package signature

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"txlens/internal/metrics"

	"github.com/coocood/freecache"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	sourceProvider = "sig_provider"
	sourceFourByte = "4byte"

	providerPath = "/api/v1/abi/function"
	fourBytePath = "/api/v1/signatures/"
)

var errUnexpectedStatus = errors.New("unexpected response status")

type Config struct {
	ProviderURL    string
	FourByteURL    string
	Enabled        bool
	RatePerSecond  int
	CacheSizeBytes int
	CacheTTL       time.Duration
	RequestTimeout time.Duration
}

// Client resolves method selectors to candidate functions using external signature databases.
type Client struct {
	logs    *zap.SugaredLogger
	cfg     Config
	http    *http.Client
	limiter ratelimit.Limiter
	cache   *freecache.Cache
	metrics *metrics.SignatureLookup
}

func NewClient(logger *zap.SugaredLogger, cfg Config) *Client {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RatePerSecond > 0 {
		limiter = ratelimit.New(cfg.RatePerSecond)
	}

	var cache *freecache.Cache
	if cfg.CacheSizeBytes > 0 {
		cache = freecache.NewCache(cfg.CacheSizeBytes)
	}

	return &Client{
		logs:    logger,
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		limiter: limiter,
		cache:   cache,
		metrics: metrics.NewSignatureLookup(),
	}
}

func (c *Client) Enabled() bool {
	return c.cfg.Enabled && (c.cfg.ProviderURL != "" || c.cfg.FourByteURL != "")
}

// DecodeFunctionCall returns the candidate functions for the given calldata.
// The signature provider is asked first and 4byte.directory is the fallback.
// An empty result with a nil error means no source knows the selector.
func (c *Client) DecodeFunctionCall(ctx context.Context, calldata []byte) ([]Function, error) {
	if len(calldata) < 4 {
		return nil, nil
	}

	var lookupErr error

	if c.cfg.ProviderURL != "" {
		key := "p:" + hexutil.Encode(crypto.Keccak256(calldata))
		funcs, err := c.cached(key, func() ([]Function, error) {
			return c.lookupProvider(ctx, calldata)
		})
		if err != nil {
			lookupErr = err
			c.logs.Warnw("signature provider lookup failed",
				"selector", hexutil.Encode(calldata[:4]),
				"error", err)
		}
		if len(funcs) > 0 {
			return funcs, nil
		}
	}

	if c.cfg.FourByteURL != "" {
		key := "4:" + hexutil.Encode(calldata[:4])
		funcs, err := c.cached(key, func() ([]Function, error) {
			return c.lookupFourByte(ctx, calldata[:4])
		})
		if err != nil {
			lookupErr = errors.Join(lookupErr, err)
			c.logs.Warnw("4byte lookup failed",
				"selector", hexutil.Encode(calldata[:4]),
				"error", err)
		}
		if len(funcs) > 0 {
			return funcs, nil
		}
	}

	return nil, lookupErr
}

func (c *Client) cached(key string, fetch func() ([]Function, error)) ([]Function, error) {
	if c.cache != nil {
		if data, err := c.cache.Get([]byte(key)); err == nil {
			var funcs []Function
			if err := json.Unmarshal(data, &funcs); err == nil {
				c.metrics.ObserveCache(true)
				return funcs, nil
			}
		}
		c.metrics.ObserveCache(false)
	}

	funcs, err := fetch()
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		data, err := json.Marshal(funcs)
		if err == nil {
			// negative results are cached as well
			if err := c.cache.Set([]byte(key), data, int(c.cfg.CacheTTL.Seconds())); err != nil {
				c.logs.Debugw("signature cache set failed", "key", key, "error", err)
			}
		}
	}

	return funcs, nil
}

func (c *Client) lookupProvider(ctx context.Context, calldata []byte) ([]Function, error) {
	query := url.Values{}
	query.Set("txInput", hexutil.Encode(calldata))
	endpoint := strings.TrimRight(c.cfg.ProviderURL, "/") + providerPath + "?" + query.Encode()

	var funcs []Function
	err := c.getJSON(ctx, endpoint, &funcs)
	c.metrics.ObserveLookup(sourceProvider, err)
	if err != nil {
		return nil, fmt.Errorf("signature provider: %w", err)
	}

	valid := make([]Function, 0, len(funcs))
	for _, fn := range funcs {
		if fn.Name == "" {
			continue
		}
		valid = append(valid, fn)
	}

	return valid, nil
}

type fourByteResponse struct {
	Count   int `json:"count"`
	Results []struct {
		ID            int    `json:"id"`
		TextSignature string `json:"text_signature"`
	} `json:"results"`
}

func (c *Client) lookupFourByte(ctx context.Context, selector []byte) ([]Function, error) {
	query := url.Values{}
	query.Set("format", "json")
	query.Set("hex_signature", hexutil.Encode(selector))
	endpoint := strings.TrimRight(c.cfg.FourByteURL, "/") + fourBytePath + "?" + query.Encode()

	var resp fourByteResponse
	err := c.getJSON(ctx, endpoint, &resp)
	c.metrics.ObserveLookup(sourceFourByte, err)
	if err != nil {
		return nil, fmt.Errorf("4byte: %w", err)
	}

	funcs := make([]Function, 0, len(resp.Results))
	for _, res := range resp.Results {
		fn, err := ParseTextSignature(res.TextSignature)
		if err != nil {
			c.logs.Debugw("skipping unparsable 4byte signature",
				"signature", res.TextSignature,
				"error", err)
			continue
		}
		funcs = append(funcs, fn)
	}

	return funcs, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	c.limiter.Take()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", errUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
