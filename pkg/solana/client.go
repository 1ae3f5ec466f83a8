package solana

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/walletscope/walletscope/pkg/cache"
	"github.com/walletscope/walletscope/pkg/errors"
	"github.com/walletscope/walletscope/pkg/httputil"
	"github.com/walletscope/walletscope/pkg/model"
	"github.com/walletscope/walletscope/pkg/observability"
)

const (
	// DefaultEndpoint is the public mainnet RPC endpoint.
	DefaultEndpoint = "https://api.mainnet-beta.solana.com"

	// DefaultLimit is the number of signatures fetched when the caller
	// does not specify one. The RPC API caps a single page at 1000.
	DefaultLimit = 100

	// LamportsPerSOL converts the integer lamport amounts on the wire to SOL.
	LamportsPerSOL = 1_000_000_000

	httpTimeout  = 15 * time.Second
	maxAttempts  = 3
	retryDelay   = 500 * time.Millisecond
	maxPageLimit = 1000
)

// Client fetches transfer history from a Solana JSON-RPC endpoint.
//
// Transaction responses are cached through the configured backend; confirmed
// transactions never change, so by default cached entries are stored without
// expiration. All methods are safe for concurrent use.
type Client struct {
	http     *http.Client
	endpoint string
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewClient creates a Client for the given RPC endpoint. An empty endpoint
// selects [DefaultEndpoint]. Pass cache.NewNullCache() to disable caching.
func NewClient(endpoint string, backend cache.Cache) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if backend == nil {
		backend = cache.NewNullCache()
	}
	return &Client{
		http:     &http.Client{Timeout: httpTimeout},
		endpoint: endpoint,
		cache:    backend,
	}
}

// WithCacheTTL sets the expiry applied when caching transaction responses.
// Zero, the default, keeps entries forever; a positive ttl bounds cache
// growth at the cost of refetching old transactions.
func (c *Client) WithCacheTTL(ttl time.Duration) *Client {
	c.cacheTTL = ttl
	return c
}

// FetchTransfers returns the SOL transfer records found in the wallet's most
// recent confirmed transactions, newest first.
//
// Signatures whose transaction cannot be fetched or parsed are skipped;
// a wallet with no confirmed signatures yields an empty slice, not an error.
// Returns an INVALID_ADDRESS error before any network call when the address
// is malformed.
func (c *Client) FetchTransfers(ctx context.Context, wallet string, limit int) ([]model.TransferRecord, error) {
	if err := ValidateAddress(wallet); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	start := time.Now()
	observability.Fetch().OnFetchStart(ctx, wallet, limit)

	sigs, err := c.Signatures(ctx, wallet, limit)
	if err != nil {
		observability.Fetch().OnFetchComplete(ctx, wallet, 0, 0, time.Since(start), err)
		return nil, err
	}

	records := make([]model.TransferRecord, 0, len(sigs))
	skipped := 0
	for _, sig := range sigs {
		if sig.Err != nil {
			skipped++
			continue
		}
		tx, err := c.Transaction(ctx, sig.Signature)
		if err != nil {
			if ctx.Err() != nil {
				observability.Fetch().OnFetchComplete(ctx, wallet, len(records), skipped, time.Since(start), ctx.Err())
				return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "fetch cancelled after %d transactions", len(records))
			}
			skipped++
			continue
		}
		records = append(records, tx.Transfers()...)
	}

	observability.Fetch().OnFetchComplete(ctx, wallet, len(records), skipped, time.Since(start), nil)
	return records, nil
}

// Signatures returns up to limit confirmed signatures for the wallet,
// newest first. Failed transactions are included with Err set; callers
// decide whether to skip them.
func (c *Client) Signatures(ctx context.Context, wallet string, limit int) ([]SignatureInfo, error) {
	var sigs []SignatureInfo
	params := []any{wallet, map[string]any{"limit": limit}}
	if err := c.call(ctx, "getSignaturesForAddress", params, &sigs); err != nil {
		return nil, err
	}
	return sigs, nil
}

// Transaction fetches a single confirmed transaction with jsonParsed
// encoding, consulting the cache first.
func (c *Client) Transaction(ctx context.Context, signature string) (*TransactionDetail, error) {
	key := cache.Key("solana:tx", c.endpoint, signature)

	if data, ok, _ := c.cache.Get(ctx, key); ok {
		observability.Cache().OnCacheHit(ctx, "transaction")
		var detail TransactionDetail
		if err := json.Unmarshal(data, &detail); err == nil {
			return &detail, nil
		}
		// Corrupt entry, refetch below.
		_ = c.cache.Delete(ctx, key)
	} else {
		observability.Cache().OnCacheMiss(ctx, "transaction")
	}

	var detail TransactionDetail
	params := []any{signature, map[string]any{
		"encoding":                       "jsonParsed",
		"maxSupportedTransactionVersion": 0,
	}}
	if err := c.call(ctx, "getTransaction", params, &detail); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(&detail); err == nil {
		observability.Cache().OnCacheSet(ctx, "transaction", len(data))
		_ = c.cache.Set(ctx, key, data, c.cacheTTL)
	}
	return &detail, nil
}

// call performs one JSON-RPC request with retries and decodes the result
// field into v. A null result leaves v untouched.
func (c *Client) call(ctx context.Context, method string, params []any, v any) error {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encoding %s request", method)
	}

	var env rpcResponse
	err = httputil.Retry(ctx, maxAttempts, retryDelay, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "%s request failed", method)}
		}
		defer resp.Body.Close()

		if err := httputil.CheckStatus(resp.StatusCode); err != nil {
			return err
		}

		env = rpcResponse{}
		if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
			return &httputil.RetryableError{Err: errors.Wrap(errors.ErrCodeNetwork, err, "decoding %s response", method)}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if env.Error != nil {
		return errors.New(errors.ErrCodeNetwork, "rpc %s: %s (code %d)", method, env.Error.Message, env.Error.Code)
	}
	if len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, v); err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "decoding %s result", method)
	}
	return nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
