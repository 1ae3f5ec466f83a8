package solana

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletscope/walletscope/pkg/cache"
	"github.com/walletscope/walletscope/pkg/errors"
)

const testWallet = "4Nd1m5Wg7qW9vPq2kzjW3x8H6T2cVb1sJd9yQh5rKp8L"

// rpcHandler dispatches by JSON-RPC method name and serves canned results.
func rpcHandler(t *testing.T, results map[string]any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		result, ok := results[req.Method]
		if !ok {
			t.Errorf("unexpected rpc method %q", req.Method)
			http.Error(w, "unknown method", http.StatusBadRequest)
			return
		}
		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": result}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func transferTx(blockTime int64, source, destination string, lamports uint64) map[string]any {
	return map[string]any{
		"blockTime": blockTime,
		"slot":      12345,
		"transaction": map[string]any{
			"message": map[string]any{
				"instructions": []any{
					map[string]any{
						"program": "system",
						"parsed": map[string]any{
							"type": "transfer",
							"info": map[string]any{
								"source":      source,
								"destination": destination,
								"lamports":    lamports,
							},
						},
					},
				},
			},
		},
		"meta": map[string]any{"err": nil},
	}
}

func TestFetchTransfers(t *testing.T) {
	server := httptest.NewServer(rpcHandler(t, map[string]any{
		"getSignaturesForAddress": []any{
			map[string]any{"signature": "sig1", "slot": 100},
			map[string]any{"signature": "sig2", "slot": 101},
		},
		// Both signatures resolve to the same canned transaction.
		"getTransaction": transferTx(1735689600, testWallet, "recipient1111111111111111111111111", 2_500_000_000),
	}))
	defer server.Close()

	c := NewClient(server.URL, cache.NewNullCache())

	records, err := c.FetchTransfers(context.Background(), testWallet, 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, testWallet, records[0].Sender)
	assert.Equal(t, "recipient1111111111111111111111111", records[0].Recipient)
	assert.Equal(t, "2.5000 SOL 2025-01-01 00:00", records[0].Label)
}

func TestFetchTransfersEmptyHistory(t *testing.T) {
	server := httptest.NewServer(rpcHandler(t, map[string]any{
		"getSignaturesForAddress": []any{},
	}))
	defer server.Close()

	c := NewClient(server.URL, cache.NewNullCache())

	records, err := c.FetchTransfers(context.Background(), testWallet, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchTransfersSkipsFailedSignatures(t *testing.T) {
	server := httptest.NewServer(rpcHandler(t, map[string]any{
		"getSignaturesForAddress": []any{
			map[string]any{"signature": "bad", "slot": 100, "err": map[string]any{"InstructionError": []any{0, "Custom"}}},
			map[string]any{"signature": "good", "slot": 101},
		},
		"getTransaction": transferTx(1735689600, testWallet, "recipient1111111111111111111111111", 1_000_000_000),
	}))
	defer server.Close()

	c := NewClient(server.URL, cache.NewNullCache())

	records, err := c.FetchTransfers(context.Background(), testWallet, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFetchTransfersInvalidAddress(t *testing.T) {
	c := NewClient("http://unreachable.invalid", cache.NewNullCache())

	_, err := c.FetchTransfers(context.Background(), "not-an-address", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidAddress))
}

func TestFetchTransfersRPCError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"error":   map[string]any{"code": -32602, "message": "Invalid param"},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, cache.NewNullCache())

	_, err := c.FetchTransfers(context.Background(), testWallet, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeNetwork))
}

func TestTransactionUsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		resp := map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"result":  transferTx(1735689600, testWallet, "recipient1111111111111111111111111", 1_000_000_000),
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	c := NewClient(server.URL, backend)

	ctx := context.Background()
	_, err = c.Transaction(ctx, "sig1")
	require.NoError(t, err)
	_, err = c.Transaction(ctx, "sig1")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second lookup should be served from cache")
}

// ttlRecordingCache wraps a real backend and remembers the ttl of each Set.
type ttlRecordingCache struct {
	cache.Cache
	ttls []time.Duration
}

func (c *ttlRecordingCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.ttls = append(c.ttls, ttl)
	return c.Cache.Set(ctx, key, data, ttl)
}

func TestTransactionCacheTTL(t *testing.T) {
	server := httptest.NewServer(rpcHandler(t, map[string]any{
		"getTransaction": transferTx(1735689600, testWallet, "recipient1111111111111111111111111", 1_000_000_000),
	}))
	defer server.Close()

	t.Run("DefaultNeverExpires", func(t *testing.T) {
		backend := &ttlRecordingCache{Cache: cache.NewNullCache()}
		c := NewClient(server.URL, backend)

		_, err := c.Transaction(context.Background(), "sig1")
		require.NoError(t, err)
		require.Len(t, backend.ttls, 1)
		assert.Equal(t, time.Duration(0), backend.ttls[0])
	})

	t.Run("ConfiguredTTLReachesBackend", func(t *testing.T) {
		backend := &ttlRecordingCache{Cache: cache.NewNullCache()}
		c := NewClient(server.URL, backend).WithCacheTTL(24 * time.Hour)

		_, err := c.Transaction(context.Background(), "sig1")
		require.NoError(t, err)
		require.Len(t, backend.ttls, 1)
		assert.Equal(t, 24*time.Hour, backend.ttls[0])
	})
}

func TestTransfersExtraction(t *testing.T) {
	mustDetail := func(t *testing.T, v map[string]any) *TransactionDetail {
		t.Helper()
		data, err := json.Marshal(v)
		require.NoError(t, err)
		var detail TransactionDetail
		require.NoError(t, json.Unmarshal(data, &detail))
		return &detail
	}

	t.Run("FailedTransactionYieldsNothing", func(t *testing.T) {
		tx := transferTx(1735689600, "a", "b", 100)
		tx["meta"] = map[string]any{"err": map[string]any{"InstructionError": []any{0, "Custom"}}}
		assert.Empty(t, mustDetail(t, tx).Transfers())
	})

	t.Run("NonSystemInstructionIgnored", func(t *testing.T) {
		tx := transferTx(1735689600, "a", "b", 100)
		tx["transaction"] = map[string]any{
			"message": map[string]any{
				"instructions": []any{
					map[string]any{"program": "spl-token", "parsed": map[string]any{"type": "transfer"}},
				},
			},
		}
		assert.Empty(t, mustDetail(t, tx).Transfers())
	})

	t.Run("NoBlockTimeOmitsTimestamp", func(t *testing.T) {
		tx := transferTx(0, "a", "b", 1_000_000_000)
		delete(tx, "blockTime")
		records := mustDetail(t, tx).Transfers()
		require.Len(t, records, 1)
		assert.Equal(t, "1.0000 SOL", records[0].Label)
	})
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		wantErr bool
	}{
		{"Valid", testWallet, false},
		{"TooShort", "abc", true},
		{"Empty", "", true},
		{"ForbiddenChars", "0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl0OIl", true},
		{"Punctuation", "4Nd1-5Wg7qW9vPq2kzjW3x8H6T2cVb1sJd9y", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.addr)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
