package cli

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/walletscope/walletscope/internal/config"
	"github.com/walletscope/walletscope/pkg/cache"
	"github.com/walletscope/walletscope/pkg/model"
	"github.com/walletscope/walletscope/pkg/observability"
	"github.com/walletscope/walletscope/pkg/solana"
	"github.com/walletscope/walletscope/pkg/store"
)

// loadConfig reads the config file named by --config, falling back to the
// default path and built-in defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(configPathFromContext(cmd.Context()))
}

// newBackend selects the cache backend: Redis when configured, the file
// cache otherwise, and the null cache when caching is disabled.
func newBackend(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.RedisAddr != "" {
		return cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
	}
	return cache.NewFileCache(cfg.Cache.Dir)
}

// fetchRecords downloads the wallet's transfer history with a spinner.
func fetchRecords(ctx context.Context, cfg config.Config, backend cache.Cache, wallet string, limit int) ([]model.TransferRecord, error) {
	if limit <= 0 {
		limit = cfg.RPC.Limit
	}
	client := solana.NewClient(cfg.RPC.Endpoint, backend).WithCacheTTL(cfg.Cache.Duration())

	spinner := newSpinnerWithContext(ctx, "Fetching transfer history...")
	spinner.Start()
	records, err := client.FetchTransfers(ctx, wallet, limit)
	spinner.Stop()
	return records, err
}

// resolveRecords returns the wallet and its transfer records for arg, which
// is either a wallet address or a batch file written by fetch --output.
func resolveRecords(cmd *cobra.Command, cfg config.Config, arg string, limit int, noCache bool) (string, []model.TransferRecord, error) {
	if strings.HasSuffix(arg, ".json") {
		batch, err := store.ReadBatchFile(arg)
		if err != nil {
			return "", nil, err
		}
		return batch.Wallet, batch.Records, nil
	}

	if err := solana.ValidateAddress(arg); err != nil {
		return "", nil, err
	}

	backend, err := newBackend(cmd.Context(), cfg, noCache)
	if err != nil {
		return "", nil, err
	}
	defer backend.Close()

	records, err := fetchRecords(cmd.Context(), cfg, backend, arg, limit)
	return arg, records, err
}

// registerHooks routes fetch, layout, and cache events to the CLI logger at
// debug level, so --verbose shows what the lower layers are doing.
func registerHooks(logger *log.Logger) {
	observability.SetFetchHooks(&logFetchHooks{logger: logger})
	observability.SetLayoutHooks(&logLayoutHooks{logger: logger})
	observability.SetCacheHooks(&logCacheHooks{logger: logger})
}

type logFetchHooks struct{ logger *log.Logger }

func (h *logFetchHooks) OnFetchStart(_ context.Context, wallet string, limit int) {
	h.logger.Debug("fetch start", "wallet", model.TruncateKey(wallet, 10), "limit", limit)
}

func (h *logFetchHooks) OnFetchComplete(_ context.Context, wallet string, records, skipped int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("fetch failed", "wallet", model.TruncateKey(wallet, 10), "err", err)
		return
	}
	h.logger.Debug("fetch complete",
		"wallet", model.TruncateKey(wallet, 10),
		"records", records,
		"skipped", skipped,
		"took", d.Round(time.Millisecond),
	)
}

type logLayoutHooks struct{ logger *log.Logger }

func (h *logLayoutHooks) OnLayoutStart(nodeCount, edgeCount int) {
	h.logger.Debug("layout start", "nodes", nodeCount, "edges", edgeCount)
}

func (h *logLayoutHooks) OnLayoutComplete(d time.Duration) {
	h.logger.Debug("layout complete", "took", d.Round(time.Millisecond))
}

type logCacheHooks struct{ logger *log.Logger }

func (h *logCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}
func (h *logCacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
