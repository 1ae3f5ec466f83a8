package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/walletscope/walletscope/internal/app"
	"github.com/walletscope/walletscope/internal/config"
	"github.com/walletscope/walletscope/pkg/layout"
	"github.com/walletscope/walletscope/pkg/model"
	"github.com/walletscope/walletscope/pkg/session"
	"github.com/walletscope/walletscope/pkg/solana"
	"github.com/walletscope/walletscope/pkg/store"
)

// newViewCmd creates the view command, the default way to use walletscope.
func newViewCmd() *cobra.Command {
	var (
		limit   int
		noCache bool
		offline bool
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "view [wallet]",
		Short: "Open a wallet's transfer graph in the interactive viewer",
		Long: `View fetches the wallet's SOL transfer history and opens it as an
interactive force-directed graph. Drag to pan, scroll to zoom around the
cursor, click a wallet for its transactions, right-click to deselect, and
use the bottom-left button to toggle the credit score overlay.

With no wallet argument, a picker over recently viewed wallets opens.
With --offline the transfers come from the MongoDB archive written by
"fetch --archive" instead of the network.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			wallet := ""
			if len(args) == 1 {
				wallet = args[0]
			} else {
				wallet, err = pickRecentWallet()
				if err != nil {
					return err
				}
				if wallet == "" {
					printInfo("No wallet selected")
					return nil
				}
			}
			if err := solana.ValidateAddress(wallet); err != nil {
				return err
			}

			var records []model.TransferRecord
			prog := newProgress(logger)
			if offline {
				records, err = loadArchivedRecords(cmd.Context(), cfg, wallet)
				if err != nil {
					return err
				}
				prog.done(fmt.Sprintf("Loaded %d archived transfers", len(records)))
			} else {
				backend, err := newBackend(cmd.Context(), cfg, noCache)
				if err != nil {
					return err
				}
				defer backend.Close()

				records, err = fetchRecords(cmd.Context(), cfg, backend, wallet, limit)
				if err != nil {
					return err
				}
				prog.done(fmt.Sprintf("Fetched %d transfers", len(records)))
			}

			if history, err := session.NewHistory(""); err == nil {
				if _, err := history.Record(wallet, len(records)); err != nil {
					logger.Debug("recording history", "err", err)
				}
			}

			opts := layoutOptions(cfg)
			if cmd.Flags().Changed("seed") {
				opts.Seed = seed
			}

			return app.Run(app.Options{
				Wallet:   wallet,
				Records:  records,
				Width:    cfg.Window.Width,
				Height:   cfg.Window.Height,
				Layout:   opts,
				FontName: cfg.Font.Name,
				FontSize: cfg.Font.Size,
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "signatures to fetch (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the RPC response cache")
	cmd.Flags().BoolVar(&offline, "offline", false, "load transfers from the MongoDB archive")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "layout seed")

	return cmd
}

// loadArchivedRecords reads the wallet's last archived batch from MongoDB.
func loadArchivedRecords(ctx context.Context, cfg config.Config, wallet string) ([]model.TransferRecord, error) {
	if cfg.Store.MongoURI == "" {
		return nil, fmt.Errorf("--offline requires store.mongo_uri in the config")
	}

	arch, err := store.NewArchive(ctx, cfg.Store.MongoURI, cfg.Store.Database)
	if err != nil {
		return nil, err
	}
	defer arch.Close(ctx)

	batch, err := arch.Load(ctx, wallet)
	if err != nil {
		return nil, err
	}
	return batch.Records, nil
}

// layoutOptions translates the config's layout section.
func layoutOptions(cfg config.Config) layout.Options {
	return layout.Options{
		Seed:       cfg.Layout.Seed,
		Iterations: cfg.Layout.Iterations,
		Repulsion:  cfg.Layout.Repulsion,
	}
}

// pickRecentWallet opens the interactive picker over the wallet history.
// Returns "" when the user quits without choosing.
func pickRecentWallet() (string, error) {
	history, err := session.NewHistory("")
	if err != nil {
		return "", err
	}
	entries, err := history.Recent()
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no recent wallets; pass a wallet address")
	}

	m := NewWalletListModel(entries)
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}

	final, ok := result.(WalletListModel)
	if !ok || final.Selected == nil {
		return "", nil
	}
	return final.Selected.Wallet, nil
}
