package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walletscope/walletscope/pkg/solana"
	"github.com/walletscope/walletscope/pkg/store"
)

// newFetchCmd creates the fetch command.
func newFetchCmd() *cobra.Command {
	var (
		limit   int
		noCache bool
		archive bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "fetch <wallet>",
		Short: "Download a wallet's transfer history",
		Long: `Fetch downloads the wallet's most recent SOL transfers over JSON-RPC
and prints a summary. With --output the batch is written as JSON that
score and export accept in place of an address; with --archive it is
also stored in the configured MongoDB archive for offline use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			wallet := args[0]

			if err := solana.ValidateAddress(wallet); err != nil {
				return err
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			backend, err := newBackend(cmd.Context(), cfg, noCache)
			if err != nil {
				return err
			}
			defer backend.Close()

			prog := newProgress(logger)
			records, err := fetchRecords(cmd.Context(), cfg, backend, wallet, limit)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Fetched %d transfers", len(records)))

			printSuccess("Fetched %d transfers for %s", len(records), wallet)
			counterparties := make(map[string]struct{})
			for _, r := range records {
				counterparties[r.Sender] = struct{}{}
				counterparties[r.Recipient] = struct{}{}
			}
			printStats(len(counterparties), len(records), !noCache)

			if output != "" {
				if err := store.WriteBatchFile(output, wallet, records); err != nil {
					return err
				}
				printFile(output)
			}

			if archive {
				if cfg.Store.MongoURI == "" {
					return fmt.Errorf("--archive requires store.mongo_uri in the config")
				}
				arch, err := store.NewArchive(cmd.Context(), cfg.Store.MongoURI, cfg.Store.Database)
				if err != nil {
					return err
				}
				defer arch.Close(cmd.Context())

				if err := arch.Save(cmd.Context(), wallet, records); err != nil {
					return err
				}
				printSuccess("Archived batch to MongoDB")
			}

			printNextStep("Open the viewer", fmt.Sprintf("walletscope view %s", wallet))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "signatures to fetch (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the RPC response cache")
	cmd.Flags().BoolVar(&archive, "archive", false, "store the batch in the MongoDB archive")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the batch as JSON to this path")

	return cmd
}
