package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/walletscope/walletscope/pkg/score"
)

// newScoreCmd creates the score command.
func newScoreCmd() *cobra.Command {
	var (
		limit   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "score <wallet|batch.json>",
		Short: "Estimate a wallet's credit score",
		Long: `Score fetches the wallet's transfer history and prints the heuristic
credit score with its per-component breakdown. The estimate considers
activity, volume, counterparty diversity, and recency, and is always
within [0, 1000].

A batch file written by "fetch --output" can be given instead of an
address to score without network access.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			wallet, records, err := resolveRecords(cmd, cfg, args[0], limit, noCache)
			if err != nil {
				return err
			}

			b := score.Explain(records, time.Now())

			fmt.Println(StyleTitle.Render("Credit score"))
			printKeyValue("wallet", wallet)
			printKeyValue("score", StyleNumber.Render(fmt.Sprintf("%d / %d", b.Total, score.MaxScore)))
			printNewline()
			printKeyValue("activity", fmt.Sprintf("%d", b.Activity))
			printKeyValue("volume", fmt.Sprintf("%d", b.Volume))
			printKeyValue("diversity", fmt.Sprintf("%d", b.Diversity))
			printKeyValue("recency", fmt.Sprintf("%d", b.Recency))
			printNewline()
			printDetail("%d transfers scored, %d skipped", b.Parsed, b.Skipped)

			if b.Total < 400 {
				printWarning("Low score: little or stale transfer activity")
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "signatures to fetch (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the RPC response cache")

	return cmd
}
