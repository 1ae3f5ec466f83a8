package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walletscope/walletscope/pkg/session"
)

// newRecentCmd creates the recent command.
func newRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently viewed wallets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := session.NewHistory("")
			if err != nil {
				return err
			}
			entries, err := history.Recent()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("No recent wallets")
				printNextStep("View one", "walletscope view <wallet>")
				return nil
			}

			for _, e := range entries {
				fmt.Println(StyleValue.Render(e.Wallet) + "  " +
					StyleDim.Render(fmt.Sprintf("%d transfers · %s", e.Transfers, formatRelativeTime(e.ViewedAt))))
			}
			return nil
		},
	}

	cmd.AddCommand(newRecentClearCmd())
	return cmd
}

func newRecentClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget all recently viewed wallets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := session.NewHistory("")
			if err != nil {
				return err
			}
			if err := history.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared wallet history")
			return nil
		},
	}
}
