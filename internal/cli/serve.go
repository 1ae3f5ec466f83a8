package cli

import (
	"github.com/spf13/cobra"

	"github.com/walletscope/walletscope/internal/server"
	"github.com/walletscope/walletscope/pkg/solana"
)

// newServeCmd creates the serve command.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve transfer graphs over HTTP",
		Long: `Serve starts an HTTP server exposing the viewer's data. GET /?wallet=
renders the interactive page, /api/graph and /api/score return JSON, and
/healthz reports liveness.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			backend, err := newBackend(cmd.Context(), cfg, noCache)
			if err != nil {
				return err
			}
			defer backend.Close()

			srv := server.New(server.Options{
				Fetcher: solana.NewClient(cfg.RPC.Endpoint, backend).WithCacheTTL(cfg.Cache.Duration()),
				Limit:   cfg.RPC.Limit,
				Layout:  layoutOptions(cfg),
				Logger:  logger,
			})

			printInfo("Serving on http://%s", addr)
			printNextStep("Try it", "curl 'http://"+addr+"/healthz'")
			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the RPC response cache")

	return cmd
}
