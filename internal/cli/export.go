package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walletscope/walletscope/pkg/export"
	"github.com/walletscope/walletscope/pkg/layout"
	"github.com/walletscope/walletscope/pkg/model"
	"github.com/walletscope/walletscope/pkg/score"
)

// Supported export formats.
var exportFormats = []string{"json", "dot", "svg", "png", "html"}

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var (
		limit    int
		noCache  bool
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "export <wallet|batch.json>",
		Short: "Write a wallet's transfer graph to a file",
		Long: `Export fetches the wallet's transfer history, lays out the graph, and
writes it in the chosen format: json (graph document with positions and
score), dot (Graphviz source), svg or png (rendered through Graphviz),
or html (self-contained interactive page).

A batch file written by "fetch --output" can be given instead of an
address to export without network access.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if !slices.Contains(exportFormats, format) {
				return fmt.Errorf("unknown format %q (supported: %s)", format, strings.Join(exportFormats, ", "))
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			wallet, records, err := resolveRecords(cmd, cfg, args[0], limit, noCache)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				printInfo("No transfers found; nothing to export")
				return nil
			}

			m := model.Build(records)
			positions := layout.Compute(m, layoutOptions(cfg))
			doc := export.NewDocument(wallet, m, positions, score.Estimate(records))

			if output == "" {
				output = fmt.Sprintf("%s.%s", model.TruncateKey(wallet, 10), format)
			}

			switch format {
			case "json":
				err = export.WriteDocumentFile(doc, output)
			case "dot":
				err = os.WriteFile(output, []byte(export.ToDOT(m, export.DotOptions{Detailed: detailed})), 0o644)
			case "svg", "png":
				dot := export.ToDOT(m, export.DotOptions{Detailed: detailed})
				var data []byte
				if format == "svg" {
					data, err = export.RenderSVG(cmd.Context(), dot)
				} else {
					data, err = export.RenderPNG(cmd.Context(), dot)
				}
				if err == nil {
					err = os.WriteFile(output, data, 0o644)
				}
			case "html":
				output, err = export.WriteHTML(doc, export.HTMLOptions{Path: output})
			}
			if err != nil {
				return err
			}

			abs, absErr := filepath.Abs(output)
			if absErr != nil {
				abs = output
			}
			printSuccess("Exported %s graph", format)
			printStats(m.Len(), len(m.Edges()), false)
			printFile(abs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "signatures to fetch (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the RPC response cache")
	cmd.Flags().StringVarP(&format, "format", "f", "json", fmt.Sprintf("output format (%s)", strings.Join(exportFormats, ", ")))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default derived from the wallet)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include transfer labels on DOT/SVG/PNG edges")

	return cmd
}
