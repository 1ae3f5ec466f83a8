// Package pkg provides the core libraries for walletscope transfer-graph visualization.
//
// # Overview
//
// Walletscope fetches a Solana wallet's SOL transfer history and presents it as
// an interactive force-directed graph with a heuristic credit score overlay.
// The pkg directory is organized into four main areas:
//
//  1. Domain data ([model], [layout], [score]) - graph construction, positioning, scoring
//  2. Presentation ([view], [scene], [export]) - interaction, rendering, output formats
//  3. Integrations ([solana]) - Solana JSON-RPC client
//  4. Infrastructure ([cache], [store], [session], [errors], [httputil], [observability])
//
// # Architecture
//
// The typical data flow through walletscope:
//
//	Solana JSON-RPC (getSignaturesForAddress + getTransaction)
//	         ↓
//	    [solana] package (fetch + cache transfer records)
//	         ↓
//	    [model] package (graph of wallets and transfers)
//	         ↓
//	    [layout] package (deterministic force-directed positions)
//	         ↓
//	    [scene] + [view] packages (interactive window)
//	    [export] package (JSON/DOT/SVG/PNG/HTML output)
//
// # Quick Start
//
// Fetch a wallet's transfers and render its graph to SVG:
//
//	import (
//	    "context"
//	    "github.com/walletscope/walletscope/pkg/export"
//	    "github.com/walletscope/walletscope/pkg/layout"
//	    "github.com/walletscope/walletscope/pkg/model"
//	    "github.com/walletscope/walletscope/pkg/solana"
//	)
//
//	// 1. Fetch transfer records
//	client := solana.NewClient("", nil)
//	records, _ := client.FetchTransfers(context.Background(), wallet, 100)
//
//	// 2. Build the graph
//	g := model.Build(records)
//
//	// 3. Compute layout
//	positions := layout.Compute(g, layout.Options{})
//
//	// 4. Render to SVG
//	dot := export.ToDOT(g, export.DotOptions{})
//	svg, _ := export.RenderSVG(context.Background(), dot)
//
// # Main Packages
//
// ## Domain Data
//
// [model] - Transfer graph construction. Nodes are wallet addresses, edges are
// directed transfer relationships, and each node records its "Sent to" /
// "Received from" history in insertion order.
//
// [layout] - Deterministic force-directed layout. Seeded PCG randomness,
// pairwise repulsion with edge attraction, positions normalized to [-1, 1].
//
// [score] - Heuristic credit score (0 to 1000) weighing activity, volume,
// counterparty diversity, and recency. [score.Explain] returns the breakdown.
//
// ## Presentation
//
// [view] - Window-independent interaction state: pan/zoom transform, drag
// tracking, hit testing, and selection.
//
// [scene] - Software rendering of the graph scene (edges, glow rings, node
// discs, labels, detail panel) onto an in-memory canvas.
//
// [export] - Output formats: JSON documents, Graphviz DOT with SVG/PNG
// rendering, and a self-contained interactive HTML page.
//
// ## External Integrations
//
// [solana] - JSON-RPC client for Solana nodes. Validates addresses, pages
// signatures, extracts system-program transfers, and caches confirmed
// transactions indefinitely.
//
// ## Infrastructure
//
// [cache] - Cache interface with file, Redis, and null implementations.
// [cache.Key] derives stable namespaced keys from request parameters.
//
// [store] - MongoDB archive for fetched transfer batches.
//
// [session] - Recent-wallet history persisted as JSON under the user config
// directory.
//
// [errors] - Coded errors with user-facing messages.
//
// [httputil] - HTTP retry helpers with status classification.
//
// [observability] - Pluggable hooks for fetch, layout, and cache events.
// Libraries emit events; binaries register logging implementations.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/solana/...             # Specific package
//	go test -tags integration ./pkg/...  # Include integration tests
//
// [model]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/model
// [layout]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/layout
// [score]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/score
// [score.Explain]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/score#Explain
// [view]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/view
// [scene]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/scene
// [export]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/export
// [solana]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/solana
// [cache]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/cache
// [cache.Key]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/cache#Key
// [store]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/store
// [session]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/session
// [errors]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/walletscope/walletscope/pkg/observability
package pkg
