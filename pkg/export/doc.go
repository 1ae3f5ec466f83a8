// Package export writes transfer graphs to shareable formats.
//
// Three families are supported:
//   - JSON documents carrying nodes, computed positions, edges, and the
//     credit score, for downstream tooling and the HTTP API
//   - Graphviz DOT, with SVG and PNG rendering through the graphviz engine
//   - a self-contained interactive HTML page that embeds the graph data
//     and reproduces the viewer's pan, zoom, and selection behavior in a
//     canvas, so a layout can be shared without installing anything
package export
