// Package layout computes 2D node positions for a transfer graph using a
// Fruchterman-Reingold style spring simulation.
//
// The layout runs once per dataset, before the interactive loop starts, and
// is deterministic for a fixed graph, seed, and iteration count. Positions
// land in a normalized model space bounded by [-1, 1] on both axes; the view
// transform maps them to pixels.
package layout

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/walletscope/walletscope/pkg/model"
	"github.com/walletscope/walletscope/pkg/observability"
)

// Defaults tuned for graphs of a few dozen nodes.
const (
	DefaultSeed       uint64 = 42
	DefaultIterations        = 150
	DefaultRepulsion         = 1.5

	// targetEdgeLength is the rest length of the edge springs in model units.
	targetEdgeLength = 0.4

	// springStrength scales the attractive force along edges.
	springStrength = 0.06

	// minDistance guards the force terms against coincident nodes.
	minDistance = 1e-4
)

// Point is a position in model space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Positions maps node keys to model-space coordinates.
type Positions map[string]Point

// Options configures the simulation. The zero value is replaced by the
// package defaults field by field.
type Options struct {
	Seed       uint64
	Iterations int
	Repulsion  float64
}

func (o Options) withDefaults() Options {
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Iterations <= 0 {
		o.Iterations = DefaultIterations
	}
	if o.Repulsion <= 0 {
		o.Repulsion = DefaultRepulsion
	}
	return o
}

// Compute runs the spring simulation and returns a position per node.
// Zero nodes yield an empty map; a single node sits at the origin.
func Compute(m *model.Model, opts Options) Positions {
	opts = opts.withDefaults()
	nodes := m.Nodes()

	observability.Layout().OnLayoutStart(len(nodes), len(m.Edges()))
	start := time.Now()
	defer func() { observability.Layout().OnLayoutComplete(time.Since(start)) }()

	pos := make(Positions, len(nodes))
	switch len(nodes) {
	case 0:
		return pos
	case 1:
		pos[nodes[0]] = Point{}
		return pos
	}

	// Deterministic initial placement. PCG seeded the same way produces the
	// same scatter for the same node order.
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	xs := make([]float64, len(nodes))
	ys := make([]float64, len(nodes))
	idx := make(map[string]int, len(nodes))
	for i, key := range nodes {
		idx[key] = i
		xs[i] = rng.Float64()*2 - 1
		ys[i] = rng.Float64()*2 - 1
	}

	edges := m.Edges()
	dispX := make([]float64, len(nodes))
	dispY := make([]float64, len(nodes))

	// The ideal pairwise distance shrinks as the graph grows, the usual
	// k = sqrt(area/n) heuristic for a 2x2 area.
	k := math.Sqrt(4.0 / float64(len(nodes)))

	for iter := 0; iter < opts.Iterations; iter++ {
		for i := range dispX {
			dispX[i] = 0
			dispY[i] = 0
		}

		// Repulsion between all pairs, inversely related to distance.
		for i := 0; i < len(nodes); i++ {
			for j := i + 1; j < len(nodes); j++ {
				dx := xs[i] - xs[j]
				dy := ys[i] - ys[j]
				dist := math.Hypot(dx, dy)
				if dist < minDistance {
					dist = minDistance
					// Nudge coincident nodes apart along a fixed axis so the
					// force has a direction. Deterministic by construction.
					dx = minDistance
					dy = 0
				}
				force := opts.Repulsion * k * k / (dist * dist)
				dispX[i] += dx * force
				dispY[i] += dy * force
				dispX[j] -= dx * force
				dispY[j] -= dy * force
			}
		}

		// Attraction along edges, proportional to distance minus rest length.
		// Multi-edges pull proportionally harder, which keeps frequent
		// counterparties close together.
		for _, e := range edges {
			a, b := idx[e.From], idx[e.To]
			if a == b {
				continue
			}
			dx := xs[a] - xs[b]
			dy := ys[a] - ys[b]
			dist := math.Hypot(dx, dy)
			if dist < minDistance {
				continue
			}
			pull := springStrength * (dist - targetEdgeLength) / dist
			dispX[a] -= dx * pull
			dispY[a] -= dy * pull
			dispX[b] += dx * pull
			dispY[b] += dy * pull
		}

		// Linearly cooling displacement cap keeps late iterations from
		// undoing the settled structure.
		temp := 0.1 * (1 - float64(iter)/float64(opts.Iterations))
		for i := range nodes {
			d := math.Hypot(dispX[i], dispY[i])
			if d > temp && d > 0 {
				dispX[i] *= temp / d
				dispY[i] *= temp / d
			}
			xs[i] += dispX[i]
			ys[i] += dispY[i]
		}
	}

	normalize(xs, ys)

	for i, key := range nodes {
		pos[key] = Point{X: xs[i], Y: ys[i]}
	}
	return pos
}

// normalize recenters the cloud on the origin and scales it uniformly so
// that the largest coordinate magnitude is 1. Uniform scaling preserves the
// shape the simulation settled on.
func normalize(xs, ys []float64) {
	var cx, cy float64
	for i := range xs {
		cx += xs[i]
		cy += ys[i]
	}
	cx /= float64(len(xs))
	cy /= float64(len(ys))

	maxAbs := 0.0
	for i := range xs {
		xs[i] -= cx
		ys[i] -= cy
		maxAbs = math.Max(maxAbs, math.Max(math.Abs(xs[i]), math.Abs(ys[i])))
	}
	if maxAbs == 0 {
		return
	}
	for i := range xs {
		xs[i] /= maxAbs
		ys[i] /= maxAbs
	}
}
