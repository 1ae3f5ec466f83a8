// Package score estimates a heuristic credit score for a wallet from its
// transfer records.
//
// The estimate is a pure function of the record list. It only looks at the
// pre-formatted labels ("<amount> SOL <timestamp>"); records whose label
// does not parse are skipped, and a set with no parseable record scores 0.
// The result is always within [0, 1000]. This is a display heuristic, not a
// risk model.
package score

import (
	"math"
	"time"

	"github.com/walletscope/walletscope/pkg/model"
)

// MaxScore is the upper bound of the estimate.
const MaxScore = 1000

// Component weights. They sum to MaxScore so each component saturates
// independently.
const (
	activityWeight  = 350.0 // number of parseable transfers
	volumeWeight    = 300.0 // total SOL moved
	diversityWeight = 200.0 // distinct counterparties
	recencyWeight   = 150.0 // how recent the latest transfer is
)

// Saturation points: the record count, volume, and counterparty count at
// which each component reaches full weight.
const (
	activityCap  = 50.0
	volumeCap    = 100.0 // SOL
	diversityCap = 15.0
)

// Breakdown reports the per-component contributions of an estimate.
type Breakdown struct {
	Activity  int `json:"activity"`
	Volume    int `json:"volume"`
	Diversity int `json:"diversity"`
	Recency   int `json:"recency"`
	Total     int `json:"total"`
	Parsed    int `json:"parsed_records"`
	Skipped   int `json:"skipped_records"`
}

// Estimate returns a credit score in [0, MaxScore] for the record set.
func Estimate(records []model.TransferRecord) int {
	return Explain(records, time.Now()).Total
}

// Explain computes the estimate with its per-component breakdown, using
// now as the reference point for the recency term.
func Explain(records []model.TransferRecord, now time.Time) Breakdown {
	var (
		parsed   int
		skipped  int
		volume   float64
		latest   time.Time
		partners = make(map[string]struct{})
	)

	for _, r := range records {
		amount, ts, ok := model.ParseLabel(r.Label)
		if !ok {
			skipped++
			continue
		}
		parsed++
		volume += amount
		if ts.After(latest) {
			latest = ts
		}
		partners[r.Sender] = struct{}{}
		partners[r.Recipient] = struct{}{}
	}

	if parsed == 0 {
		return Breakdown{Skipped: skipped}
	}

	b := Breakdown{
		Activity:  round(activityWeight * saturate(float64(parsed)/activityCap)),
		Volume:    round(volumeWeight * saturate(volume/volumeCap)),
		Diversity: round(diversityWeight * saturate(float64(len(partners))/diversityCap)),
		Recency:   round(recencyWeight * recency(latest, now)),
		Parsed:    parsed,
		Skipped:   skipped,
	}
	b.Total = b.Activity + b.Volume + b.Diversity + b.Recency
	if b.Total > MaxScore {
		b.Total = MaxScore
	}
	return b
}

func round(v float64) int { return int(math.Round(v)) }

// saturate clamps v to [0, 1].
func saturate(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// recency maps the age of the latest transfer onto [0, 1]: 1 for today,
// decaying linearly to 0 over a year. Records without timestamps score 0
// on this component.
func recency(latest, now time.Time) float64 {
	if latest.IsZero() {
		return 0
	}
	age := now.Sub(latest)
	if age < 0 {
		age = 0
	}
	const year = 365 * 24 * time.Hour
	return saturate(1 - float64(age)/float64(year))
}
