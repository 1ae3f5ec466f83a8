package score

import (
	"fmt"
	"testing"
	"time"

	"github.com/walletscope/walletscope/pkg/model"
)

func TestEstimateBounds(t *testing.T) {
	tests := []struct {
		name    string
		records []model.TransferRecord
	}{
		{"Empty", nil},
		{
			"SingleSmall",
			[]model.TransferRecord{{Sender: "A", Recipient: "B", Label: "0.001 SOL 2025-01-01 00:00"}},
		},
		{
			"HugeVolume",
			[]model.TransferRecord{{Sender: "A", Recipient: "B", Label: "99999999 SOL 2025-01-01 00:00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Estimate(tt.records)
			if got < 0 || got > MaxScore {
				t.Errorf("Estimate = %d, outside [0, %d]", got, MaxScore)
			}
		})
	}
}

func TestEstimateSaturatesAtMax(t *testing.T) {
	now := time.Now()
	records := make([]model.TransferRecord, 0, 60)
	for i := 0; i < 60; i++ {
		records = append(records, model.TransferRecord{
			Sender:    fmt.Sprintf("wallet-%d", i),
			Recipient: fmt.Sprintf("wallet-%d", i+1),
			Label:     fmt.Sprintf("10 SOL %s", now.Format(model.LabelTimeFormat)),
		})
	}

	if got := Estimate(records); got != MaxScore {
		t.Errorf("Estimate = %d, want saturation at %d", got, MaxScore)
	}
}

func TestEstimateUnparseable(t *testing.T) {
	records := []model.TransferRecord{
		{Sender: "A", Recipient: "B", Label: "garbage"},
		{Sender: "B", Recipient: "C", Label: ""},
		{Sender: "C", Recipient: "D", Label: "abc SOL 2025-01-01 00:00"},
	}
	if got := Estimate(records); got != 0 {
		t.Errorf("Estimate = %d, want 0 for fully-unparseable set", got)
	}
}

func TestEstimateSkipsBadRecordsOnly(t *testing.T) {
	good := []model.TransferRecord{
		{Sender: "A", Recipient: "B", Label: "5 SOL 2025-06-01 12:00"},
	}
	mixed := append([]model.TransferRecord{
		{Sender: "X", Recipient: "Y", Label: "not a label"},
	}, good...)

	if Estimate(mixed) != Estimate(good) {
		t.Errorf("bad record changed the score: mixed=%d good=%d", Estimate(mixed), Estimate(good))
	}
}

func TestExplainRecency(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	fresh := []model.TransferRecord{{Sender: "A", Recipient: "B", Label: "1 SOL 2025-06-01 11:00"}}
	stale := []model.TransferRecord{{Sender: "A", Recipient: "B", Label: "1 SOL 2020-06-01 11:00"}}

	f, s := Explain(fresh, now), Explain(stale, now)
	if f.Total <= s.Total {
		t.Errorf("fresh score %d not above stale score %d", f.Total, s.Total)
	}
	if s.Recency != 0 {
		t.Errorf("stale recency = %d, want 0 after a full year", s.Recency)
	}
}

func TestExplainCounts(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	records := []model.TransferRecord{
		{Sender: "A", Recipient: "B", Label: "1 SOL 2025-05-30 09:00"},
		{Sender: "B", Recipient: "C", Label: "broken"},
	}

	b := Explain(records, now)
	if b.Parsed != 1 || b.Skipped != 1 {
		t.Errorf("Explain counts = (%d parsed, %d skipped), want (1, 1)", b.Parsed, b.Skipped)
	}
	if got := b.Activity + b.Volume + b.Diversity + b.Recency; b.Total != got {
		t.Errorf("Total = %d, want component sum %d", b.Total, got)
	}
}
