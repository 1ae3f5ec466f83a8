package model

import (
	"testing"
	"time"
)

func TestFormatLabel(t *testing.T) {
	ts := time.Date(2025, 3, 1, 14, 2, 0, 0, time.UTC)

	tests := []struct {
		name   string
		amount float64
		ts     time.Time
		want   string
	}{
		{"WithTimestamp", 0.25, ts, "0.2500 SOL 2025-03-01 14:02"},
		{"ZeroTime", 1.5, time.Time{}, "1.5000 SOL"},
		{"Whole", 10, ts, "10.0000 SOL 2025-03-01 14:02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLabel(tt.amount, tt.ts); got != tt.want {
				t.Errorf("FormatLabel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label      string
		wantAmount float64
		wantOK     bool
		wantTime   bool
	}{
		{"1 SOL t1", 1, true, false},
		{"0.2500 SOL 2025-03-01 14:02", 0.25, true, true},
		{"1.5 SOL", 1.5, true, false},
		{"SOL 1", 0, false, false},
		{"-3 SOL 2025-03-01 14:02", 0, false, false},
		{"", 0, false, false},
		{"1 ETH 2025-03-01 14:02", 0, false, false},
	}

	for _, tt := range tests {
		amount, ts, ok := ParseLabel(tt.label)
		if ok != tt.wantOK {
			t.Errorf("ParseLabel(%q) ok = %v, want %v", tt.label, ok, tt.wantOK)
			continue
		}
		if !ok {
			continue
		}
		if amount != tt.wantAmount {
			t.Errorf("ParseLabel(%q) amount = %v, want %v", tt.label, amount, tt.wantAmount)
		}
		if ts.IsZero() == tt.wantTime {
			t.Errorf("ParseLabel(%q) timestamp zero = %v, want hasTime=%v", tt.label, ts.IsZero(), tt.wantTime)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	ts := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)
	label := FormatLabel(2.5, ts)

	amount, got, ok := ParseLabel(label)
	if !ok {
		t.Fatalf("ParseLabel(%q) not ok", label)
	}
	if amount != 2.5 {
		t.Errorf("amount = %v, want 2.5", amount)
	}
	if !got.Equal(ts) {
		t.Errorf("timestamp = %v, want %v", got, ts)
	}
}
