package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// LabelTimeFormat is the timestamp layout embedded in transfer labels.
const LabelTimeFormat = "2006-01-02 15:04"

// FormatLabel renders the canonical human-readable transfer label:
// "<amount> SOL <timestamp>". A zero timestamp is omitted.
func FormatLabel(amountSOL float64, ts time.Time) string {
	if ts.IsZero() {
		return fmt.Sprintf("%.4f SOL", amountSOL)
	}
	return fmt.Sprintf("%.4f SOL %s", amountSOL, ts.UTC().Format(LabelTimeFormat))
}

// ParseLabel extracts the amount and timestamp back out of a transfer
// label. The timestamp part is optional; ok is false only when the amount
// cannot be parsed. Labels from other sources that do not follow the
// "<amount> SOL ..." shape simply fail to parse, which downstream consumers
// treat as "skip this record".
func ParseLabel(label string) (amount float64, ts time.Time, ok bool) {
	fields := strings.Fields(label)
	if len(fields) < 2 || fields[1] != "SOL" {
		return 0, time.Time{}, false
	}
	amount, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || amount < 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return 0, time.Time{}, false
	}

	if len(fields) >= 4 {
		if t, err := time.Parse(LabelTimeFormat, fields[2]+" "+fields[3]); err == nil {
			ts = t
		}
	}
	return amount, ts, true
}
