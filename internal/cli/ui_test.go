package cli

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout runs fn and returns everything it printed to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()
	w.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured output: %v", err)
	}
	return string(data)
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		name      string
		wallets   int
		transfers int
		cached    bool
		want      []string
		absent    []string
	}{
		{
			name:    "CachedFetch",
			wallets: 4, transfers: 25, cached: true,
			want: []string{"4 wallets", "25 transfers", "cached"},
		},
		{
			name:    "FreshExport",
			wallets: 7, transfers: 12, cached: false,
			want: []string{"7 wallets", "12 transfers", "fresh"},
		},
		{
			name:    "EmptyHistory",
			wallets: 0, transfers: 0, cached: false,
			want:   []string{"fresh"},
			absent: []string{"wallets", "transfers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStdout(t, func() {
				printStats(tt.wallets, tt.transfers, tt.cached)
			})
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("printStats output %q missing %q", out, s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("printStats output %q should not contain %q", out, s)
				}
			}
		})
	}
}

func TestPrintKeyValue(t *testing.T) {
	out := captureStdout(t, func() {
		printKeyValue("wallet", "4Nd1m5Wg7q")
	})
	if !strings.Contains(out, "wallet") || !strings.Contains(out, "4Nd1m5Wg7q") {
		t.Errorf("printKeyValue output %q missing key or value", out)
	}
}
