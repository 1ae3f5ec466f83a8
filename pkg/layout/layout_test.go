package layout

import (
	"fmt"
	"math"
	"testing"

	"github.com/walletscope/walletscope/pkg/model"
)

func chainModel(n int) *model.Model {
	records := make([]model.TransferRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, model.TransferRecord{
			Sender:    fmt.Sprintf("node-%d", i),
			Recipient: fmt.Sprintf("node-%d", i+1),
			Label:     fmt.Sprintf("%d SOL t%d", i+1, i),
		})
	}
	return model.Build(records)
}

func TestComputeDegenerate(t *testing.T) {
	if got := Compute(model.Build(nil), Options{}); len(got) != 0 {
		t.Errorf("empty model: len = %d, want 0", len(got))
	}

	m := model.Build([]model.TransferRecord{{Sender: "A", Recipient: "A", Label: "1 SOL t1"}})
	pos := Compute(m, Options{})
	if len(pos) != 1 {
		t.Fatalf("single node: len = %d, want 1", len(pos))
	}
	if p := pos["A"]; p.X != 0 || p.Y != 0 {
		t.Errorf("single node at %v, want origin", p)
	}
}

func TestComputeDeterministic(t *testing.T) {
	m := chainModel(12)
	opts := Options{Seed: 42, Iterations: 150}

	first := Compute(m, opts)
	second := Compute(m, opts)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for key, p := range first {
		q := second[key]
		if p != q {
			t.Errorf("position for %s differs: %v vs %v", key, p, q)
		}
	}
}

func TestComputeSeedChangesPlacement(t *testing.T) {
	m := chainModel(12)

	a := Compute(m, Options{Seed: 42})
	b := Compute(m, Options{Seed: 43})

	same := true
	for key, p := range a {
		if b[key] != p {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestComputeBounded(t *testing.T) {
	m := chainModel(25)
	pos := Compute(m, Options{})

	for key, p := range pos {
		if math.Abs(p.X) > 1+1e-9 || math.Abs(p.Y) > 1+1e-9 {
			t.Errorf("node %s at %v escapes [-1,1]", key, p)
		}
	}
}

func TestComputeSeparatesNodes(t *testing.T) {
	m := chainModel(8)
	pos := Compute(m, Options{})

	keys := m.Nodes()
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			a, b := pos[keys[i]], pos[keys[j]]
			if math.Hypot(a.X-b.X, a.Y-b.Y) < 0.01 {
				t.Errorf("nodes %s and %s nearly coincide: %v vs %v", keys[i], keys[j], a, b)
			}
		}
	}
}
