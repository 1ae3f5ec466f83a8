package model

import (
	"reflect"
	"testing"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		records   []TransferRecord
		wantNodes []string
		wantEdges []Edge
	}{
		{
			name:      "Empty",
			records:   nil,
			wantNodes: nil,
			wantEdges: []Edge{},
		},
		{
			name: "Chain",
			records: []TransferRecord{
				{Sender: "A", Recipient: "B", Label: "1 SOL t1"},
				{Sender: "B", Recipient: "C", Label: "2 SOL t2"},
			},
			wantNodes: []string{"A", "B", "C"},
			wantEdges: []Edge{
				{From: "A", To: "B", Label: "1 SOL t1"},
				{From: "B", To: "C", Label: "2 SOL t2"},
			},
		},
		{
			name: "DuplicatePairKeepsMultiEdges",
			records: []TransferRecord{
				{Sender: "A", Recipient: "B", Label: "1 SOL t1"},
				{Sender: "A", Recipient: "B", Label: "3 SOL t2"},
			},
			wantNodes: []string{"A", "B"},
			wantEdges: []Edge{
				{From: "A", To: "B", Label: "1 SOL t1"},
				{From: "A", To: "B", Label: "3 SOL t2"},
			},
		},
		{
			name: "UnknownEndpointBecomesNode",
			records: []TransferRecord{
				{Sender: "unknown", Recipient: "B", Label: "1 SOL t1"},
			},
			wantNodes: []string{"unknown", "B"},
			wantEdges: []Edge{{From: "unknown", To: "B", Label: "1 SOL t1"}},
		},
		{
			name: "SelfTransfer",
			records: []TransferRecord{
				{Sender: "A", Recipient: "A", Label: "1 SOL t1"},
			},
			wantNodes: []string{"A"},
			wantEdges: []Edge{{From: "A", To: "A", Label: "1 SOL t1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Build(tt.records)

			if !reflect.DeepEqual(m.Nodes(), tt.wantNodes) {
				t.Errorf("Nodes() = %v, want %v", m.Nodes(), tt.wantNodes)
			}
			if len(m.Edges()) != len(tt.wantEdges) {
				t.Fatalf("len(Edges()) = %d, want %d", len(m.Edges()), len(tt.wantEdges))
			}
			for i, e := range m.Edges() {
				if e != tt.wantEdges[i] {
					t.Errorf("Edges()[%d] = %v, want %v", i, e, tt.wantEdges[i])
				}
			}
			if len(m.Edges()) != len(tt.records) {
				t.Errorf("edge count %d != record count %d", len(m.Edges()), len(tt.records))
			}
		})
	}
}

func TestTransactionIndexOrdering(t *testing.T) {
	records := []TransferRecord{
		{Sender: "A", Recipient: "B", Label: "1 SOL t1"},
		{Sender: "B", Recipient: "C", Label: "2 SOL t2"},
	}
	m := Build(records)

	want := []Transaction{
		{Direction: DirectionReceived, Counterparty: "A", Label: "1 SOL t1"},
		{Direction: DirectionSent, Counterparty: "C", Label: "2 SOL t2"},
	}
	if got := m.TransactionsFor("B"); !reflect.DeepEqual(got, want) {
		t.Errorf("TransactionsFor(B) = %v, want %v", got, want)
	}

	if got := m.TransactionsFor("missing"); got != nil {
		t.Errorf("TransactionsFor(missing) = %v, want nil", got)
	}
}

func TestSelfTransferIndexOrder(t *testing.T) {
	// A self transfer appends the Sent entry before the Received entry.
	m := Build([]TransferRecord{{Sender: "A", Recipient: "A", Label: "1 SOL t1"}})

	txs := m.TransactionsFor("A")
	if len(txs) != 2 {
		t.Fatalf("len = %d, want 2", len(txs))
	}
	if txs[0].Direction != DirectionSent || txs[1].Direction != DirectionReceived {
		t.Errorf("order = [%s, %s], want [Sent to, Received from]", txs[0].Direction, txs[1].Direction)
	}
}

func TestDegree(t *testing.T) {
	m := Build([]TransferRecord{
		{Sender: "A", Recipient: "B", Label: "1 SOL t1"},
		{Sender: "A", Recipient: "C", Label: "2 SOL t2"},
	})

	for key, want := range map[string]int{"A": 2, "B": 1, "C": 1, "X": 0} {
		if got := m.Degree(key); got != want {
			t.Errorf("Degree(%s) = %d, want %d", key, got, want)
		}
	}
}

func TestTruncateKey(t *testing.T) {
	tests := []struct {
		key  string
		n    int
		want string
	}{
		{"9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", 4, "9xQe..."},
		{"abc", 4, "abc"},
		{"abcd", 4, "abcd"},
		{"", 4, ""},
	}
	for _, tt := range tests {
		if got := TruncateKey(tt.key, tt.n); got != tt.want {
			t.Errorf("TruncateKey(%q, %d) = %q, want %q", tt.key, tt.n, got, tt.want)
		}
	}
}
