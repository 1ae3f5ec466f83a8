// Package model builds the directed transfer graph that everything else
// consumes: layout, rendering, scoring, and the export sinks.
//
// The graph is a multigraph: each transfer record contributes exactly one
// edge, so the edge count always equals the record count. Nodes are created
// lazily in first-seen order, which is also the iteration order exposed by
// [Model.Nodes]; click resolution and layout both depend on that order
// being stable.
package model

import "strings"

// Direction labels for the per-node transaction index.
const (
	DirectionSent     = "Sent to"
	DirectionReceived = "Received from"
)

// TransferRecord is a single transfer as produced by the fetch layer.
// Label is a pre-formatted human-readable string combining amount and
// timestamp (e.g. "1.2500 SOL 2025-03-01 14:02"). Records are immutable.
type TransferRecord struct {
	Sender    string `json:"sender" bson:"sender"`
	Recipient string `json:"recipient" bson:"recipient"`
	Label     string `json:"label" bson:"label"`
}

// Edge is a directed sender→recipient pair tagged with the transfer label.
// Duplicate pairs are kept as separate edges.
type Edge struct {
	From  string `json:"from" bson:"from"`
	To    string `json:"to" bson:"to"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`
}

// Transaction is one entry in a node's transaction index.
type Transaction struct {
	Direction    string `json:"direction" bson:"direction"`
	Counterparty string `json:"counterparty" bson:"counterparty"`
	Label        string `json:"label" bson:"label"`
}

// Model is the immutable node/edge structure built from transfer records.
// It is not safe for concurrent mutation, but after Build it is never
// mutated, so concurrent reads are fine.
type Model struct {
	order   []string                 // node keys in first-seen order
	degrees map[string]int           // per-node transfer frequency
	edges   []Edge                   // one per record, record order
	index   map[string][]Transaction // node key -> ordered transactions
}

// Build constructs a Model from records. For each record it appends a
// directed edge, bumps both endpoint frequencies, and appends the sender's
// "Sent to" entry before the recipient's "Received from" entry. An empty
// input yields a model with zero nodes and edges.
func Build(records []TransferRecord) *Model {
	m := &Model{
		degrees: make(map[string]int, len(records)),
		edges:   make([]Edge, 0, len(records)),
		index:   make(map[string][]Transaction, len(records)),
	}

	for _, r := range records {
		m.touch(r.Sender)
		m.touch(r.Recipient)

		m.edges = append(m.edges, Edge{From: r.Sender, To: r.Recipient, Label: r.Label})
		m.degrees[r.Sender]++
		m.degrees[r.Recipient]++

		m.index[r.Sender] = append(m.index[r.Sender], Transaction{
			Direction:    DirectionSent,
			Counterparty: r.Recipient,
			Label:        r.Label,
		})
		m.index[r.Recipient] = append(m.index[r.Recipient], Transaction{
			Direction:    DirectionReceived,
			Counterparty: r.Sender,
			Label:        r.Label,
		})
	}

	return m
}

// touch registers a node key the first time it is seen. Even "unknown"
// endpoints become nodes; the fetch layer decides what to skip, not us.
func (m *Model) touch(key string) {
	if _, ok := m.degrees[key]; ok {
		return
	}
	m.degrees[key] = 0
	m.order = append(m.order, key)
}

// Nodes returns node keys in first-seen order. The returned slice is
// shared; callers must not modify it.
func (m *Model) Nodes() []string { return m.order }

// Edges returns all directed edges in record order. One edge per record.
func (m *Model) Edges() []Edge { return m.edges }

// Degree returns the transfer frequency of a node (diagnostic only).
func (m *Model) Degree(key string) int { return m.degrees[key] }

// Has reports whether key is a node of the graph.
func (m *Model) Has(key string) bool {
	_, ok := m.degrees[key]
	return ok
}

// Len returns the number of nodes.
func (m *Model) Len() int { return len(m.order) }

// TransactionsFor returns the ordered transaction index for a node, or nil
// for unknown keys.
func (m *Model) TransactionsFor(key string) []Transaction { return m.index[key] }

// TruncateKey shortens an address for display: the first n characters
// followed by an ellipsis. Short keys are returned unchanged.
func TruncateKey(key string, n int) string {
	if len(key) <= n {
		return key
	}
	var b strings.Builder
	b.WriteString(key[:n])
	b.WriteString("...")
	return b.String()
}
