package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/walletscope/walletscope/pkg/layout"
	"github.com/walletscope/walletscope/pkg/model"
)

// Document is the canonical serialization of a laid-out transfer graph.
// Used for file export, API responses, and the HTML template's embedded
// data. Node order follows the model's insertion order for round-trip
// fidelity.
type Document struct {
	Wallet      string    `json:"wallet"`
	GeneratedAt time.Time `json:"generated_at"`
	Score       int       `json:"score,omitempty"`
	Nodes       []Node    `json:"nodes"`
	Edges       []Edge    `json:"edges"`
}

// Node is one wallet in the document with its computed position.
type Node struct {
	ID     string  `json:"id"`
	Degree int     `json:"degree"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Edge is one transfer in the document.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// NewDocument assembles a document from a built model and its layout.
func NewDocument(wallet string, m *model.Model, positions layout.Positions, score int) *Document {
	doc := &Document{
		Wallet:      wallet,
		GeneratedAt: time.Now().UTC(),
		Score:       score,
		Nodes:       make([]Node, 0, m.Len()),
		Edges:       make([]Edge, 0, len(m.Edges())),
	}

	for _, id := range m.Nodes() {
		p := positions[id]
		doc.Nodes = append(doc.Nodes, Node{
			ID:     id,
			Degree: m.Degree(id),
			X:      p.X,
			Y:      p.Y,
		})
	}
	for _, e := range m.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e.From, To: e.To, Label: e.Label})
	}
	return doc
}

// MarshalDocument converts a document to indented JSON bytes.
func MarshalDocument(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDocumentTo(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDocument writes a document as JSON to an io.Writer.
func WriteDocument(doc *Document, w io.Writer) error {
	return writeDocumentTo(doc, w)
}

// WriteDocumentFile writes a document to a JSON file.
// The file is created with 0644 permissions.
func WriteDocumentFile(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeDocumentTo(doc, f)
}

// ReadDocumentFile reads a JSON file and returns the decoded document.
func ReadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var doc Document
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &doc, nil
}

func writeDocumentTo(doc *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
