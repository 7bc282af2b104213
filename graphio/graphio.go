// Package graphio reads and writes graph documents and exports separator
// trees, both as YAML.
//
// A graph document lists vertices (ID and optional cost, default 1) and
// undirected edges as ID pairs:
//
//	vertices:
//	  - id: a
//	    cost: 2
//	  - id: b
//	edges:
//	  - [a, b]
package graphio

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/ndissect/core"
	"gopkg.in/yaml.v3"
)

// DefaultCost is the cost of a vertex whose document entry has none.
const DefaultCost = 1.0

var (
	// ErrGraphNil is returned when a nil graph or tree is written.
	ErrGraphNil = errors.New("graphio: graph is nil")

	// ErrInvalidDocument is returned for malformed or inconsistent documents.
	ErrInvalidDocument = errors.New("graphio: invalid document")
)

// Document is the YAML form of a vertex-costed graph.
type Document struct {
	Vertices []Vertex `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`
}

// Vertex is one document vertex; a nil Cost means DefaultCost.
type Vertex struct {
	ID   string   `yaml:"id"`
	Cost *float64 `yaml:"cost,omitempty"`
}

// Edge is an undirected edge written as a two-element flow sequence.
type Edge [2]string

// MarshalYAML emits e as [u, v] with both IDs tagged as strings.
func (e Edge) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, id := range e {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id})
	}

	return n, nil
}

// ReadGraph decodes one graph document from r. Unknown keys are rejected.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return doc.Graph()
}

// Graph builds the graph described by d.
func (d *Document) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for i, v := range d.Vertices {
		cost := DefaultCost
		if v.Cost != nil {
			cost = *v.Cost
		}
		if err := g.AddVertex(v.ID, cost); err != nil {
			return nil, fmt.Errorf("%w: vertex %d: %w", ErrInvalidDocument, i, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidDocument, i, err)
		}
	}

	return g, nil
}

// NewDocument returns the document form of g with vertices and edges sorted.
// Costs equal to DefaultCost are omitted.
func NewDocument(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	doc := &Document{
		Vertices: make([]Vertex, 0, g.VertexCount()),
		Edges:    make([]Edge, 0, g.EdgeCount()),
	}
	for _, id := range g.Vertices() {
		c, err := g.Cost(id)
		if err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
		v := Vertex{ID: id}
		if c != DefaultCost {
			v.Cost = &c
		}
		doc.Vertices = append(doc.Vertices, v)
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, Edge{e.From, e.To})
	}

	return doc, nil
}

// WriteGraph encodes g as a graph document.
func WriteGraph(w io.Writer, g *core.Graph) error {
	doc, err := NewDocument(g)
	if err != nil {
		return err
	}

	return encode(w, doc)
}

func encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("graphio: encode: %w", err)
	}

	return enc.Close()
}
