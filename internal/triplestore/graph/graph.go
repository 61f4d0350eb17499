// Package graph implements the append-only triple set that output graphs are accumulated in.
package graph

//spellchecker:words errors slices github ieograph internal triplestore store term
import (
	"errors"
	"fmt"
	"slices"

	"github.com/FAU-CDI/ieograph/internal/triplestore/store"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// Stats holds statistics about insertions into a graph.
type Stats struct {
	Triples    uint64 // distinct triples in the graph
	Duplicates uint64 // insertions of an already present triple
}

func (stats Stats) String() string {
	return fmt.Sprintf("{triples:%d,duplicates:%d}", stats.Triples, stats.Duplicates)
}

// Graph is a set of triples.
// Triples can only be added, never removed or changed.
// Adding a triple that is already present has no effect.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	triples store.HashMap[string, term.Triple]
	stats   Stats
}

// New creates a new empty graph, storing triples in the given engine.
func New(engine Engine) (*Graph, error) {
	triples, err := engine.Triples()
	if err != nil {
		return nil, fmt.Errorf("failed to create triple store: %w", err)
	}
	return &Graph{triples: triples}, nil
}

// NewMemory creates a new empty graph held in memory.
func NewMemory() *Graph {
	g, err := New(MemoryEngine{})
	if err != nil {
		panic("NewMemory: memory engine failed (logic error)")
	}
	return g
}

var errClosed = errors.New("graph is closed")

// Add adds the given triples to this graph.
func (g *Graph) Add(triples ...term.Triple) error {
	if g.triples == nil {
		return errClosed
	}
	for _, triple := range triples {
		key := triple.Key()

		has, err := g.triples.Has(key)
		if err != nil {
			return fmt.Errorf("failed to check for triple %s: %w", key, err)
		}
		if has {
			g.stats.Duplicates++
			continue
		}

		if err := g.triples.Set(key, triple); err != nil {
			return fmt.Errorf("failed to store triple %s: %w", key, err)
		}
		g.stats.Triples++
	}
	return nil
}

// Has checks if the given triple is contained in this graph.
func (g *Graph) Has(triple term.Triple) (bool, error) {
	if g.triples == nil {
		return false, errClosed
	}
	return g.triples.Has(triple.Key())
}

// Len returns the number of distinct triples in this graph.
func (g *Graph) Len() int {
	return int(g.stats.Triples)
}

// Stats returns statistics about this graph.
func (g *Graph) Stats() Stats {
	return g.stats
}

// Triples returns all triples in this graph, sorted using [term.Triple.Compare].
func (g *Graph) Triples() ([]term.Triple, error) {
	if g.triples == nil {
		return nil, errClosed
	}

	triples := make([]term.Triple, 0, g.stats.Triples)
	if err := g.triples.Iterate(func(_ string, triple term.Triple) error {
		triples = append(triples, triple)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("failed to iterate triples: %w", err)
	}
	slices.SortFunc(triples, term.Triple.Compare)
	return triples, nil
}

// Close closes this graph and releases the underlying storage.
func (g *Graph) Close() error {
	if g.triples == nil {
		return nil
	}
	err := g.triples.Close()
	g.triples = nil
	return err
}
