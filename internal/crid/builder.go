//spellchecker:words crid
package crid

//spellchecker:words github ieograph internal ontology registry triplestore graph
import (
	"github.com/FAU-CDI/ieograph/internal/ontology"
	"github.com/FAU-CDI/ieograph/internal/registry"
	"github.com/FAU-CDI/ieograph/internal/triplestore/graph"
)

// Builder accumulates the CRIDs of records into a single graph.
//
// Before the first record of a database is mapped, the builder adds the declarations of its registry and version.
// A Builder is not safe for concurrent use.
type Builder struct {
	graph    *graph.Graph
	registry registry.Emitter
	declared map[shapeKey]struct{}

	// Products counts the exchanges mapped by product type
	Products map[ProductType]int
}

type shapeKey struct {
	shape Shape
	ns    ontology.Namespace
}

// NewBuilder creates a new builder adding to g, and adds the upper ontology to it.
func NewBuilder(g *graph.Graph) (*Builder, error) {
	if err := ontology.Upper(g); err != nil {
		return nil, err
	}
	return &Builder{
		graph:    g,
		declared: make(map[shapeKey]struct{}),
		Products: make(map[ProductType]int),
	}, nil
}

// Databases returns the number of database versions whose registry declarations were added.
func (b *Builder) Databases() int {
	return b.registry.Emitted()
}

// prepare adds the registry declarations for id and the class declarations of shape.
func (b *Builder) prepare(id registry.Identity, shape Shape) error {
	if err := b.registry.Emit(b.graph, id); err != nil {
		return err
	}

	key := shapeKey{shape: shape, ns: id.Namespace}
	if _, ok := b.declared[key]; ok {
		return nil
	}
	if err := b.graph.Add(shape.Declarations(id.Namespace)...); err != nil {
		return err
	}
	b.declared[key] = struct{}{}
	return nil
}

// Classification adds a classification code of the database id.
func (b *Builder) Classification(id registry.Identity, code ClassificationCode) error {
	if err := b.prepare(id, ClassificationShape); err != nil {
		return err
	}
	return MapClassification(b.graph, id, code)
}

// Activity adds an activity of the database id.
func (b *Builder) Activity(id registry.Identity, activity Activity) error {
	if err := b.prepare(id, ActivityShape); err != nil {
		return err
	}
	return MapActivity(b.graph, id, activity)
}

// IntermediateExchange adds an intermediate exchange of the database id.
func (b *Builder) IntermediateExchange(id registry.Identity, exchange IntermediateExchange) error {
	if err := b.prepare(id, IntermediateExchangeShape); err != nil {
		return err
	}
	product, err := MapIntermediateExchange(b.graph, id, exchange)
	if err != nil {
		return err
	}
	b.Products[product]++
	return nil
}

// ElementaryExchange adds an elementary exchange of the database id.
func (b *Builder) ElementaryExchange(id registry.Identity, exchange ElementaryExchange) error {
	if err := b.prepare(id, ElementaryExchangeShape); err != nil {
		return err
	}
	product, err := MapElementaryExchange(b.graph, id, exchange)
	if err != nil {
		return err
	}
	b.Products[product]++
	return nil
}
