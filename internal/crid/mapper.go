//spellchecker:words crid
package crid

//spellchecker:words errors github ieograph internal ontology registry triplestore graph term
import (
	"errors"

	"github.com/FAU-CDI/ieograph/internal/ontology"
	"github.com/FAU-CDI/ieograph/internal/registry"
	"github.com/FAU-CDI/ieograph/internal/triplestore/graph"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// cspell:words prod

// productSuffix is appended to the id of an exchange to form the id of the product it denotes.
const productSuffix = "t_prod"

var errEmptyIdentifier = errors.New("label does not contain any identifier characters")

// parts returns the type and part triples of a CRID node and its bare entity.
// The has-part and part-of relations are always added in pairs.
func parts(shape Shape, id registry.Identity, node, entity term.IRI) []term.Triple {
	database := id.Database()
	return []term.Triple{
		term.Link(node, ontology.Type, shape.CRIDClass(id.Namespace)),
		term.Link(entity, ontology.Type, shape.EntityClass(id.Namespace)),

		term.Link(node, ontology.HasPart.IRI(), database),
		term.Link(database, ontology.PartOf.IRI(), node),
		term.Link(node, ontology.HasPart.IRI(), entity),
		term.Link(entity, ontology.PartOf.IRI(), node),
	}
}

// MapClassification adds the CRID of an entry of a classification to g.
func MapClassification(g *graph.Graph, id registry.Identity, code ClassificationCode) error {
	switch {
	case code.Code == "":
		return &RecordError{Shape: ClassificationShape, Record: code.Label, Field: "code", Err: ErrMissingField}
	case code.Label == "":
		return &RecordError{Shape: ClassificationShape, Record: code.Code, Field: "label", Err: ErrMissingField}
	}

	local := Sanitize(code.Label)
	if local == "" {
		return &RecordError{Shape: ClassificationShape, Record: code.Code, Field: "label", Err: errEmptyIdentifier}
	}

	var (
		ns     = id.Namespace
		node   = ns.Term(id.DatabaseID() + "_" + code.Code)
		entity = ns.Term(local)
	)

	triples := parts(ClassificationShape, id, node, entity)
	triples = append(triples,
		term.Text(node, ontology.Label, id.DatabaseID()+":"+code.Code+" "+code.Label, "en"),
		term.Text(entity, ontology.Label, code.Label, "en"),
	)
	return g.Add(triples...)
}

// MapActivity adds the CRID of an activity name to g.
func MapActivity(g *graph.Graph, id registry.Identity, activity Activity) error {
	if activity.ID == "" {
		return &RecordError{Shape: ActivityShape, Field: "id", Err: ErrMissingField}
	}

	var (
		ns     = id.Namespace
		node   = ns.Term(activity.ID + id.Version())
		entity = ns.Term(activity.ID)
		prefix = id.DatabaseLabel() + ":"
	)

	triples := parts(ActivityShape, id, node, entity)
	for _, name := range activity.Names {
		triples = append(triples,
			term.Text(node, ontology.Label, prefix+name.Text, name.Language),
			term.Text(entity, ontology.Label, name.Text, name.Language),
		)
	}
	return g.Add(triples...)
}

// MapIntermediateExchange adds the CRID of an intermediate exchange, and the product it denotes, to g.
func MapIntermediateExchange(g *graph.Graph, id registry.Identity, exchange IntermediateExchange) (ProductType, error) {
	return mapExchange(g, id, IntermediateExchangeShape, exchange.Exchange, exchange.Names)
}

// MapElementaryExchange adds the CRID of an elementary exchange, and the substance it denotes, to g.
//
// Elementary exchanges are labeled as "{name}, in {compartment}, {subcompartment}".
// Names in a language lacking a compartment or subcompartment are skipped.
func MapElementaryExchange(g *graph.Graph, id registry.Identity, exchange ElementaryExchange) (ProductType, error) {
	names := make([]Name, 0, len(exchange.Names))
	for _, name := range exchange.Names {
		compartment, ok := exchange.Compartments[name.Language]
		if !ok {
			continue
		}
		subcompartment, ok := exchange.Subcompartments[name.Language]
		if !ok {
			continue
		}
		names = append(names, Name{
			Language: name.Language,
			Text:     name.Text + ", in " + compartment + ", " + subcompartment,
		})
	}
	return mapExchange(g, id, ElementaryExchangeShape, exchange.Exchange, names)
}

func mapExchange(g *graph.Graph, id registry.Identity, shape Shape, exchange Exchange, names []Name) (ProductType, error) {
	if exchange.ID == "" {
		return 0, &RecordError{Shape: shape, Field: "id", Err: ErrMissingField}
	}
	if !exchange.HasProperty && !exchange.HasUnit {
		return 0, &RecordError{Shape: shape, Record: exchange.ID, Field: "unitName", Err: ErrMissingField}
	}

	kind := Intermediate
	if shape == ElementaryExchangeShape {
		kind = Elementary
	}
	product := Classify(kind, exchange.HasProperty, exchange.UnitName)

	var (
		ns      = id.Namespace
		node    = ns.Term(exchange.ID + id.Version())
		entity  = ns.Term(exchange.ID)
		denoted = ns.Term(exchange.ID + productSuffix)
		prefix  = id.DatabaseLabel() + ":"
	)

	triples := parts(shape, id, node, entity)
	triples = append(triples,
		term.Link(entity, ontology.Denotes.IRI(), denoted),
		term.Link(denoted, ontology.Type, product.Term().IRI()),
	)
	for _, name := range names {
		triples = append(triples,
			term.Text(node, ontology.Label, prefix+name.Text, name.Language),
			term.Text(entity, ontology.Label, name.Text, name.Language),
			term.Text(denoted, ontology.Label, name.Text, name.Language),
		)
	}

	if err := g.Add(triples...); err != nil {
		return product, err
	}
	if product == ToSort {
		return product, ontology.DeclareToSort(g)
	}
	return product, nil
}
