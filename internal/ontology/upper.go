//spellchecker:words ontology
package ontology

//spellchecker:words github ieograph internal triplestore graph term
import (
	"github.com/FAU-CDI/ieograph/internal/triplestore/graph"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// upperTerms are the terms declared by [Upper].
var upperTerms = [...]Term{
	CRIDSymbol, CRID, CRIDRegistry,
	RegistryVersion, LifeCycleRegistry,
	ReferenceActivity, ActivityCRID, ActivityRegistry,
	ReferenceProduct, ProductCRID, ProductRegistry,
}

// UpperTriples returns the label and subclass declarations linking the IEO terms to the IAO terms.
func UpperTriples() []term.Triple {
	triples := make([]term.Triple, 0, 2*len(upperTerms))
	for _, t := range upperTerms {
		triples = append(triples, t.Labeled())
		if parent, ok := t.Parent(); ok {
			triples = append(triples, term.Link(t.IRI(), SubClassOf, parent.IRI()))
		}
	}
	return triples
}

// Upper adds the upper ontology declarations to g.
// It must be called before any domain facts are added; calling it more than once has no further effect.
func Upper(g *graph.Graph) error {
	return g.Add(UpperTriples()...)
}

// Vocabulary adds labels for the relations and product classes to g.
func Vocabulary(g *graph.Graph) error {
	return g.Add(
		Denotes.Labeled(),
		HasPart.Labeled(),
		PartOf.Labeled(),
		MaterialEntity.Labeled(),
		Service.Labeled(),
	)
}

// DeclareToSort adds the label and the provisional-classification comment of [ToSort] to g.
func DeclareToSort(g *graph.Graph) error {
	return g.Add(
		ToSort.Labeled(),
		term.Text(ToSort.IRI(), Comment, ToSortComment, "en"),
	)
}
