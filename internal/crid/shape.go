//spellchecker:words crid
package crid

//spellchecker:words github ieograph internal ontology triplestore term
import (
	"fmt"

	"github.com/FAU-CDI/ieograph/internal/ontology"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// Shape is the kind of record a CRID is built from.
type Shape int

const (
	ClassificationShape Shape = iota
	ActivityShape
	IntermediateExchangeShape
	ElementaryExchangeShape
)

type shapeInfo struct {
	name string

	crid   string        // local name of the CRID class
	entity string        // local name of the bare entity class
	parent ontology.Term // parent of the crid class
	kind   ontology.Term // parent of the bare entity class
}

var shapes = [...]shapeInfo{
	ClassificationShape:       {"classification code", "classification", "industrial_sector_label", ontology.ActivityCRID, ontology.ReferenceActivity},
	ActivityShape:             {"activity", "activityId", "activity_name", ontology.ActivityCRID, ontology.ReferenceActivity},
	IntermediateExchangeShape: {"intermediate exchange", "interm_exch_Id", "interm_exch_name", ontology.ProductCRID, ontology.ReferenceProduct},
	ElementaryExchangeShape:   {"elementary exchange", "elementary_exchange_id", "elem_exch_name", ontology.ProductCRID, ontology.ReferenceProduct},
}

func (s Shape) info() shapeInfo {
	if s < 0 || int(s) >= len(shapes) {
		panic(fmt.Sprintf("crid: unknown shape %d", int(s)))
	}
	return shapes[s]
}

func (s Shape) String() string {
	return s.info().name
}

// CRIDClass returns the class of CRIDs of this shape within ns.
func (s Shape) CRIDClass(ns ontology.Namespace) term.IRI {
	return ns.Term(s.info().crid)
}

// EntityClass returns the class of bare entities of this shape within ns.
func (s Shape) EntityClass(ns ontology.Namespace) term.IRI {
	return ns.Term(s.info().entity)
}

// Declarations returns the triples placing the classes of this shape within the upper ontology.
func (s Shape) Declarations(ns ontology.Namespace) []term.Triple {
	info := s.info()
	return []term.Triple{
		term.Link(s.CRIDClass(ns), ontology.SubClassOf, info.parent.IRI()),
		term.Link(s.EntityClass(ns), ontology.SubClassOf, info.kind.IRI()),
	}
}
