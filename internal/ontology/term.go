// Package ontology defines the fixed ontology terms output graphs are aligned to.
package ontology

//spellchecker:words github ieograph internal triplestore term
import (
	"fmt"

	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// Term is one of the fixed ontology terms.
type Term int

const (
	// IAO
	CRIDSymbol Term = iota
	CRID
	CRIDRegistry

	// IEO
	RegistryVersion
	LifeCycleRegistry
	ReferenceActivity
	ActivityCRID
	ActivityRegistry
	ReferenceProduct
	ProductCRID
	ProductRegistry
	ToSort

	// BFO and OBI
	MaterialEntity
	Service

	// relations
	HasPart
	PartOf
	Denotes

	termCount
)

type termInfo struct {
	ns     Namespace
	local  string
	label  string
	parent Term // -1 if there is no parent
}

var terms = [termCount]termInfo{
	CRIDSymbol:   {OBO, "IAO_0000577", "centrally registered identifier symbol", -1},
	CRID:         {OBO, "IAO_0000578", "centrally registered identifier", -1},
	CRIDRegistry: {OBO, "IAO_0000579", "centrally registered identifier registry", -1},

	RegistryVersion:   {IEO, "IEO_0000043", "registry version", CRIDSymbol},
	LifeCycleRegistry: {IEO, "IEO_0000044", "life cycle database registry", CRIDRegistry},
	ReferenceActivity: {IEO, "IEO_0000065", "reference activity", CRIDSymbol},
	ActivityCRID:      {IEO, "IEO_0000066", "reference activity identifier", CRID},
	ActivityRegistry:  {IEO, "IEO_0000067", "reference activity registry", CRIDRegistry},
	ReferenceProduct:  {IEO, "IEO_0000068", "reference product", CRIDSymbol},
	ProductCRID:       {IEO, "IEO_0000069", "reference product identifier", CRID},
	ProductRegistry:   {IEO, "IEO_0000070", "reference product registry", CRIDRegistry},
	ToSort:            {IEO, "to_sort", "to sort", -1},

	MaterialEntity: {OBO, "BFO_0000040", "material entity", -1},
	Service:        {OBO, "OBI_0001173", "service", -1},

	HasPart: {OBO, "BFO_0000051", "has part", -1},
	PartOf:  {OBO, "BFO_0000050", "part of", -1},
	Denotes: {OBO, "IAO_0000219", "denotes", -1},
}

// ToSortComment is attached to [ToSort] wherever it is used.
const ToSortComment = "Provisional classification of a product that could be neither identified as a material entity nor as a service. " +
	"Instances of this class are pending manual review and are to be re-classified."

func (t Term) info() termInfo {
	if t < 0 || t >= termCount {
		panic(fmt.Sprintf("ontology: unknown term %d", int(t)))
	}
	return terms[t]
}

// IRI returns the iri of this term.
func (t Term) IRI() term.IRI {
	info := t.info()
	return info.ns.Term(info.local)
}

// Label returns the english label of this term.
func (t Term) Label() string {
	return t.info().label
}

// Parent returns the term this term is a subclass of, if any.
func (t Term) Parent() (Term, bool) {
	parent := t.info().parent
	return parent, parent >= 0
}

func (t Term) String() string {
	return t.Label()
}

// Labeled returns the triple assigning the english label to this term.
func (t Term) Labeled() term.Triple {
	return term.Text(t.IRI(), Label, t.Label(), "en")
}
