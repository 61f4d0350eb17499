//spellchecker:words crid
package crid

//spellchecker:words github ieograph internal ontology
import (
	"fmt"

	"github.com/FAU-CDI/ieograph/internal/ontology"
)

// ProductType is the kind of thing an exchange refers to.
type ProductType int

const (
	MaterialGood ProductType = iota
	Service
	ToSort
)

// Term returns the ontology class of this product type.
func (pt ProductType) Term() ontology.Term {
	switch pt {
	case MaterialGood:
		return ontology.MaterialEntity
	case Service:
		return ontology.Service
	case ToSort:
		return ontology.ToSort
	default:
		panic(fmt.Sprintf("crid: unknown product type %d", int(pt)))
	}
}

func (pt ProductType) String() string {
	switch pt {
	case MaterialGood:
		return "material good"
	case Service:
		return "service"
	case ToSort:
		return "to sort"
	default:
		return "unknown"
	}
}

// ExchangeKind distinguishes intermediate from elementary exchanges.
type ExchangeKind int

const (
	Intermediate ExchangeKind = iota
	Elementary
)

// units of products known to be goods
var goodUnits = map[string]struct{}{
	"m3":   {},
	"unit": {},
	"km":   {},
}

// units of products known to be services.
// kg, m, m2 and MJ are used for both.
var serviceUnits = map[string]struct{}{
	"ha":            {},
	"hour":          {},
	"kWh":           {},
	"km*year":       {},
	"kg*day":        {},
	"m*year":        {},
	"m2*year":       {},
	"m3*year":       {},
	"metric ton*km": {},
	"l":             {},
	"person*km":     {},
}

// Classify decides the type of the product denoted by an exchange.
//
// Only goods have properties, so a declared property implies a material good.
// Otherwise the unit decides.
// Elementary exchanges refer to substances, which are never services.
func Classify(kind ExchangeKind, hasProperty bool, unit string) ProductType {
	if hasProperty {
		return MaterialGood
	}
	if _, ok := goodUnits[unit]; ok {
		return MaterialGood
	}
	if kind == Intermediate {
		if _, ok := serviceUnits[unit]; ok {
			return Service
		}
	}
	return ToSort
}
