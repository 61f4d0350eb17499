// Package ieograph turns industrial classifications and life cycle master data into rdf graphs.
package ieograph

// cspell:words ieograph isterre obolibrary

// LegalText returns legal text to be included in human-readable output using ieograph.
func LegalText() string {
	return `
================================================================================
ieograph - master data to IEO knowledge graphs
================================================================================
Generated graphs use terms of the Industrial Ecology Ontology (http://www.isterre.fr/ieo/)
and of BFO, IAO and OBI (http://purl.obolibrary.org/obo/).

ISIC classifications are published by the United Nations Statistics Division,
EcoSpold2 master data by their respective database providers.
Their terms of use apply to any graph generated from them.
`
}
