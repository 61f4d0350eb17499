//spellchecker:words ontology
package ontology

//spellchecker:words strings github ieograph internal triplestore term cayleygraph quad rdfs
import (
	"strings"

	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

// cspell:words obolibrary isterre unstats unsd

// Namespace is an IRI prefix that local names are appended to.
type Namespace string

const (
	// OBO holds the terms borrowed from BFO, OBI and IAO.
	OBO Namespace = "http://purl.obolibrary.org/obo/"

	// IEO holds the terms of the industrial ecology ontology.
	IEO Namespace = "http://www.isterre.fr/ieo/"

	// ISIC holds the instances generated from ISIC classifications.
	ISIC Namespace = "https://unstats.un.org/unsd/cr/registry/"
)

// Term returns the IRI of local within this namespace.
// Characters that may not appear inside an IRI are percent-encoded.
// A '%' is kept only when it starts a valid percent-encoding.
func (ns Namespace) Term(local string) term.IRI {
	return term.IRI(string(ns) + iriEscaper.Replace(escapePercent(local)))
}

// escapePercent encodes every '%' of s that is not followed by two hex digits.
func escapePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && (i+2 >= len(s) || !isHex(s[i+1]) || !isHex(s[i+2])) {
			builder.WriteString("%25")
			continue
		}
		builder.WriteByte(s[i])
	}
	return builder.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

var iriEscaper = strings.NewReplacer(
	" ", "%20",
	"<", "%3C",
	">", "%3E",
	`"`, "%22",
	"{", "%7B",
	"}", "%7D",
	"|", "%7C",
	`\`, "%5C",
	"^", "%5E",
	"`", "%60",
	"\n", "%0A",
	"\r", "%0D",
	"\t", "%09",
)

// Predicates from the rdf and rdfs vocabularies
var (
	Type       = term.IRI(quad.IRI(rdf.Type).Full())
	Label      = term.IRI(quad.IRI(rdfs.Label).Full())
	Comment    = term.IRI(quad.IRI(rdfs.Comment).Full())
	SubClassOf = term.IRI(quad.IRI(rdfs.SubClassOf).Full())
)
