//spellchecker:words serialize
package serialize

//spellchecker:words bufio encoding slices strconv strings github ieograph internal triplestore term
import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// cspell:words rdfs obolibrary isterre unstats unsd

const rdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// wellKnownPrefixes are used for predicate namespaces, when present.
var wellKnownPrefixes = map[string]string{
	rdfNamespace:                              "rdf",
	"http://www.w3.org/2000/01/rdf-schema#":   "rdfs",
	"http://purl.obolibrary.org/obo/":         "obo",
	"http://www.isterre.fr/ieo/":              "ieo",
	"https://unstats.un.org/unsd/cr/registry/": "isic",
}

// writeRDFXML writes triples in RDF/XML syntax.
// Triples must be sorted by subject.
func writeRDFXML(w io.Writer, triples []term.Triple) error {
	prefixes, err := predicatePrefixes(triples)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)

	out.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<rdf:RDF")
	namespaces := make([]string, 0, len(prefixes))
	for ns := range prefixes {
		namespaces = append(namespaces, ns)
	}
	slices.SortFunc(namespaces, func(a, b string) int {
		return strings.Compare(prefixes[a], prefixes[b])
	})
	for _, ns := range namespaces {
		fmt.Fprintf(out, "\n   xmlns:%s=\"", prefixes[ns])
		escape(out, ns)
		out.WriteString("\"")
	}
	out.WriteString("\n>\n")

	var subject term.IRI
	for i, triple := range triples {
		if i == 0 || triple.Subject != subject {
			if i != 0 {
				out.WriteString("  </rdf:Description>\n")
			}
			subject = triple.Subject
			out.WriteString("  <rdf:Description rdf:about=\"")
			escape(out, string(subject))
			out.WriteString("\">\n")
		}

		ns, local, _ := splitIRI(triple.Predicate)
		name := prefixes[ns] + ":" + local

		out.WriteString("    <" + name)
		if !triple.HasLiteral {
			out.WriteString(" rdf:resource=\"")
			escape(out, string(triple.Object))
			out.WriteString("\"/>\n")
			continue
		}
		if triple.Literal.Language != "" {
			out.WriteString(" xml:lang=\"")
			escape(out, triple.Literal.Language)
			out.WriteString("\"")
		}
		out.WriteString(">")
		escape(out, triple.Literal.Value)
		out.WriteString("</" + name + ">\n")
	}
	if len(triples) > 0 {
		out.WriteString("  </rdf:Description>\n")
	}
	out.WriteString("</rdf:RDF>\n")

	return out.Flush()
}

// predicatePrefixes assigns an xml prefix to the namespace of every predicate.
func predicatePrefixes(triples []term.Triple) (map[string]string, error) {
	prefixes := map[string]string{rdfNamespace: "rdf"}
	used := map[string]bool{"rdf": true}

	var fresh []string
	for _, triple := range triples {
		ns, _, ok := splitIRI(triple.Predicate)
		if !ok {
			return nil, fmt.Errorf("predicate %q cannot be written as an xml element name", triple.Predicate)
		}
		if _, ok := prefixes[ns]; ok {
			continue
		}
		if prefix, ok := wellKnownPrefixes[ns]; ok && !used[prefix] {
			prefixes[ns] = prefix
			used[prefix] = true
			continue
		}
		prefixes[ns] = ""
		fresh = append(fresh, ns)
	}

	slices.Sort(fresh)
	counter := 0
	for _, ns := range fresh {
		var prefix string
		for {
			counter++
			prefix = "ns" + strconv.Itoa(counter)
			if !used[prefix] {
				break
			}
		}
		prefixes[ns] = prefix
		used[prefix] = true
	}
	return prefixes, nil
}

// splitIRI splits iri into a namespace and a local part usable as an xml name.
func splitIRI(iri term.IRI) (ns, local string, ok bool) {
	value := string(iri)

	// the local part must be non-empty and start with a letter or underscore
	index := len(value)
	for index > 0 {
		r := value[index-1]
		if !isNameChar(r) {
			break
		}
		index--
	}
	for index < len(value) && !isNameStart(value[index]) {
		index++
	}
	if index == len(value) || index == 0 {
		return "", "", false
	}
	return value[:index], value[index:], true
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || c == '-' || c == '.' || ('0' <= c && c <= '9')
}

func escape(w io.Writer, value string) {
	// errors are reported by the final flush of the buffered writer
	_ = xml.EscapeText(w, []byte(value))
}
