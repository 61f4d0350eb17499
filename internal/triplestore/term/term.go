// Package term provides the values that make up triples.
package term

//spellchecker:words cmp encoding json strings github anglo korean cayleygraph quad
import (
	"cmp"
	"encoding/json"
	"strings"

	"github.com/anglo-korean/rdf"
	"github.com/cayleygraph/quad"
)

// IRI represents a node or predicate of the graph.
type IRI string

// Literal represents a literal object, optionally tagged with a language.
type Literal struct {
	Value    string
	Language string
}

// Triple represents a single statement of a graph.
//
// It can represent one of two states:
//
// 1. a (subject, predicate, object) triple, HasLiteral = false
// 2. a (subject, predicate, literal) triple, HasLiteral = true
type Triple struct {
	Subject   IRI
	Predicate IRI
	Object    IRI

	Literal    Literal
	HasLiteral bool
}

// Link returns a triple linking subject to object.
func Link(subject, predicate, object IRI) Triple {
	return Triple{Subject: subject, Predicate: predicate, Object: object}
}

// Text returns a triple assigning a (possibly language-tagged) literal to subject.
// An empty language produces a plain literal.
func Text(subject, predicate IRI, value, language string) Triple {
	return Triple{
		Subject:   subject,
		Predicate: predicate,

		Literal:    Literal{Value: value, Language: language},
		HasLiteral: true,
	}
}

// Key returns the N-Triples encoding of this triple, without the trailing newline.
// Two triples are identical iff their keys are identical.
func (triple Triple) Key() string {
	var builder strings.Builder
	writeIRI(&builder, triple.Subject)
	builder.WriteByte(' ')
	writeIRI(&builder, triple.Predicate)
	builder.WriteByte(' ')
	if triple.HasLiteral {
		builder.WriteByte('"')
		literalEscaper.WriteString(&builder, triple.Literal.Value)
		builder.WriteByte('"')
		if triple.Literal.Language != "" {
			builder.WriteByte('@')
			builder.WriteString(triple.Literal.Language)
		}
	} else {
		writeIRI(&builder, triple.Object)
	}
	builder.WriteString(" .")
	return builder.String()
}

func (triple Triple) String() string {
	return triple.Key()
}

func writeIRI(builder *strings.Builder, iri IRI) {
	builder.WriteByte('<')
	builder.WriteString(string(iri))
	builder.WriteByte('>')
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Compare orders triples by subject, predicate and then object.
// IRI objects sort before literal objects.
func (triple Triple) Compare(other Triple) int {
	if c := cmp.Compare(triple.Subject, other.Subject); c != 0 {
		return c
	}
	if c := cmp.Compare(triple.Predicate, other.Predicate); c != 0 {
		return c
	}
	if triple.HasLiteral != other.HasLiteral {
		if triple.HasLiteral {
			return 1
		}
		return -1
	}
	if !triple.HasLiteral {
		return cmp.Compare(triple.Object, other.Object)
	}
	if c := cmp.Compare(triple.Literal.Value, other.Literal.Value); c != 0 {
		return c
	}
	return cmp.Compare(triple.Literal.Language, other.Literal.Language)
}

// Quad returns this triple as a quad in the default graph.
func (triple Triple) Quad() quad.Quad {
	q := quad.Quad{
		Subject:   quad.IRI(triple.Subject),
		Predicate: quad.IRI(triple.Predicate),
	}
	switch {
	case !triple.HasLiteral:
		q.Object = quad.IRI(triple.Object)
	case triple.Literal.Language != "":
		q.Object = quad.LangString{Value: quad.String(triple.Literal.Value), Lang: triple.Literal.Language}
	default:
		q.Object = quad.String(triple.Literal.Value)
	}
	return q
}

// Triple returns this triple as an rdf triple
func (triple Triple) Triple() (spo rdf.Triple, err error) {
	spo.Subj, err = rdf.NewIRI(string(triple.Subject))
	if err != nil {
		return rdf.Triple{}, err
	}

	spo.Pred, err = rdf.NewIRI(string(triple.Predicate))
	if err != nil {
		return rdf.Triple{}, err
	}

	switch {
	case !triple.HasLiteral:
		spo.Obj, err = rdf.NewIRI(string(triple.Object))
	case triple.Literal.Language != "":
		spo.Obj, err = rdf.NewLangLiteral(triple.Literal.Value, triple.Literal.Language)
	default:
		spo.Obj, err = rdf.NewLiteral(triple.Literal.Value)
	}
	if err != nil {
		return rdf.Triple{}, err
	}
	return spo, nil
}

// MarshalTriple encodes a triple as a set of bytes.
func MarshalTriple(triple Triple) ([]byte, error) {
	return json.Marshal(&triple)
}

// UnmarshalTriple decodes a triple from a set of bytes.
func UnmarshalTriple(dest *Triple, src []byte) error {
	return json.Unmarshal(src, dest)
}
