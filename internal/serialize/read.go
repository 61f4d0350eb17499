//spellchecker:words serialize
package serialize

//spellchecker:words errors github ieograph internal triplestore term cayleygraph quad nquads
import (
	"errors"
	"fmt"
	"io"

	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
)

var errUnsupportedTerm = errors.New("unsupported term")

// ReadNTriples reads triples in N-Triples syntax from r.
// Graph labels are ignored; blank nodes and typed literals are not supported.
func ReadNTriples(r io.Reader) (triples []term.Triple, err error) {
	reader := nquads.NewReader(r, true)
	defer func() {
		if e := reader.Close(); e != nil && err == nil {
			err = e
		}
	}()

	for {
		value, err := reader.ReadQuad()
		if errors.Is(err, io.EOF) {
			return triples, nil
		}
		if err != nil {
			return nil, err
		}

		triple, err := fromQuad(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", value, err)
		}
		triples = append(triples, triple)
	}
}

func fromQuad(value quad.Quad) (term.Triple, error) {
	subject, ok := value.Subject.(quad.IRI)
	if !ok {
		return term.Triple{}, fmt.Errorf("%w as subject: %T", errUnsupportedTerm, value.Subject)
	}
	predicate, ok := value.Predicate.(quad.IRI)
	if !ok {
		return term.Triple{}, fmt.Errorf("%w as predicate: %T", errUnsupportedTerm, value.Predicate)
	}

	switch object := value.Object.(type) {
	case quad.IRI:
		return term.Link(term.IRI(subject), term.IRI(predicate), term.IRI(object)), nil
	case quad.LangString:
		return term.Text(term.IRI(subject), term.IRI(predicate), string(object.Value), object.Lang), nil
	case quad.String:
		return term.Text(term.IRI(subject), term.IRI(predicate), string(object), ""), nil
	default:
		return term.Triple{}, fmt.Errorf("%w as object: %T", errUnsupportedTerm, value.Object)
	}
}
