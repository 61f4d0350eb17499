// Package serialize writes triples in one of the supported rdf syntaxes.
package serialize

//spellchecker:words errors strings
import (
	"errors"
	"fmt"
	"strings"
)

// Format is an rdf syntax a graph can be written in.
type Format int

const (
	RDFXML Format = iota
	JSONLD
	N3
	NTriples
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = RDFXML

var formats = [...]struct {
	name      string
	extension string
}{
	RDFXML:   {"xml", ".rdf"},
	JSONLD:   {"json-ld", ".json"},
	N3:       {"n3", ".n3"},
	NTriples: {"nt", ".nt"},
}

var ErrUnknownFormat = errors.New("unknown format")

// Names returns the names of all formats, in order.
func Names() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.name
	}
	return names
}

// ParseFormat parses the name of a format, as returned by String.
func ParseFormat(name string) (Format, error) {
	for i, f := range formats {
		if strings.EqualFold(f.name, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q: expected one of %s", ErrUnknownFormat, name, strings.Join(Names(), ", "))
}

func (f Format) valid() bool {
	return f >= 0 && int(f) < len(formats)
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].name
}

// Extension returns the file extension used for this format, including the leading dot.
func (f Format) Extension() string {
	if !f.valid() {
		return ""
	}
	return formats[f].extension
}

// Set implements [flag.Value].
func (f *Format) Set(value string) error {
	parsed, err := ParseFormat(value)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
