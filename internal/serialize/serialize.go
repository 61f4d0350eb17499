//spellchecker:words serialize
package serialize

//spellchecker:words errors path filepath github ieograph internal triplestore term progress anglo korean cayleygraph quad jsonld nquads
import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
	"github.com/FAU-CDI/ieograph/pkg/progress"
	"github.com/anglo-korean/rdf"
	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/jsonld"
	"github.com/cayleygraph/quad/nquads"
)

// Write writes triples to w in the given format.
// Triples should be sorted, as returned by [graph.Graph.Triples].
func Write(w io.Writer, format Format, triples []term.Triple) error {
	switch format {
	case RDFXML:
		return writeRDFXML(w, triples)
	case JSONLD:
		return writeQuads(jsonld.NewWriter(w), triples)
	case N3:
		return writeN3(w, triples)
	case NTriples:
		return writeQuads(nquads.NewWriter(w), triples)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

type quadWriter interface {
	WriteQuad(quad.Quad) error
	Close() error
}

func writeQuads(writer quadWriter, triples []term.Triple) (err error) {
	defer func() {
		if e := writer.Close(); e != nil && err == nil {
			err = e
		}
	}()

	for _, triple := range triples {
		if err := writer.WriteQuad(triple.Quad()); err != nil {
			return err
		}
	}
	return nil
}

func writeN3(w io.Writer, triples []term.Triple) (err error) {
	encoder := rdf.NewTripleEncoder(w, rdf.Turtle)
	defer func() {
		if e := encoder.Close(); e != nil && err == nil {
			err = e
		}
	}()

	for _, triple := range triples {
		spo, err := triple.Triple()
		if err != nil {
			return fmt.Errorf("failed to convert %s: %w", triple, err)
		}
		if err := encoder.Encode(spo); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes triples into the file at path.
//
// Triples are first written to a temporary file in the same directory, which is renamed to path only once writing succeeded.
// If writing fails, path is left untouched.
//
// If status is not nil, the number of bytes written is reported to it.
func WriteFile(path string, format Format, triples []term.Triple, status io.Writer) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	temp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		// the temporary file may already be closed
		_ = temp.Close()
		err = errors.Join(err, os.Remove(temp.Name()))
	}()

	var w io.Writer = temp
	if status != nil {
		pw := &progress.Writer{Writer: temp}
		pw.Rewritable.Writer = status
		pw.Rewritable.FlushInterval = progress.DefaultFlushInterval
		defer pw.Rewritable.Close()
		w = pw
	}

	if err := Write(w, format, triples); err != nil {
		return err
	}
	if err := temp.Chmod(0o644); err != nil {
		return err
	}
	if err := temp.Sync(); err != nil {
		return err
	}
	if err := temp.Close(); err != nil {
		return err
	}
	return os.Rename(temp.Name(), path)
}
