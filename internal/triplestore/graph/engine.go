//spellchecker:words graph
package graph

//spellchecker:words path filepath github ieograph internal triplestore store term
import (
	"path/filepath"

	"github.com/FAU-CDI/ieograph/internal/triplestore/store"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// Engine creates the storage backing a Graph.
type Engine interface {
	// Triples returns a fresh store, mapping the key of each triple to the triple itself.
	Triples() (store.HashMap[string, term.Triple], error)
}

// MemoryEngine keeps all triples in memory.
type MemoryEngine struct{}

func (MemoryEngine) Triples() (store.HashMap[string, term.Triple], error) {
	ms := store.MakeMemory[string, term.Triple](0)
	return &ms, nil
}

// DiskEngine keeps all triples in a leveldb database inside Path.
type DiskEngine struct {
	Path string
}

func (de DiskEngine) Triples() (store.HashMap[string, term.Triple], error) {
	ds, err := store.NewDiskStorage[string, term.Triple](filepath.Join(de.Path, "triples.leveldb"))
	if err != nil {
		return nil, err
	}

	ds.MarshalKey = func(key string) ([]byte, error) {
		return []byte(key), nil
	}
	ds.UnmarshalKey = func(dest *string, src []byte) error {
		*dest = string(src)
		return nil
	}
	ds.MarshalValue = term.MarshalTriple
	ds.UnmarshalValue = term.UnmarshalTriple

	return ds, nil
}
