//spellchecker:words registry
package registry

//spellchecker:words github ieograph internal ontology triplestore graph term
import (
	"github.com/FAU-CDI/ieograph/internal/ontology"
	"github.com/FAU-CDI/ieograph/internal/triplestore/graph"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// Triples returns the triples declaring the registry and the database version of id.
func Triples(id Identity) []term.Triple {
	registryType, versionType := ontology.LifeCycleRegistry, ontology.RegistryVersion
	if id.Scheme == ISIC {
		registryType = ontology.ActivityRegistry
	}

	registry, database := id.Registry(), id.Database()
	return []term.Triple{
		registryType.Labeled(),
		term.Link(registry, ontology.Type, registryType.IRI()),
		term.Text(registry, ontology.Label, id.RegistryLabel, ""),

		versionType.Labeled(),
		term.Link(database, ontology.Type, versionType.IRI()),
		term.Text(database, ontology.Label, id.DatabaseLabel(), ""),
		term.Link(database, ontology.Denotes.IRI(), registry),
	}
}

// Emitter adds registry declarations to a graph, once per database version.
//
// An Emitter must only be used with a single graph.
type Emitter struct {
	emitted map[string]struct{}
}

// Emit adds the registry and version declarations of id to g, unless they were already added by this emitter.
func (e *Emitter) Emit(g *graph.Graph, id Identity) error {
	key := string(id.Database())
	if _, ok := e.emitted[key]; ok {
		return nil
	}

	if err := g.Add(Triples(id)...); err != nil {
		return err
	}
	if err := ontology.Vocabulary(g); err != nil {
		return err
	}

	if e.emitted == nil {
		e.emitted = make(map[string]struct{})
	}
	e.emitted[key] = struct{}{}
	return nil
}

// Emitted returns the number of database versions emitted.
func (e *Emitter) Emitted() int {
	return len(e.emitted)
}
