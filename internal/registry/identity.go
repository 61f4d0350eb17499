// Package registry resolves the registry and version a source file belongs to.
package registry

//spellchecker:words github ieograph internal ontology triplestore term
import (
	"github.com/FAU-CDI/ieograph/internal/ontology"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
)

// Scheme identifies the kind of source a database identity was derived from.
type Scheme int

const (
	EcoSpold2 Scheme = iota
	ISIC
)

func (s Scheme) String() string {
	switch s {
	case EcoSpold2:
		return "EcoSpold2"
	case ISIC:
		return "ISIC"
	default:
		return "unknown"
	}
}

// Identity identifies a specific version of a registry.
type Identity struct {
	Scheme Scheme

	// Namespace holds all instances generated for this database.
	Namespace ontology.Namespace

	RegistryID    string // e.g. "de659012-50c4-4e96-b54a-fc781bf987ab" or "ISIC"
	RegistryLabel string // e.g. "EcoInvent"

	Major string // major release, or the revision for ISIC
	Minor string // minor release, unused for ISIC
}

// Version returns the version suffix of this database, e.g. "v3_1".
// It is appended to record identifiers to build CRIDs.
func (id Identity) Version() string {
	if id.Scheme == ISIC {
		return "_Rev" + id.Major
	}
	return "v" + id.Major + "_" + id.Minor
}

// DatabaseID returns the local name of this database version,
// e.g. "de659012-50c4-4e96-b54a-fc781bf987abv3_1" or "ISIC_Rev4".
func (id Identity) DatabaseID() string {
	return id.RegistryID + id.Version()
}

// DatabaseLabel returns the human-readable name of this database version,
// e.g. "EcoInventv3.1" or "International Standard Industrial Classification Rev4".
func (id Identity) DatabaseLabel() string {
	if id.Scheme == ISIC {
		return id.RegistryLabel + " Rev" + id.Major
	}
	return id.RegistryLabel + "v" + id.Major + "." + id.Minor
}

// Registry returns the node representing the registry itself.
func (id Identity) Registry() term.IRI {
	return id.Namespace.Term(id.RegistryID)
}

// Database returns the node representing this database version.
func (id Identity) Database() term.IRI {
	return id.Namespace.Term(id.DatabaseID())
}
