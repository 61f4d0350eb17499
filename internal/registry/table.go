//spellchecker:words registry
package registry

//spellchecker:words errors path filepath strings github google uuid pelletier toml gopkg yaml
import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Entry describes a registry known for a specific xml namespace.
type Entry struct {
	Namespace string `toml:"namespace" yaml:"namespace"`
	ID        string `toml:"id"        yaml:"id"`
	Label     string `toml:"label"     yaml:"label"`
}

// Table maps xml namespaces to registries.
type Table map[string]Entry

// EcoInventNamespace is the namespace of EcoSpold2 files published by EcoInvent.
const EcoInventNamespace = "http://www.EcoInvent.org/EcoSpold02"

// DefaultTable returns a new table holding the registries known out of the box.
func DefaultTable() Table {
	return Table{
		EcoInventNamespace: {
			Namespace: EcoInventNamespace,
			ID:        "de659012-50c4-4e96-b54a-fc781bf987ab",
			Label:     "EcoInvent",
		},
	}
}

// Lookup returns the registry for the given namespace.
func (table Table) Lookup(namespace string) (Entry, bool) {
	entry, ok := table[namespace]
	return entry, ok
}

var (
	errNoNamespace = errors.New("missing namespace")
	errNoLabel     = errors.New("missing label")
)

// Validate checks that this entry has a namespace, a label and a uuid as id.
func (entry Entry) Validate() error {
	if entry.Namespace == "" {
		return errNoNamespace
	}
	if entry.Label == "" {
		return errNoLabel
	}
	if _, err := uuid.Parse(entry.ID); err != nil {
		return fmt.Errorf("invalid registry id %q: %w", entry.ID, err)
	}
	return nil
}

// tableFile is the structure of a registry configuration file.
type tableFile struct {
	Registry []Entry `toml:"registry" yaml:"registry"`
}

// unmarshal decodes data into file, depending on the extension of path.
// Files ending in ".yaml" or ".yml" are yaml, all other files are toml.
func (file *tableFile) unmarshal(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, file)
	default:
		return toml.Unmarshal(data, file)
	}
}

// LoadTable reads additional registries from the toml or yaml file at path.
// Entries in the file take precedence over entries in table.
func (table Table) LoadTable(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read registry file %q: %w", path, err)
	}

	var file tableFile
	if err := file.unmarshal(path, data); err != nil {
		return fmt.Errorf("failed to parse registry file %q: %w", path, err)
	}

	for i, entry := range file.Registry {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("registry file %q: entry %d: %w", path, i, err)
		}
		table[entry.Namespace] = entry
	}
	return nil
}
