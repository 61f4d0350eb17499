//spellchecker:words registry
package registry_test

//spellchecker:words path filepath testing github ieograph internal prompt registry triplestore graph stretchr testify assert require
import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/FAU-CDI/ieograph/internal/prompt"
	"github.com/FAU-CDI/ieograph/internal/registry"
	"github.com/FAU-CDI/ieograph/internal/triplestore/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleIdentity() {
	var r registry.Resolver

	spold, _ := r.MasterData(registry.EcoInventNamespace, "3", "1")
	fmt.Println(spold.DatabaseID())
	fmt.Println(spold.DatabaseLabel())
	fmt.Println(spold.Database())

	isic, _ := r.Classification(4)
	fmt.Println(isic.DatabaseID())
	fmt.Println(isic.DatabaseLabel())

	// Output: de659012-50c4-4e96-b54a-fc781bf987abv3_1
	// EcoInventv3.1
	// http://www.ecoinvent.org/ecospold02#de659012-50c4-4e96-b54a-fc781bf987abv3_1
	// ISIC_Rev4
	// International Standard Industrial Classification Rev4
}

func TestResolver_MasterData(t *testing.T) {
	t.Parallel()

	const namespace = "http://example.com/EcoSpold02"

	t.Run("unknown namespace asks the operator", func(t *testing.T) {
		t.Parallel()

		p := &prompt.Scripted{Answers: []string{"", "ABC-Registry", "Example DB"}}
		r := registry.Resolver{Prompter: p}

		id, err := r.MasterData(namespace, "1", "0")
		require.NoError(t, err)
		assert.Equal(t, "abc-registry", id.RegistryID)
		assert.Equal(t, "Example DB", id.RegistryLabel)
		assert.Equal(t, "abc-registryv1_0", id.DatabaseID())
		assert.Len(t, p.Messages, 2, "one notice and one rejected empty answer")

		// the answer is remembered
		_, err = r.MasterData(namespace, "1", "1")
		require.NoError(t, err)
		assert.Len(t, p.Questions, 3)
	})

	t.Run("unknown namespace without prompter fails", func(t *testing.T) {
		t.Parallel()

		var r registry.Resolver
		_, err := r.MasterData(namespace, "1", "0")
		assert.ErrorIs(t, err, registry.ErrUnknownRegistry)
		assert.ErrorIs(t, err, prompt.ErrNonInteractive)
	})

	t.Run("configured namespace", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "registries.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[[registry]]
namespace = "http://example.com/EcoSpold02"
id = "0b3a1b3c-2f4e-4f5c-9a59-5d3c9e3f4a21"
label = "Example"
`), 0o600))

		r := registry.Resolver{Table: registry.DefaultTable()}
		require.NoError(t, r.Table.LoadTable(path))

		id, err := r.MasterData(namespace, "2", "5")
		require.NoError(t, err)
		assert.Equal(t, "Examplev2.5", id.DatabaseLabel())

		_, err = r.MasterData(registry.EcoInventNamespace, "3", "1")
		require.NoError(t, err)
	})
}

func TestTable_LoadTable_YAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "registries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
registry:
  - namespace: http://example.com/EcoSpold02
    id: 0b3d5e06-4e0c-4d3c-9f3a-6a4d58f0a0c1
    label: Example
`), 0o600))

	table := registry.DefaultTable()
	require.NoError(t, table.LoadTable(path))

	entry, ok := table.Lookup("http://example.com/EcoSpold02")
	require.True(t, ok)
	assert.Equal(t, "Example", entry.Label)
	assert.Equal(t, "0b3d5e06-4e0c-4d3c-9f3a-6a4d58f0a0c1", entry.ID)
}

func TestTable_LoadTable_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "registries.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[registry]]
namespace = "http://example.com/EcoSpold02"
id = "not-a-uuid"
label = "Example"
`), 0o600))

	err := registry.DefaultTable().LoadTable(path)
	assert.ErrorContains(t, err, "not-a-uuid")
}

func TestResolver_Classification(t *testing.T) {
	t.Parallel()

	p := &prompt.Scripted{Answers: []string{"four", "4"}}
	r := registry.Resolver{Prompter: p}

	id, err := r.Classification(0)
	require.NoError(t, err)
	assert.Equal(t, "ISIC_Rev4", id.DatabaseID())

	p = &prompt.Scripted{Answers: []string{"a", "b"}}
	r = registry.Resolver{Prompter: p, MaxAttempts: 2}
	_, err = r.Classification(-1)
	assert.ErrorIs(t, err, registry.ErrInvalidVersion)
	assert.ErrorIs(t, err, prompt.ErrTooManyAttempts)
}

func TestEmitter(t *testing.T) {
	t.Parallel()

	var r registry.Resolver
	id, err := r.MasterData(registry.EcoInventNamespace, "3", "1")
	require.NoError(t, err)

	g := graph.NewMemory()
	defer g.Close()

	var e registry.Emitter
	require.NoError(t, e.Emit(g, id))
	before := g.Stats()

	require.NoError(t, e.Emit(g, id))
	assert.Equal(t, before, g.Stats(), "second emission must not touch the graph")
	assert.Equal(t, 1, e.Emitted())

	for _, triple := range registry.Triples(id) {
		ok, err := g.Has(triple)
		require.NoError(t, err)
		assert.True(t, ok, "missing %s", triple)
	}
}
