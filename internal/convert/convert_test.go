//spellchecker:words convert
package convert_test

//spellchecker:words context path filepath strings testing github ieograph internal convert crid exporter ontology prompt registry serialize stats triplestore term stretchr testify assert require
import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FAU-CDI/ieograph/internal/convert"
	"github.com/FAU-CDI/ieograph/internal/crid"
	"github.com/FAU-CDI/ieograph/internal/exporter"
	"github.com/FAU-CDI/ieograph/internal/ontology"
	"github.com/FAU-CDI/ieograph/internal/prompt"
	"github.com/FAU-CDI/ieograph/internal/registry"
	"github.com/FAU-CDI/ieograph/internal/serialize"
	"github.com/FAU-CDI/ieograph/internal/stats"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cspell:words ecoinvent ecospold

const isicCSV = `code,label
A,"Agriculture, forestry and fishing"
0111,"Growing of cereals (except rice), leguminous crops and oil seeds"
`

const activityNames = `<?xml version="1.0" encoding="UTF-8"?>
<validActivityNames xmlns="http://www.EcoInvent.org/EcoSpold02" majorRelease="3" minorRelease="1">
  <activityName id="88d6c0aa-0053-4367-b0be-05e4b49ff3c5">
    <name xml:lang="en">copper production, primary</name>
  </activityName>
</validActivityNames>
`

const missingUnit = `<?xml version="1.0" encoding="UTF-8"?>
<validIntermediateExchanges xmlns="http://www.EcoInvent.org/EcoSpold02" majorRelease="3" minorRelease="1">
  <intermediateExchange id="66c93e71-f32b-4591-901c-55395db5c132">
    <name xml:lang="en">electricity, high voltage</name>
  </intermediateExchange>
</validIntermediateExchanges>
`

func writeInput(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readOutput(t *testing.T, path string) []term.Triple {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	triples, err := serialize.ReadNTriples(file)
	require.NoError(t, err)
	return triples
}

func TestClassification(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "isic.csv", isicCSV)
	p := &prompt.Scripted{Answers: []string{"four", "4"}}

	result, err := convert.Classification(context.Background(), input, 0, convert.Options{
		Format:   serialize.NTriples,
		Resolver: &registry.Resolver{Prompter: p},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(filepath.Dir(input), "isic.nt"), result.Output)
	assert.Len(t, p.Messages, 1, "non-integer revision is rejected")

	triples := readOutput(t, result.Output)
	assert.Equal(t, int(result.Graph.Triples), len(triples))

	node := ontology.ISIC.Term("ISIC_Rev4_0111")
	assert.Contains(t, triples, term.Text(node, ontology.Label, "ISIC_Rev4:0111 Growing of cereals (except rice), leguminous crops and oil seeds", "en"))
	assert.Contains(t, triples, term.Link(ontology.ISIC.Term("ISIC_Rev4"), ontology.Type, ontology.RegistryVersion.IRI()))
	assert.Contains(t, triples, term.Link(ontology.ISIC.Term("ISIC"), ontology.Type, ontology.ActivityRegistry.IRI()))
}

func TestMasterData(t *testing.T) {
	t.Parallel()

	input := writeInput(t, "ActivityNames.xml", activityNames)
	output := filepath.Join(t.TempDir(), "activities.nt")
	cache := t.TempDir()

	sql, err := exporter.Open(filepath.Join(t.TempDir(), "triples.sqlite"), "")
	require.NoError(t, err)
	defer sql.Close()

	result, err := convert.MasterData(context.Background(), input, convert.Options{
		Format: serialize.NTriples,
		Output: output,
		Cache:  cache,
		SQL:    sql,
		Stats:  stats.NewStats(nil),
	})
	require.NoError(t, err)

	stages := make([]stats.Stage, len(result.Stages))
	for i, stage := range result.Stages {
		stages[i] = stage.Stage
	}
	assert.Equal(t, []stats.Stage{
		stats.StageRead, stats.StageResolve, stats.StageBootstrap, stats.StageMap, stats.StageSerialize, stats.StageExportSQL,
	}, stages)
	assert.Equal(t, []string{"activityName"}, result.Tags)
	assert.Empty(t, result.Products)

	const eco = ontology.Namespace("http://www.ecoinvent.org/ecospold02#")
	triples := readOutput(t, output)
	assert.Contains(t, triples, term.Text(eco.Term("88d6c0aa-0053-4367-b0be-05e4b49ff3c5v3_1"), ontology.Label, "EcoInventv3.1:copper production, primary", "en"))

	var count int
	require.NoError(t, sql.DB.QueryRow("SELECT COUNT(*) FROM "+exporter.DefaultTable).Scan(&count))
	assert.Equal(t, len(triples), count)
}

func TestMasterData_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing unit", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, "IntermediateExchanges.xml", missingUnit)
		output := filepath.Join(filepath.Dir(input), "out.rdf")

		_, err := convert.MasterData(context.Background(), input, convert.Options{Output: output})
		assert.ErrorIs(t, err, crid.ErrMissingField)
		assert.ErrorContains(t, err, input)
		assert.ErrorContains(t, err, "66c93e71-f32b-4591-901c-55395db5c132")
		assert.ErrorContains(t, err, "unitName")
		assert.NoFileExists(t, output)
	})

	t.Run("blank unit", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, "IntermediateExchanges.xml", strings.Replace(missingUnit,
			"</name>", "</name>\n    <unitName xml:lang=\"en\"></unitName>", 1))
		output := filepath.Join(filepath.Dir(input), "out.rdf")

		_, err := convert.MasterData(context.Background(), input, convert.Options{Output: output})
		assert.ErrorIs(t, err, crid.ErrMissingField)
		assert.ErrorContains(t, err, input)
		assert.NoFileExists(t, output)
	})

	t.Run("unknown registry in batch mode", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, "ActivityNames.xml", `<validActivityNames xmlns="http://example.com/spold" majorRelease="1" minorRelease="0"/>`)
		output := filepath.Join(filepath.Dir(input), "out.rdf")

		_, err := convert.MasterData(context.Background(), input, convert.Options{Output: output})
		assert.ErrorIs(t, err, registry.ErrUnknownRegistry)
		assert.ErrorIs(t, err, prompt.ErrNonInteractive)
		assert.NoFileExists(t, output)
	})

	t.Run("refuses to overwrite the input", func(t *testing.T) {
		t.Parallel()

		input := writeInput(t, "ActivityNames.xml", activityNames)

		_, err := convert.MasterData(context.Background(), input, convert.Options{Output: input})
		assert.ErrorIs(t, err, prompt.ErrNonInteractive)

		content, err := os.ReadFile(input)
		require.NoError(t, err)
		assert.Equal(t, activityNames, string(content))
	})
}
