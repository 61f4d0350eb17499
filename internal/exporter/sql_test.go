//spellchecker:words exporter
package exporter_test

//spellchecker:words context database path filepath testing github ieograph internal exporter triplestore term stretchr testify assert require
import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/FAU-CDI/ieograph/internal/exporter"
	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_Export(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "triples.sqlite")
	sqlite, err := exporter.Open(path, "")
	require.NoError(t, err)
	defer sqlite.Close()

	// force multiple inserts
	sqlite.BatchSize = 2

	triples := []term.Triple{
		term.Link("urn:s", "urn:p", "urn:o"),
		term.Text("urn:s", "urn:label", "tagged", "en"),
		term.Text("urn:s", "urn:label", "untagged", ""),
	}

	// exporting twice replaces the table
	ctx := context.Background()
	require.NoError(t, sqlite.Export(ctx, triples[:1]))
	require.NoError(t, sqlite.Export(ctx, triples))

	rows, err := sqlite.DB.QueryContext(ctx, "SELECT subject, predicate, object, value, language FROM "+exporter.DefaultTable+" ORDER BY value")
	require.NoError(t, err)
	defer rows.Close()

	var got []term.Triple
	for rows.Next() {
		var subject, predicate string
		var object, value, language sql.NullString
		require.NoError(t, rows.Scan(&subject, &predicate, &object, &value, &language))

		if object.Valid {
			got = append(got, term.Link(term.IRI(subject), term.IRI(predicate), term.IRI(object.String)))
			continue
		}
		got = append(got, term.Text(term.IRI(subject), term.IRI(predicate), value.String, language.String))
	}
	require.NoError(t, rows.Err())

	assert.ElementsMatch(t, triples, got)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	none, err := exporter.Open("", "")
	assert.NoError(t, err)
	assert.Nil(t, none)

	_, err = exporter.Open("a.sqlite", "user@host/db")
	assert.Error(t, err)
}

func TestCypherRows(t *testing.T) {
	t.Parallel()

	links, literals := exporter.CypherRows([]term.Triple{
		term.Link("urn:s", "urn:p", "urn:o"),
		term.Text("urn:s", "urn:label", "tagged", "en"),
		term.Text("urn:s", "urn:label", "untagged", ""),
	})

	assert.Equal(t, []map[string]any{
		{"subject": "urn:s", "predicate": "urn:p", "object": "urn:o"},
	}, links)
	assert.Equal(t, []map[string]any{
		{"subject": "urn:s", "predicate": "urn:label", "value": "tagged", "language": "en"},
		{"subject": "urn:s", "predicate": "urn:label", "value": "untagged", "language": ""},
	}, literals)
}

func TestOpenCypher(t *testing.T) {
	t.Parallel()

	_, err := exporter.OpenCypher(context.Background(), "", "")
	assert.Error(t, err)
}
