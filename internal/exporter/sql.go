// Package exporter stores the triples of a graph inside an sql database.
package exporter

//spellchecker:words context database errors github ieograph internal triplestore term huandu sqlbuilder
import (
	"context"
	"database/sql"
	"errors"

	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
	"github.com/huandu/go-sqlbuilder"
)

// Limits used when exporting into sqlite
const (
	SQLiteMaxQueryVar = 32766 // see https://www.sqlite.org/limits.html
	SQLiteBatchSize   = 1000
)

// DefaultTable is the table triples are written to when no other table is given.
const DefaultTable = "triples"

// SQL exports triples into a single table of an sql database.
//
// Every triple becomes one row.
// Rows of triples with an iri object have a NULL value and language, rows of literal triples a NULL object.
type SQL struct {
	DB     *sql.DB
	Flavor sqlbuilder.Flavor // flavor of sql to generate, defaults to [sqlbuilder.DefaultFlavor]

	Table       string // name of the table, defaults to [DefaultTable]
	BatchSize   int    // maximum number of rows per insert statement
	MaxQueryVar int    // maximum number of query variables (overrides BatchSize)
}

const (
	subjectColumn   = "subject"
	predicateColumn = "predicate"
	objectColumn    = "object"
	valueColumn     = "value"
	languageColumn  = "language"
)

var columns = []string{subjectColumn, predicateColumn, objectColumn, valueColumn, languageColumn}

var (
	nullString               sql.NullString
	errInsufficientQueryVars = errors.New("insufficient query variables")
	errNoBatchSize           = errors.New("batch size must be positive")
)

func (exporter *SQL) table() string {
	if exporter.Table == "" {
		return DefaultTable
	}
	return exporter.Table
}

func (exporter *SQL) flavor() sqlbuilder.Flavor {
	if exporter.Flavor == 0 {
		return sqlbuilder.DefaultFlavor
	}
	return exporter.Flavor
}

// exec executes a query
func (exporter *SQL) exec(ctx context.Context, query string, args []any) error {
	_, err := exporter.DB.ExecContext(ctx, query, args...)
	return err
}

// Export replaces the content of the table by triples.
func (exporter *SQL) Export(ctx context.Context, triples []term.Triple) error {
	if err := exporter.createTable(ctx); err != nil {
		return err
	}

	values := make([][]any, len(triples))
	for i, triple := range triples {
		values[i] = row(triple)
	}
	return exporter.execInsert(ctx, values)
}

// createTable creates an empty table to hold triples.
func (exporter *SQL) createTable(ctx context.Context) error {
	if err := exporter.exec(ctx, "DROP TABLE IF EXISTS "+exporter.table()+";", nil); err != nil {
		return err
	}

	table := sqlbuilder.CreateTable(exporter.table()).IfNotExists()
	table.Define(subjectColumn, "TEXT", "NOT NULL")
	table.Define(predicateColumn, "TEXT", "NOT NULL")
	table.Define(objectColumn, "TEXT")
	table.Define(valueColumn, "TEXT")
	table.Define(languageColumn, "TEXT")

	query, args := table.BuildWithFlavor(exporter.flavor())
	return exporter.exec(ctx, query, args)
}

func row(triple term.Triple) []any {
	if !triple.HasLiteral {
		return []any{string(triple.Subject), string(triple.Predicate), string(triple.Object), nullString, nullString}
	}

	language := nullString
	if triple.Literal.Language != "" {
		language = sql.NullString{String: triple.Literal.Language, Valid: true}
	}
	return []any{string(triple.Subject), string(triple.Predicate), nullString, triple.Literal.Value, language}
}

// execInsert inserts the given rows into the table.
// When this would exceed limits on maximum number of query variables, multiple inserts are executed.
func (exporter *SQL) execInsert(ctx context.Context, values [][]any) error {
	if len(values) == 0 {
		return nil
	}
	if exporter.BatchSize <= 0 {
		return errNoBatchSize
	}

	chunkSize := exporter.BatchSize
	if exporter.MaxQueryVar > 0 {
		chunkSize = min(chunkSize, exporter.MaxQueryVar/len(columns))
	}
	if chunkSize == 0 {
		return errInsufficientQueryVars
	}

	for start := 0; start < len(values); start += chunkSize {
		end := min(start+chunkSize, len(values))

		insert := sqlbuilder.InsertInto(exporter.table())
		insert.Cols(columns...)
		for _, v := range values[start:end] {
			insert.Values(v...)
		}

		query, args := insert.BuildWithFlavor(exporter.flavor())
		if err := exporter.exec(ctx, query, args); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying database.
func (exporter *SQL) Close() error {
	return exporter.DB.Close()
}
