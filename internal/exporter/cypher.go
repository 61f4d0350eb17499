//spellchecker:words exporter
package exporter

//spellchecker:words context errors github ieograph internal triplestore term neo4j
import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/FAU-CDI/ieograph/internal/triplestore/term"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// cspell:words cypher memgraph

// Cypher exports triples into a property graph database speaking bolt, such as neo4j or memgraph.
//
// Every iri becomes a :Resource node with an iri property.
// Triples with an iri object become a :Triple relationship between two resources.
// Triples with a literal object become a :Triple relationship to a fresh :Literal node holding value and language.
// The predicate is stored as a property of the relationship.
type Cypher struct {
	Driver   neo4j.DriverWithContext
	Database string // name of the database to use, empty for the server default

	BatchSize int // number of triples per query, defaults to [CypherBatchSize]

	run func(ctx context.Context, query string, params map[string]any) error // replaces Driver when non-nil
}

// CypherBatchSize is the default number of triples sent per query.
const CypherBatchSize = 1000

var errNoCypherURI = errors.New("missing bolt uri")

// OpenCypher connects to the bolt server at uri.
// Auth is of the form "username:password", and may be empty to connect without authentication.
func OpenCypher(ctx context.Context, uri, auth string) (*Cypher, error) {
	if uri == "" {
		return nil, errNoCypherURI
	}

	token := neo4j.NoAuth()
	if auth != "" {
		username, password, _ := strings.Cut(auth, ":")
		token = neo4j.BasicAuth(username, password, "")
	}

	driver, err := neo4j.NewDriverWithContext(uri, token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bolt driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to connect to %q: %w", uri, err), driver.Close(ctx))
	}
	return &Cypher{Driver: driver}, nil
}

const (
	cypherClear    = "MATCH (n) WHERE n:Resource OR n:Literal DETACH DELETE n"
	cypherIndex    = "CREATE INDEX resource_iri IF NOT EXISTS FOR (r:Resource) ON (r.iri)"
	cypherLinks    = "UNWIND $rows AS row MERGE (s:Resource {iri: row.subject}) MERGE (o:Resource {iri: row.object}) CREATE (s)-[:Triple {predicate: row.predicate}]->(o)"
	cypherLiterals = "UNWIND $rows AS row MERGE (s:Resource {iri: row.subject}) CREATE (s)-[:Triple {predicate: row.predicate}]->(:Literal {value: row.value, language: row.language})"
)

// CypherRows splits triples into parameter rows for links between resources and for literals.
func CypherRows(triples []term.Triple) (links, literals []map[string]any) {
	for _, triple := range triples {
		if triple.HasLiteral {
			literals = append(literals, map[string]any{
				"subject":   string(triple.Subject),
				"predicate": string(triple.Predicate),
				"value":     triple.Literal.Value,
				"language":  triple.Literal.Language,
			})
			continue
		}
		links = append(links, map[string]any{
			"subject":   string(triple.Subject),
			"predicate": string(triple.Predicate),
			"object":    string(triple.Object),
		})
	}
	return
}

func (exporter *Cypher) batchSize() int {
	if exporter.BatchSize <= 0 {
		return CypherBatchSize
	}
	return exporter.BatchSize
}

func (exporter *Cypher) exec(ctx context.Context, query string, params map[string]any) error {
	if exporter.run != nil {
		return exporter.run(ctx, query, params)
	}

	_, err := neo4j.ExecuteQuery(ctx, exporter.Driver, query, params, neo4j.EagerResultTransformer, neo4j.ExecuteQueryWithDatabase(exporter.Database))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// execRows executes query once for every batch of rows.
func (exporter *Cypher) execRows(ctx context.Context, query string, rows []map[string]any) error {
	size := exporter.batchSize()
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))

		batch := make([]any, 0, end-start)
		for _, row := range rows[start:end] {
			batch = append(batch, row)
		}
		if err := exporter.exec(ctx, query, map[string]any{"rows": batch}); err != nil {
			return err
		}
	}
	return nil
}

// Export replaces all resources and literals in the database by triples.
func (exporter *Cypher) Export(ctx context.Context, triples []term.Triple) error {
	if err := exporter.exec(ctx, cypherClear, nil); err != nil {
		return err
	}
	// memgraph uses a different syntax for indexes, so failing to create one is not fatal.
	_ = exporter.exec(ctx, cypherIndex, nil)

	links, literals := CypherRows(triples)
	if err := exporter.execRows(ctx, cypherLinks, links); err != nil {
		return err
	}
	return exporter.execRows(ctx, cypherLiterals, literals)
}

// Close closes the underlying driver.
func (exporter *Cypher) Close(ctx context.Context) error {
	return exporter.Driver.Close(ctx)
}
