//spellchecker:words exporter
package exporter

//spellchecker:words database errors github huandu sqlbuilder glebarez sqlite mysql
import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	_ "github.com/glebarez/go-sqlite"
	_ "github.com/go-sql-driver/mysql"
)

var errBothSQLiteAndMySQL = errors.New("only one of an sqlite path and a mysql connection string may be given")

// Open opens an exporter for either an sqlite file or a mysql database.
// When neither is given, Open returns nil.
func Open(sqlite, mysql string) (*SQL, error) {
	switch {
	case sqlite != "" && mysql != "":
		return nil, errBothSQLiteAndMySQL
	case sqlite != "":
		return open("sqlite", sqlite, sqlbuilder.SQLite)
	case mysql != "":
		return open("mysql", mysql, sqlbuilder.MySQL)
	default:
		return nil, nil
	}
}

func open(driver, dsn string, flavor sqlbuilder.Flavor) (*SQL, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}
	return &SQL{
		DB:     db,
		Flavor: flavor,

		BatchSize:   SQLiteBatchSize,
		MaxQueryVar: SQLiteMaxQueryVar,
	}, nil
}
