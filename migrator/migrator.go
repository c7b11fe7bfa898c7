package migrator

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

//go:embed sql/*.sql
var SqlFiles embed.FS

// Migrate applies the embedded migrations. driver is the database/sql driver name.
func Migrate(db *sql.DB, driver string) error {
	dialect, err := dialectFor(driver)
	if err != nil {
		return err
	}

	migrator := sqlmigrator.New(db, dialect)

	return migrator.Migrate(SqlFiles, "sql")
}

func dialectFor(driver string) (darwin.Dialect, error) {
	switch driver {
	case "sqlite3":
		return darwin.SqliteDialect{}, nil
	case "postgres":
		return darwin.PostgresDialect{}, nil
	default:
		return nil, fmt.Errorf("no migration dialect for driver %q", driver)
	}
}
