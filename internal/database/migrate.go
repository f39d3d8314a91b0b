package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"medmcq/internal/config"
	"medmcq/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/sqlite/*.sql migrations/oracle/*.sql
var migrationFS embed.FS

// Direction selects which half of the migration files to apply.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// oracleObjectExists is ORA-00955 (name already used by an existing object).
const oracleObjectExists = "ORA-00955"

// RunMigrations applies the embedded migrations for the given driver.
func RunMigrations(db *sql.DB, driver string, dir Direction) error {
	switch driver {
	case config.DriverSQLite:
		return runSQLiteMigrations(db, dir)
	case config.DriverOracle:
		return runOracleMigrations(db, dir)
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
}

func runSQLiteMigrations(db *sql.DB, dir Direction) error {
	src, err := iofs.New(migrationFS, "migrations/sqlite")
	if err != nil {
		return fmt.Errorf("could not open migration source: %w", err)
	}

	drv, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("could not create sqlite3 migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, config.DriverSQLite, drv)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if dir == Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not run sqlite migrations %s: %w", dir, err)
	}

	version, dirty, _ := m.Version()
	logger.Get().Info("Migrations completed successfully",
		zap.String("driver", config.DriverSQLite),
		zap.String("direction", string(dir)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

// runOracleMigrations executes each embedded file as one statement, in name
// order for up and reverse order for down. Objects that already exist are
// skipped so the up direction can be re-run.
func runOracleMigrations(db *sql.DB, dir Direction) error {
	files, err := migrationFiles("migrations/oracle", dir)
	if err != nil {
		return err
	}

	for _, name := range files {
		content, err := fs.ReadFile(migrationFS, name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}

		stmt := strings.TrimSuffix(strings.TrimSpace(string(content)), ";")
		if _, err := db.Exec(stmt); err != nil {
			if dir == Up && strings.Contains(err.Error(), oracleObjectExists) {
				logger.Get().Debug("Skipping migration, object exists", zap.String("file", name))
				continue
			}
			return fmt.Errorf("could not execute migration %s: %w", name, err)
		}

		logger.Get().Info("Executed migration", zap.String("file", name))
	}

	logger.Get().Info("Migrations completed successfully",
		zap.String("driver", config.DriverOracle),
		zap.String("direction", string(dir)))
	return nil
}

func migrationFiles(root string, dir Direction) ([]string, error) {
	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	suffix := "." + string(dir) + ".sql"
	var files []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			files = append(files, root+"/"+e.Name())
		}
	}

	sort.Strings(files)
	if dir == Down {
		sort.Sort(sort.Reverse(sort.StringSlice(files)))
	}
	return files, nil
}
