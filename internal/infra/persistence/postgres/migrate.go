package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"sitd/internal/infra/persistence/migrations"
)

const migrationDialect = "postgres"

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

// Migrator applies the embedded SQL migrations through goose.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator wraps the connection pool behind db.
func NewMigrator(db *gorm.DB, logger *slog.Logger) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return &Migrator{db: sqlDB, logger: logger}, nil
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	return m.Run(ctx, "up")
}

// Run executes a goose command (up, down, status, version, redo, reset, up-to, down-to).
func (m *Migrator) Run(ctx context.Context, command string, args ...string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(&gooseSlogLogger{logger: m.logger})
	if err := goose.SetDialect(migrationDialect); err != nil {
		return errors.Wrap(err, "set migration dialect")
	}

	if err := goose.RunContext(ctx, command, m.db, ".", args...); err != nil {
		return errors.Wrapf(err, "goose %s", command)
	}

	return nil
}

// gooseSlogLogger satisfies goose.Logger.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l *gooseSlogLogger) Printf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Info("migration", slog.String("message", fmt.Sprintf(format, v...)))
}

// Fatalf logs at error level instead of exiting; the failing call still returns its error.
func (l *gooseSlogLogger) Fatalf(format string, v ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Error("migration", slog.String("message", fmt.Sprintf(format, v...)))
}
