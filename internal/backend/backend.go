// Package backend selects and wires the persistence layer of the data
// skills based on configuration.
package backend

import (
	"fmt"

	"teoskills/internal/config"
	"teoskills/internal/log"
	"teoskills/internal/storage"
	"teoskills/internal/storage/jsonfile"
	"teoskills/internal/storage/sqlite"
)

// Type is the persistence flavor of the data skills.
type Type string

const (
	JSONFileBackend Type = "jsonfile"
	SQLiteBackend   Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case JSONFileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases resources held by a backend.
type CleanupFunc func() error

// Result bundles the stores of one backend with its cleanup function.
// Cleanup is nil when the backend holds no resources.
type Result struct {
	Calendar storage.CalendarStore
	Ledger   storage.LedgerStore
	Cleanup  CleanupFunc
}

// Factory creates store backends from configuration.
type Factory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) *Factory {
	return &Factory{logger: logger.WithComponent(log.ComponentBackend)}
}

// Create builds the backend named by cfg.DataBackend.
func (f *Factory) Create(cfg *config.Config) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case SQLiteBackend:
		return f.createSQLite(cfg)
	default:
		return f.createJSONFile(cfg)
	}
}

func (f *Factory) createJSONFile(cfg *config.Config) (*Result, error) {
	f.logger.Debug("initialized jsonfile backend", log.FieldPath, cfg.DataDir)
	return &Result{
		Calendar: jsonfile.NewCalendarStore(cfg.CalendarFile(), f.logger),
		Ledger:   jsonfile.NewLedgerStore(cfg.CashflowFile(), f.logger),
	}, nil
}

func (f *Factory) createSQLite(cfg *config.Config) (*Result, error) {
	db, err := sqlite.Open(cfg.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sqlite backend: %w", err)
	}
	f.logger.Debug("initialized sqlite backend", log.FieldPath, cfg.SQLiteDBPath)
	return &Result{
		Calendar: db.Calendar(f.logger),
		Ledger:   db.Ledger(f.logger),
		Cleanup:  db.Close,
	}, nil
}
