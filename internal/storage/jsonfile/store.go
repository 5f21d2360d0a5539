// Package jsonfile persists store documents as pretty-printed JSON
// files, one file per store. The file doubles as the inspection format.
//
// A missing or unparseable file loads as the empty document rather than
// an error: availability is traded for the risk of silently dropping a
// corrupt store on the next save. Writes overwrite the file directly
// (no temp-file-and-rename), so a crash mid-write can corrupt it.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"teoskills/internal/core"
	"teoskills/internal/log"
)

// CalendarStore keeps the calendar document in a single JSON array file.
type CalendarStore struct {
	path   string
	logger *log.Logger
}

func NewCalendarStore(path string, logger *log.Logger) *CalendarStore {
	return &CalendarStore{path: path, logger: logger.WithComponent(log.ComponentStorage)}
}

func (s *CalendarStore) Load(ctx context.Context) ([]core.Schedule, error) {
	var schedules []core.Schedule
	if !readDocument(ctx, s.logger, s.path, &schedules) {
		return []core.Schedule{}, nil
	}
	if schedules == nil {
		schedules = []core.Schedule{}
	}
	return schedules, nil
}

func (s *CalendarStore) Save(ctx context.Context, schedules []core.Schedule) error {
	if schedules == nil {
		schedules = []core.Schedule{}
	}
	return writeDocument(ctx, s.logger, s.path, schedules)
}

// LedgerStore keeps the cashflow document in a single JSON object file.
type LedgerStore struct {
	path   string
	logger *log.Logger
}

func NewLedgerStore(path string, logger *log.Logger) *LedgerStore {
	return &LedgerStore{path: path, logger: logger.WithComponent(log.ComponentStorage)}
}

func (s *LedgerStore) Load(ctx context.Context) (core.Ledger, error) {
	var ledger core.Ledger
	if !readDocument(ctx, s.logger, s.path, &ledger) {
		return emptyLedger(), nil
	}
	return normalizeLedger(ledger), nil
}

func (s *LedgerStore) Save(ctx context.Context, ledger core.Ledger) error {
	return writeDocument(ctx, s.logger, s.path, normalizeLedger(ledger))
}

func emptyLedger() core.Ledger {
	return core.Ledger{Transactions: []core.Transaction{}, Categories: []core.Category{}}
}

// normalizeLedger backfills sequences a hand-edited or older document
// may omit, so both arrays are always present in memory and on disk.
func normalizeLedger(l core.Ledger) core.Ledger {
	if l.Transactions == nil {
		l.Transactions = []core.Transaction{}
	}
	if l.Categories == nil {
		l.Categories = []core.Category{}
	}
	return l
}

// readDocument reports whether v was populated from the file. A missing
// file is the normal first-run case; a corrupt one is logged and
// swallowed, yielding the empty document.
func readDocument(ctx context.Context, logger *log.Logger, path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.WarnContext(ctx, "Store file unreadable, starting empty",
				log.FieldPath, path, log.FieldError, err.Error())
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.WarnContext(ctx, "Store file corrupt, starting empty",
			log.FieldPath, path, log.FieldError, err.Error())
		return false
	}
	return true
}

func writeDocument(ctx context.Context, logger *log.Logger, path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logger.DebugContext(ctx, "Store file written",
		log.FieldPath, path, log.FieldOperation, log.OpSave)
	return nil
}
