// Package sqlite is the embedded-database rendition of the store ports.
//
// Documents keep their load-everything/save-everything contract: Save
// rewrites the document's tables inside one transaction, Load reads the
// rows back in insertion order. Repository logic above the ports does
// not change between this backend and the JSON files.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"teoskills/internal/core"
	"teoskills/internal/log"

	_ "modernc.org/sqlite"
)

// DB wraps the shared connection both stores run on.
type DB struct {
	db *sql.DB
}

func Open(dbPath string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Calendar returns the calendar document store backed by this database.
func (d *DB) Calendar(logger *log.Logger) *CalendarStore {
	return &CalendarStore{db: d.db, logger: logger.WithComponent(log.ComponentStorage)}
}

// Ledger returns the cashflow document store backed by this database.
func (d *DB) Ledger(logger *log.Logger) *LedgerStore {
	return &LedgerStore{db: d.db, logger: logger.WithComponent(log.ComponentStorage)}
}

type CalendarStore struct {
	db     *sql.DB
	logger *log.Logger
}

func (s *CalendarStore) Load(ctx context.Context) ([]core.Schedule, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, title, description, start_time, end_time, tags
		 FROM schedules ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query schedules: %w", err)
	}
	defer rows.Close()

	schedules := []core.Schedule{}
	for rows.Next() {
		var sc core.Schedule
		var tags string
		if err := rows.Scan(&sc.ID, &sc.UserID, &sc.Title, &sc.Description,
			&sc.StartTime, &sc.EndTime, &tags); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &sc.Tags); err != nil {
			return nil, fmt.Errorf("decode schedule tags: %w", err)
		}
		if sc.Tags == nil {
			sc.Tags = []string{}
		}
		schedules = append(schedules, sc)
	}
	return schedules, rows.Err()
}

func (s *CalendarStore) Save(ctx context.Context, schedules []core.Schedule) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedules`); err != nil {
		return fmt.Errorf("clear schedules: %w", err)
	}
	for _, sc := range schedules {
		tags, err := json.Marshal(sc.Tags)
		if err != nil {
			return fmt.Errorf("encode schedule tags: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO schedules (id, user_id, title, description, start_time, end_time, tags)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sc.ID, sc.UserID, sc.Title, sc.Description, sc.StartTime, sc.EndTime, string(tags)); err != nil {
			return fmt.Errorf("insert schedule: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.DebugContext(ctx, "Calendar document saved",
		log.FieldOperation, log.OpSave, log.FieldCount, len(schedules))
	return nil
}

type LedgerStore struct {
	db     *sql.DB
	logger *log.Logger
}

func (s *LedgerStore) Load(ctx context.Context) (core.Ledger, error) {
	ledger := core.Ledger{Transactions: []core.Transaction{}, Categories: []core.Category{}}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, type, amount, currency, category_id, category_name, description, date
		 FROM transactions ORDER BY seq`)
	if err != nil {
		return ledger, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t core.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Currency,
			&t.Category.ID, &t.Category.Name, &t.Description, &t.Date); err != nil {
			return ledger, fmt.Errorf("scan transaction: %w", err)
		}
		ledger.Transactions = append(ledger.Transactions, t)
	}
	if err := rows.Err(); err != nil {
		return ledger, err
	}

	catRows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM categories ORDER BY seq`)
	if err != nil {
		return ledger, fmt.Errorf("query categories: %w", err)
	}
	defer catRows.Close()
	for catRows.Next() {
		var c core.Category
		if err := catRows.Scan(&c.ID, &c.Name); err != nil {
			return ledger, fmt.Errorf("scan category: %w", err)
		}
		ledger.Categories = append(ledger.Categories, c)
	}
	return ledger, catRows.Err()
}

func (s *LedgerStore) Save(ctx context.Context, ledger core.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	for _, t := range ledger.Transactions {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO transactions (id, user_id, type, amount, currency, category_id, category_name, description, date)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.UserID, string(t.Type), t.Amount, t.Currency,
			t.Category.ID, t.Category.Name, t.Description, t.Date); err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}
	for _, c := range ledger.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES (?, ?)`, c.ID, c.Name); err != nil {
			return fmt.Errorf("insert category: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.DebugContext(ctx, "Ledger document saved",
		log.FieldOperation, log.OpSave,
		log.FieldCount, len(ledger.Transactions))
	return nil
}
