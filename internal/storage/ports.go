// Package storage declares the document store ports the repositories
// depend on.
//
// A store moves whole documents: Load returns everything previously
// saved (or the empty document when nothing usable exists) and Save
// rewrites the full document. Stores assume at most one writer per
// document at a time; concurrent invocations race last-writer-wins.
package storage

import (
	"context"

	"teoskills/internal/core"
)

type (
	// CalendarStore persists the calendar document, a bare ordered
	// sequence of schedules shared by all users.
	CalendarStore interface {
		Load(ctx context.Context) ([]core.Schedule, error)
		Save(ctx context.Context, schedules []core.Schedule) error
	}

	// LedgerStore persists the cashflow document: transactions and
	// categories together.
	LedgerStore interface {
		Load(ctx context.Context) (core.Ledger, error)
		Save(ctx context.Context, ledger core.Ledger) error
	}
)
