package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"teoskills/internal/core"
	"teoskills/internal/log"
)

func testLogger() *log.Logger {
	return log.New(log.DefaultConfig())
}

func TestCalendarLoadMissingFile(t *testing.T) {
	store := NewCalendarStore(filepath.Join(t.TempDir(), "calendar", "calendar.json"), testLogger())
	schedules, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(schedules) != 0 {
		t.Fatalf("expected empty store, got %d records", len(schedules))
	}
}

func TestCalendarRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar", "calendar.json")
	store := NewCalendarStore(path, testLogger())
	ctx := context.Background()

	in := []core.Schedule{
		{ID: "1", UserID: "u1", Title: "standup", Description: "daily", StartTime: "2024-01-02T09:00:00", EndTime: "2024-01-02T09:15:00", Tags: []string{"work"}},
		{ID: "2", UserID: "u2", Title: "gym", Description: "", StartTime: "2024-01-02T18:00:00", EndTime: "2024-01-02T19:00:00", Tags: []string{}},
	}
	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in=%#v\nout=%#v", in, out)
	}
}

func TestCalendarSaveIsPrettyPrinted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	store := NewCalendarStore(path, testLogger())
	if err := store.Save(context.Background(), []core.Schedule{{ID: "1"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Fatalf("expected indented JSON, got %q", data)
	}
}

func TestCalendarCorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewCalendarStore(path, testLogger())
	schedules, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(schedules) != 0 {
		t.Fatalf("expected empty store for corrupt file, got %d", len(schedules))
	}
}

func TestCalendarWrongShapeLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar.json")
	// An object where the array document is expected.
	if err := os.WriteFile(path, []byte(`{"id": "1"}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewCalendarStore(path, testLogger())
	schedules, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(schedules) != 0 {
		t.Fatalf("expected empty store, got %d", len(schedules))
	}
}

func TestLedgerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashflow", "cashflow.json")
	store := NewLedgerStore(path, testLogger())
	ctx := context.Background()

	in := core.Ledger{
		Transactions: []core.Transaction{{
			ID: "trx_1", UserID: "u1", Type: core.Income, Amount: 100,
			Currency: "IDR", Category: core.Category{ID: "cat_1", Name: "salary"},
			Date: "2024-01-15T00:00:00",
		}},
		Categories: []core.Category{{ID: "cat_1", Name: "salary"}},
	}
	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in=%#v\nout=%#v", in, out)
	}
}

func TestLedgerBackfillsMissingSequences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cashflow.json")
	if err := os.WriteFile(path, []byte(`{"transactions": []}`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	store := NewLedgerStore(path, testLogger())
	ledger, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ledger.Transactions == nil || ledger.Categories == nil {
		t.Fatalf("expected both sequences present, got %#v", ledger)
	}
}
