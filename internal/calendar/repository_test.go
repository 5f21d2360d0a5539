package calendar

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"teoskills/internal/apperrors"
	"teoskills/internal/core"
	"teoskills/internal/ident"
	"teoskills/internal/log"
	"teoskills/internal/storage/jsonfile"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	logger := log.New(log.DefaultConfig())
	store := jsonfile.NewCalendarStore(filepath.Join(t.TempDir(), "calendar.json"), logger)
	return NewRepository(store, ident.NewGenerator(), logger)
}

func strPtr(s string) *string { return &s }

func tagsPtr(tags ...string) *[]string { return &tags }

func fullInput() core.ScheduleInput {
	return core.ScheduleInput{
		Title:       strPtr("standup"),
		Description: strPtr("daily sync"),
		StartTime:   strPtr("2024-01-02T09:00:00"),
		EndTime:     strPtr("2024-01-02T09:15:00"),
		Tags:        tagsPtr("work"),
	}
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Add(ctx, "u1", fullInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := repo.Add(ctx, "u1", fullInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", first.ID, second.ID)
	}

	all, err := repo.SearchByTitle(ctx, "u1", "standup")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 stored records, got %d", len(all))
	}
}

func TestAddValidatesFieldsInOrder(t *testing.T) {
	cases := []struct {
		name  string
		in    core.ScheduleInput
		wantE string
	}{
		{"empty input", core.ScheduleInput{}, "Error: title is required"},
		{
			"missing description",
			core.ScheduleInput{Title: strPtr("t"), StartTime: strPtr("a"), EndTime: strPtr("b"), Tags: tagsPtr()},
			"Error: description is required",
		},
		{
			"missing start_time",
			core.ScheduleInput{Title: strPtr("t"), Description: strPtr("d"), EndTime: strPtr("b"), Tags: tagsPtr()},
			"Error: start_time is required",
		},
		{
			"missing end_time",
			core.ScheduleInput{Title: strPtr("t"), Description: strPtr("d"), StartTime: strPtr("a"), Tags: tagsPtr()},
			"Error: end_time is required",
		},
		{
			"missing tags",
			core.ScheduleInput{Title: strPtr("t"), Description: strPtr("d"), StartTime: strPtr("a"), EndTime: strPtr("b")},
			"Error: tags is required",
		},
	}

	repo := newTestRepo(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Add(context.Background(), "u1", tc.in)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if err.Error() != tc.wantE {
				t.Fatalf("expected %q, got %q", tc.wantE, err.Error())
			}
		})
	}
}

func TestUpdateReplacesOnlySuppliedFields(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Add(ctx, "u1", fullInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := repo.Update(ctx, "u1", core.ScheduleInput{
		ID:    created.ID,
		Title: strPtr("retro"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	want := created
	want.Title = "retro"
	if !reflect.DeepEqual(want, updated) {
		t.Fatalf("expected only title to change:\nwant=%#v\n got=%#v", want, updated)
	}
}

func TestUpdateReplacesTagsWholesale(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Add(ctx, "u1", fullInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	updated, err := repo.Update(ctx, "u1", core.ScheduleInput{
		ID:   created.ID,
		Tags: tagsPtr("personal"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !reflect.DeepEqual([]string{"personal"}, updated.Tags) {
		t.Fatalf("expected tags replaced, got %v", updated.Tags)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Update(context.Background(), "u1", core.ScheduleInput{Title: strPtr("x")})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Error: id is required" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestUpdateWrongUserIsNotFound(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Add(ctx, "u1", fullInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err = repo.Update(ctx, "u2", core.ScheduleInput{ID: created.ID, Title: strPtr("x")})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	want := "schedule with ID " + created.ID + " not found"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestDeleteRemovesRecordForGood(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Add(ctx, "u1", fullInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := repo.Delete(ctx, "u1", created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "u1", created.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}

	results, err := repo.SearchByTitle(ctx, "u1", "standup")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("deleted record still returned: %#v", results)
	}
}

func TestSearchByDateRangeRequiresContainment(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	add := func(title, start, end string) {
		t.Helper()
		_, err := repo.Add(ctx, "u1", core.ScheduleInput{
			Title:       strPtr(title),
			Description: strPtr("d"),
			StartTime:   strPtr(start),
			EndTime:     strPtr(end),
			Tags:        tagsPtr(),
		})
		if err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
	}
	add("contained", "2024-01-02", "2024-01-03")
	add("overlapping", "2024-01-02", "2024-01-05")
	add("outside", "2024-02-01", "2024-02-02")

	results, err := repo.SearchByDateRange(ctx, "u1", core.DateRange{Start: "2024-01-01", End: "2024-01-04"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "contained" {
		t.Fatalf("expected only the contained schedule, got %#v", results)
	}
}

func TestSearchByDateRangeFiltersByUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, "other", fullInput())
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	results, err := repo.SearchByDateRange(ctx, "u1", core.DateRange{Start: "2024-01-01", End: "2024-12-31"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results for other user, got %#v", results)
	}
}

func TestSearchByTitleIsCaseInsensitiveSubstring(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Add(ctx, "u1", core.ScheduleInput{
		Title:       strPtr("Weekly Planning"),
		Description: strPtr("d"),
		StartTime:   strPtr("a"),
		EndTime:     strPtr("b"),
		Tags:        tagsPtr(),
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	for i, query := range []string{"PLAN", "weekly", "kly pla"} {
		results, err := repo.SearchByTitle(ctx, "u1", query)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("case %d query %q expected 1 result, got %d", i, query, len(results))
		}
	}

	results, err := repo.SearchByTitle(ctx, "u1", "retro")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no match, got %#v", results)
	}
}

func TestSearchByTagsMatchesAnyTag(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	add := func(title string, tags ...string) {
		t.Helper()
		_, err := repo.Add(ctx, "u1", core.ScheduleInput{
			Title:       strPtr(title),
			Description: strPtr("d"),
			StartTime:   strPtr("a"),
			EndTime:     strPtr("b"),
			Tags:        &tags,
		})
		if err != nil {
			t.Fatalf("add %s: %v", title, err)
		}
	}
	add("work meeting", "work", "meeting")
	add("gym", "health")

	results, err := repo.SearchByTags(ctx, "u1", []string{"meeting", "missing"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Title != "work meeting" {
		t.Fatalf("expected OR tag match, got %#v", results)
	}
}
