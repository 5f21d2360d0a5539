// Package calendar implements the schedule store skill: a flat sequence
// of schedule records shared by all users, filtered by user_id in every
// query rather than at the storage level.
package calendar

import (
	"context"
	"fmt"
	"strings"

	"teoskills/internal/apperrors"
	"teoskills/internal/core"
	"teoskills/internal/ident"
	"teoskills/internal/log"
	"teoskills/internal/storage"
)

// requiredFields fixes the validation order for add: the first missing
// field names the error.
var requiredFields = []string{"title", "description", "start_time", "end_time", "tags"}

type Repository struct {
	store  storage.CalendarStore
	ids    *ident.Generator
	logger *log.Logger
}

func NewRepository(store storage.CalendarStore, ids *ident.Generator, logger *log.Logger) *Repository {
	return &Repository{
		store:  store,
		ids:    ids,
		logger: logger.WithComponent(log.ComponentCalendar),
	}
}

// Add validates the input, assigns a fresh identifier and appends the
// schedule to the store.
func (r *Repository) Add(ctx context.Context, userID string, in core.ScheduleInput) (core.Schedule, error) {
	if err := validateRequired(in); err != nil {
		return core.Schedule{}, err
	}

	schedules, err := r.store.Load(ctx)
	if err != nil {
		return core.Schedule{}, err
	}

	tags := *in.Tags
	if tags == nil {
		tags = []string{}
	}
	schedule := core.Schedule{
		ID:          r.ids.Next(""),
		UserID:      userID,
		Title:       *in.Title,
		Description: *in.Description,
		StartTime:   *in.StartTime,
		EndTime:     *in.EndTime,
		Tags:        tags,
	}

	schedules = append(schedules, schedule)
	if err := r.store.Save(ctx, schedules); err != nil {
		return core.Schedule{}, err
	}

	r.logger.DebugContext(ctx, "Schedule added",
		log.FieldOperation, log.OpCreate,
		log.FieldRecordID, schedule.ID,
		log.FieldUserID, userID)
	return schedule, nil
}

// Update replaces only the fields present in the input; id and user_id
// never change. Tags replace wholesale when supplied.
func (r *Repository) Update(ctx context.Context, userID string, in core.ScheduleInput) (core.Schedule, error) {
	if in.ID == "" {
		return core.Schedule{}, apperrors.Validation("Error: id is required")
	}

	schedules, err := r.store.Load(ctx)
	if err != nil {
		return core.Schedule{}, err
	}

	for i := range schedules {
		if schedules[i].ID != in.ID || schedules[i].UserID != userID {
			continue
		}
		if in.Title != nil {
			schedules[i].Title = *in.Title
		}
		if in.Description != nil {
			schedules[i].Description = *in.Description
		}
		if in.StartTime != nil {
			schedules[i].StartTime = *in.StartTime
		}
		if in.EndTime != nil {
			schedules[i].EndTime = *in.EndTime
		}
		if in.Tags != nil {
			schedules[i].Tags = *in.Tags
		}

		if err := r.store.Save(ctx, schedules); err != nil {
			return core.Schedule{}, err
		}
		r.logger.DebugContext(ctx, "Schedule updated",
			log.FieldOperation, log.OpUpdate,
			log.FieldRecordID, in.ID,
			log.FieldUserID, userID)
		return schedules[i], nil
	}

	return core.Schedule{}, apperrors.NotFound(fmt.Sprintf("schedule with ID %s not found", in.ID))
}

// Delete removes the schedule matching both id and user_id.
func (r *Repository) Delete(ctx context.Context, userID, scheduleID string) error {
	schedules, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	kept := schedules[:0]
	for _, s := range schedules {
		if s.ID == scheduleID && s.UserID == userID {
			continue
		}
		kept = append(kept, s)
	}
	if len(kept) == len(schedules) {
		return apperrors.NotFound(fmt.Sprintf("schedule with ID %s not found", scheduleID))
	}

	if err := r.store.Save(ctx, kept); err != nil {
		return err
	}
	r.logger.DebugContext(ctx, "Schedule deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldRecordID, scheduleID,
		log.FieldUserID, userID)
	return nil
}

// SearchByDateRange returns the user's schedules fully contained within
// the window: start_time >= start AND end_time <= end. A schedule that
// merely overlaps the window is excluded. Comparison is lexical, which
// is correct for uniformly formatted, zero-padded timestamps.
func (r *Repository) SearchByDateRange(ctx context.Context, userID string, rng core.DateRange) ([]core.Schedule, error) {
	return r.search(ctx, userID, func(s core.Schedule) bool {
		return s.StartTime >= rng.Start && s.EndTime <= rng.End
	})
}

// SearchByTitle returns the user's schedules whose title contains the
// query, case-insensitively.
func (r *Repository) SearchByTitle(ctx context.Context, userID, query string) ([]core.Schedule, error) {
	query = strings.ToLower(query)
	return r.search(ctx, userID, func(s core.Schedule) bool {
		return strings.Contains(strings.ToLower(s.Title), query)
	})
}

// SearchByTags returns the user's schedules sharing at least one tag
// with the query set (OR across tags).
func (r *Repository) SearchByTags(ctx context.Context, userID string, tags []string) ([]core.Schedule, error) {
	return r.search(ctx, userID, func(s core.Schedule) bool {
		for _, want := range tags {
			for _, have := range s.Tags {
				if want == have {
					return true
				}
			}
		}
		return false
	})
}

func (r *Repository) search(ctx context.Context, userID string, match func(core.Schedule) bool) ([]core.Schedule, error) {
	schedules, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	results := []core.Schedule{}
	for _, s := range schedules {
		if s.UserID == userID && match(s) {
			results = append(results, s)
		}
	}
	return results, nil
}

func validateRequired(in core.ScheduleInput) error {
	present := map[string]bool{
		"title":       in.Title != nil,
		"description": in.Description != nil,
		"start_time":  in.StartTime != nil,
		"end_time":    in.EndTime != nil,
		"tags":        in.Tags != nil,
	}
	for _, field := range requiredFields {
		if !present[field] {
			return apperrors.Validation(fmt.Sprintf("Error: %s is required", field))
		}
	}
	return nil
}
