package calendar

import (
	"context"
	"encoding/json"
	"fmt"

	"teoskills/internal/core"
	"teoskills/internal/events"
	"teoskills/internal/log"
	"teoskills/internal/skill"
)

// request is the single JSON argument of the calendar skill.
type request struct {
	Action     string              `json:"action"`
	UserID     string              `json:"user_id"`
	Schedule   *core.ScheduleInput `json:"schedule"`
	ScheduleID string              `json:"schedule_id"`
	DateRange  core.DateRange      `json:"date_range"`
	Title      string              `json:"title"`
	Tags       []string            `json:"tags"`
}

// Skill routes one parsed invocation to the repository and renders the
// payload. Every Run returns exactly one JSON value.
type Skill struct {
	repo   *Repository
	events *events.Client
	logger *log.Logger
}

func NewSkill(repo *Repository, eventsClient *events.Client, logger *log.Logger) *Skill {
	return &Skill{
		repo:   repo,
		events: eventsClient,
		logger: logger.WithComponent(log.ComponentCalendar),
	}
}

func (s *Skill) Run(ctx context.Context, rawArg string) string {
	var req request
	if err := json.Unmarshal([]byte(rawArg), &req); err != nil {
		return skill.Error("Invalid JSON arguments")
	}

	if req.UserID == "" {
		return skill.Error("Error: user_id is required")
	}

	switch req.Action {
	case "add_schedule":
		created, err := s.repo.Add(ctx, req.UserID, scheduleInput(req.Schedule))
		if err != nil {
			return skill.ErrorFrom(err)
		}
		s.publish(ctx, req.Action, created.ID)
		return skill.Message("Schedule added successfully")

	case "update_schedule":
		updated, err := s.repo.Update(ctx, req.UserID, scheduleInput(req.Schedule))
		if err != nil {
			return skill.ErrorFrom(err)
		}
		s.publish(ctx, req.Action, updated.ID)
		return skill.Message("Schedule updated successfully")

	case "delete_schedule":
		if err := s.repo.Delete(ctx, req.UserID, req.ScheduleID); err != nil {
			return skill.ErrorFrom(err)
		}
		s.publish(ctx, req.Action, req.ScheduleID)
		return skill.Message("Schedule deleted successfully")

	case "search_by_date":
		results, err := s.repo.SearchByDateRange(ctx, req.UserID, req.DateRange)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(results)

	case "search_by_title":
		results, err := s.repo.SearchByTitle(ctx, req.UserID, req.Title)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(results)

	case "search_by_tags":
		results, err := s.repo.SearchByTags(ctx, req.UserID, req.Tags)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(results)

	default:
		return skill.Error(fmt.Sprintf("Error: invalid action: %s", req.Action))
	}
}

func (s *Skill) publish(ctx context.Context, action, recordID string) {
	if err := s.events.PublishStoreEvent(ctx, "calendar", action, recordID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish store event",
			log.FieldAction, action,
			log.FieldRecordID, recordID,
			log.FieldError, err.Error())
	}
}

// scheduleInput tolerates a missing schedule object: the repository's
// field validation reports what's absent.
func scheduleInput(in *core.ScheduleInput) core.ScheduleInput {
	if in == nil {
		return core.ScheduleInput{}
	}
	return *in
}
