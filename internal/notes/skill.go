package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"teoskills/internal/log"
	"teoskills/internal/skill"
)

// request is the single JSON argument of the notes skill.
type request struct {
	Action    string `json:"action"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Search    string `json:"search"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Skill struct {
	store  *Store
	logger *log.Logger
}

func NewSkill(store *Store, logger *log.Logger) *Skill {
	return &Skill{
		store:  store,
		logger: logger.WithComponent(log.ComponentNotes),
	}
}

func (s *Skill) Run(ctx context.Context, rawArg string) string {
	var req request
	if err := json.Unmarshal([]byte(rawArg), &req); err != nil {
		return skill.Error("Invalid JSON arguments")
	}

	action := strings.ToUpper(req.Action)
	if msg := validate(action, req); msg != "" {
		return skill.Error(msg)
	}

	switch action {
	case "GET":
		notes, err := s.store.List(ctx, req.UserID)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(notes)

	case "GET_DETAIL":
		note, err := s.store.Get(ctx, req.UserID, req.Title)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(note)

	case "POST":
		note, err := s.store.Create(ctx, req.UserID, req.Title, req.Content)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Message(fmt.Sprintf("Note '%s' has been saved successfully.", note.Title))

	case "PUT":
		note, err := s.store.Update(ctx, req.UserID, req.Title, req.Content)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Message(fmt.Sprintf("Note '%s' has been updated successfully.", note.Title))

	case "DELETE":
		if err := s.store.Delete(ctx, req.UserID, req.Title); err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Message(fmt.Sprintf("Note '%s' has been deleted successfully.", req.Title))

	case "SEARCH":
		notes, err := s.store.Search(ctx, req.UserID, req.Search)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(notes)

	case "GET_BY_DATE":
		notes, err := s.store.ListByDate(ctx, req.UserID, req.StartDate, req.EndDate)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(notes)

	default:
		return skill.Error(fmt.Sprintf("Unknown action: %s", action))
	}
}

func validate(action string, req request) string {
	if action == "" {
		return "Error: action is required"
	}
	if action == "POST" || action == "PUT" {
		if req.Title == "" {
			return "Error: title is required"
		}
		if req.Content == "" {
			return "Error: content is required"
		}
	}
	if req.UserID == "" {
		return "Error: user_id is required"
	}
	return ""
}
