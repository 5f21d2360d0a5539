package cashflow

import (
	"context"
	"encoding/json"
	"fmt"

	"teoskills/internal/core"
	"teoskills/internal/events"
	"teoskills/internal/log"
	"teoskills/internal/skill"
)

// userScopedActions require a user_id; add_category and get_categories
// operate on the store-global taxonomy and do not.
var userScopedActions = map[string]bool{
	"add_transaction":    true,
	"get_transactions":   true,
	"update_transaction": true,
	"delete_transaction": true,
	"get_analytics":      true,
}

// request is the single JSON argument of the cashflow skill.
type request struct {
	Action        string                 `json:"action"`
	UserID        string                 `json:"user_id"`
	Transaction   *core.TransactionInput `json:"transaction"`
	TransactionID string                 `json:"transaction_id"`
	Category      core.CategoryInput     `json:"category"`
	DateRange     core.DateRange         `json:"date_range"`
}

type Skill struct {
	repo   *Repository
	events *events.Client
	logger *log.Logger
}

func NewSkill(repo *Repository, eventsClient *events.Client, logger *log.Logger) *Skill {
	return &Skill{
		repo:   repo,
		events: eventsClient,
		logger: logger.WithComponent(log.ComponentCashflow),
	}
}

func (s *Skill) Run(ctx context.Context, rawArg string) string {
	var req request
	if err := json.Unmarshal([]byte(rawArg), &req); err != nil {
		return skill.Error("Invalid JSON arguments")
	}

	if userScopedActions[req.Action] && req.UserID == "" {
		return skill.Error("Error: user_id is required")
	}

	switch req.Action {
	case "add_transaction":
		created, err := s.repo.AddTransaction(ctx, req.UserID, transactionInput(req.Transaction))
		if err != nil {
			return skill.ErrorFrom(err)
		}
		s.publish(ctx, req.Action, created.ID)
		return skill.Message(fmt.Sprintf("Transaction added successfully with ID: %s", created.ID))

	case "get_transactions":
		results, err := s.repo.GetTransactions(ctx, req.UserID, req.DateRange)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(results)

	case "update_transaction":
		updated, err := s.repo.UpdateTransaction(ctx, req.UserID, req.TransactionID, transactionInput(req.Transaction))
		if err != nil {
			return skill.ErrorFrom(err)
		}
		s.publish(ctx, req.Action, updated.ID)
		return skill.Message(fmt.Sprintf("Transaction updated successfully with ID: %s", updated.ID))

	case "delete_transaction":
		if err := s.repo.DeleteTransaction(ctx, req.UserID, req.TransactionID); err != nil {
			return skill.ErrorFrom(err)
		}
		s.publish(ctx, req.Action, req.TransactionID)
		return skill.Message("Transaction deleted successfully")

	case "get_analytics":
		analytics, err := s.repo.GetAnalytics(ctx, req.UserID, req.DateRange)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(analytics)

	case "add_category":
		created, err := s.repo.AddCategory(ctx, req.Category)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		s.publish(ctx, req.Action, created.ID)
		return skill.Message("Category added successfully")

	case "get_categories":
		categories, err := s.repo.GetCategories(ctx)
		if err != nil {
			return skill.ErrorFrom(err)
		}
		return skill.Records(categories)

	default:
		return skill.Error(fmt.Sprintf("Error: invalid action: %s", req.Action))
	}
}

func (s *Skill) publish(ctx context.Context, action, recordID string) {
	if err := s.events.PublishStoreEvent(ctx, "cashflow", action, recordID); err != nil {
		s.logger.ErrorContext(ctx, "Failed to publish store event",
			log.FieldAction, action,
			log.FieldRecordID, recordID,
			log.FieldError, err.Error())
	}
}

func transactionInput(in *core.TransactionInput) core.TransactionInput {
	if in == nil {
		return core.TransactionInput{}
	}
	return *in
}
