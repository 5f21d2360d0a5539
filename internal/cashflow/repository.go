// Package cashflow implements the transaction/category store skill.
//
// Transactions and categories share one ledger document. Category names
// are stored lower-cased and deduplicated case-insensitively: every
// transaction write runs lookup-or-create, so the category sequence
// grows at most once per distinct name.
package cashflow

import (
	"context"
	"strings"
	"time"

	"teoskills/internal/apperrors"
	"teoskills/internal/core"
	"teoskills/internal/ident"
	"teoskills/internal/log"
	"teoskills/internal/storage"
)

// dateLayout mirrors the microsecond timestamps the store has always
// held; it sorts lexically like the rest of the stored dates.
const dateLayout = "2006-01-02T15:04:05.000000"

type Repository struct {
	store  storage.LedgerStore
	ids    *ident.Generator
	logger *log.Logger
	now    func() time.Time
}

func NewRepository(store storage.LedgerStore, ids *ident.Generator, logger *log.Logger) *Repository {
	return &Repository{
		store:  store,
		ids:    ids,
		logger: logger.WithComponent(log.ComponentCashflow),
		now:    time.Now,
	}
}

// AddTransaction validates the input, resolves its category by
// lookup-or-create and appends the transaction with defaulted currency
// and date.
func (r *Repository) AddTransaction(ctx context.Context, userID string, in core.TransactionInput) (core.Transaction, error) {
	var amount float64
	if in.Amount != nil {
		amount = *in.Amount
	}
	if amount <= 0 {
		return core.Transaction{}, apperrors.Validation("Error: transaction amount must be greater than 0")
	}
	if in.Type == nil || !in.Type.IsValid() {
		return core.Transaction{}, apperrors.Validation("Error: invalid transaction type")
	}
	catName := strings.ToLower(in.CategoryName())
	if catName == "" {
		return core.Transaction{}, apperrors.Validation("Error: category name cannot be empty")
	}

	ledger, err := r.store.Load(ctx)
	if err != nil {
		return core.Transaction{}, err
	}

	category := r.lookupOrCreateCategory(&ledger, catName)

	currency := core.DefaultCurrency
	if in.Currency != nil {
		currency = *in.Currency
	}
	date := r.now().Format(dateLayout)
	if in.Date != nil {
		date = *in.Date
	}
	var description string
	if in.Description != nil {
		description = *in.Description
	}

	transaction := core.Transaction{
		ID:          r.ids.Next(ident.TransactionPrefix),
		UserID:      userID,
		Type:        *in.Type,
		Amount:      amount,
		Currency:    currency,
		Category:    category,
		Description: description,
		Date:        date,
	}

	ledger.Transactions = append(ledger.Transactions, transaction)
	if err := r.store.Save(ctx, ledger); err != nil {
		return core.Transaction{}, err
	}

	r.logger.DebugContext(ctx, "Transaction added",
		log.FieldOperation, log.OpCreate,
		log.FieldRecordID, transaction.ID,
		log.FieldUserID, userID)
	return transaction, nil
}

// UpdateTransaction overwrites only the fields present in the input.
// A supplied category name re-runs lookup-or-create; matching an
// existing category keeps its identifier.
func (r *Repository) UpdateTransaction(ctx context.Context, userID, transactionID string, in core.TransactionInput) (core.Transaction, error) {
	if transactionID == "" {
		return core.Transaction{}, apperrors.NotFound("Error: transaction ID not found")
	}

	ledger, err := r.store.Load(ctx)
	if err != nil {
		return core.Transaction{}, err
	}

	idx := -1
	for i, t := range ledger.Transactions {
		if t.ID == transactionID && t.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return core.Transaction{}, apperrors.NotFound("Error: transaction not found")
	}

	if catName := strings.ToLower(in.CategoryName()); catName != "" {
		ledger.Transactions[idx].Category = r.lookupOrCreateCategory(&ledger, catName)
	}
	if in.Amount != nil {
		ledger.Transactions[idx].Amount = *in.Amount
	}
	if in.Type != nil {
		ledger.Transactions[idx].Type = *in.Type
	}
	if in.Description != nil {
		ledger.Transactions[idx].Description = *in.Description
	}
	if in.Date != nil {
		ledger.Transactions[idx].Date = *in.Date
	}

	if err := r.store.Save(ctx, ledger); err != nil {
		return core.Transaction{}, err
	}

	r.logger.DebugContext(ctx, "Transaction updated",
		log.FieldOperation, log.OpUpdate,
		log.FieldRecordID, transactionID,
		log.FieldUserID, userID)
	return ledger.Transactions[idx], nil
}

// DeleteTransaction removes the transaction matching both id and user_id.
func (r *Repository) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	ledger, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	kept := ledger.Transactions[:0]
	for _, t := range ledger.Transactions {
		if t.ID == transactionID && t.UserID == userID {
			continue
		}
		kept = append(kept, t)
	}
	if len(kept) == len(ledger.Transactions) {
		return apperrors.NotFound("Error: transaction not found")
	}
	ledger.Transactions = kept

	if err := r.store.Save(ctx, ledger); err != nil {
		return err
	}
	r.logger.DebugContext(ctx, "Transaction deleted",
		log.FieldOperation, log.OpDelete,
		log.FieldRecordID, transactionID,
		log.FieldUserID, userID)
	return nil
}

// GetTransactions returns the user's transactions dated within
// [start, end], both ends inclusive, compared lexically.
func (r *Repository) GetTransactions(ctx context.Context, userID string, rng core.DateRange) ([]core.Transaction, error) {
	if rng.Start == "" || rng.End == "" {
		return nil, apperrors.Validation("Error: invalid date range")
	}

	ledger, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	results := []core.Transaction{}
	for _, t := range ledger.Transactions {
		if t.UserID == userID && t.Date >= rng.Start && t.Date <= rng.End {
			results = append(results, t)
		}
	}
	return results, nil
}

// GetAnalytics aggregates the user's transactions over the range.
// Unlike GetTransactions it performs no bounds validation: an empty
// start matches every date and an empty end matches none. That
// inconsistency is inherited from the original store and kept on
// purpose.
func (r *Repository) GetAnalytics(ctx context.Context, userID string, rng core.DateRange) (core.Analytics, error) {
	analytics := core.Analytics{
		IncomeByCategory:  map[string]float64{},
		ExpenseByCategory: map[string]float64{},
	}

	ledger, err := r.store.Load(ctx)
	if err != nil {
		return analytics, err
	}

	for _, t := range ledger.Transactions {
		if t.UserID != userID || t.Date < rng.Start || t.Date > rng.End {
			continue
		}
		analytics.TransactionCount++
		if t.Type == core.Income {
			analytics.TotalIncome += t.Amount
			analytics.IncomeByCategory[t.Category.Name] += t.Amount
		} else {
			analytics.TotalExpense += t.Amount
			analytics.ExpenseByCategory[t.Category.Name] += t.Amount
		}
	}
	analytics.Balance = analytics.TotalIncome - analytics.TotalExpense

	return analytics, nil
}

// AddCategory appends a category with a caller-supplied or generated
// identifier. Duplicate names (case-insensitive) conflict.
func (r *Repository) AddCategory(ctx context.Context, in core.CategoryInput) (core.Category, error) {
	name := strings.ToLower(in.Name)
	if name == "" {
		return core.Category{}, apperrors.Validation("Error: category name cannot be empty")
	}

	ledger, err := r.store.Load(ctx)
	if err != nil {
		return core.Category{}, err
	}

	for _, c := range ledger.Categories {
		if c.Name == name {
			return core.Category{}, apperrors.Conflict("Error: category with this name already exists")
		}
	}

	id := in.ID
	if id == "" {
		id = r.ids.Next(ident.CategoryPrefix)
	}
	category := core.Category{ID: id, Name: name}
	ledger.Categories = append(ledger.Categories, category)

	if err := r.store.Save(ctx, ledger); err != nil {
		return core.Category{}, err
	}
	r.logger.DebugContext(ctx, "Category added",
		log.FieldOperation, log.OpCreate,
		log.FieldRecordID, category.ID)
	return category, nil
}

// GetCategories returns the full category sequence. Categories are
// store-global, not per-user: one taxonomy shared by every user of the
// store file.
func (r *Repository) GetCategories(ctx context.Context) ([]core.Category, error) {
	ledger, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if ledger.Categories == nil {
		return []core.Category{}, nil
	}
	return ledger.Categories, nil
}

// lookupOrCreateCategory finds the category with the given lower-cased
// name, or mints and appends a new one. An existing category keeps its
// identifier; callers must never overwrite it.
func (r *Repository) lookupOrCreateCategory(ledger *core.Ledger, name string) core.Category {
	for _, c := range ledger.Categories {
		if c.Name == name {
			return c
		}
	}
	category := core.Category{ID: r.ids.Next(ident.CategoryPrefix), Name: name}
	ledger.Categories = append(ledger.Categories, category)
	return category
}
