package core

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// DefaultCurrency is assumed when a transaction omits its currency.
const DefaultCurrency = "IDR"

type (
	TransactionType string

	// Schedule is one calendar entry. Start and end times are kept as the
	// caller-supplied sortable strings; range queries compare lexically.
	Schedule struct {
		ID          string   `json:"id"`
		UserID      string   `json:"user_id"`
		Title       string   `json:"title"`
		Description string   `json:"description"`
		StartTime   string   `json:"start_time"`
		EndTime     string   `json:"end_time"`
		Tags        []string `json:"tags"`
	}

	// Category is a cashflow category. Names are stored lower-cased and
	// are unique case-insensitively within one ledger.
	Category struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	// Transaction is one cashflow entry. Category is an embedded copy of
	// the category record at the time of the write.
	Transaction struct {
		ID          string          `json:"id"`
		UserID      string          `json:"user_id"`
		Type        TransactionType `json:"type"`
		Amount      float64         `json:"amount"`
		Currency    string          `json:"currency"`
		Category    Category        `json:"category"`
		Description string          `json:"description"`
		Date        string          `json:"date"`
	}

	// Ledger is the aggregate cashflow document: both sequences persist
	// together in one store.
	Ledger struct {
		Transactions []Transaction `json:"transactions"`
		Categories   []Category    `json:"categories"`
	}

	// Analytics summarizes the transactions of one user over a date range.
	Analytics struct {
		TotalIncome       float64            `json:"total_income"`
		TotalExpense      float64            `json:"total_expense"`
		Balance           float64            `json:"balance"`
		IncomeByCategory  map[string]float64 `json:"income_by_category"`
		ExpenseByCategory map[string]float64 `json:"expense_by_category"`
		TransactionCount  int                `json:"transaction_count"`
	}
)

// IsValid reports whether the transaction type is one of the two
// enumerated values.
func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}
