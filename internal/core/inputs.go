package core

// Input types use pointer fields so partial updates can tell an omitted
// field from a zero value. An absent field leaves the stored value
// untouched; a present field replaces it wholesale (tags included).

type (
	ScheduleInput struct {
		ID          string    `json:"id"`
		Title       *string   `json:"title"`
		Description *string   `json:"description"`
		StartTime   *string   `json:"start_time"`
		EndTime     *string   `json:"end_time"`
		Tags        *[]string `json:"tags"`
	}

	CategoryInput struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	TransactionInput struct {
		Amount      *float64         `json:"amount"`
		Type        *TransactionType `json:"type"`
		Currency    *string          `json:"currency"`
		Category    *CategoryInput   `json:"category"`
		Description *string          `json:"description"`
		Date        *string          `json:"date"`
	}

	// DateRange bounds a query window. Both stores compare bounds
	// lexically against the stored timestamp strings.
	DateRange struct {
		Start string `json:"start"`
		End   string `json:"end"`
	}
)

// CategoryName returns the category name carried by the input, or the
// empty string if no category was supplied.
func (in TransactionInput) CategoryName() string {
	if in.Category == nil {
		return ""
	}
	return in.Category.Name
}
