package controllers

import (
	"github.com/Flexingg/Savings-Web/internal/models"
	"github.com/Flexingg/Savings-Web/internal/types"
	"github.com/shopspring/decimal"
)

// ExpenseEditable contains the fields of an Expense that users can set.
//
// Amount and Day are pointers so that a missing or null value can be
// told apart from a zero. Date stays a string here, it is parsed by the
// handlers so that a malformed value produces an error naming the field.
type ExpenseEditable struct {
	Description string           `json:"desc" example:"Morning Coffee"`                // What the money was spent on
	Amount      *decimal.Decimal `json:"amount" example:"5.50"`                        // The amount spent
	Who         string           `json:"who" example:"Jonathan"`                       // Owner/payer tag
	Day         *int             `json:"day" minimum:"0" maximum:"6" example:"1"`      // Day-of-week index, Sunday = 0 through Saturday = 6
	Category    string           `json:"category" default:"Pending" example:"Both"`    // Category of the expense
	Date        string           `json:"date" format:"YYYY-MM-DD" example:"2024-03-11"` // Calendar date of the expense
}

// model returns the database resource for the API representation of the
// editable fields. The Date field is resolved by the handlers together
// with Day.
func (editable ExpenseEditable) model() models.Expense {
	expense := models.Expense{
		Description: editable.Description,
		Who:         editable.Who,
		Category:    editable.Category,
	}

	if editable.Amount != nil {
		expense.Amount = *editable.Amount
	}

	if editable.Day != nil {
		expense.Day = *editable.Day
	}

	return expense
}

// ExpenseListResponse is the response for a week-filtered expense list.
type ExpenseListResponse struct {
	Expenses  []models.Expense `json:"expenses"`   // Expenses within the week range, ordered by date, then ID
	WeekRange types.Week       `json:"week_range"` // The resolved week range
}

// WeekSummary sums up the expenses of a week.
type WeekSummary struct {
	TotalCount    int                      `json:"total_count" example:"4"`        // Number of expenses in the range
	TotalAmount   decimal.Decimal          `json:"total_amount" example:"92.5"`    // Sum of all amounts, rounded to 2 decimal places
	ExpensesByDay map[int][]models.Expense `json:"expenses_by_day"`                // Expenses grouped by their day-of-week index
}

// ExpenseSummaryResponse is the response for the by-week summary view.
type ExpenseSummaryResponse struct {
	Expenses  []models.Expense `json:"expenses"`   // Expenses within the week range, ordered by date, then ID
	WeekRange types.Week       `json:"week_range"` // The resolved week range
	Summary   WeekSummary      `json:"summary"`    // Summary over the filtered expenses
}

// ExpenseDeleteResponse acknowledges the deletion of an expense.
type ExpenseDeleteResponse struct {
	Message string `json:"message" example:"Expense deleted successfully"`
}
