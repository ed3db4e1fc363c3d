package controllers

import (
	"errors"
	"strconv"

	"github.com/Flexingg/Savings-Web/internal/models"
	"github.com/Flexingg/Savings-Web/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var errInvalidExpenseID = errors.New("the expense ID must be a positive number")

// parseID parses the expense ID from the URL parameters.
func parseID(c *gin.Context) (uint, error) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, errInvalidExpenseID
	}

	return uint(parsed), nil
}

// weekRangeFromQuery resolves the effective week range from the
// start_date and end_date query parameters.
//
// With a start_date, the range ends six days later unless an explicit
// end_date is given. Without a start_date, the week containing the
// current date is used and end_date is ignored.
func weekRangeFromQuery(c *gin.Context) (types.Week, error) {
	startParam := c.Query("start_date")
	if startParam == "" {
		return types.CurrentWeek(), nil
	}

	start, err := types.ParseDate(startParam)
	if err != nil {
		return types.Week{}, errInvalidDate("start_date")
	}

	week := types.Week{
		Start: start,
		End:   start.AddDays(6),
	}

	if endParam := c.Query("end_date"); endParam != "" {
		end, err := types.ParseDate(endParam)
		if err != nil {
			return types.Week{}, errInvalidDate("end_date")
		}

		week.End = end
	}

	return week, nil
}

// expensesForWeek returns all expenses within the week range, both ends
// inclusive, ordered by date, then ID.
func expensesForWeek(week types.Week) ([]models.Expense, error) {
	expenses := make([]models.Expense, 0)

	err := models.DB.
		Where("date(expenses.date) >= date(?)", week.Start).
		Where("date(expenses.date) <= date(?)", week.End).
		Order("date(expenses.date) ASC, expenses.id ASC").
		Find(&expenses).Error

	return expenses, err
}

// summarize builds the week summary over a filtered set of expenses.
func summarize(expenses []models.Expense) WeekSummary {
	total := decimal.Zero
	byDay := make(map[int][]models.Expense)

	for _, expense := range expenses {
		total = total.Add(expense.Amount)
		byDay[expense.Day] = append(byDay[expense.Day], expense)
	}

	return WeekSummary{
		TotalCount:    len(expenses),
		TotalAmount:   total.Round(2),
		ExpensesByDay: byDay,
	}
}
