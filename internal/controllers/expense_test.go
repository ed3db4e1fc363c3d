package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Flexingg/Savings-Web/internal/controllers"
	"github.com/Flexingg/Savings-Web/internal/httperror"
	"github.com/Flexingg/Savings-Web/internal/models"
	"github.com/Flexingg/Savings-Web/internal/types"
	"github.com/Flexingg/Savings-Web/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateExpenseWithDate() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Morning Coffee",
		Amount:      decimalP(5.5),
		Who:         "Jonathan",
		Date:        "2024-03-10",
	})

	assert.Equal(suite.T(), "Morning Coffee", expense.Description)
	assert.Equal(suite.T(), "Jonathan", expense.Who)
	assert.True(suite.T(), expense.Amount.Equal(decimal.NewFromFloat(5.5)))

	// 2024-03-10 is a Sunday
	assert.Equal(suite.T(), 0, expense.Day)
	assert.True(suite.T(), types.NewDate(2024, 3, 10).Equal(expense.Date))

	// The category defaults when not set
	assert.Equal(suite.T(), models.CategoryDefault, expense.Category)
}

func (suite *TestSuiteStandard) TestCreateExpenseDateOverridesDay() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Lunch",
		Amount:      decimalP(12.5),
		Who:         "Sam",
		Day:         intP(5),
		Date:        "2024-03-11",
	})

	// 2024-03-11 is a Monday, the date determines the day on create
	assert.Equal(suite.T(), 1, expense.Day)
	assert.True(suite.T(), types.NewDate(2024, 3, 11).Equal(expense.Date))
}

func (suite *TestSuiteStandard) TestCreateExpenseWithDayOnly() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Groceries",
		Amount:      decimalP(42.23),
		Who:         "Sam",
		Day:         intP(3),
	})

	// Without a date, the day is placed into the current week
	expected := types.CurrentWeek().Day(3)
	assert.Equal(suite.T(), 3, expense.Day)
	assert.True(suite.T(), expected.Equal(expense.Date), "date is %s, should be %s", expense.Date, expected)
}

func (suite *TestSuiteStandard) TestCreateExpenseFails() {
	tests := []struct {
		name   string // Name of the test
		body   any    // the request body
		status int    // expected HTTP status
		err    string // expected error message
	}{
		{"Broken body", `{ "desc": }`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again"},
		{"No body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"No desc", controllers.ExpenseEditable{Amount: decimalP(5.5), Who: "Sam", Day: intP(1)}, http.StatusBadRequest, "expense desc must not be empty"},
		{"Whitespace desc", controllers.ExpenseEditable{Description: "   ", Amount: decimalP(5.5), Who: "Sam", Day: intP(1)}, http.StatusBadRequest, "expense desc must not be empty"},
		{"No amount", controllers.ExpenseEditable{Description: "Coffee", Who: "Sam", Day: intP(1)}, http.StatusBadRequest, "expense amount must be a number"},
		{"Null amount", `{ "desc": "Coffee", "amount": null, "who": "Sam", "day": 1 }`, http.StatusBadRequest, "expense amount must be a number"},
		{"No who", controllers.ExpenseEditable{Description: "Coffee", Amount: decimalP(5.5), Day: intP(1)}, http.StatusBadRequest, "expense who must not be empty"},
		{"Neither day nor date", controllers.ExpenseEditable{Description: "Coffee", Amount: decimalP(5.5), Who: "Sam"}, http.StatusBadRequest, "expense day must be set when no date is given"},
		{"Day too large", controllers.ExpenseEditable{Description: "Coffee", Amount: decimalP(5.5), Who: "Sam", Day: intP(7)}, http.StatusBadRequest, "expense day must be between 0 (Sunday) and 6 (Saturday)"},
		{"Negative day", controllers.ExpenseEditable{Description: "Coffee", Amount: decimalP(5.5), Who: "Sam", Day: intP(-1)}, http.StatusBadRequest, "expense day must be between 0 (Sunday) and 6 (Saturday)"},
		{"Malformed date", controllers.ExpenseEditable{Description: "Coffee", Amount: decimalP(5.5), Who: "Sam", Date: "11.03.2024"}, http.StatusBadRequest, "date must be a valid date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/api/expenses", tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var apiError httperror.Error
			test.DecodeResponse(t, &recorder, &apiError)
			assert.Equal(t, tt.err, apiError.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpense() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var got models.Expense
	test.DecodeResponse(suite.T(), &recorder, &got)
	assert.Equal(suite.T(), expense.ID, got.ID)
	assert.Equal(suite.T(), "Cinema", got.Description)
	assert.Equal(suite.T(), 5, got.Day)
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/3141", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var apiError httperror.Error
	test.DecodeResponse(suite.T(), &recorder, &apiError)
	assert.Equal(suite.T(), "there is no expense matching your query", apiError.Message)
}

func (suite *TestSuiteStandard) TestExpenseInvalidIDs() {
	tests := []string{
		"http://example.com/api/expenses/-17",
		"http://example.com/api/expenses/noID",
		"http://example.com/api/expenses/14.7",
	}

	for _, tt := range tests {
		suite.T().Run(tt, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var apiError httperror.Error
			test.DecodeResponse(t, &recorder, &apiError)
			assert.Equal(t, "the expense ID must be a positive number", apiError.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), map[string]any{
		"desc":   "Cinema and popcorn",
		"amount": 31.5,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Expense
	test.DecodeResponse(suite.T(), &recorder, &updated)

	assert.Equal(suite.T(), "Cinema and popcorn", updated.Description)
	assert.True(suite.T(), updated.Amount.Equal(decimal.NewFromFloat(31.5)))

	// Untouched fields keep their values
	assert.Equal(suite.T(), "Jonathan", updated.Who)
	assert.Equal(suite.T(), 5, updated.Day)
	assert.True(suite.T(), types.NewDate(2024, 3, 15).Equal(updated.Date))
}

func (suite *TestSuiteStandard) TestUpdateExpenseDateRecomputesDay() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
	})

	// 2024-03-20 is a Wednesday
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), map[string]any{
		"date": "2024-03-20",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Expense
	test.DecodeResponse(suite.T(), &recorder, &updated)

	assert.Equal(suite.T(), 3, updated.Day)
	assert.True(suite.T(), types.NewDate(2024, 3, 20).Equal(updated.Date))
}

func (suite *TestSuiteStandard) TestUpdateExpenseExplicitDayWins() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
	})

	// An explicitly set day is not overwritten by the one derived from
	// the date
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), map[string]any{
		"date": "2024-03-20",
		"day":  6,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Expense
	test.DecodeResponse(suite.T(), &recorder, &updated)

	assert.Equal(suite.T(), 6, updated.Day)
	assert.True(suite.T(), types.NewDate(2024, 3, 20).Equal(updated.Date))
}

func (suite *TestSuiteStandard) TestUpdateExpenseDayOnly() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
	})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), map[string]any{
		"day": 2,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Expense
	test.DecodeResponse(suite.T(), &recorder, &updated)

	// A bare day is placed into the current week, not the week of the
	// stored date
	expected := types.CurrentWeek().Day(2)
	assert.Equal(suite.T(), 2, updated.Day)
	assert.True(suite.T(), expected.Equal(updated.Date), "date is %s, should be %s", updated.Date, expected)
}

func (suite *TestSuiteStandard) TestUpdateExpenseClearCategory() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
		Category:    "Fun",
	})

	// The category default only applies on create
	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), map[string]any{
		"category": "",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var updated models.Expense
	test.DecodeResponse(suite.T(), &recorder, &updated)
	assert.Equal(suite.T(), "", updated.Category)
}

func (suite *TestSuiteStandard) TestUpdateExpenseFails() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
	})

	tests := []struct {
		name   string // Name of the test
		body   any    // the request body
		status int    // expected HTTP status
		err    string // expected error message
	}{
		{"No body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken body", `{ "desc": }`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data. Please check and try again"},
		{"No fields", map[string]any{}, http.StatusBadRequest, "no fields provided for update"},
		{"Null desc", `{ "desc": null }`, http.StatusBadRequest, "expense desc must not be empty"},
		{"Empty who", map[string]any{"who": " "}, http.StatusBadRequest, "expense who must not be empty"},
		{"Null amount", `{ "amount": null }`, http.StatusBadRequest, "expense amount must be a number"},
		{"Null day", `{ "day": null }`, http.StatusBadRequest, "expense day must be a number"},
		{"Day out of range", map[string]any{"day": 9}, http.StatusBadRequest, "expense day must be between 0 (Sunday) and 6 (Saturday)"},
		{"Malformed date", map[string]any{"date": "next Tuesday"}, http.StatusBadRequest, "date must be a valid date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), tt.body)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			var apiError httperror.Error
			test.DecodeResponse(t, &recorder, &apiError)
			assert.Equal(t, tt.err, apiError.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateExpenseNotFound() {
	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/api/expenses/3141", map[string]any{
		"desc": "Does not exist",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
	})

	url := fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID)

	recorder := test.Request(suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var deleted controllers.ExpenseDeleteResponse
	test.DecodeResponse(suite.T(), &recorder, &deleted)
	assert.Equal(suite.T(), "Expense deleted successfully", deleted.Message)

	// Deletion is idempotent
	recorder = test.Request(suite.T(), http.MethodDelete, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	// Reads and updates of the deleted expense fail
	recorder = test.Request(suite.T(), http.MethodGet, url, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	recorder = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"desc": "Gone"})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteExpenseInvalidID() {
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/api/expenses/none", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseDBError() {
	suite.CloseDB()

	tests := []struct {
		name   string
		method string
		url    string
		body   any
	}{
		{"List", http.MethodGet, "http://example.com/api/expenses", ""},
		{"By week", http.MethodGet, "http://example.com/api/expenses/by-week", ""},
		{"Get", http.MethodGet, "http://example.com/api/expenses/1", ""},
		{"Create", http.MethodPost, "http://example.com/api/expenses", controllers.ExpenseEditable{Description: "Coffee", Amount: decimalP(5.5), Who: "Sam", Day: intP(1)}},
		{"Delete", http.MethodDelete, "http://example.com/api/expenses/1", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, tt.method, tt.url, tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

			var apiError httperror.Error
			test.DecodeResponse(t, &recorder, &apiError)
			assert.Equal(t, "an error occurred on the server during your request", apiError.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesDefaultWeek() {
	current := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Coffee",
		Amount:      decimalP(5.5),
		Who:         "Jonathan",
		Day:         intP(1),
	})

	// An expense in a past week is filtered out
	_ = suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Old lunch",
		Amount:      decimalP(12.5),
		Who:         "Sam",
		Date:        "2020-01-15",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Expenses, 1)
	assert.Equal(suite.T(), current.ID, response.Expenses[0].ID)

	week := types.CurrentWeek()
	assert.True(suite.T(), week.Start.Equal(response.WeekRange.Start))
	assert.True(suite.T(), week.End.Equal(response.WeekRange.End))
}

func (suite *TestSuiteStandard) TestGetExpensesFilterAndOrder() {
	sunday := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Brunch",
		Amount:      decimalP(17.5),
		Who:         "Sam",
		Date:        "2024-03-10",
	})

	saturday := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-16",
	})

	// Just outside the requested week
	_ = suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Next week groceries",
		Amount:      decimalP(42.23),
		Who:         "Sam",
		Date:        "2024-03-17",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses?start_date=2024-03-10", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// Ordered by date
	suite.Require().Len(response.Expenses, 2)
	assert.Equal(suite.T(), sunday.ID, response.Expenses[0].ID)
	assert.Equal(suite.T(), saturday.ID, response.Expenses[1].ID)

	assert.True(suite.T(), types.NewDate(2024, 3, 10).Equal(response.WeekRange.Start))
	assert.True(suite.T(), types.NewDate(2024, 3, 16).Equal(response.WeekRange.End))
}

func (suite *TestSuiteStandard) TestGetExpensesExplicitEndDate() {
	_ = suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Brunch",
		Amount:      decimalP(17.5),
		Who:         "Sam",
		Date:        "2024-03-10",
	})

	_ = suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-16",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses?start_date=2024-03-10&end_date=2024-03-12", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Expenses, 1)
	assert.Equal(suite.T(), "Brunch", response.Expenses[0].Description)
	assert.True(suite.T(), types.NewDate(2024, 3, 12).Equal(response.WeekRange.End))
}

func (suite *TestSuiteStandard) TestGetExpensesInvalidDates() {
	tests := []struct {
		name string
		url  string
		err  string
	}{
		{"start_date", "http://example.com/api/expenses?start_date=03-10-2024", "start_date must be a valid date in YYYY-MM-DD format"},
		{"end_date", "http://example.com/api/expenses?start_date=2024-03-10&end_date=tomorrow", "end_date must be a valid date in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt.url, "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var apiError httperror.Error
			test.DecodeResponse(t, &recorder, &apiError)
			assert.Equal(t, tt.err, apiError.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpensesByWeek() {
	_ = suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Brunch",
		Amount:      decimalP(5.555),
		Who:         "Sam",
		Date:        "2024-03-10",
	})

	_ = suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Coffee",
		Amount:      decimalP(1.111),
		Who:         "Jonathan",
		Date:        "2024-03-10",
	})

	_ = suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-13",
	})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/by-week?start_date=2024-03-10", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseSummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Expenses, 3)
	assert.Equal(suite.T(), 3, response.Summary.TotalCount)

	// 5.555 + 1.111 + 24 = 30.666, rounded to 30.67
	assert.True(suite.T(), response.Summary.TotalAmount.Equal(decimal.NewFromFloat(30.67)), "total is %s, should be 30.67", response.Summary.TotalAmount)

	suite.Require().Len(response.Summary.ExpensesByDay, 2)
	assert.Len(suite.T(), response.Summary.ExpensesByDay[0], 2)
	assert.Len(suite.T(), response.Summary.ExpensesByDay[3], 1)
}

func (suite *TestSuiteStandard) TestGetExpensesByWeekEmpty() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/api/expenses/by-week?start_date=2024-03-10", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.ExpenseSummaryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Expenses, 0)
	assert.Equal(suite.T(), 0, response.Summary.TotalCount)
	assert.True(suite.T(), response.Summary.TotalAmount.IsZero())
	assert.Len(suite.T(), response.Summary.ExpensesByDay, 0)
}

func (suite *TestSuiteStandard) TestOptionsExpenseDetail() {
	expense := suite.createTestExpense(controllers.ExpenseEditable{
		Description: "Cinema",
		Amount:      decimalP(24),
		Who:         "Jonathan",
		Date:        "2024-03-15",
	})

	recorder := test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/api/expenses/%d", expense.ID), "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/api/expenses/3141", "")
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}
