package controllers

import (
	"net/http"
	"strings"

	"github.com/Flexingg/Savings-Web/internal/httperror"
	"github.com/Flexingg/Savings-Web/internal/httputil"
	"github.com/Flexingg/Savings-Web/internal/models"
	"github.com/Flexingg/Savings-Web/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Week summary
	{
		r.OPTIONS("/by-week", OptionsExpensesByWeek)
		r.GET("/by-week", GetExpensesByWeek)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/api/expenses/by-week [options]
func OptionsExpensesByWeek(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/api/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.First(&models.Expense{}, id).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		List expenses
// @Description	Returns the expenses of a calendar week. Defaults to the week containing the current date.
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			start_date	query		string	false	"First day of the range (YYYY-MM-DD)"
// @Param			end_date	query		string	false	"Last day of the range (YYYY-MM-DD). Defaults to start_date + 6 days"
// @Router			/api/expenses [get]
func GetExpenses(c *gin.Context) {
	week, err := weekRangeFromQuery(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	expenses, err := expensesForWeek(week)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Expenses:  expenses,
		WeekRange: week,
	})
}

// @Summary		Week summary
// @Description	Returns the expenses of a calendar week together with the total amount and a per-day grouping
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseSummaryResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			start_date	query		string	false	"First day of the range (YYYY-MM-DD)"
// @Param			end_date	query		string	false	"Last day of the range (YYYY-MM-DD). Defaults to start_date + 6 days"
// @Router			/api/expenses/by-week [get]
func GetExpensesByWeek(c *gin.Context) {
	week, err := weekRangeFromQuery(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	expenses, err := expensesForWeek(week)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, ExpenseSummaryResponse{
		Expenses:  expenses,
		WeekRange: week,
		Summary:   summarize(expenses),
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	models.Expense
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/api/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Create expense
// @Description	Creates a new expense. When a date is given, the day-of-week index is derived from it. Without a date, the day-of-week index is placed into the current calendar week.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	models.Expense
// @Failure		400		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/expenses [post]
func CreateExpense(c *gin.Context) {
	var data ExpenseEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if strings.TrimSpace(data.Description) == "" {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseDescRequired))
		return
	}

	if data.Amount == nil {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseAmountRequired))
		return
	}

	if strings.TrimSpace(data.Who) == "" {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseWhoRequired))
		return
	}

	if data.Date == "" && data.Day == nil {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseDayRequired))
		return
	}

	expense := data.model()

	// The date always determines the day-of-week index. A day-of-week
	// index on its own is placed into the current calendar week.
	if data.Date != "" {
		date, err := types.ParseDate(data.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, httperror.New(errInvalidDate("date")))
			return
		}

		expense.Date = date
		expense.Day = date.Weekday()
	} else {
		if expense.Day < 0 || expense.Day > 6 {
			c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseDayOutOfRange))
			return
		}

		expense.Date = types.CurrentWeek().Day(expense.Day)
	}

	err = models.DB.Create(&expense).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified. A new date recomputes the day-of-week index unless the request also sets it explicitly.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	models.Expense
// @Failure		400		{object}	httperror.Error
// @Failure		404		{object}	httperror.Error
// @Failure		500		{object}	httperror.Error
// @Param			id		path		uint64			true	"ID of the expense"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/api/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, id).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, httperror.New(errNoUpdateFields))
		return
	}

	// Bind the data for the patch
	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if slices.Contains(updateFields, any("Description")) && strings.TrimSpace(data.Description) == "" {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseDescRequired))
		return
	}

	if slices.Contains(updateFields, any("Amount")) && data.Amount == nil {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseAmountRequired))
		return
	}

	if slices.Contains(updateFields, any("Who")) && strings.TrimSpace(data.Who) == "" {
		c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseWhoRequired))
		return
	}

	hasDay := slices.Contains(updateFields, any("Day"))
	if hasDay {
		if data.Day == nil {
			c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseDayInvalid))
			return
		}

		if *data.Day < 0 || *data.Day > 6 {
			c.JSON(http.StatusBadRequest, httperror.New(models.ErrExpenseDayOutOfRange))
			return
		}
	}

	update := data.model()

	// A new date recomputes the day-of-week index, but an explicitly
	// supplied index wins over the derived one. A bare index is placed
	// into the current calendar week, not the week of the stored date.
	if slices.Contains(updateFields, any("Date")) {
		date, err := types.ParseDate(data.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, httperror.New(errInvalidDate("date")))
			return
		}

		update.Date = date
		if !hasDay {
			update.Day = date.Weekday()
			updateFields = append(updateFields, "Day")
		}
	} else if hasDay {
		update.Date = types.CurrentWeek().Day(update.Day)
		updateFields = append(updateFields, "Date")
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(update).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	// Read the expense back, the update is only complete if it is persisted
	err = models.DB.First(&expense, id).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, expense)
}

// @Summary		Delete expense
// @Description	Deletes an expense. Succeeds regardless of prior existence.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseDeleteResponse
// @Failure		400	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/api/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	err = models.DB.Delete(&models.Expense{}, id).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, ExpenseDeleteResponse{
		Message: "Expense deleted successfully",
	})
}
