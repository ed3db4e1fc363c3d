package controllers

import (
	"net/http"

	"github.com/Flexingg/Savings-Web/internal/httperror"
	"github.com/Flexingg/Savings-Web/internal/httputil"
	"github.com/Flexingg/Savings-Web/internal/models"
	"github.com/Flexingg/Savings-Web/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterDataRoutes registers the routes for the combined data view
// with the RouterGroup that is passed.
func RegisterDataRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsData)
	r.GET("", GetData)
}

// DataResponse is the payload for the combined settings and expenses view.
type DataResponse struct {
	Settings  models.Settings  `json:"settings"`   // The budget settings
	Expenses  []models.Expense `json:"expenses"`   // Expenses within the week range, ordered by date, then ID
	WeekRange types.Week       `json:"week_range"` // The resolved week range
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api/data [options]
func OptionsData(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get all data
// @Description	Returns the settings together with the expenses of a calendar week. Defaults to the week containing the current date.
// @Tags			General
// @Produce		json
// @Success		200			{object}	DataResponse
// @Failure		400			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			start_date	query		string	false	"First day of the range (YYYY-MM-DD)"
// @Param			end_date	query		string	false	"Last day of the range (YYYY-MM-DD). Defaults to start_date + 6 days"
// @Router			/api/data [get]
func GetData(c *gin.Context) {
	week, err := weekRangeFromQuery(c)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	var settings models.Settings
	err = models.DB.First(&settings).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	expenses, err := expensesForWeek(week)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, DataResponse{
		Settings:  settings,
		Expenses:  expenses,
		WeekRange: week,
	})
}
