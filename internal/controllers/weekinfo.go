package controllers

import (
	"net/http"
	"time"

	"github.com/Flexingg/Savings-Web/internal/httperror"
	"github.com/Flexingg/Savings-Web/internal/httputil"
	"github.com/Flexingg/Savings-Web/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterWeekInfoRoutes registers the routes for the week-info view
// with the RouterGroup that is passed.
func RegisterWeekInfoRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsWeekInfo)
	r.GET("", GetWeekInfo)
}

// WeekInfoDay is a single day of a week.
type WeekInfoDay struct {
	DayNumber int        `json:"day_number" example:"0"`                         // Day-of-week index, Sunday = 0 through Saturday = 6
	DayName   string     `json:"day_name" example:"Sunday"`                      // English name of the day
	Date      types.Date `json:"date" swaggertype:"string" example:"2024-03-10"` // Calendar date of the day
}

// WeekInfoResponse enumerates the days of the week containing a
// reference date.
type WeekInfoResponse struct {
	WeekRange   types.Week    `json:"week_range"`                                             // The Sunday-to-Saturday week containing the reference date
	Days        []WeekInfoDay `json:"days"`                                                   // All seven days of the week
	CurrentDate types.Date    `json:"current_date" swaggertype:"string" example:"2024-03-12"` // The server's current date
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/api/week-info [options]
func OptionsWeekInfo(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Week info
// @Description	Returns the Sunday-to-Saturday week containing the reference date with all seven days enumerated. Defaults to the current date.
// @Tags			General
// @Produce		json
// @Success		200		{object}	WeekInfoResponse
// @Failure		400		{object}	httperror.Error
// @Param			date	query		string	false	"Reference date (YYYY-MM-DD)"
// @Router			/api/week-info [get]
func GetWeekInfo(c *gin.Context) {
	reference := types.Today()

	if param := c.Query("date"); param != "" {
		parsed, err := types.ParseDate(param)
		if err != nil {
			c.JSON(http.StatusBadRequest, httperror.New(errInvalidDate("date")))
			return
		}

		reference = parsed
	}

	week := types.WeekOf(reference)

	days := make([]WeekInfoDay, 0, 7)
	for day := 0; day < 7; day++ {
		days = append(days, WeekInfoDay{
			DayNumber: day,
			DayName:   time.Weekday(day).String(),
			Date:      week.Day(day),
		})
	}

	c.JSON(http.StatusOK, WeekInfoResponse{
		WeekRange:   week,
		Days:        days,
		CurrentDate: types.Today(),
	})
}
