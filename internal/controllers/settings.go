package controllers

import (
	"fmt"
	"net/http"

	"github.com/Flexingg/Savings-Web/internal/httperror"
	"github.com/Flexingg/Savings-Web/internal/httputil"
	"github.com/Flexingg/Savings-Web/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterSettingsRoutes registers the routes for the settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.POST("", UpdateSettings)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/api/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get settings
// @Description	Returns the budget settings
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	models.Settings
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Router			/api/settings [get]
func GetSettings(c *gin.Context) {
	var settings models.Settings
	err := models.DB.First(&settings).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, settings)
}

// @Summary		Update settings
// @Description	Updates the budget settings. Only values to be updated need to be specified, the full merged settings are returned.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Settings
// @Failure		400			{object}	httperror.Error
// @Failure		404			{object}	httperror.Error
// @Failure		500			{object}	httperror.Error
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/api/settings [post]
func UpdateSettings(c *gin.Context) {
	var settings models.Settings
	err := models.DB.First(&settings).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, SettingsEditable{})
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	if len(updateFields) == 0 {
		c.JSON(http.StatusBadRequest, httperror.New(errNoUpdateFields))
		return
	}

	// Bind the data for the patch
	var data SettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	for _, field := range []struct {
		name  string
		field any
		value *decimal.Decimal
	}{
		{"daily_max", "DailyMax", data.DailyMax},
		{"house_goal", "HouseGoal", data.HouseGoal},
		{"current_savings", "CurrentSavings", data.CurrentSavings},
	} {
		if slices.Contains(updateFields, field.field) && field.value == nil {
			c.JSON(http.StatusBadRequest, httperror.New(fmt.Errorf("%s must be a number", field.name)))
			return
		}
	}

	err = models.DB.Model(&settings).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		c.JSON(status(err), httperror.New(err))
		return
	}

	c.JSON(http.StatusOK, settings)
}
