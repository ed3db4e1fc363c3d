package controllers

import (
	"github.com/Flexingg/Savings-Web/internal/models"
	"github.com/shopspring/decimal"
)

// SettingsEditable contains the fields of the Settings that users can
// set. All fields are pointers so that a missing or null value can be
// told apart from a zero.
type SettingsEditable struct {
	DailyMax       *decimal.Decimal `json:"daily_max" example:"50"`            // The daily spending ceiling
	HouseGoal      *decimal.Decimal `json:"house_goal" example:"100000"`       // The target savings amount
	CurrentSavings *decimal.Decimal `json:"current_savings" example:"12450.5"` // The currently accumulated savings
}

// model returns the database resource for the API representation of the
// editable fields.
func (editable SettingsEditable) model() models.Settings {
	var settings models.Settings

	if editable.DailyMax != nil {
		settings.DailyMax = *editable.DailyMax
	}

	if editable.HouseGoal != nil {
		settings.HouseGoal = *editable.HouseGoal
	}

	if editable.CurrentSavings != nil {
		settings.CurrentSavings = *editable.CurrentSavings
	}

	return settings
}
