package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the singleton holding the budget parameters. Exactly one
// record exists at all times, it is created with defaults on the first
// startup.
//
// The primary key differs from Model resources in that it is never
// exposed: the record is always addressed as "the settings".
type Settings struct {
	ID             uint            `json:"-"`
	CreatedAt      time.Time       `json:"-"`
	UpdatedAt      time.Time       `json:"-"`
	DailyMax       decimal.Decimal `json:"daily_max" gorm:"type:DECIMAL(20,8)" example:"50"`            // The daily spending ceiling
	HouseGoal      decimal.Decimal `json:"house_goal" gorm:"type:DECIMAL(20,8)" example:"100000"`       // The target savings amount
	CurrentSavings decimal.Decimal `json:"current_savings" gorm:"type:DECIMAL(20,8)" example:"12450.5"` // The currently accumulated savings
}

// defaultSettings returns the settings the backend is bootstrapped with.
func defaultSettings() Settings {
	return Settings{
		DailyMax:       decimal.NewFromFloat(50),
		HouseGoal:      decimal.NewFromFloat(100000),
		CurrentSavings: decimal.Zero,
	}
}
