package models

import (
	"errors"
	"strings"

	"github.com/Flexingg/Savings-Web/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryDefault is the category assigned to expenses created without one.
const CategoryDefault = "Pending"

// Expense is a single entry of the expense ledger.
//
// Day always equals the Sunday-first day-of-week index of Date. The
// controllers keep the two consistent since only they know which of the
// two fields a request supplied.
type Expense struct {
	Model
	Description string          `json:"desc" gorm:"column:desc" example:"Morning Coffee"` // What the money was spent on
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"5.5"`   // The amount spent
	Who         string          `json:"who" example:"Jonathan"`                           // Owner/payer tag
	Day         int             `json:"day" example:"1"`                                  // Day-of-week index, Sunday = 0 through Saturday = 6
	Category    string          `json:"category" example:"Both"`                          // Category of the expense
	Date        types.Date      `json:"date" swaggertype:"string" example:"2024-03-11"`   // Calendar date of the expense
}

var (
	ErrExpenseDescRequired   = errors.New("expense desc must not be empty")
	ErrExpenseWhoRequired    = errors.New("expense who must not be empty")
	ErrExpenseAmountRequired = errors.New("expense amount must be a number")
	ErrExpenseDayRequired    = errors.New("expense day must be set when no date is given")
	ErrExpenseDayInvalid     = errors.New("expense day must be a number")
	ErrExpenseDayOutOfRange  = errors.New("expense day must be between 0 (Sunday) and 6 (Saturday)")
)

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)
	e.Who = strings.TrimSpace(e.Who)
	e.Category = strings.TrimSpace(e.Category)

	return nil
}

func (e *Expense) BeforeCreate(_ *gorm.DB) error {
	if e.Category == "" {
		e.Category = CategoryDefault
	}

	return nil
}
