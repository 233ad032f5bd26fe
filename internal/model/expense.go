package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an immutable log entry: a pure append, no counters to maintain.
// StaffID is nil when the owner recorded the expense.
type Expense struct {
	ID          uint            `gorm:"primaryKey"`
	Date        time.Time       `gorm:"not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category    string          `gorm:"size:100;not null"`
	Description string          `gorm:"type:text"`
	BusinessID  uint            `gorm:"not null;index"`
	StaffID     *uint           `gorm:"index"`
	CreatedAt   time.Time

	Staff *Staff `gorm:"foreignKey:StaffID"`
}

func (Expense) TableName() string { return "expenses" }
