package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Statement is a bank statement belonging to exactly one Account.
// Its natural key is (AccountID, StatementNumber): reimporting a statement
// with a known number updates the existing row instead of creating a new one.
type Statement struct {
	ID              uint   `gorm:"primaryKey"`
	AccountID       uint   `gorm:"uniqueIndex:idx_statement_natural_key;not null"`
	StatementNumber string `gorm:"uniqueIndex:idx_statement_natural_key;size:128;not null"`
	StartDate       time.Time
	EndDate         time.Time
	BalanceStart    decimal.Decimal `gorm:"type:numeric"`
	BalanceEnd      decimal.Decimal `gorm:"type:numeric"`
	BalanceEndReal  decimal.Decimal `gorm:"type:numeric"` // bank-confirmed closing balance
	CurrencyCode    string          `gorm:"size:3"`
	SequenceNumber  *int            // legal sequence number (<LglSeqNb>), assigned by the account servicer
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s *Statement) String() string {
	return s.StatementNumber
}
