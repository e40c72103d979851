// Package models provides the data structures used throughout the application.
package models

import (
	"time"
)

// Account is an imported bank account, identified by its IBAN.
// It is created lazily the first time a statement references an unseen IBAN
// and is never deleted by the import process.
type Account struct {
	ID           uint       `gorm:"primaryKey"`
	IBAN         string     `gorm:"uniqueIndex;size:34;not null"`
	BIC          string     `gorm:"size:11"`
	LastMovement *time.Time // max movement date across all statements, denormalized
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (a *Account) String() string {
	return a.IBAN
}
