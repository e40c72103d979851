package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement is a single transaction line within a bank statement.
//
// Its identity is the UniqueImportID supplied by the source feed, not the
// statement it belongs to: when a statement is reimported, an existing
// movement is reattached to the current statement and overwritten.
type Movement struct {
	ID                     uint            `gorm:"primaryKey" csv:"-"`
	StatementID            uint            `gorm:"index;not null" csv:"-"`
	UniqueImportID         string          `gorm:"uniqueIndex;size:128;not null" csv:"UniqueImportID"`
	MovementDate           time.Time       `csv:"Date"`
	Amount                 decimal.Decimal `gorm:"type:numeric" csv:"Amount"`
	Ref                    string          `gorm:"size:35" csv:"Ref"`
	EREF                   string          `gorm:"size:128" csv:"EndToEndRef"`
	Message                string          `csv:"Message"`
	RemoteOwner            string          `gorm:"size:128" csv:"RemoteOwner"`
	RemoteOwnerAddress     string          `gorm:"size:128" csv:"RemoteOwnerAddress"`
	RemoteOwnerCity        string          `gorm:"size:32" csv:"RemoteOwnerCity"`
	RemoteOwnerPostalCode  string          `gorm:"size:10" csv:"RemoteOwnerPostalCode"`
	RemoteOwnerCountryCode string          `gorm:"size:4" csv:"RemoteOwnerCountryCode"`
	RemoteAccount          string          `gorm:"size:34" csv:"RemoteAccount"`
	RemoteBIC              string          `gorm:"size:11" csv:"RemoteBIC"`
	TransferType           string          `gorm:"size:32" csv:"TransferType"`
	ExecutionDate          *time.Time      `csv:"ExecutionDate"`
	ValueDate              *time.Time      `csv:"ValueDate"`
	CreatedAt              time.Time       `csv:"-"`
	UpdatedAt              time.Time       `csv:"-"`
}
