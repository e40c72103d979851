package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementRecord is one parsed statement from a CAMT.053 file, before
// reconciliation against the store. AccountNumber may be empty when the
// source file carries no IBAN for the statement.
type StatementRecord struct {
	AccountNumber       string // IBAN or national account number; empty means unresolvable
	Name                string // statement number, natural-key component
	StartDate           time.Time
	EndDate             time.Time
	BalanceStart        decimal.Decimal
	BalanceEnd          decimal.Decimal
	BalanceEndReal      decimal.Decimal
	CurrencyCode        string
	LegalSequenceNumber *int
	Transactions        []MovementRecord // in source order, not date-sorted
}

// MovementRecord is one parsed transaction line within a StatementRecord.
type MovementRecord struct {
	UniqueImportID         string
	Date                   time.Time
	Amount                 decimal.Decimal
	Ref                    string
	EREF                   string
	Message                string
	RemoteOwner            string
	RemoteOwnerAddress     []string // address lines, joined on persist
	RemoteOwnerCity        string
	RemoteOwnerPostalCode  string
	RemoteOwnerCountryCode string
	RemoteAccount          string
	RemoteBIC              string
	TransferType           string
	ExecutionDate          *time.Time
	ValueDate              *time.Time
}
