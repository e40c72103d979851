// Package store provides persistence for imported accounts, statements and
// movements, with natural-key lookups that distinguish "not found" from
// "found more than one".
package store

import (
	"errors"

	"fjacquet/camt-import/internal/models"
)

// ErrNotFound is returned by lookups that matched no record.
var ErrNotFound = errors.New("record not found")

// ErrAmbiguousMatch is returned when a lookup on a supposedly unique key
// matched more than one record. It indicates a pre-existing data-integrity
// violation and is never resolved by picking one of the matches.
var ErrAmbiguousMatch = errors.New("more than one record matches a unique key")

// Store is the persistence interface required by the reconciliation engine.
//
// Lookups return ErrNotFound or ErrAmbiguousMatch as described above; any
// other error is an underlying persistence failure and is not locally
// recoverable.
type Store interface {
	AccountByIBAN(iban string) (*models.Account, error)
	CreateAccount(account *models.Account) error
	UpdateAccount(account *models.Account) error

	StatementByNumber(accountID uint, number string) (*models.Statement, error)
	CreateStatement(statement *models.Statement) error
	UpdateStatement(statement *models.Statement) error

	MovementByImportID(uniqueImportID string) (*models.Movement, error)
	CreateMovement(movement *models.Movement) error
	UpdateMovement(movement *models.Movement) error

	// MovementsForAccount returns all movements stored for the account with
	// the given IBAN, ordered by movement date.
	MovementsForAccount(iban string) ([]models.Movement, error)

	// Transact runs fn against a transactional view of the store. All writes
	// made through it are applied atomically; returning an error rolls them
	// back.
	Transact(fn func(tx Store) error) error
}
