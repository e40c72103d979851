// Package reconcile merges parsed bank statements into the persistent store
// of accounts, statements and movements.
package reconcile

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/camt-import/internal/iban"
	"fjacquet/camt-import/internal/logging"
	"fjacquet/camt-import/internal/models"
	"fjacquet/camt-import/internal/store"
)

// branch tells the movement-processing step whether the enclosing statement
// already existed. Seeing a known movement inside a brand-new statement is
// an anomaly worth a warning.
type branch int

const (
	branchCreate branch = iota
	branchUpdate
)

// FileResult holds the per-file outcome counters.
type FileResult struct {
	NewStatements     int
	UpdatedStatements int
	FailedStatements  int
}

// Engine applies parsed statement records to the store.
//
// All per-statement and per-movement problems are handled locally: the
// statement is counted as failed and skipped, and processing continues with
// the next record. Only underlying persistence failures propagate, aborting
// the remainder of the current file. Statements committed before the failure
// stay committed.
type Engine struct {
	store store.Store
	log   logging.Logger
}

// NewEngine creates a reconciliation engine writing through the given store.
func NewEngine(s store.Store, log logging.Logger) *Engine {
	return &Engine{store: s, log: log}
}

// ImportFile reconciles one file's worth of statement records against the
// store. The returned FileResult is valid even when an error is returned; it
// covers the statements processed up to the failure.
func (e *Engine) ImportFile(records []models.StatementRecord) (FileResult, error) {
	var result FileResult
	for i := range records {
		rec := &records[i]
		outcome, err := e.importStatement(rec)
		if err != nil {
			return result, fmt.Errorf("importing statement %s: %w", rec.Name, err)
		}
		switch outcome {
		case statementCreated:
			result.NewStatements++
		case statementUpdated:
			result.UpdatedStatements++
		case statementFailed:
			result.FailedStatements++
		}
	}
	return result, nil
}

type statementOutcome int

const (
	statementFailed statementOutcome = iota
	statementCreated
	statementUpdated
)

// importStatement processes a single statement record inside one store
// transaction. Locally recoverable problems yield (statementFailed, nil);
// the record is skipped and never retried within the run.
func (e *Engine) importStatement(rec *models.StatementRecord) (statementOutcome, error) {
	if rec.AccountNumber == "" {
		e.log.Warn("statement without IBAN", logging.F("statement", rec.Name))
		return statementFailed, nil
	}

	outcome := statementFailed
	err := e.store.Transact(func(tx store.Store) error {
		account, err := e.resolveAccount(tx, rec.AccountNumber)
		if err != nil {
			if errors.Is(err, store.ErrAmbiguousMatch) {
				e.log.Warn("found more than one account with IBAN",
					logging.F("iban", rec.AccountNumber),
					logging.F("statement", rec.Name))
				return nil
			}
			var checksum *iban.ChecksumMismatchError
			var malformed *iban.MalformedAccountNumberError
			if errors.As(err, &checksum) || errors.As(err, &malformed) {
				e.log.WithError(err).Warn("invalid account number",
					logging.F("statement", rec.Name))
				return nil
			}
			return err
		}

		statement, stmtBranch, err := e.upsertStatement(tx, account, rec)
		if err != nil {
			if errors.Is(err, store.ErrAmbiguousMatch) {
				e.log.Warn("found more than one statement with the same number",
					logging.F("iban", account.IBAN),
					logging.F("statement", rec.Name))
				return nil
			}
			return err
		}

		lastMovement, err := e.mergeMovements(tx, statement, stmtBranch, rec.Transactions)
		if err != nil {
			return err
		}

		if !datesEqual(account.LastMovement, lastMovement) {
			account.LastMovement = lastMovement
			if err := tx.UpdateAccount(account); err != nil {
				return err
			}
		}

		if stmtBranch == branchUpdate {
			outcome = statementUpdated
		} else {
			outcome = statementCreated
		}
		return nil
	})
	if err != nil {
		return statementFailed, err
	}
	return outcome, nil
}

// resolveAccount finds the account for the record's account number, creating
// it on first sight. National account numbers are converted (and checksum
// validated) before anything reaches the store; a newly created account gets
// its BIC from the bank-code table when the IBAN is Belgian and mapped.
func (e *Engine) resolveAccount(tx store.Store, accountNumber string) (*models.Account, error) {
	accountIBAN, err := canonicalIBAN(accountNumber)
	if err != nil {
		return nil, err
	}

	account, err := tx.AccountByIBAN(accountIBAN)
	if err == nil {
		// Backfill the BIC of accounts created before their bank code was
		// mapped.
		if account.BIC == "" {
			if bic, ok := iban.BICFor(account.IBAN); ok {
				account.BIC = bic
				if err := tx.UpdateAccount(account); err != nil {
					return nil, err
				}
			}
		}
		return account, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	account = &models.Account{IBAN: accountIBAN}
	if bic, ok := iban.BICFor(accountIBAN); ok {
		account.BIC = bic
	}
	if err := tx.CreateAccount(account); err != nil {
		return nil, err
	}
	e.log.Info("created account", logging.F("iban", accountIBAN), logging.F("bic", account.BIC))
	return account, nil
}

// canonicalIBAN returns the IBAN form of an account number. Numbers already
// in IBAN form (two-letter country prefix) pass through unchanged; anything
// else is treated as a Belgian NBAN and converted, which validates its
// checksum.
func canonicalIBAN(accountNumber string) (string, error) {
	trimmed := strings.ReplaceAll(accountNumber, " ", "")
	if len(trimmed) >= 2 && isLetter(trimmed[0]) && isLetter(trimmed[1]) {
		return trimmed, nil
	}
	converted, _, err := iban.Convert(accountNumber)
	if err != nil {
		return "", err
	}
	return converted, nil
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// upsertStatement finds or creates the statement for the record's natural
// key (account, statement number). On repeat sight every mutable field is
// overwritten with the latest parsed values.
func (e *Engine) upsertStatement(tx store.Store, account *models.Account, rec *models.StatementRecord) (*models.Statement, branch, error) {
	statement, err := tx.StatementByNumber(account.ID, rec.Name)
	switch {
	case err == nil:
		statement.StartDate = rec.StartDate
		statement.EndDate = rec.EndDate
		statement.BalanceStart = rec.BalanceStart
		statement.BalanceEnd = rec.BalanceEnd
		statement.BalanceEndReal = rec.BalanceEndReal
		statement.CurrencyCode = rec.CurrencyCode
		statement.SequenceNumber = rec.LegalSequenceNumber
		if err := tx.UpdateStatement(statement); err != nil {
			return nil, branchUpdate, err
		}
		return statement, branchUpdate, nil

	case errors.Is(err, store.ErrNotFound):
		statement = &models.Statement{
			AccountID:       account.ID,
			StatementNumber: rec.Name,
			StartDate:       rec.StartDate,
			EndDate:         rec.EndDate,
			BalanceStart:    rec.BalanceStart,
			BalanceEnd:      rec.BalanceEnd,
			BalanceEndReal:  rec.BalanceEndReal,
			CurrencyCode:    rec.CurrencyCode,
			SequenceNumber:  rec.LegalSequenceNumber,
		}
		if err := tx.CreateStatement(statement); err != nil {
			return nil, branchCreate, err
		}
		return statement, branchCreate, nil

	default:
		return nil, branchCreate, err
	}
}

// mergeMovements applies the record's movements in source order and returns
// the maximum movement date seen. The source order is not date-sorted, so
// the maximum is a running one.
func (e *Engine) mergeMovements(tx store.Store, statement *models.Statement, stmtBranch branch, records []models.MovementRecord) (*time.Time, error) {
	var lastMovement *time.Time
	for i := range records {
		rec := &records[i]
		if lastMovement == nil || rec.Date.After(*lastMovement) {
			d := rec.Date
			lastMovement = &d
		}

		movement, err := tx.MovementByImportID(rec.UniqueImportID)
		switch {
		case err == nil:
			if stmtBranch == branchCreate {
				e.log.Warn("existing transaction in a new statement",
					logging.F("unique_import_id", rec.UniqueImportID),
					logging.F("statement", statement.StatementNumber))
			}
			applyMovementRecord(movement, rec)
			movement.StatementID = statement.ID
			if err := tx.UpdateMovement(movement); err != nil {
				return nil, err
			}

		case errors.Is(err, store.ErrNotFound):
			movement = &models.Movement{
				UniqueImportID: rec.UniqueImportID,
				StatementID:    statement.ID,
			}
			applyMovementRecord(movement, rec)
			if err := tx.CreateMovement(movement); err != nil {
				return nil, err
			}

		case errors.Is(err, store.ErrAmbiguousMatch):
			e.log.Warn("found more than one movement with the same import id",
				logging.F("unique_import_id", rec.UniqueImportID))

		default:
			return nil, err
		}
	}
	return lastMovement, nil
}

func applyMovementRecord(movement *models.Movement, rec *models.MovementRecord) {
	movement.MovementDate = rec.Date
	movement.Amount = rec.Amount
	movement.Ref = rec.Ref
	movement.EREF = rec.EREF
	movement.Message = rec.Message
	movement.RemoteOwner = rec.RemoteOwner
	movement.RemoteOwnerAddress = strings.Join(rec.RemoteOwnerAddress, "\n")
	movement.RemoteOwnerCity = rec.RemoteOwnerCity
	movement.RemoteOwnerPostalCode = rec.RemoteOwnerPostalCode
	movement.RemoteOwnerCountryCode = rec.RemoteOwnerCountryCode
	movement.RemoteAccount = rec.RemoteAccount
	movement.RemoteBIC = rec.RemoteBIC
	movement.TransferType = rec.TransferType
	movement.ExecutionDate = rec.ExecutionDate
	movement.ValueDate = rec.ValueDate
}

func datesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
