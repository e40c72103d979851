package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/camt-import/internal/models"
)

func TestMockStore_AccountLookupOutcomes(t *testing.T) {
	s := NewMockStore()

	_, err := s.AccountByIBAN("BE07340154921566")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.CreateAccount(&models.Account{IBAN: "BE07340154921566"}))
	account, err := s.AccountByIBAN("BE07340154921566")
	require.NoError(t, err)
	assert.Equal(t, "BE07340154921566", account.IBAN)

	// A duplicate IBAN is an ambiguous match, never "pick the first".
	s.Accounts = append(s.Accounts, &models.Account{ID: 99, IBAN: "BE07340154921566"})
	_, err = s.AccountByIBAN("BE07340154921566")
	assert.ErrorIs(t, err, ErrAmbiguousMatch)
}

func TestMockStore_StatementNaturalKey(t *testing.T) {
	s := NewMockStore()
	require.NoError(t, s.CreateStatement(&models.Statement{AccountID: 1, StatementNumber: "2024/001"}))
	require.NoError(t, s.CreateStatement(&models.Statement{AccountID: 2, StatementNumber: "2024/001"}))

	// The same statement number under a different account is a different key.
	st, err := s.StatementByNumber(1, "2024/001")
	require.NoError(t, err)
	assert.Equal(t, uint(1), st.AccountID)

	_, err = s.StatementByNumber(3, "2024/001")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockStore_MovementsForAccount(t *testing.T) {
	s := NewMockStore()
	account := &models.Account{IBAN: "BE20001601271956"}
	require.NoError(t, s.CreateAccount(account))
	statement := &models.Statement{AccountID: account.ID, StatementNumber: "2024/001"}
	require.NoError(t, s.CreateStatement(statement))
	other := &models.Statement{AccountID: 42, StatementNumber: "2024/009"}
	require.NoError(t, s.CreateStatement(other))

	require.NoError(t, s.CreateMovement(&models.Movement{
		StatementID:    statement.ID,
		UniqueImportID: "mine",
		MovementDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(10),
	}))
	require.NoError(t, s.CreateMovement(&models.Movement{
		StatementID:    other.ID,
		UniqueImportID: "not-mine",
	}))

	movements, err := s.MovementsForAccount("BE20001601271956")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.Equal(t, "mine", movements[0].UniqueImportID)
}

func TestGormStore_RoundTrip(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	account := &models.Account{IBAN: "BE43063497558101", BIC: "GKCCBEBB"}
	require.NoError(t, s.CreateAccount(account))

	got, err := s.AccountByIBAN("BE43063497558101")
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, "GKCCBEBB", got.BIC)

	_, err = s.AccountByIBAN("BE07340154921566")
	assert.ErrorIs(t, err, ErrNotFound)

	statement := &models.Statement{
		AccountID:       account.ID,
		StatementNumber: "2024/031",
		StartDate:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		BalanceStart:    decimal.RequireFromString("100.25"),
		BalanceEnd:      decimal.RequireFromString("150.75"),
		CurrencyCode:    "EUR",
	}
	require.NoError(t, s.CreateStatement(statement))

	stored, err := s.StatementByNumber(account.ID, "2024/031")
	require.NoError(t, err)
	assert.True(t, stored.BalanceEnd.Equal(decimal.RequireFromString("150.75")))

	movement := &models.Movement{
		StatementID:    statement.ID,
		UniqueImportID: "2024/031-0001",
		MovementDate:   time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.RequireFromString("-42.50"),
		RemoteOwner:    "ACME SPRL",
	}
	require.NoError(t, s.CreateMovement(movement))

	gotMovement, err := s.MovementByImportID("2024/031-0001")
	require.NoError(t, err)
	assert.Equal(t, "ACME SPRL", gotMovement.RemoteOwner)

	movements, err := s.MovementsForAccount("BE43063497558101")
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.True(t, movements[0].Amount.Equal(decimal.RequireFromString("-42.50")))
}

func TestGormStore_TransactRollsBackOnError(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	err = s.Transact(func(tx Store) error {
		if err := tx.CreateAccount(&models.Account{IBAN: "BE20001601271956"}); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	_, err = s.AccountByIBAN("BE20001601271956")
	assert.ErrorIs(t, err, ErrNotFound)
}
