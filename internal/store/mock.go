package store

import (
	"fjacquet/camt-import/internal/models"
)

// MockStore is an in-memory implementation of Store for testing.
// Error fields, when set, are returned by the corresponding method so tests
// can exercise persistence-failure paths.
type MockStore struct {
	Accounts   []*models.Account
	Statements []*models.Statement
	Movements  []*models.Movement

	AccountByIBANError      error
	CreateAccountError      error
	UpdateAccountError      error
	StatementByNumberError  error
	CreateStatementError    error
	UpdateStatementError    error
	MovementByImportIDError error
	CreateMovementError     error
	UpdateMovementError     error

	nextID uint
}

// NewMockStore returns an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) newID() uint {
	m.nextID++
	return m.nextID
}

func (m *MockStore) AccountByIBAN(iban string) (*models.Account, error) {
	if m.AccountByIBANError != nil {
		return nil, m.AccountByIBANError
	}
	var matches []*models.Account
	for _, a := range m.Accounts {
		if a.IBAN == iban {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, ErrAmbiguousMatch
	}
}

func (m *MockStore) CreateAccount(account *models.Account) error {
	if m.CreateAccountError != nil {
		return m.CreateAccountError
	}
	account.ID = m.newID()
	m.Accounts = append(m.Accounts, account)
	return nil
}

func (m *MockStore) UpdateAccount(account *models.Account) error {
	if m.UpdateAccountError != nil {
		return m.UpdateAccountError
	}
	for i, a := range m.Accounts {
		if a.ID == account.ID {
			m.Accounts[i] = account
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockStore) StatementByNumber(accountID uint, number string) (*models.Statement, error) {
	if m.StatementByNumberError != nil {
		return nil, m.StatementByNumberError
	}
	var matches []*models.Statement
	for _, s := range m.Statements {
		if s.AccountID == accountID && s.StatementNumber == number {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, ErrAmbiguousMatch
	}
}

func (m *MockStore) CreateStatement(statement *models.Statement) error {
	if m.CreateStatementError != nil {
		return m.CreateStatementError
	}
	statement.ID = m.newID()
	m.Statements = append(m.Statements, statement)
	return nil
}

func (m *MockStore) UpdateStatement(statement *models.Statement) error {
	if m.UpdateStatementError != nil {
		return m.UpdateStatementError
	}
	for i, s := range m.Statements {
		if s.ID == statement.ID {
			m.Statements[i] = statement
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockStore) MovementByImportID(uniqueImportID string) (*models.Movement, error) {
	if m.MovementByImportIDError != nil {
		return nil, m.MovementByImportIDError
	}
	var matches []*models.Movement
	for _, mv := range m.Movements {
		if mv.UniqueImportID == uniqueImportID {
			matches = append(matches, mv)
		}
	}
	switch len(matches) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, ErrAmbiguousMatch
	}
}

func (m *MockStore) CreateMovement(movement *models.Movement) error {
	if m.CreateMovementError != nil {
		return m.CreateMovementError
	}
	movement.ID = m.newID()
	m.Movements = append(m.Movements, movement)
	return nil
}

func (m *MockStore) UpdateMovement(movement *models.Movement) error {
	if m.UpdateMovementError != nil {
		return m.UpdateMovementError
	}
	for i, mv := range m.Movements {
		if mv.ID == movement.ID {
			m.Movements[i] = movement
			return nil
		}
	}
	return ErrNotFound
}

func (m *MockStore) MovementsForAccount(iban string) ([]models.Movement, error) {
	account, err := m.AccountByIBAN(iban)
	if err != nil {
		return nil, err
	}
	statementIDs := make(map[uint]bool)
	for _, s := range m.Statements {
		if s.AccountID == account.ID {
			statementIDs[s.ID] = true
		}
	}
	var movements []models.Movement
	for _, mv := range m.Movements {
		if statementIDs[mv.StatementID] {
			movements = append(movements, *mv)
		}
	}
	return movements, nil
}

// Transact runs fn against the mock itself. The mock does not simulate
// rollback; tests that need transactional failure semantics use the error
// fields to stop the engine before further writes.
func (m *MockStore) Transact(fn func(tx Store) error) error {
	return fn(m)
}
