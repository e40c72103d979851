package store

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"fjacquet/camt-import/internal/models"
)

// GormStore implements Store on top of a gorm-managed SQLite database.
type GormStore struct {
	db *gorm.DB
}

// Open opens (or creates) the SQLite database at path and migrates the
// schema. The unique indexes on models.Account.IBAN, the statement natural
// key and models.Movement.UniqueImportID back the store's key guarantees.
func Open(path string) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.AutoMigrate(&models.Account{}, &models.Statement{}, &models.Movement{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

// NewGormStore wraps an existing gorm connection. Used by Transact to run
// the same queries against a transaction handle.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AccountByIBAN(iban string) (*models.Account, error) {
	var accounts []models.Account
	if err := s.db.Where("iban = ?", iban).Limit(2).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	switch len(accounts) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &accounts[0], nil
	default:
		return nil, ErrAmbiguousMatch
	}
}

func (s *GormStore) CreateAccount(account *models.Account) error {
	if err := s.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account %s: %w", account.IBAN, err)
	}
	return nil
}

func (s *GormStore) UpdateAccount(account *models.Account) error {
	if err := s.db.Save(account).Error; err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.IBAN, err)
	}
	return nil
}

func (s *GormStore) StatementByNumber(accountID uint, number string) (*models.Statement, error) {
	var statements []models.Statement
	err := s.db.Where("account_id = ? AND statement_number = ?", accountID, number).
		Limit(2).Find(&statements).Error
	if err != nil {
		return nil, fmt.Errorf("statement lookup failed: %w", err)
	}
	switch len(statements) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &statements[0], nil
	default:
		return nil, ErrAmbiguousMatch
	}
}

func (s *GormStore) CreateStatement(statement *models.Statement) error {
	if err := s.db.Create(statement).Error; err != nil {
		return fmt.Errorf("failed to create statement %s: %w", statement.StatementNumber, err)
	}
	return nil
}

func (s *GormStore) UpdateStatement(statement *models.Statement) error {
	if err := s.db.Save(statement).Error; err != nil {
		return fmt.Errorf("failed to update statement %s: %w", statement.StatementNumber, err)
	}
	return nil
}

func (s *GormStore) MovementByImportID(uniqueImportID string) (*models.Movement, error) {
	var movements []models.Movement
	err := s.db.Where("unique_import_id = ?", uniqueImportID).Limit(2).Find(&movements).Error
	if err != nil {
		return nil, fmt.Errorf("movement lookup failed: %w", err)
	}
	switch len(movements) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &movements[0], nil
	default:
		return nil, ErrAmbiguousMatch
	}
}

func (s *GormStore) CreateMovement(movement *models.Movement) error {
	if err := s.db.Create(movement).Error; err != nil {
		return fmt.Errorf("failed to create movement %s: %w", movement.UniqueImportID, err)
	}
	return nil
}

func (s *GormStore) UpdateMovement(movement *models.Movement) error {
	if err := s.db.Save(movement).Error; err != nil {
		return fmt.Errorf("failed to update movement %s: %w", movement.UniqueImportID, err)
	}
	return nil
}

func (s *GormStore) MovementsForAccount(iban string) ([]models.Movement, error) {
	account, err := s.AccountByIBAN(iban)
	if err != nil {
		return nil, err
	}
	var movements []models.Movement
	err = s.db.
		Joins("JOIN statements ON statements.id = movements.statement_id").
		Where("statements.account_id = ?", account.ID).
		Order("movements.movement_date").
		Find(&movements).Error
	if err != nil {
		return nil, fmt.Errorf("movement query failed: %w", err)
	}
	return movements, nil
}

func (s *GormStore) Transact(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}
