package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	return r.db.WithContext(ctx).Create(model.AccountFromEntity(account)).Error
}

// FindByID retrieves an account by its ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.findByID(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves an account by its ID and locks the row.
func (r *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return r.findByID(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *accountRepository) findByID(db *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := db.Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByUser retrieves the accounts of a user ordered by name.
func (r *accountRepository) FindByUser(ctx context.Context, userID uuid.UUID, includeInactive bool) ([]*entity.Account, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var accountModels []model.AccountModel
	if err := query.Order("name ASC").Find(&accountModels).Error; err != nil {
		return nil, err
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = accountModels[i].ToEntity()
	}
	return accounts, nil
}

// Update persists the balance and activity flag of an account.
func (r *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]interface{}{
			"balance":    account.Balance,
			"is_active":  account.IsActive,
			"updated_at": account.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrAccountNotFound
	}
	return nil
}

// LedgerBalance sums the ledger rows of an account by their balance effect. Transfers
// received from other accounts are credited through counterpart_account_id.
func (r *accountRepository) LedgerBalance(ctx context.Context, accountID uuid.UUID) (decimal.Decimal, error) {
	var totals []struct {
		Type  string
		Total decimal.Decimal
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("account_id = ?", accountID).
		Group("type").
		Scan(&totals).Error
	if err != nil {
		return decimal.Zero, err
	}

	balance := decimal.Zero
	for _, t := range totals {
		switch entity.BalanceEffectOf(entity.TransactionType(t.Type)) {
		case entity.EffectCredit:
			balance = balance.Add(t.Total)
		case entity.EffectDebit:
			balance = balance.Sub(t.Total)
		}
	}

	var received struct {
		Total decimal.Decimal
	}
	err = r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("counterpart_account_id = ? AND type = ?", accountID, string(entity.TransactionTypeTransfer)).
		Scan(&received).Error
	if err != nil {
		return decimal.Zero, err
	}

	return balance.Add(received.Total), nil
}
