package repository

import (
	"context"
	"errors"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/repository"
	"github.com/corebanq/dbank/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a gorm-backed account repository.
func NewAccountRepository(db *gorm.DB) account.Repository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	m := accountToModel(a)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *accountRepository) Update(ctx context.Context, a *domain.Account) error {
	m := accountToModel(a)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *accountRepository) FindActive(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).
		First(&m, "id = ? AND active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return accountToDomain(&m), nil
}

func (r *accountRepository) ListActive(ctx context.Context, f account.ListFilter) ([]*domain.Account, error) {
	tx := r.db.WithContext(ctx).Model(&Account{}).Where("active = ?", true)
	tx = likeContainsID(tx, "id", f.ID)
	tx = likeContains(tx, "first_name", f.FirstName)
	tx = likeContains(tx, "last_name", f.LastName)
	tx = likeContains(tx, "birth_date", f.BirthDate)
	tx = likeContains(tx, "country", f.Country)
	tx = likeContains(tx, "passport_number", f.PassportNumber)
	tx = likeContains(tx, "phone_number", f.PhoneNumber)
	tx = likeContains(tx, "iban", f.IBAN)
	tx = likeContains(tx, "balance", f.Balance)
	tx = likeContains(tx, "date_added", f.DateAdded)
	if f.OwnerSecret != "" {
		tx = tx.Where("secret = ?", f.OwnerSecret)
	}
	tx = paginate(tx, f.Limit, f.Offset, repository.DefaultLimit)

	var models []Account
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	accounts := make([]*domain.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, accountToDomain(&models[i]))
	}
	return accounts, nil
}

func (r *accountRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Account{}).
		Where("id = ?", id).
		Update("active", false).Error
}
