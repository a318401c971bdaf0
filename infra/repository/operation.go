package repository

import (
	"context"
	"errors"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/repository"
	"github.com/corebanq/dbank/pkg/repository/operation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type operationRepository struct {
	db *gorm.DB
}

// NewOperationRepository creates a gorm-backed operation repository.
func NewOperationRepository(db *gorm.DB) operation.Repository {
	return &operationRepository{db: db}
}

func (r *operationRepository) Create(ctx context.Context, o *domain.Operation) error {
	m := operationToModel(o)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *operationRepository) Update(ctx context.Context, o *domain.Operation) error {
	m := operationToModel(o)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *operationRepository) FindActive(ctx context.Context, id uuid.UUID) (*domain.Operation, error) {
	var m Operation
	err := r.db.WithContext(ctx).
		First(&m, "id = ? AND active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return operationToDomain(&m), nil
}

func (r *operationRepository) ListActive(ctx context.Context, f operation.ListFilter) ([]*domain.Operation, error) {
	tx := r.db.WithContext(ctx).Model(&Operation{}).Where("operations.active = ?", true)
	tx = likeContainsID(tx, "operations.id", f.ID)
	tx = likeContains(tx, "operations.label", f.Label)
	tx = likeContains(tx, "operations.amount", f.Amount)
	tx = likeContains(tx, "operations.second_account_name", f.SecondAccountName)
	tx = likeContains(tx, "operations.second_account_country", f.SecondAccountCountry)
	tx = likeContains(tx, "operations.second_account_iban", f.SecondAccountIBAN)
	tx = likeContains(tx, "operations.rate", f.Rate)
	tx = likeContains(tx, "operations.category", f.Category)
	tx = boolEquals(tx, "operations.confirmed", f.Confirmed)
	tx = likeContains(tx, "operations.date_added", f.DateAdded)
	tx = likeContainsID(tx, "operations.first_account_id", f.FirstAccountID)
	tx = likeContainsID(tx, "operations.first_account_card_id", f.FirstAccountCardID)
	if f.OwnerSecret != "" {
		tx = tx.Joins("JOIN accounts ON accounts.id = operations.first_account_id").
			Where("accounts.secret = ?", f.OwnerSecret)
	}
	tx = paginate(tx, f.Limit, f.Offset, repository.DefaultLimit)

	var models []Operation
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	operations := make([]*domain.Operation, 0, len(models))
	for i := range models {
		operations = append(operations, operationToDomain(&models[i]))
	}
	return operations, nil
}

func (r *operationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Operation{}).
		Where("id = ?", id).
		Update("active", false).Error
}
