package repository

import (
	"context"
	"errors"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/repository"
	"github.com/corebanq/dbank/pkg/repository/card"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a gorm-backed card repository.
func NewCardRepository(db *gorm.DB) card.Repository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, c *domain.Card) error {
	m := cardToModel(c)
	return r.db.WithContext(ctx).Create(&m).Error
}

func (r *cardRepository) Update(ctx context.Context, c *domain.Card) error {
	m := cardToModel(c)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *cardRepository) FindActive(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	var m Card
	err := r.db.WithContext(ctx).
		First(&m, "id = ? AND active = ?", id, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cardToDomain(&m), nil
}

func (r *cardRepository) ListActive(ctx context.Context, f card.ListFilter) ([]*domain.Card, error) {
	tx := r.db.WithContext(ctx).Model(&Card{}).Where("cards.active = ?", true)
	tx = likeContainsID(tx, "cards.id", f.ID)
	tx = likeContains(tx, "cards.number", f.Number)
	tx = likeContains(tx, "cards.cryptogram", f.Cryptogram)
	tx = likeContains(tx, "cards.expiration_date", f.ExpirationDate)
	tx = likeContains(tx, "cards.ceiling", f.Ceiling)
	tx = boolEquals(tx, "cards.virtual", f.Virtual)
	tx = boolEquals(tx, "cards.localization", f.Localization)
	tx = boolEquals(tx, "cards.contactless", f.Contactless)
	tx = boolEquals(tx, "cards.blocked", f.Blocked)
	tx = boolEquals(tx, "cards.expired", f.Expired)
	tx = likeContains(tx, "cards.date_added", f.DateAdded)
	tx = likeContainsID(tx, "cards.account_id", f.AccountID)
	if f.OwnerSecret != "" {
		tx = tx.Joins("JOIN accounts ON accounts.id = cards.account_id").
			Where("accounts.secret = ?", f.OwnerSecret)
	}
	tx = paginate(tx, f.Limit, f.Offset, repository.DefaultLimit)

	var models []Card
	if err := tx.Find(&models).Error; err != nil {
		return nil, err
	}
	cards := make([]*domain.Card, 0, len(models))
	for i := range models {
		cards = append(cards, cardToDomain(&models[i]))
	}
	return cards, nil
}

func (r *cardRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&Card{}).
		Where("id = ?", id).
		Update("active", false).Error
}

func (r *cardRepository) CheckIdentity(ctx context.Context, number, cryptogram, expirationDate string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Card{}).
		Where("number = ? AND cryptogram = ? AND expiration_date = ? AND active = ?",
			number, cryptogram, expirationDate, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
