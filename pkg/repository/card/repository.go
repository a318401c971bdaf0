// Package card defines the persistence contract for payment cards.
package card

import (
	"context"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/google/uuid"
)

// ListFilter is a conjunction of partial-match predicates over the active
// cards. OwnerSecret, when set, restricts the result to cards whose owning
// account carries exactly that secret. The boolean pointers are equality
// filters applied only when non-nil.
type ListFilter struct {
	Limit          int
	Offset         int
	ID             string
	Number         string
	Cryptogram     string
	ExpirationDate string
	Ceiling        string
	Virtual        *bool
	Localization   *bool
	Contactless    *bool
	Blocked        *bool
	Expired        *bool
	DateAdded      string
	AccountID      string
	OwnerSecret    string
}

// Repository persists cards. FindActive returns (nil, nil) when no active
// card carries the id. CheckIdentity reports whether an active card matches
// the given number, cryptogram and expiration month.
type Repository interface {
	Create(ctx context.Context, card *domain.Card) error
	Update(ctx context.Context, card *domain.Card) error
	FindActive(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListActive(ctx context.Context, filter ListFilter) ([]*domain.Card, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	CheckIdentity(ctx context.Context, number, cryptogram, expirationDate string) (bool, error)
}
