// Package account defines the persistence contract for bank accounts.
package account

import (
	"context"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/google/uuid"
)

// ListFilter is a conjunction of partial-match predicates over the active
// accounts. Every non-empty value must be a case-insensitive substring of
// the stored field's string form; empty values match everything.
// OwnerSecret, when set, restricts the result to accounts carrying exactly
// that ownership secret.
type ListFilter struct {
	Limit          int
	Offset         int
	ID             string
	FirstName      string
	LastName       string
	BirthDate      string
	Country        string
	PassportNumber string
	PhoneNumber    string
	IBAN           string
	Balance        string
	DateAdded      string
	OwnerSecret    string
}

// Repository persists accounts. Lookups only ever see active records; soft
// deleted rows stay in storage for audit. FindActive returns (nil, nil) when
// no active account carries the id.
type Repository interface {
	Create(ctx context.Context, account *domain.Account) error
	Update(ctx context.Context, account *domain.Account) error
	FindActive(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	ListActive(ctx context.Context, filter ListFilter) ([]*domain.Account, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
