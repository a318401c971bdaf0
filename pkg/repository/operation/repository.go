// Package operation defines the persistence contract for money-transfer
// operations.
package operation

import (
	"context"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/google/uuid"
)

// ListFilter is a conjunction of partial-match predicates over the active
// operations. OwnerSecret, when set, restricts the result to operations
// whose originating account carries exactly that secret.
type ListFilter struct {
	Limit                int
	Offset               int
	ID                   string
	Label                string
	Amount               string
	SecondAccountName    string
	SecondAccountCountry string
	SecondAccountIBAN    string
	Rate                 string
	Category             string
	Confirmed            *bool
	DateAdded            string
	FirstAccountID       string
	FirstAccountCardID   string
	OwnerSecret          string
}

// Repository persists operations. FindActive returns (nil, nil) when no
// active operation carries the id.
type Repository interface {
	Create(ctx context.Context, op *domain.Operation) error
	Update(ctx context.Context, op *domain.Operation) error
	FindActive(ctx context.Context, id uuid.UUID) (*domain.Operation, error)
	ListActive(ctx context.Context, filter ListFilter) ([]*domain.Operation, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}
