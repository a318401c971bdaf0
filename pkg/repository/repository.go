// Package repository defines the persistence contracts consumed by the
// service layer. Implementations live in infra/repository.
package repository

import (
	"context"

	"github.com/corebanq/dbank/pkg/repository/account"
	"github.com/corebanq/dbank/pkg/repository/card"
	"github.com/corebanq/dbank/pkg/repository/operation"
)

// DefaultLimit is the page size applied when a list request does not name
// one.
const DefaultLimit = 20

// UnitOfWork gives access to the repositories and a transaction boundary.
// Repositories obtained inside Do share one storage transaction, so the
// writes of a single business action become visible together or not at all.
type UnitOfWork interface {
	// Do executes fn within a transaction. The UnitOfWork handed to fn is
	// bound to that transaction; returning an error rolls everything back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	Accounts() account.Repository
	Cards() card.Repository
	Operations() operation.Repository
}
