package repository

import (
	"context"

	"github.com/corebanq/dbank/pkg/repository"
	"github.com/corebanq/dbank/pkg/repository/account"
	"github.com/corebanq/dbank/pkg/repository/card"
	"github.com/corebanq/dbank/pkg/repository/operation"
	"gorm.io/gorm"
)

// gormUnitOfWork binds the repositories to one gorm session. Do opens a
// transaction and hands out a UnitOfWork bound to it, so confirming an
// operation can persist the operation and the account balance as a unit.
type gormUnitOfWork struct {
	db         *gorm.DB
	accounts   account.Repository
	cards      card.Repository
	operations operation.Repository
}

// NewUnitOfWork creates a UnitOfWork over the given gorm session.
func NewUnitOfWork(db *gorm.DB) repository.UnitOfWork {
	return &gormUnitOfWork{
		db:         db,
		accounts:   NewAccountRepository(db),
		cards:      NewCardRepository(db),
		operations: NewOperationRepository(db),
	}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewUnitOfWork(tx))
	})
}

func (u *gormUnitOfWork) Accounts() account.Repository { return u.accounts }

func (u *gormUnitOfWork) Cards() card.Repository { return u.cards }

func (u *gormUnitOfWork) Operations() operation.Repository { return u.operations }
