package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/repository"
	accountrepo "github.com/corebanq/dbank/pkg/repository/account"
	cardrepo "github.com/corebanq/dbank/pkg/repository/card"
	operationrepo "github.com/corebanq/dbank/pkg/repository/operation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RepositorySuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context
}

func (s *RepositorySuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(Models()...))
	s.db = db
	s.ctx = context.Background()
}

func (s *RepositorySuite) seedAccount(secret, firstName string) *domain.Account {
	a := domain.NewAccount(secret)
	a.FirstName = firstName
	a.LastName = "Curie"
	a.BirthDate = "1987-11-07"
	a.Country = "France"
	a.PassportNumber = "123456789"
	a.PhoneNumber = "+33612345678"
	a.IBAN = "FR7630006000011234567890189"
	s.Require().NoError(NewAccountRepository(s.db).Create(s.ctx, a))
	return a
}

func (s *RepositorySuite) seedCard(a *domain.Account, last4 string) *domain.Card {
	c := domain.NewCard(a.ID)
	c.Number = "455673758689" + last4
	c.Cryptogram = "123"
	c.ExpirationDate = "2028-05"
	c.Ceiling = decimal.NewFromInt(500)
	s.Require().NoError(c.SetCode("1234"))
	s.Require().NoError(NewCardRepository(s.db).Create(s.ctx, c))
	return c
}

func (s *RepositorySuite) seedOperation(a *domain.Account, label string, amount float64) *domain.Operation {
	o := domain.NewOperation(a.ID)
	o.Label = label
	o.Amount = decimal.NewFromFloat(amount)
	o.SecondAccountName = "Shop"
	o.SecondAccountCountry = "France"
	o.SecondAccountIBAN = "FR7630006000011234567890189"
	s.Require().NoError(NewOperationRepository(s.db).Create(s.ctx, o))
	return o
}

func (s *RepositorySuite) TestAccountFindActive() {
	repo := NewAccountRepository(s.db)
	a := s.seedAccount("u1", "Marie")

	found, err := repo.FindActive(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found)
	s.Equal(a.ID, found.ID)
	s.Equal("u1", found.Secret)
}

func (s *RepositorySuite) TestAccountSoftDelete() {
	repo := NewAccountRepository(s.db)
	a := s.seedAccount("u1", "Marie")

	s.Require().NoError(repo.SoftDelete(s.ctx, a.ID))

	found, err := repo.FindActive(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Nil(found, "soft-deleted account must be invisible to lookups")

	// the row itself survives for audit
	var count int64
	s.Require().NoError(s.db.Model(&Account{}).Where("id = ?", a.ID).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *RepositorySuite) TestAccountListActivePartialMatch() {
	repo := NewAccountRepository(s.db)
	s.seedAccount("u1", "Marie")
	s.seedAccount("u2", "Pierre")

	// case-insensitive substring
	got, err := repo.ListActive(s.ctx, accountrepo.ListFilter{FirstName: "mar"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("Marie", got[0].FirstName)

	// conjunction: both filters must match
	got, err = repo.ListActive(s.ctx, accountrepo.ListFilter{FirstName: "mar", Country: "germ"})
	s.Require().NoError(err)
	s.Empty(got)

	// empty filters match everything
	got, err = repo.ListActive(s.ctx, accountrepo.ListFilter{})
	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *RepositorySuite) TestAccountListActiveIDFilterIgnoresDashes() {
	repo := NewAccountRepository(s.db)
	a := s.seedAccount("u1", "Marie")

	fragment := strings.ReplaceAll(a.ID.String(), "-", "")[4:12]
	got, err := repo.ListActive(s.ctx, accountrepo.ListFilter{ID: fragment})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(a.ID, got[0].ID)
}

func (s *RepositorySuite) TestAccountListActiveOwnerScoping() {
	repo := NewAccountRepository(s.db)
	s.seedAccount("u1", "Marie")
	s.seedAccount("u2", "Pierre")

	got, err := repo.ListActive(s.ctx, accountrepo.ListFilter{OwnerSecret: "u1"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("u1", got[0].Secret)
}

func (s *RepositorySuite) TestAccountListActivePagination() {
	repo := NewAccountRepository(s.db)
	for i := 0; i < 25; i++ {
		s.seedAccount("u1", "Marie")
	}

	got, err := repo.ListActive(s.ctx, accountrepo.ListFilter{})
	s.Require().NoError(err)
	s.Len(got, 20, "default page size")

	got, err = repo.ListActive(s.ctx, accountrepo.ListFilter{Limit: 10, Offset: 20})
	s.Require().NoError(err)
	s.Len(got, 5)
}

func (s *RepositorySuite) TestAccountUpdate() {
	repo := NewAccountRepository(s.db)
	a := s.seedAccount("u1", "Marie")
	a.PhoneNumber = "+33699999999"
	a.IncrementBalance(decimal.NewFromInt(100))

	s.Require().NoError(repo.Update(s.ctx, a))

	found, err := repo.FindActive(s.ctx, a.ID)
	s.Require().NoError(err)
	s.Equal("+33699999999", found.PhoneNumber)
	s.True(found.Balance.Equal(decimal.NewFromInt(100)))
}

func (s *RepositorySuite) TestCardListActiveOwnerScopingJoinsAccount() {
	repo := NewCardRepository(s.db)
	mine := s.seedAccount("u1", "Marie")
	other := s.seedAccount("u2", "Pierre")
	c1 := s.seedCard(mine, "9855")
	s.seedCard(other, "1111")

	got, err := repo.ListActive(s.ctx, cardrepo.ListFilter{OwnerSecret: "u1"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(c1.ID, got[0].ID)
}

func (s *RepositorySuite) TestCardListActiveBoolFilter() {
	repo := NewCardRepository(s.db)
	a := s.seedAccount("u1", "Marie")
	blocked := s.seedCard(a, "9855")
	blocked.Blocked = true
	s.Require().NoError(repo.Update(s.ctx, blocked))
	s.seedCard(a, "1111")

	yes := true
	got, err := repo.ListActive(s.ctx, cardrepo.ListFilter{Blocked: &yes})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(blocked.ID, got[0].ID)

	no := false
	got, err = repo.ListActive(s.ctx, cardrepo.ListFilter{Blocked: &no})
	s.Require().NoError(err)
	s.Len(got, 1)
}

func (s *RepositorySuite) TestCardCheckIdentity() {
	repo := NewCardRepository(s.db)
	a := s.seedAccount("u1", "Marie")
	c := s.seedCard(a, "9855")

	ok, err := repo.CheckIdentity(s.ctx, c.Number, "123", "2028-05")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = repo.CheckIdentity(s.ctx, c.Number, "999", "2028-05")
	s.Require().NoError(err)
	s.False(ok)

	// soft-deleted cards no longer match
	s.Require().NoError(repo.SoftDelete(s.ctx, c.ID))
	ok, err = repo.CheckIdentity(s.ctx, c.Number, "123", "2028-05")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *RepositorySuite) TestOperationListActiveFilters() {
	repo := NewOperationRepository(s.db)
	a := s.seedAccount("u1", "Marie")
	other := s.seedAccount("u2", "Pierre")
	s.seedOperation(a, "groceries", 42.5)
	s.seedOperation(other, "rent", 900)

	got, err := repo.ListActive(s.ctx, operationrepo.ListFilter{Label: "GROC"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("groceries", got[0].Label)

	got, err = repo.ListActive(s.ctx, operationrepo.ListFilter{Amount: "42"})
	s.Require().NoError(err)
	s.Len(got, 1)

	got, err = repo.ListActive(s.ctx, operationrepo.ListFilter{OwnerSecret: "u2"})
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("rent", got[0].Label)
}

func (s *RepositorySuite) TestOperationFindActiveAbsent() {
	repo := NewOperationRepository(s.db)
	a := s.seedAccount("u1", "Marie")
	o := s.seedOperation(a, "groceries", 42.5)

	s.Require().NoError(repo.SoftDelete(s.ctx, o.ID))
	found, err := repo.FindActive(s.ctx, o.ID)
	s.Require().NoError(err)
	s.Nil(found)
}

func (s *RepositorySuite) TestUnitOfWorkRollsBackOnError() {
	uow := NewUnitOfWork(s.db)
	a := s.seedAccount("u1", "Marie")

	sentinel := errors.New("boom")
	err := uow.Do(s.ctx, func(tx repository.UnitOfWork) error {
		a.IncrementBalance(decimal.NewFromInt(100))
		if err := tx.Accounts().Update(s.ctx, a); err != nil {
			return err
		}
		return sentinel
	})
	s.Require().ErrorIs(err, sentinel)

	found, err := NewAccountRepository(s.db).FindActive(s.ctx, a.ID)
	s.Require().NoError(err)
	s.True(found.Balance.IsZero(), "failed transaction must leave the balance untouched")
}

func (s *RepositorySuite) TestUnitOfWorkCommits() {
	uow := NewUnitOfWork(s.db)
	a := s.seedAccount("u1", "Marie")
	o := s.seedOperation(a, "salary", 100)

	err := uow.Do(s.ctx, func(tx repository.UnitOfWork) error {
		o.Confirmed = true
		if err := tx.Operations().Update(s.ctx, o); err != nil {
			return err
		}
		a.IncrementBalance(o.Amount)
		return tx.Accounts().Update(s.ctx, a)
	})
	s.Require().NoError(err)

	gotOp, err := NewOperationRepository(s.db).FindActive(s.ctx, o.ID)
	s.Require().NoError(err)
	s.True(gotOp.Confirmed)
	gotAcc, err := NewAccountRepository(s.db).FindActive(s.ctx, a.ID)
	s.Require().NoError(err)
	s.True(gotAcc.Balance.Equal(decimal.NewFromInt(100)))
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}
