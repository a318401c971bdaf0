package card

import (
	"context"
	"io"
	"log/slog"
	"testing"

	infrarepo "github.com/corebanq/dbank/infra/repository"
	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
	"github.com/corebanq/dbank/pkg/repository"
	"github.com/corebanq/dbank/pkg/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	admin   = domain.Caller{Subject: "root", Role: domain.RoleAdmin}
	client  = domain.Caller{Subject: "u1", Role: domain.RoleClient}
	foreign = domain.Caller{Subject: "u2", Role: domain.RoleClient}
)

func ptr[T any](v T) *T { return &v }

func newTestService(t *testing.T) (*Service, repository.UnitOfWork) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(infrarepo.Models()...))
	uow := infrarepo.NewUnitOfWork(db)
	return New(uow, slog.New(slog.NewTextHandler(io.Discard, nil))), uow
}

func seedAccount(t *testing.T, uow repository.UnitOfWork, secret string) *domain.Account {
	t.Helper()
	a := domain.NewAccount(secret)
	a.FirstName = "Marie"
	a.LastName = "Curie"
	a.BirthDate = "1987-11-07"
	a.Country = "France"
	a.PassportNumber = "123456789"
	a.PhoneNumber = "+33612345678"
	a.IBAN = "FR7630006000011234567890189"
	require.NoError(t, uow.Accounts().Create(context.Background(), a))
	return a
}

func validInput(accountID uuid.UUID) dto.CardInput {
	return dto.CardInput{
		Number:         "4556737586899855",
		Cryptogram:     "123",
		ExpirationDate: "2028-05",
		Code:           "1234",
		Ceiling:        ptr(500.0),
		Virtual:        ptr(false),
		Localization:   ptr(true),
		Contactless:    ptr(true),
		Blocked:        ptr(false),
		AccountID:      accountID,
	}
}

func TestCreate_HashesPIN(t *testing.T) {
	svc, uow := newTestService(t)
	a := seedAccount(t, uow, "u1")

	c, err := svc.Create(context.Background(), client, validInput(a.ID))
	require.NoError(t, err)
	assert.NotEqual(t, "1234", c.CodeHash)
	assert.True(t, c.CheckCode("1234"))
	assert.False(t, c.CheckCode("0000"))
}

func TestCreate_ForeignAccount(t *testing.T) {
	svc, uow := newTestService(t)
	a := seedAccount(t, uow, "u1")

	_, err := svc.Create(context.Background(), foreign, validInput(a.ID))
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = svc.Create(context.Background(), admin, validInput(a.ID))
	assert.NoError(t, err)
}

func TestCreate_AbsentAccount(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), admin, validInput(uuid.New()))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGet_Ownership(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")
	c, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	_, err = svc.Get(ctx, foreign, c.ID)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)

	got, err := svc.Get(ctx, client, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = svc.Get(ctx, admin, uuid.New())
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestList_PrivilegedFilters(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")
	_, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	for _, q := range []dto.CardListQuery{
		{Cryptogram: "12"},
		{ExpirationDate: "2028"},
		{Ceiling: "500"},
	} {
		_, err := svc.List(ctx, client, q)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)

		got, err := svc.List(ctx, admin, q)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}

	// non-privileged filters stay open to clients
	got, err := svc.List(ctx, client, dto.CardListQuery{Number: "9855"})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReplace_LockedCard(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")

	c, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	// block via PATCH, then every further edit is refused
	_, err = svc.Patch(ctx, client, c.ID, dto.CardPatch{Blocked: ptr(true)})
	require.NoError(t, err)

	_, err = svc.Replace(ctx, client, c.ID, validInput(a.ID))
	assert.ErrorIs(t, err, domain.ErrCardBlocked)
	_, err = svc.Patch(ctx, client, c.ID, dto.CardPatch{Ceiling: ptr(1000.0)})
	assert.ErrorIs(t, err, domain.ErrCardBlocked)
}

func TestPatch_WithoutCodeKeepsHash(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")
	c, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	got, err := svc.Patch(ctx, client, c.ID, dto.CardPatch{Ceiling: ptr(1000.0)})
	require.NoError(t, err)
	assert.True(t, got.CheckCode("1234"), "PIN survives a patch that does not carry one")
	assert.Equal(t, 1000.0, got.Ceiling.InexactFloat64())
}

func TestPatch_WithCodeRehashes(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")
	c, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	got, err := svc.Patch(ctx, client, c.ID, dto.CardPatch{Code: ptr("5678")})
	require.NoError(t, err)
	assert.True(t, got.CheckCode("5678"))
	assert.False(t, got.CheckCode("1234"))

	// an invalid new PIN is rejected before anything is persisted
	_, err = svc.Patch(ctx, client, c.ID, dto.CardPatch{Code: ptr("56789")})
	var verrs *validation.Errors
	require.ErrorAs(t, err, &verrs)
}

func TestExpire_Idempotent(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")
	c, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	first, err := svc.Expire(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, first.Expired)

	second, err := svc.Expire(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, second.Expired)

	// expired is terminal for ordinary edits
	_, err = svc.Patch(ctx, client, c.ID, dto.CardPatch{Ceiling: ptr(1000.0)})
	assert.ErrorIs(t, err, domain.ErrCardExpired)
}

func TestCheckCode(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")
	c, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	ok, err := svc.CheckCode(ctx, c.ID, dto.CardCodeInput{Code: "1234"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckCode(ctx, c.ID, dto.CardCodeInput{Code: "0000"})
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.CheckCode(ctx, uuid.New(), dto.CardCodeInput{Code: "1234"})
	assert.ErrorIs(t, err, domain.ErrCardNotFound)

	_, err = svc.CheckCode(ctx, c.ID, dto.CardCodeInput{Code: "12"})
	var verrs *validation.Errors
	assert.ErrorAs(t, err, &verrs)
}

func TestCheckIdentity(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")
	_, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	ok, err := svc.CheckIdentity(ctx, dto.CardIdentityInput{
		Number: "4556737586899855", Cryptogram: "123", ExpirationDate: "2028-05",
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.CheckIdentity(ctx, dto.CardIdentityInput{
		Number: "4556737586899855", Cryptogram: "999", ExpirationDate: "2028-05",
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	svc, uow := newTestService(t)
	ctx := context.Background()
	a := seedAccount(t, uow, "u1")
	c, err := svc.Create(ctx, client, validInput(a.ID))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, client, c.ID))
	_, err = svc.Get(ctx, admin, c.ID)
	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}
