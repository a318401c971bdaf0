// Package account implements the business rules for bank accounts: access
// controlled lookup, input validation and soft deletion.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
	"github.com/corebanq/dbank/pkg/repository"
	repoaccount "github.com/corebanq/dbank/pkg/repository/account"
	"github.com/corebanq/dbank/pkg/validation"
	"github.com/google/uuid"
)

// Service carries out account operations on behalf of an explicit caller.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// findOrFail looks the account up active-only and distinguishes absent
// (ErrAccountNotFound) from present-but-foreign (ErrAccessDenied): a client
// probing a foreign id learns only that it is not accessible.
func (s *Service) findOrFail(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Account, error) {
	a, err := s.uow.Accounts().FindActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if a == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !caller.MayAccess(a.Secret) {
		s.logger.Warn("account access denied", "account_id", id, "role", caller.Role)
		return nil, domain.ErrAccessDenied
	}
	return a, nil
}

// List returns a page of active accounts matching the query. BirthDate,
// passport number, phone number and balance filters are Admin-only; a
// non-empty value from anyone else fails the whole request. Client results
// are scoped to the caller's own accounts.
func (s *Service) List(ctx context.Context, caller domain.Caller, q dto.AccountListQuery) ([]*domain.Account, error) {
	if !caller.Is(domain.RoleAdmin) &&
		(q.BirthDate != "" || q.PassportNumber != "" || q.PhoneNumber != "" || q.Balance != "") {
		return nil, domain.ErrAccessDenied
	}
	return s.uow.Accounts().ListActive(ctx, repoaccount.ListFilter{
		Limit:          q.Interval,
		Offset:         q.Offset,
		ID:             q.ID,
		FirstName:      q.FirstName,
		LastName:       q.LastName,
		BirthDate:      q.BirthDate,
		Country:        q.Country,
		PassportNumber: q.PassportNumber,
		PhoneNumber:    q.PhoneNumber,
		IBAN:           q.IBAN,
		Balance:        q.Balance,
		DateAdded:      q.DateAdded,
		OwnerSecret:    caller.OwnerSecret(),
	})
}

// Get returns one active account, enforcing ownership.
func (s *Service) Get(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Account, error) {
	return s.findOrFail(ctx, caller, id)
}

// Create validates the input and persists a new account owned by the
// caller: the account's ownership secret is the caller's identity token.
func (s *Service) Create(ctx context.Context, caller domain.Caller, input dto.AccountInput) (*domain.Account, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	a := domain.NewAccount(caller.Subject)
	applyInput(a, input)
	if err := s.uow.Accounts().Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	s.logger.Info("account created", "account_id", a.ID)
	return a, nil
}

// Replace validates the full input and overwrites the mutable profile
// fields. Balance, secret, id and creation date are untouchable.
func (s *Service) Replace(ctx context.Context, caller domain.Caller, id uuid.UUID, input dto.AccountInput) (*domain.Account, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	a, err := s.findOrFail(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	applyInput(a, input)
	if err := s.uow.Accounts().Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return a, nil
}

// Patch merges the supplied fields onto the stored account, then re-validates
// the resulting complete object so a partial update cannot null-out a
// required field.
func (s *Service) Patch(ctx context.Context, caller domain.Caller, id uuid.UUID, patch dto.AccountPatch) (*domain.Account, error) {
	a, err := s.findOrFail(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if patch.FirstName != nil {
		a.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		a.LastName = *patch.LastName
	}
	if patch.BirthDate != nil {
		a.BirthDate = *patch.BirthDate
	}
	if patch.Country != nil {
		a.Country = *patch.Country
	}
	if patch.PassportNumber != nil {
		a.PassportNumber = *patch.PassportNumber
	}
	if patch.PhoneNumber != nil {
		a.PhoneNumber = *patch.PhoneNumber
	}
	if patch.IBAN != nil {
		a.IBAN = *patch.IBAN
	}
	merged := dto.AccountInput{
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		BirthDate:      a.BirthDate,
		Country:        a.Country,
		PassportNumber: a.PassportNumber,
		PhoneNumber:    a.PhoneNumber,
		IBAN:           a.IBAN,
	}
	if err := validation.Struct(merged); err != nil {
		return nil, err
	}
	if err := s.uow.Accounts().Update(ctx, a); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	return a, nil
}

// Delete soft-deletes the account; the record stays in storage for audit.
func (s *Service) Delete(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	if _, err := s.findOrFail(ctx, caller, id); err != nil {
		return err
	}
	if err := s.uow.Accounts().SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	s.logger.Info("account soft-deleted", "account_id", id)
	return nil
}

func applyInput(a *domain.Account, input dto.AccountInput) {
	a.FirstName = input.FirstName
	a.LastName = input.LastName
	a.BirthDate = input.BirthDate
	a.Country = input.Country
	a.PassportNumber = input.PassportNumber
	a.PhoneNumber = input.PhoneNumber
	a.IBAN = input.IBAN
}
