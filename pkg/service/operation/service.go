// Package operation implements the business rules for money-transfer
// operations: access controlled lookup, the confirmed-lock, and the balance
// increment that runs when an operation is confirmed.
package operation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
	"github.com/corebanq/dbank/pkg/repository"
	repooperation "github.com/corebanq/dbank/pkg/repository/operation"
	"github.com/corebanq/dbank/pkg/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service carries out operation requests on behalf of an explicit caller.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an operation service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// findOrFail looks the operation up active-only and enforces ownership
// through the originating account's secret.
func (s *Service) findOrFail(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Operation, error) {
	o, err := s.uow.Operations().FindActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find operation: %w", err)
	}
	if o == nil {
		return nil, domain.ErrOperationNotFound
	}
	owner, err := s.uow.Accounts().FindActive(ctx, o.FirstAccountID)
	if err != nil {
		return nil, fmt.Errorf("find operation owner: %w", err)
	}
	if owner == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !caller.MayAccess(owner.Secret) {
		s.logger.Warn("operation access denied", "operation_id", id, "role", caller.Role)
		return nil, domain.ErrAccessDenied
	}
	return o, nil
}

// find looks the operation up without an ownership check, for the endpoints
// open to service roles (ATM, Merchant).
func (s *Service) find(ctx context.Context, id uuid.UUID) (*domain.Operation, error) {
	o, err := s.uow.Operations().FindActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find operation: %w", err)
	}
	if o == nil {
		return nil, domain.ErrOperationNotFound
	}
	return o, nil
}

// List returns a page of active operations matching the query. The amount
// filter is Admin-only. Client results are scoped to operations of the
// caller's own accounts.
func (s *Service) List(ctx context.Context, caller domain.Caller, q dto.OperationListQuery) ([]*domain.Operation, error) {
	if !caller.Is(domain.RoleAdmin) && q.Amount != "" {
		return nil, domain.ErrAccessDenied
	}
	return s.uow.Operations().ListActive(ctx, repooperation.ListFilter{
		Limit:                q.Interval,
		Offset:               q.Offset,
		ID:                   q.ID,
		Label:                q.Label,
		Amount:               q.Amount,
		SecondAccountName:    q.SecondAccountName,
		SecondAccountCountry: q.SecondAccountCountry,
		SecondAccountIBAN:    q.SecondAccountIBAN,
		Rate:                 q.Rate,
		Category:             q.Category,
		Confirmed:            q.Confirmed,
		DateAdded:            q.DateAdded,
		FirstAccountID:       q.FirstAccountID,
		FirstAccountCardID:   q.FirstAccountCardID,
		OwnerSecret:          caller.OwnerSecret(),
	})
}

// Get returns one active operation. No ownership check: the route is open
// to ATM and Merchant, which have no ownership relation to the record.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Operation, error) {
	return s.find(ctx, id)
}

// Create validates the input and persists a new pending operation on the
// given account, optionally tied to one of its cards.
func (s *Service) Create(ctx context.Context, caller domain.Caller, input dto.OperationInput) (*domain.Operation, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	firstAccount, err := s.findAccountOrFail(ctx, caller, input.FirstAccountID)
	if err != nil {
		return nil, err
	}
	var cardID *uuid.UUID
	if input.FirstAccountCardID != nil {
		c, err := s.findCardOrFail(ctx, caller, *input.FirstAccountCardID)
		if err != nil {
			return nil, err
		}
		cardID = &c.ID
	}
	o := domain.NewOperation(firstAccount.ID)
	applyInput(o, input)
	o.FirstAccountCardID = cardID
	if err := s.uow.Operations().Create(ctx, o); err != nil {
		return nil, fmt.Errorf("create operation: %w", err)
	}
	s.logger.Info("operation created", "operation_id", o.ID, "account_id", firstAccount.ID)
	return o, nil
}

// Confirm flips the one-way confirmed ratchet and applies the operation's
// amount to the originating account's balance. Both writes happen in one
// unit of work so they become visible together. A second confirm attempt is
// rejected: the balance must never increment twice.
func (s *Service) Confirm(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Operation, error) {
	o, err := s.findOrFail(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if o.Confirmed {
		return nil, domain.ErrOperationConfirmed
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		account, err := uow.Accounts().FindActive(ctx, o.FirstAccountID)
		if err != nil {
			return fmt.Errorf("find account: %w", err)
		}
		if account == nil {
			return domain.ErrAccountNotFound
		}
		o.Confirmed = true
		account.IncrementBalance(o.Amount)
		if err := uow.Operations().Update(ctx, o); err != nil {
			return fmt.Errorf("update operation: %w", err)
		}
		if err := uow.Accounts().Update(ctx, account); err != nil {
			return fmt.Errorf("update account: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("operation confirmed", "operation_id", o.ID, "amount", o.Amount)
	return o, nil
}

// Replace validates the full input and overwrites the operation's fields.
// Confirmed operations refuse replacement.
func (s *Service) Replace(ctx context.Context, caller domain.Caller, id uuid.UUID, input dto.OperationInput) (*domain.Operation, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Confirmed {
		return nil, domain.ErrOperationConfirmed
	}
	firstAccount, err := s.findAccountOrFail(ctx, caller, input.FirstAccountID)
	if err != nil {
		return nil, err
	}
	applyInput(o, input)
	o.FirstAccountID = firstAccount.ID
	if input.FirstAccountCardID != nil {
		c, err := s.findCardOrFail(ctx, caller, *input.FirstAccountCardID)
		if err != nil {
			return nil, err
		}
		o.FirstAccountCardID = &c.ID
	} else {
		o.FirstAccountCardID = nil
	}
	if err := s.uow.Operations().Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update operation: %w", err)
	}
	return o, nil
}

// Patch merges the supplied fields onto the stored operation and
// re-validates the result. Once confirmed, category is the only field that
// may still change; touching anything else fails.
func (s *Service) Patch(ctx context.Context, caller domain.Caller, id uuid.UUID, patch dto.OperationPatch) (*domain.Operation, error) {
	o, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Confirmed && patch.TouchesConfirmLocked() {
		return nil, domain.ErrOperationConfirmed
	}
	if patch.Label != nil {
		o.Label = *patch.Label
	}
	if patch.Amount != nil {
		o.Amount = decimal.NewFromFloat(*patch.Amount)
	}
	if patch.SecondAccountName != nil {
		o.SecondAccountName = *patch.SecondAccountName
	}
	if patch.SecondAccountCountry != nil {
		o.SecondAccountCountry = *patch.SecondAccountCountry
	}
	if patch.SecondAccountIBAN != nil {
		o.SecondAccountIBAN = *patch.SecondAccountIBAN
	}
	if patch.Category != nil {
		o.Category = *patch.Category
	}
	if patch.FirstAccountID != nil {
		firstAccount, err := s.findAccountOrFail(ctx, caller, *patch.FirstAccountID)
		if err != nil {
			return nil, err
		}
		o.FirstAccountID = firstAccount.ID
	}
	if patch.FirstAccountCardID != nil {
		c, err := s.findCardOrFail(ctx, caller, *patch.FirstAccountCardID)
		if err != nil {
			return nil, err
		}
		o.FirstAccountCardID = &c.ID
	}

	amount := o.Amount.InexactFloat64()
	merged := dto.OperationInput{
		Label:                o.Label,
		Amount:               &amount,
		SecondAccountName:    o.SecondAccountName,
		SecondAccountCountry: o.SecondAccountCountry,
		SecondAccountIBAN:    o.SecondAccountIBAN,
		Category:             o.Category,
		FirstAccountID:       o.FirstAccountID,
		FirstAccountCardID:   o.FirstAccountCardID,
	}
	if err := validation.Struct(merged); err != nil {
		return nil, err
	}
	if err := s.uow.Operations().Update(ctx, o); err != nil {
		return nil, fmt.Errorf("update operation: %w", err)
	}
	return o, nil
}

// Delete soft-deletes the operation. Confirmed operations refuse deletion;
// deleting an absent operation is a no-op, keeping the call idempotent.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	o, err := s.uow.Operations().FindActive(ctx, id)
	if err != nil {
		return fmt.Errorf("find operation: %w", err)
	}
	if o == nil {
		return nil
	}
	if o.Confirmed {
		return domain.ErrOperationConfirmed
	}
	if err := s.uow.Operations().SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete operation: %w", err)
	}
	s.logger.Info("operation soft-deleted", "operation_id", id)
	return nil
}

func (s *Service) findAccountOrFail(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Account, error) {
	a, err := s.uow.Accounts().FindActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	if a == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !caller.MayAccess(a.Secret) {
		return nil, domain.ErrAccessDenied
	}
	return a, nil
}

func (s *Service) findCardOrFail(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Card, error) {
	c, err := s.uow.Cards().FindActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find card: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCardNotFound
	}
	owner, err := s.uow.Accounts().FindActive(ctx, c.AccountID)
	if err != nil {
		return nil, fmt.Errorf("find card owner: %w", err)
	}
	if owner == nil {
		return nil, domain.ErrAccountNotFound
	}
	if !caller.MayAccess(owner.Secret) {
		return nil, domain.ErrAccessDenied
	}
	return c, nil
}

func applyInput(o *domain.Operation, input dto.OperationInput) {
	o.Label = input.Label
	o.Amount = decimal.NewFromFloat(*input.Amount)
	o.SecondAccountName = input.SecondAccountName
	o.SecondAccountCountry = input.SecondAccountCountry
	o.SecondAccountIBAN = input.SecondAccountIBAN
	o.Category = input.Category
}
