// Package card implements the business rules for payment cards: access
// controlled lookup, the blocked/expired mutation locks, PIN hashing and the
// code and identity checks.
package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
	"github.com/corebanq/dbank/pkg/repository"
	repocard "github.com/corebanq/dbank/pkg/repository/card"
	"github.com/corebanq/dbank/pkg/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service carries out card operations on behalf of an explicit caller.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a card service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// findOrFail looks the card up active-only and enforces ownership through
// the owning account's secret.
func (s *Service) findOrFail(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Card, error) {
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
		s.logger.Warn("card access denied", "card_id", id, "role", caller.Role)
		return nil, domain.ErrAccessDenied
	}
	return c, nil
}

// findAccountOrFail resolves the account a card is being attached to,
// enforcing ownership.
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

// lockErr maps a locked card onto its state-conflict error.
func lockErr(c *domain.Card) error {
	if c.Blocked {
		return domain.ErrCardBlocked
	}
	if c.Expired {
		return domain.ErrCardExpired
	}
	return nil
}

// List returns a page of active cards matching the query. Cryptogram,
// expiration date and ceiling filters are Admin-only. Client results are
// scoped to cards of the caller's own accounts.
func (s *Service) List(ctx context.Context, caller domain.Caller, q dto.CardListQuery) ([]*domain.Card, error) {
	if !caller.Is(domain.RoleAdmin) &&
		(q.Cryptogram != "" || q.ExpirationDate != "" || q.Ceiling != "") {
		return nil, domain.ErrAccessDenied
	}
	return s.uow.Cards().ListActive(ctx, repocard.ListFilter{
		Limit:          q.Interval,
		Offset:         q.Offset,
		ID:             q.ID,
		Number:         q.Number,
		Cryptogram:     q.Cryptogram,
		ExpirationDate: q.ExpirationDate,
		Ceiling:        q.Ceiling,
		Virtual:        q.Virtual,
		Localization:   q.Localization,
		Contactless:    q.Contactless,
		Blocked:        q.Blocked,
		Expired:        q.Expired,
		DateAdded:      q.DateAdded,
		AccountID:      q.AccountID,
		OwnerSecret:    caller.OwnerSecret(),
	})
}

// Get returns one active card, enforcing ownership.
func (s *Service) Get(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Card, error) {
	return s.findOrFail(ctx, caller, id)
}

// Create validates the input, hashes the PIN and persists a new card on the
// given account.
func (s *Service) Create(ctx context.Context, caller domain.Caller, input dto.CardInput) (*domain.Card, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	owner, err := s.findAccountOrFail(ctx, caller, input.AccountID)
	if err != nil {
		return nil, err
	}
	c := domain.NewCard(owner.ID)
	if err := applyInput(c, input); err != nil {
		return nil, err
	}
	if err := s.uow.Cards().Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	s.logger.Info("card created", "card_id", c.ID, "account_id", owner.ID)
	return c, nil
}

// Replace validates the full input and overwrites the card's fields.
// Blocked or expired cards refuse any update.
func (s *Service) Replace(ctx context.Context, caller domain.Caller, id uuid.UUID, input dto.CardInput) (*domain.Card, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}
	c, err := s.findOrFail(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := lockErr(c); err != nil {
		return nil, err
	}
	owner, err := s.findAccountOrFail(ctx, caller, input.AccountID)
	if err != nil {
		return nil, err
	}
	if err := applyInput(c, input); err != nil {
		return nil, err
	}
	c.AccountID = owner.ID
	if err := s.uow.Cards().Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return c, nil
}

// Patch merges the supplied fields onto the stored card and re-validates the
// resulting complete object. The PIN is only re-validated when the delta
// carries one; the stored value is a hash and has no plaintext to check.
func (s *Service) Patch(ctx context.Context, caller domain.Caller, id uuid.UUID, patch dto.CardPatch) (*domain.Card, error) {
	c, err := s.findOrFail(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := lockErr(c); err != nil {
		return nil, err
	}
	if patch.Number != nil {
		c.Number = *patch.Number
	}
	if patch.Cryptogram != nil {
		c.Cryptogram = *patch.Cryptogram
	}
	if patch.ExpirationDate != nil {
		c.ExpirationDate = *patch.ExpirationDate
	}
	if patch.Ceiling != nil {
		c.Ceiling = decimal.NewFromFloat(*patch.Ceiling)
	}
	if patch.Virtual != nil {
		c.Virtual = *patch.Virtual
	}
	if patch.Localization != nil {
		c.Localization = *patch.Localization
	}
	if patch.Contactless != nil {
		c.Contactless = *patch.Contactless
	}
	if patch.Blocked != nil {
		c.Blocked = *patch.Blocked
	}
	if patch.AccountID != nil {
		owner, err := s.findAccountOrFail(ctx, caller, *patch.AccountID)
		if err != nil {
			return nil, err
		}
		c.AccountID = owner.ID
	}

	ceiling := c.Ceiling.InexactFloat64()
	merged := dto.CardInput{
		Number:         c.Number,
		Cryptogram:     c.Cryptogram,
		ExpirationDate: c.ExpirationDate,
		Ceiling:        &ceiling,
		Virtual:        &c.Virtual,
		Localization:   &c.Localization,
		Contactless:    &c.Contactless,
		Blocked:        &c.Blocked,
		AccountID:      c.AccountID,
	}
	if patch.Code != nil {
		merged.Code = *patch.Code
		if err := validation.Struct(merged); err != nil {
			return nil, err
		}
		if err := c.SetCode(*patch.Code); err != nil {
			return nil, fmt.Errorf("hash card code: %w", err)
		}
	} else if err := validation.StructExcept(merged, "Code"); err != nil {
		return nil, err
	}

	if err := s.uow.Cards().Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update card: %w", err)
	}
	return c, nil
}

// Expire marks the card expired through the only path that may do so. The
// call is idempotent: expiring an already expired card is a no-op yielding
// the same terminal state.
func (s *Service) Expire(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	c, err := s.uow.Cards().FindActive(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find card: %w", err)
	}
	if c == nil {
		return nil, domain.ErrCardNotFound
	}
	if c.Expired {
		return c, nil
	}
	c.Expired = true
	if err := s.uow.Cards().Update(ctx, c); err != nil {
		return nil, fmt.Errorf("expire card: %w", err)
	}
	s.logger.Info("card expired", "card_id", id)
	return c, nil
}

// Delete soft-deletes the card.
func (s *Service) Delete(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	if _, err := s.findOrFail(ctx, caller, id); err != nil {
		return err
	}
	if err := s.uow.Cards().SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	s.logger.Info("card soft-deleted", "card_id", id)
	return nil
}

// CheckCode verifies a candidate PIN against the stored hash. The result
// never carries the hash itself.
func (s *Service) CheckCode(ctx context.Context, id uuid.UUID, input dto.CardCodeInput) (bool, error) {
	if err := validation.Struct(input); err != nil {
		return false, err
	}
	c, err := s.uow.Cards().FindActive(ctx, id)
	if err != nil {
		return false, fmt.Errorf("find card: %w", err)
	}
	if c == nil {
		return false, domain.ErrCardNotFound
	}
	return c.CheckCode(input.Code), nil
}

// CheckIdentity reports whether an active card matches the supplied number,
// cryptogram and expiration month.
func (s *Service) CheckIdentity(ctx context.Context, input dto.CardIdentityInput) (bool, error) {
	if err := validation.Struct(input); err != nil {
		return false, err
	}
	ok, err := s.uow.Cards().CheckIdentity(ctx, input.Number, input.Cryptogram, input.ExpirationDate)
	if err != nil {
		return false, fmt.Errorf("check card identity: %w", err)
	}
	return ok, nil
}

func applyInput(c *domain.Card, input dto.CardInput) error {
	c.Number = input.Number
	c.Cryptogram = input.Cryptogram
	c.ExpirationDate = input.ExpirationDate
	c.Ceiling = decimal.NewFromFloat(*input.Ceiling)
	c.Virtual = *input.Virtual
	c.Localization = *input.Localization
	c.Contactless = *input.Contactless
	c.Blocked = *input.Blocked
	if err := c.SetCode(input.Code); err != nil {
		return fmt.Errorf("hash card code: %w", err)
	}
	return nil
}
