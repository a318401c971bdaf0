package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Operation is a money transfer from an account towards an external party.
// The second account is not modeled as an entity; its name, country and IBAN
// are opaque strings. Rate is system-computed and never client-settable; the
// current core leaves it unset. Confirmed is a one-way ratchet: once true,
// every field except Category is immutable and deletion is refused.
type Operation struct {
	ID                   uuid.UUID
	Label                string
	Amount               decimal.Decimal
	SecondAccountName    string
	SecondAccountCountry string
	SecondAccountIBAN    string
	Rate                 *decimal.Decimal
	Category             string
	Confirmed            bool
	DateAdded            time.Time
	Active               bool
	FirstAccountID       uuid.UUID
	FirstAccountCardID   *uuid.UUID
}

// NewOperation creates a pending operation on the given account.
func NewOperation(firstAccountID uuid.UUID) *Operation {
	return &Operation{
		ID:             uuid.New(),
		DateAdded:      time.Now().UTC(),
		Active:         true,
		FirstAccountID: firstAccountID,
	}
}
