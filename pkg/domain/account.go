package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a bank account. Profile fields are opaque strings; Balance is
// only ever mutated through operation confirmation. Secret is the ownership
// token set at creation and never changed afterwards.
type Account struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	BirthDate      string // yyyy-MM-dd
	Country        string
	PassportNumber string
	PhoneNumber    string
	IBAN           string
	Secret         string
	Balance        decimal.Decimal
	DateAdded      time.Time
	Active         bool
}

// NewAccount creates an account owned by the caller identified by secret.
// The server assigns the ID, a zero balance and the creation timestamp.
func NewAccount(secret string) *Account {
	return &Account{
		ID:        uuid.New(),
		Secret:    secret,
		Balance:   decimal.Zero,
		DateAdded: time.Now().UTC(),
		Active:    true,
	}
}

// IncrementBalance adds amount to the balance; amount may be negative.
func (a *Account) IncrementBalance(amount decimal.Decimal) decimal.Decimal {
	a.Balance = a.Balance.Add(amount)
	return a.Balance
}
