package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Card is a payment card attached to exactly one account. CodeHash holds a
// bcrypt hash of the PIN; the plaintext code is never stored or returned.
// Blocked and Expired are one-way: once either is set the card refuses
// ordinary updates.
type Card struct {
	ID             uuid.UUID
	Number         string
	Cryptogram     string
	ExpirationDate string // yyyy-MM
	CodeHash       string
	Ceiling        decimal.Decimal
	Virtual        bool
	Localization   bool
	Contactless    bool
	Blocked        bool
	Expired        bool
	DateAdded      time.Time
	Active         bool
	AccountID      uuid.UUID
}

// NewCard creates a card for the given account with a server-assigned ID.
func NewCard(accountID uuid.UUID) *Card {
	return &Card{
		ID:        uuid.New(),
		DateAdded: time.Now().UTC(),
		Active:    true,
		AccountID: accountID,
	}
}

// Locked reports whether the card refuses field mutation.
func (c *Card) Locked() bool { return c.Blocked || c.Expired }

// SetCode hashes the plaintext PIN and stores the hash.
func (c *Card) SetCode(code string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	c.CodeHash = string(hash)
	return nil
}

// CheckCode compares a candidate PIN against the stored hash.
func (c *Card) CheckCode(code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.CodeHash), []byte(code)) == nil
}

// MaskedNumber returns the card number with everything but the last four
// characters replaced by '*'. Computed by length, not by assuming a 16-digit
// format.
func (c *Card) MaskedNumber() string {
	n := []rune(c.Number)
	if len(n) <= 4 {
		return c.Number
	}
	return strings.Repeat("*", len(n)-4) + string(n[len(n)-4:])
}
