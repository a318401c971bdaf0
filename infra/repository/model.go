// Package repository holds the gorm-backed implementations of the
// persistence contracts in pkg/repository, plus the storage models they map
// onto. Domain entities never cross the gorm boundary directly.
package repository

import (
	"time"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is the storage model for bank accounts. Soft delete is the
// explicit Active column, not gorm's DeletedAt: inactive rows must stay
// reachable for audit queries outside this core.
type Account struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName      string
	LastName       string
	BirthDate      string
	Country        string
	PassportNumber string
	PhoneNumber    string
	IBAN           string          `gorm:"column:iban"`
	Secret         string          `gorm:"not null"`
	Balance        decimal.Decimal `gorm:"type:decimal(20,8)"`
	DateAdded      time.Time
	Active         bool `gorm:"not null;default:true"`
}

// Card is the storage model for payment cards.
type Card struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number         string
	Cryptogram     string
	ExpirationDate string
	CodeHash       string
	Ceiling        decimal.Decimal `gorm:"type:decimal(20,8)"`
	Virtual        bool
	Localization   bool
	Contactless    bool
	Blocked        bool
	Expired        bool
	DateAdded      time.Time
	Active         bool      `gorm:"not null;default:true"`
	AccountID      uuid.UUID `gorm:"type:uuid;index"`
}

// Operation is the storage model for money-transfer operations.
type Operation struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Label                string
	Amount               decimal.Decimal `gorm:"type:decimal(20,8)"`
	SecondAccountName    string
	SecondAccountCountry string
	SecondAccountIBAN    string           `gorm:"column:second_account_iban"`
	Rate                 *decimal.Decimal `gorm:"type:decimal(20,8)"`
	Category             string
	Confirmed            bool
	DateAdded            time.Time
	Active               bool       `gorm:"not null;default:true"`
	FirstAccountID       uuid.UUID  `gorm:"type:uuid;index"`
	FirstAccountCardID   *uuid.UUID `gorm:"type:uuid"`
}

// Models lists every storage model for automigration.
func Models() []any {
	return []any{&Account{}, &Card{}, &Operation{}}
}

func accountToModel(a *domain.Account) Account {
	return Account{
		ID:             a.ID,
		FirstName:      a.FirstName,
		LastName:       a.LastName,
		BirthDate:      a.BirthDate,
		Country:        a.Country,
		PassportNumber: a.PassportNumber,
		PhoneNumber:    a.PhoneNumber,
		IBAN:           a.IBAN,
		Secret:         a.Secret,
		Balance:        a.Balance,
		DateAdded:      a.DateAdded,
		Active:         a.Active,
	}
}

func accountToDomain(m *Account) *domain.Account {
	return &domain.Account{
		ID:             m.ID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		BirthDate:      m.BirthDate,
		Country:        m.Country,
		PassportNumber: m.PassportNumber,
		PhoneNumber:    m.PhoneNumber,
		IBAN:           m.IBAN,
		Secret:         m.Secret,
		Balance:        m.Balance,
		DateAdded:      m.DateAdded,
		Active:         m.Active,
	}
}

func cardToModel(c *domain.Card) Card {
	return Card{
		ID:             c.ID,
		Number:         c.Number,
		Cryptogram:     c.Cryptogram,
		ExpirationDate: c.ExpirationDate,
		CodeHash:       c.CodeHash,
		Ceiling:        c.Ceiling,
		Virtual:        c.Virtual,
		Localization:   c.Localization,
		Contactless:    c.Contactless,
		Blocked:        c.Blocked,
		Expired:        c.Expired,
		DateAdded:      c.DateAdded,
		Active:         c.Active,
		AccountID:      c.AccountID,
	}
}

func cardToDomain(m *Card) *domain.Card {
	return &domain.Card{
		ID:             m.ID,
		Number:         m.Number,
		Cryptogram:     m.Cryptogram,
		ExpirationDate: m.ExpirationDate,
		CodeHash:       m.CodeHash,
		Ceiling:        m.Ceiling,
		Virtual:        m.Virtual,
		Localization:   m.Localization,
		Contactless:    m.Contactless,
		Blocked:        m.Blocked,
		Expired:        m.Expired,
		DateAdded:      m.DateAdded,
		Active:         m.Active,
		AccountID:      m.AccountID,
	}
}

func operationToModel(o *domain.Operation) Operation {
	return Operation{
		ID:                   o.ID,
		Label:                o.Label,
		Amount:               o.Amount,
		SecondAccountName:    o.SecondAccountName,
		SecondAccountCountry: o.SecondAccountCountry,
		SecondAccountIBAN:    o.SecondAccountIBAN,
		Rate:                 o.Rate,
		Category:             o.Category,
		Confirmed:            o.Confirmed,
		DateAdded:            o.DateAdded,
		Active:               o.Active,
		FirstAccountID:       o.FirstAccountID,
		FirstAccountCardID:   o.FirstAccountCardID,
	}
}

func operationToDomain(m *Operation) *domain.Operation {
	return &domain.Operation{
		ID:                   m.ID,
		Label:                m.Label,
		Amount:               m.Amount,
		SecondAccountName:    m.SecondAccountName,
		SecondAccountCountry: m.SecondAccountCountry,
		SecondAccountIBAN:    m.SecondAccountIBAN,
		Rate:                 m.Rate,
		Category:             m.Category,
		Confirmed:            m.Confirmed,
		DateAdded:            m.DateAdded,
		Active:               m.Active,
		FirstAccountID:       m.FirstAccountID,
		FirstAccountCardID:   m.FirstAccountCardID,
	}
}
