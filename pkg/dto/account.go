package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountInput is the request body for creating or replacing an account.
// The same shape is re-validated after PATCH merges, so a partial update can
// never null-out a required field.
type AccountInput struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	BirthDate      string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	Country        string `json:"country" validate:"required"`
	PassportNumber string `json:"passportNumber" validate:"required,numeric"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	IBAN           string `json:"iban" validate:"required,min=15,max=34,iban_format"`
}

// AccountPatch carries the nullable fields of a partial account update.
type AccountPatch struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	BirthDate      *string `json:"birthDate"`
	Country        *string `json:"country"`
	PassportNumber *string `json:"passportNumber"`
	PhoneNumber    *string `json:"phoneNumber"`
	IBAN           *string `json:"iban"`
}

// AccountView is the external representation of an account. BirthDate and
// PassportNumber are only populated for the complete (Admin) tier; the
// ownership secret never appears.
type AccountView struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	BirthDate      string    `json:"birthDate,omitempty"`
	Country        string    `json:"country"`
	PassportNumber string    `json:"passportNumber,omitempty"`
	PhoneNumber    string    `json:"phoneNumber"`
	IBAN           string    `json:"iban"`
	Balance        float64   `json:"balance"`
	DateAdded      time.Time `json:"dateAdded"`
	Links          Links     `json:"_links,omitempty"`
}

// AccountListQuery carries pagination plus the per-field partial-match
// filters of GET /accounts. BirthDate, PassportNumber, PhoneNumber and
// Balance are privileged filters (Admin only).
type AccountListQuery struct {
	Interval       int    `query:"interval"`
	Offset         int    `query:"offset"`
	ID             string `query:"id"`
	FirstName      string `query:"firstName"`
	LastName       string `query:"lastName"`
	BirthDate      string `query:"birthDate"`
	Country        string `query:"country"`
	PassportNumber string `query:"passportNumber"`
	PhoneNumber    string `query:"phoneNumber"`
	IBAN           string `query:"iban"`
	Balance        string `query:"balance"`
	DateAdded      string `query:"dateAdded"`
}
