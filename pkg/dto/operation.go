package dto

import (
	"time"

	"github.com/google/uuid"
)

// OperationInput is the request body for creating or replacing an operation.
// Rate is deliberately absent: it is system-computed and never
// client-settable.
type OperationInput struct {
	Label                string     `json:"label" validate:"required"`
	Amount               *float64   `json:"amount" validate:"required"`
	SecondAccountName    string     `json:"secondAccountName" validate:"required"`
	SecondAccountCountry string     `json:"secondAccountCountry" validate:"required"`
	SecondAccountIBAN    string     `json:"secondAccountIban" validate:"required,min=15,max=34,iban_format"`
	Category             string     `json:"category"`
	FirstAccountID       uuid.UUID  `json:"firstAccountId" validate:"required"`
	FirstAccountCardID   *uuid.UUID `json:"firstAccountCardId"`
}

// OperationPatch carries the nullable fields of a partial operation update.
// Category is the only field that stays mutable once the operation is
// confirmed.
type OperationPatch struct {
	Label                *string    `json:"label"`
	Amount               *float64   `json:"amount"`
	SecondAccountName    *string    `json:"secondAccountName"`
	SecondAccountCountry *string    `json:"secondAccountCountry"`
	SecondAccountIBAN    *string    `json:"secondAccountIban"`
	Category             *string    `json:"category"`
	FirstAccountID       *uuid.UUID `json:"firstAccountId"`
	FirstAccountCardID   *uuid.UUID `json:"firstAccountCardId"`
}

// TouchesConfirmLocked reports whether the patch touches any field that is
// frozen once the operation is confirmed.
func (p OperationPatch) TouchesConfirmLocked() bool {
	return p.Label != nil ||
		p.Amount != nil ||
		p.SecondAccountName != nil ||
		p.SecondAccountCountry != nil ||
		p.SecondAccountIBAN != nil ||
		p.FirstAccountID != nil ||
		p.FirstAccountCardID != nil
}

// OperationView is the external representation of an operation. Rate and
// Category only appear in the complete tier (Admin and Client).
type OperationView struct {
	ID                   uuid.UUID  `json:"id"`
	Label                string     `json:"label"`
	Amount               float64    `json:"amount"`
	SecondAccountName    string     `json:"secondAccountName"`
	SecondAccountCountry string     `json:"secondAccountCountry"`
	SecondAccountIBAN    string     `json:"secondAccountIban"`
	Rate                 *float64   `json:"rate,omitempty"`
	Category             string     `json:"category,omitempty"`
	Confirmed            bool       `json:"confirmed"`
	DateAdded            time.Time  `json:"dateAdded"`
	FirstAccountID       uuid.UUID  `json:"firstAccountId"`
	FirstAccountCardID   *uuid.UUID `json:"firstAccountCardId,omitempty"`
	Links                Links      `json:"_links,omitempty"`
}

// OperationListQuery carries pagination and filters of GET /operations.
// Amount is a privileged filter (Admin only).
type OperationListQuery struct {
	Interval             int    `query:"interval"`
	Offset               int    `query:"offset"`
	ID                   string `query:"id"`
	Label                string `query:"label"`
	Amount               string `query:"amount"`
	SecondAccountName    string `query:"secondAccountName"`
	SecondAccountCountry string `query:"secondAccountCountry"`
	SecondAccountIBAN    string `query:"secondAccountIban"`
	Rate                 string `query:"rate"`
	Category             string `query:"category"`
	Confirmed            *bool  `query:"confirmed"`
	DateAdded            string `query:"dateAdded"`
	FirstAccountID       string `query:"firstAccountId"`
	FirstAccountCardID   string `query:"firstAccountCardId"`
}
