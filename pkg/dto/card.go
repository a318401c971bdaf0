package dto

import (
	"time"

	"github.com/google/uuid"
)

// CardInput is the request body for creating or replacing a card. Code is
// the plaintext PIN; it is hashed before persistence and never echoed back.
type CardInput struct {
	Number         string    `json:"number" validate:"required,card_number"`
	Cryptogram     string    `json:"cryptogram" validate:"required,cryptogram"`
	ExpirationDate string    `json:"expirationDate" validate:"required,datetime=2006-01"`
	Code           string    `json:"code" validate:"required,pin_code"`
	Ceiling        *float64  `json:"ceiling" validate:"required,gt=0"`
	Virtual        *bool     `json:"virtual" validate:"required"`
	Localization   *bool     `json:"localization" validate:"required"`
	Contactless    *bool     `json:"contactless" validate:"required"`
	Blocked        *bool     `json:"blocked" validate:"required"`
	AccountID      uuid.UUID `json:"accountId" validate:"required"`
}

// CardPatch carries the nullable fields of a partial card update.
type CardPatch struct {
	Number         *string    `json:"number"`
	Cryptogram     *string    `json:"cryptogram"`
	ExpirationDate *string    `json:"expirationDate"`
	Code           *string    `json:"code"`
	Ceiling        *float64   `json:"ceiling"`
	Virtual        *bool      `json:"virtual"`
	Localization   *bool      `json:"localization"`
	Contactless    *bool      `json:"contactless"`
	Blocked        *bool      `json:"blocked"`
	AccountID      *uuid.UUID `json:"accountId"`
}

// CardCodeInput is the body of POST /cards/{id}/code/check.
type CardCodeInput struct {
	Code string `json:"code" validate:"required,pin_code"`
}

// CardIdentityInput is the body of POST /cards/identity/check.
type CardIdentityInput struct {
	Number         string `json:"number" validate:"required,card_number"`
	Cryptogram     string `json:"cryptogram" validate:"required,cryptogram"`
	ExpirationDate string `json:"expirationDate" validate:"required,datetime=2006-01"`
}

// CheckResult is the response of the code and identity check endpoints. It
// never carries the stored hash or card credentials.
type CheckResult struct {
	Checked bool   `json:"checked"`
	Message string `json:"message"`
}

// CardView is the external representation of a card. Number is masked down
// to its last four characters for the restricted tier; Cryptogram and
// ExpirationDate only appear in the complete (Admin) tier.
type CardView struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	Cryptogram     string    `json:"cryptogram,omitempty"`
	ExpirationDate string    `json:"expirationDate,omitempty"`
	Ceiling        float64   `json:"ceiling"`
	Virtual        bool      `json:"virtual"`
	Localization   bool      `json:"localization"`
	Contactless    bool      `json:"contactless"`
	Blocked        bool      `json:"blocked"`
	Expired        bool      `json:"expired"`
	DateAdded      time.Time `json:"dateAdded"`
	AccountID      uuid.UUID `json:"accountId"`
	Links          Links     `json:"_links,omitempty"`
}

// CardListQuery carries pagination and filters of GET /cards. Cryptogram,
// ExpirationDate and Ceiling are privileged filters (Admin only).
type CardListQuery struct {
	Interval       int    `query:"interval"`
	Offset         int    `query:"offset"`
	ID             string `query:"id"`
	Number         string `query:"number"`
	Cryptogram     string `query:"cryptogram"`
	ExpirationDate string `query:"expirationDate"`
	Ceiling        string `query:"ceiling"`
	Virtual        *bool  `query:"virtual"`
	Localization   *bool  `query:"localization"`
	Contactless    *bool  `query:"contactless"`
	Blocked        *bool  `query:"blocked"`
	Expired        *bool  `query:"expired"`
	DateAdded      string `query:"dateAdded"`
	AccountID      string `query:"accountId"`
}
