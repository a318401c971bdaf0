// Package mapper shapes domain entities into their external views. The
// shape depends on the caller's role: a complete tier with the sensitive
// fields, and a restricted tier for everyone else. Mapping never mutates the
// entity, and the ownership secret never leaves this layer.
package mapper

import (
	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
)

// ToAccountView projects an account for the given role. BirthDate and
// PassportNumber are Admin-only.
func ToAccountView(a *domain.Account, role domain.Role) dto.AccountView {
	v := dto.AccountView{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		Country:     a.Country,
		PhoneNumber: a.PhoneNumber,
		IBAN:        a.IBAN,
		Balance:     a.Balance.InexactFloat64(),
		DateAdded:   a.DateAdded,
	}
	if role == domain.RoleAdmin {
		v.BirthDate = a.BirthDate
		v.PassportNumber = a.PassportNumber
	}
	return v
}

// ToAccountViews projects a slice of accounts.
func ToAccountViews(accounts []*domain.Account, role domain.Role) []dto.AccountView {
	views := make([]dto.AccountView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, ToAccountView(a, role))
	}
	return views
}
