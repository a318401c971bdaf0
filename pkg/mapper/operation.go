package mapper

import (
	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
)

// ToOperationView projects an operation for the given role. The complete
// tier, with rate and category, goes to Admin and Client; ATM and Merchant
// get the restricted tier.
func ToOperationView(o *domain.Operation, role domain.Role) dto.OperationView {
	v := dto.OperationView{
		ID:                   o.ID,
		Label:                o.Label,
		Amount:               o.Amount.InexactFloat64(),
		SecondAccountName:    o.SecondAccountName,
		SecondAccountCountry: o.SecondAccountCountry,
		SecondAccountIBAN:    o.SecondAccountIBAN,
		Confirmed:            o.Confirmed,
		DateAdded:            o.DateAdded,
		FirstAccountID:       o.FirstAccountID,
		FirstAccountCardID:   o.FirstAccountCardID,
	}
	if role == domain.RoleAdmin || role == domain.RoleClient {
		if o.Rate != nil {
			rate := o.Rate.InexactFloat64()
			v.Rate = &rate
		}
		v.Category = o.Category
	}
	return v
}

// ToOperationViews projects a slice of operations.
func ToOperationViews(operations []*domain.Operation, role domain.Role) []dto.OperationView {
	views := make([]dto.OperationView, 0, len(operations))
	for _, o := range operations {
		views = append(views, ToOperationView(o, role))
	}
	return views
}
