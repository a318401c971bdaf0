package mapper

import (
	"github.com/corebanq/dbank/pkg/domain"
	"github.com/corebanq/dbank/pkg/dto"
)

// ToCardView projects a card for the given role. Admin sees the full number,
// cryptogram and expiration date; everyone else gets the masked number only.
// The PIN hash never appears in any tier.
func ToCardView(c *domain.Card, role domain.Role) dto.CardView {
	v := dto.CardView{
		ID:           c.ID,
		Number:       c.MaskedNumber(),
		Ceiling:      c.Ceiling.InexactFloat64(),
		Virtual:      c.Virtual,
		Localization: c.Localization,
		Contactless:  c.Contactless,
		Blocked:      c.Blocked,
		Expired:      c.Expired,
		DateAdded:    c.DateAdded,
		AccountID:    c.AccountID,
	}
	if role == domain.RoleAdmin {
		v.Number = c.Number
		v.Cryptogram = c.Cryptogram
		v.ExpirationDate = c.ExpirationDate
	}
	return v
}

// ToCardViews projects a slice of cards.
func ToCardViews(cards []*domain.Card, role domain.Role) []dto.CardView {
	views := make([]dto.CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, ToCardView(c, role))
	}
	return views
}
