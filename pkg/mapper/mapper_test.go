package mapper

import (
	"testing"

	"github.com/corebanq/dbank/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testAccount() *domain.Account {
	return &domain.Account{
		ID:             uuid.New(),
		FirstName:      "Marie",
		LastName:       "Curie",
		BirthDate:      "1987-11-07",
		Country:        "France",
		PassportNumber: "123456789",
		PhoneNumber:    "+33612345678",
		IBAN:           "FR7630006000011234567890189",
		Secret:         "u1",
		Balance:        decimal.NewFromFloat(250.75),
		Active:         true,
	}
}

func TestToAccountView_Admin(t *testing.T) {
	a := testAccount()
	v := ToAccountView(a, domain.RoleAdmin)

	assert.Equal(t, "1987-11-07", v.BirthDate)
	assert.Equal(t, "123456789", v.PassportNumber)
	assert.Equal(t, 250.75, v.Balance)
}

func TestToAccountView_Restricted(t *testing.T) {
	a := testAccount()
	for _, role := range []domain.Role{domain.RoleClient, domain.RoleATM, domain.RoleMerchant} {
		v := ToAccountView(a, role)
		assert.Empty(t, v.BirthDate, "role %s", role)
		assert.Empty(t, v.PassportNumber, "role %s", role)
		assert.Equal(t, a.IBAN, v.IBAN)
	}
	// the secret never appears in either tier: AccountView has no such field
}

func testCard() *domain.Card {
	return &domain.Card{
		ID:             uuid.New(),
		Number:         "4556737586899855",
		Cryptogram:     "123",
		ExpirationDate: "2028-05",
		CodeHash:       "$2a$10$hash",
		Ceiling:        decimal.NewFromInt(500),
		AccountID:      uuid.New(),
		Active:         true,
	}
}

func TestToCardView_Admin(t *testing.T) {
	c := testCard()
	v := ToCardView(c, domain.RoleAdmin)

	assert.Equal(t, "4556737586899855", v.Number)
	assert.Equal(t, "123", v.Cryptogram)
	assert.Equal(t, "2028-05", v.ExpirationDate)
}

func TestToCardView_RestrictedMasksNumber(t *testing.T) {
	c := testCard()
	for _, role := range []domain.Role{domain.RoleClient, domain.RoleATM, domain.RoleMerchant} {
		v := ToCardView(c, role)
		assert.Equal(t, "************9855", v.Number, "role %s", role)
		assert.Empty(t, v.Cryptogram)
		assert.Empty(t, v.ExpirationDate)
	}
}

func testOperation() *domain.Operation {
	rate := decimal.NewFromFloat(1.08)
	return &domain.Operation{
		ID:                   uuid.New(),
		Label:                "groceries",
		Amount:               decimal.NewFromFloat(42.5),
		SecondAccountName:    "Shop",
		SecondAccountCountry: "France",
		SecondAccountIBAN:    "FR7630006000011234567890189",
		Rate:                 &rate,
		Category:             "food",
		FirstAccountID:       uuid.New(),
		Active:               true,
	}
}

func TestToOperationView_CompleteTier(t *testing.T) {
	o := testOperation()
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleClient} {
		v := ToOperationView(o, role)
		assert.Equal(t, "food", v.Category, "role %s", role)
		if assert.NotNil(t, v.Rate, "role %s", role) {
			assert.Equal(t, 1.08, *v.Rate)
		}
	}
}

func TestToOperationView_RestrictedTier(t *testing.T) {
	o := testOperation()
	for _, role := range []domain.Role{domain.RoleATM, domain.RoleMerchant} {
		v := ToOperationView(o, role)
		assert.Empty(t, v.Category, "role %s", role)
		assert.Nil(t, v.Rate, "role %s", role)
		assert.Equal(t, 42.5, v.Amount)
	}
}

func TestToOperationView_NilRate(t *testing.T) {
	o := testOperation()
	o.Rate = nil
	v := ToOperationView(o, domain.RoleAdmin)
	assert.Nil(t, v.Rate)
}

func TestPluralMappersEmptyInput(t *testing.T) {
	assert.Empty(t, ToAccountViews(nil, domain.RoleAdmin))
	assert.Empty(t, ToCardViews(nil, domain.RoleAdmin))
	assert.Empty(t, ToOperationViews(nil, domain.RoleAdmin))
	assert.NotNil(t, ToAccountViews(nil, domain.RoleAdmin), "JSON must encode [] not null")
}
