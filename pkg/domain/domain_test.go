package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, label := range []string{"Admin", "Client", "ATM", "Merchant"} {
		role, err := ParseRole(label)
		require.NoError(t, err)
		assert.Equal(t, Role(label), role)
	}

	_, err := ParseRole("Superuser")
	assert.ErrorIs(t, err, ErrUnknownRole)
	_, err = ParseRole("admin")
	assert.ErrorIs(t, err, ErrUnknownRole, "role labels are case sensitive")
}

func TestCallerOwnerSecret(t *testing.T) {
	client := Caller{Subject: "u1", Role: RoleClient}
	assert.Equal(t, "u1", client.OwnerSecret())

	for _, role := range []Role{RoleAdmin, RoleATM, RoleMerchant} {
		caller := Caller{Subject: "u1", Role: role}
		assert.Empty(t, caller.OwnerSecret(), "role %s must not scope lists", role)
	}
}

func TestCallerMayAccess(t *testing.T) {
	client := Caller{Subject: "u1", Role: RoleClient}
	assert.True(t, client.MayAccess("u1"))
	assert.False(t, client.MayAccess("u2"))
	assert.False(t, client.MayAccess(""))

	admin := Caller{Subject: "anyone", Role: RoleAdmin}
	assert.True(t, admin.MayAccess("u2"), "admin bypasses ownership")
}

func TestNewAccount(t *testing.T) {
	a := NewAccount("u1")
	assert.NotEqual(t, a.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.Equal(t, "u1", a.Secret)
	assert.True(t, a.Active)
	assert.True(t, a.Balance.IsZero())
	assert.False(t, a.DateAdded.IsZero())
}

func TestAccountIncrementBalance(t *testing.T) {
	a := NewAccount("u1")
	got := a.IncrementBalance(decimal.NewFromFloat(100.5))
	assert.True(t, got.Equal(decimal.NewFromFloat(100.5)))

	got = a.IncrementBalance(decimal.NewFromFloat(-40.5))
	assert.True(t, got.Equal(decimal.NewFromFloat(60)))
	assert.True(t, a.Balance.Equal(decimal.NewFromFloat(60)))
}

func TestCardCode(t *testing.T) {
	c := NewCard(NewAccount("u1").ID)
	require.NoError(t, c.SetCode("1234"))

	assert.NotEqual(t, "1234", c.CodeHash, "plaintext PIN must not be stored")
	assert.True(t, c.CheckCode("1234"))
	assert.False(t, c.CheckCode("0000"))
}

func TestCardMaskedNumber(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"4556737586899855", "************9855"},
		{"123456789", "*****6789"},
		{"1234", "1234"},
		{"12", "12"},
		{"", ""},
	}
	for _, tt := range tests {
		c := Card{Number: tt.number}
		assert.Equal(t, tt.want, c.MaskedNumber(), "number %q", tt.number)
	}
}

func TestCardLocked(t *testing.T) {
	c := Card{}
	assert.False(t, c.Locked())
	c.Blocked = true
	assert.True(t, c.Locked())

	c = Card{Expired: true}
	assert.True(t, c.Locked())
}

func TestNewOperation(t *testing.T) {
	a := NewAccount("u1")
	o := NewOperation(a.ID)
	assert.Equal(t, a.ID, o.FirstAccountID)
	assert.False(t, o.Confirmed)
	assert.True(t, o.Active)
	assert.Nil(t, o.Rate)
}
