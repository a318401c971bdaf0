package domain

// Role is the closed set of caller roles known to the API.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleClient   Role = "Client"
	RoleATM      Role = "ATM"
	RoleMerchant Role = "Merchant"
)

// ParseRole maps a role label onto a Role.
func ParseRole(label string) (Role, error) {
	switch Role(label) {
	case RoleAdmin, RoleClient, RoleATM, RoleMerchant:
		return Role(label), nil
	}
	return "", ErrUnknownRole
}

// Caller is the authenticated identity threaded explicitly through every
// service call. Subject is the opaque identity token issued by the external
// identity provider; it is only ever compared for equality against an
// account's ownership secret.
type Caller struct {
	Subject string
	Role    Role
}

// Is reports whether the caller holds the given role.
func (c Caller) Is(role Role) bool { return c.Role == role }

// OwnerSecret returns the ownership secret that list queries must be scoped
// to for this caller: the caller's own subject for clients, empty (no
// scoping) for every other role.
func (c Caller) OwnerSecret() string {
	if c.Role == RoleClient {
		return c.Subject
	}
	return ""
}

// MayAccess reports whether the caller may act on a record owned by the
// account carrying the given secret. Only clients are restricted to their
// own records.
func (c Caller) MayAccess(secret string) bool {
	if c.Role != RoleClient {
		return true
	}
	return secret == c.Subject
}
