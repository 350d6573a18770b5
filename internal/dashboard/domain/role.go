package domain

import "slices"

const (
	RoleAdmin       = "admin"
	RoleLinks       = "links"
	RolePhotos      = "photos"
	RoleMinecraft   = "minecraft"
	RoleVaultwarden = "vaultwarden"
)

// AllRoles lists every role tag the dashboard knows about, admin first.
var AllRoles = []string{RoleAdmin, RoleLinks, RolePhotos, RoleMinecraft, RoleVaultwarden}

func IsKnownRole(role string) bool {
	return slices.Contains(AllRoles, role)
}

// HasAnyRole is the one authorization predicate. It passes when the account
// holds any of required, or holds admin. An empty requirement means any
// authenticated account passes.
func HasAnyRole(a Account, required ...string) bool {
	if len(required) == 0 || a.IsAdmin() {
		return true
	}
	for _, r := range required {
		if slices.Contains(a.Roles, r) {
			return true
		}
	}
	return false
}

func (a Account) IsAdmin() bool {
	return slices.Contains(a.Roles, RoleAdmin)
}

// NormalizeRoles drops duplicates and empties while keeping first-seen order.
func NormalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if r == "" || slices.Contains(out, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
