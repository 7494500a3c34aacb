package authz

import "conduit-in-go/pkg/identity"

// Owned is implemented by models that expose an owning profile. Entities
// without an ownership concept are not subject to the owner check.
type Owned interface {
	OwnerProfileID() uint
}

// Allowed decides whether caller may perform action on target.
//
// Read actions are always permitted, independent of caller identity.
// Mutating actions require an authenticated caller. When the target is an
// Owned entity, the caller's profile must match the owner; targets without
// an ownership relation are permitted unconditionally.
func Allowed(caller *identity.Identity, action Action, target interface{}) bool {
	if action.ReadOnly() {
		return true
	}
	if caller == nil {
		return false
	}
	if owned, ok := target.(Owned); ok {
		return owned.OwnerProfileID() == caller.ProfileID
	}
	return true
}
