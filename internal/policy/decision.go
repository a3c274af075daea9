package policy

import (
	"org-roles-service/internal/roles"
)

// Reason is a machine-readable denial code. Callers map these to localized
// user-facing messages; they are never shown to users verbatim.
type Reason string

const (
	ReasonSelfAction              Reason = "self-action"
	ReasonInsufficientRole        Reason = "insufficient-role"
	ReasonInsufficientPermissions Reason = "insufficient-permissions"
	ReasonOwnerSelfDemotion       Reason = "owner-self-demotion-forbidden"
	ReasonAdminCannotCreateOwner  Reason = "admin-cannot-create-owner"
	ReasonAdminCannotModifyOwner  Reason = "admin-cannot-modify-owner"
	ReasonOnlyOwnerCanModifyOwner Reason = "only-owner-can-modify-owner"
	ReasonOnlyOwnerCanCreateOwner Reason = "only-owner-can-create-owner"
)

// ReasonInsufficientPermissionFor builds the per-action denial code used by
// CanActOnUser, e.g. "insufficient-permission-for-manage:payroll".
func ReasonInsufficientPermissionFor(action roles.Permission) Reason {
	return Reason("insufficient-permission-for-" + string(action))
}

// Decision is the outcome of a policy check. Denial is a value, not an
// error: Reason is always set when Allowed is false. ActorRole and
// CurrentRole are diagnostic and may be empty.
type Decision struct {
	Allowed     bool       `json:"allowed"`
	Reason      Reason     `json:"reason,omitempty"`
	ActorRole   roles.Role `json:"actorRole,omitempty"`
	CurrentRole roles.Role `json:"currentRole,omitempty"`
}
