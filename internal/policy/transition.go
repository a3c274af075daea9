package policy

import (
	"org-roles-service/internal/roles"
)

// ValidateRoleTransition is the pure counterpart of Engine.CanChangeRole: a
// decision table over (fromRole, toRole, actorRole) with no store reads,
// usable for dry-run previews and for validating a brand-new membership
// (fromRole == RoleNone, e.g. an invite being accepted).
//
// It must deny exactly the transitions CanChangeRole denies; the agreement
// is locked down by a cross-product test.
func ValidateRoleTransition(fromRole roles.Role, toRole roles.Role, actorRole roles.Role) Decision {
	if actorRole != roles.RoleOwner && actorRole != roles.RoleAdmin {
		return Decision{Allowed: false, Reason: ReasonInsufficientPermissions, ActorRole: actorRole}
	}

	// Brand-new membership: owners assign anything, admins anything but
	// owner.
	if fromRole == roles.RoleNone {
		if actorRole == roles.RoleAdmin && toRole == roles.RoleOwner {
			return Decision{Allowed: false, Reason: ReasonAdminCannotCreateOwner, ActorRole: actorRole}
		}
		return Decision{Allowed: true, ActorRole: actorRole}
	}

	if fromRole == roles.RoleOwner && actorRole != roles.RoleOwner {
		return Decision{Allowed: false, Reason: ReasonOnlyOwnerCanModifyOwner, ActorRole: actorRole}
	}

	if toRole == roles.RoleOwner && actorRole != roles.RoleOwner {
		return Decision{Allowed: false, Reason: ReasonOnlyOwnerCanCreateOwner, ActorRole: actorRole}
	}

	return Decision{Allowed: true, ActorRole: actorRole, CurrentRole: fromRole}
}
