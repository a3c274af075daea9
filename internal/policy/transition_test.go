package policy

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"org-roles-service/internal/roles"
)

type transitionTest struct {
	from  roles.Role
	to    roles.Role
	actor roles.Role

	wantAllowed bool
	wantReason  Reason
}

var transitionTests = map[string]transitionTest{
	"owner assigns new member any role": {
		from: roles.RoleNone, to: roles.RoleOwner, actor: roles.RoleOwner,
		wantAllowed: true,
	},
	"admin assigns new member non-owner role": {
		from: roles.RoleNone, to: roles.RoleFinance, actor: roles.RoleAdmin,
		wantAllowed: true,
	},
	"admin cannot assign owner to new member": {
		from: roles.RoleNone, to: roles.RoleOwner, actor: roles.RoleAdmin,
		wantAllowed: false, wantReason: ReasonAdminCannotCreateOwner,
	},
	"finance cannot assign roles to new members": {
		from: roles.RoleNone, to: roles.RoleMarcom, actor: roles.RoleFinance,
		wantAllowed: false, wantReason: ReasonInsufficientPermissions,
	},
	"marcom cannot change existing roles": {
		from: roles.RoleFinance, to: roles.RoleMarcom, actor: roles.RoleMarcom,
		wantAllowed: false, wantReason: ReasonInsufficientPermissions,
	},
	"only owner modifies an owner": {
		from: roles.RoleOwner, to: roles.RoleAdmin, actor: roles.RoleAdmin,
		wantAllowed: false, wantReason: ReasonOnlyOwnerCanModifyOwner,
	},
	"only owner creates an owner": {
		from: roles.RoleAdmin, to: roles.RoleOwner, actor: roles.RoleAdmin,
		wantAllowed: false, wantReason: ReasonOnlyOwnerCanCreateOwner,
	},
	"owner demotes fellow owner": {
		from: roles.RoleOwner, to: roles.RoleAdmin, actor: roles.RoleOwner,
		wantAllowed: true,
	},
	"owner promotes admin to owner": {
		from: roles.RoleAdmin, to: roles.RoleOwner, actor: roles.RoleOwner,
		wantAllowed: true,
	},
	"admin shuffles department roles": {
		from: roles.RoleMarcom, to: roles.RoleFinance, actor: roles.RoleAdmin,
		wantAllowed: true,
	},
}

func TestValidateRoleTransition(t *testing.T) {
	for name, test := range transitionTests {
		t.Run(name, func(t *testing.T) {
			decision := ValidateRoleTransition(test.from, test.to, test.actor)
			assert.Equal(t, test.wantAllowed, decision.Allowed)
			assert.Equal(t, test.wantReason, decision.Reason)
		})
	}
}

// The pure validator and the live-store check must deny exactly the same
// transitions. Drift between them would let the dry-run preview promise an
// allow the real change then refuses (or the reverse), so the full
// (fromRole, toRole, actorRole) cross-product is pinned here. Actor and
// target are distinct members; the owner self-demotion guard has its own
// tests.
func TestValidateRoleTransition_AgreesWithCanChangeRole(t *testing.T) {
	fromRoles := append([]roles.Role{roles.RoleNone}, roles.All...)

	for _, from := range fromRoles {
		for _, to := range roles.All {
			for _, actor := range roles.All {
				from, to, actor := from, to, actor
				name := fmt.Sprintf("from=%s,to=%s,actor=%s", orNone(from), to, actor)

				t.Run(name, func(t *testing.T) {
					engine, repo, _ := testEngine(t)

					expectMember(repo, "o1", "actor1", string(actor))
					if from == roles.RoleNone {
						expectAbsent(repo, "o1", "target1")
					} else {
						expectMember(repo, "o1", "target1", string(from))
					}

					live, err := engine.CanChangeRole(context.Background(), "o1", "actor1", "target1", to)
					assert.NoError(t, err)

					pure := ValidateRoleTransition(from, to, actor)

					assert.Equal(t, pure.Allowed, live.Allowed,
						"validators disagree: pure=%v (%s) live=%v (%s)",
						pure.Allowed, pure.Reason, live.Allowed, live.Reason)
				})
			}
		}
	}
}

func orNone(r roles.Role) string {
	if r == roles.RoleNone {
		return "none"
	}
	return string(r)
}
