package roles

// Role is an organization membership role. Roles are scoped to a single
// organization membership: the same user may hold different roles in
// different organizations.
type Role string

const (
	// RoleNone marks the absence of a membership. It is never stored.
	RoleNone Role = ""

	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleFinance Role = "finance"
	RoleMarcom  Role = "marcom"
)

// Permission is a capability token, e.g. "manage:payroll". Permissions are
// never assigned to members directly - they derive from the member's role.
type Permission string

const (
	PermManageStaff       Permission = "manage:staff"
	PermManagePayroll     Permission = "manage:payroll"
	PermManageTournaments Permission = "manage:tournaments"
	PermManageMatches     Permission = "manage:matches"
	PermManageCampaigns   Permission = "manage:campaigns"
	PermManageContracts   Permission = "manage:contracts"
	PermManageInvites     Permission = "manage:invites"
	PermManageFinance     Permission = "manage:finance"
	PermManageSocial      Permission = "manage:social"
	PermManageUsers       Permission = "manage:users"
	PermManageFiles       Permission = "manage:files"
	PermManageRoles       Permission = "manage:roles"
)

// All is the closed role set, highest rank first.
var All = []Role{RoleOwner, RoleAdmin, RoleFinance, RoleMarcom}

// Parse validates external input against the closed role set.
func Parse(s string) (Role, bool) {
	switch Role(s) {
	case RoleOwner, RoleAdmin, RoleFinance, RoleMarcom:
		return Role(s), true
	}
	return RoleNone, false
}

// IsValid reports whether r is a member of the closed role set.
func (r Role) IsValid() bool {
	_, ok := Parse(string(r))
	return ok
}

func (r Role) String() string {
	return string(r)
}
