package roles

// Catalog maps each role to the permission set it grants and its hierarchy
// rank. A Catalog is immutable once built; construct one with DefaultCatalog
// (or NewCatalog in tests) and pass it into the policy engine.
type Catalog struct {
	permissions map[Role][]Permission
	ranks       map[Role]int
}

// NewCatalog copies the given tables into an immutable Catalog. Callers keep
// no aliases into the catalog's internal state.
func NewCatalog(permissions map[Role][]Permission, ranks map[Role]int) Catalog {
	perms := make(map[Role][]Permission, len(permissions))
	for role, set := range permissions {
		perms[role] = append([]Permission(nil), set...)
	}

	r := make(map[Role]int, len(ranks))
	for role, rank := range ranks {
		r[role] = rank
	}

	return Catalog{permissions: perms, ranks: r}
}

// DefaultCatalog returns the production role catalog. Owner and Admin hold
// the full permission set; Finance and Marcom hold their department subsets.
func DefaultCatalog() Catalog {
	full := []Permission{
		PermManageStaff,
		PermManagePayroll,
		PermManageTournaments,
		PermManageMatches,
		PermManageCampaigns,
		PermManageContracts,
		PermManageInvites,
		PermManageFinance,
		PermManageSocial,
		PermManageUsers,
		PermManageFiles,
		PermManageRoles,
	}

	return NewCatalog(
		map[Role][]Permission{
			RoleOwner:   full,
			RoleAdmin:   full,
			RoleFinance: {PermManageFinance, PermManagePayroll},
			RoleMarcom:  {PermManageCampaigns, PermManageSocial},
		},
		map[Role]int{
			RoleOwner:   100,
			RoleAdmin:   90,
			RoleFinance: 70,
			RoleMarcom:  60,
		},
	)
}

// PermissionsFor returns a copy of the permission set for role. Unknown
// roles get an empty set, never an error.
func (c Catalog) PermissionsFor(role Role) []Permission {
	set, ok := c.permissions[role]
	if !ok {
		return []Permission{}
	}
	return append([]Permission(nil), set...)
}

// HierarchyRank returns the fixed rank for role (higher = more authority).
// Unknown roles rank 0.
func (c Catalog) HierarchyRank(role Role) int {
	return c.ranks[role]
}

// HasPermission reports whether role grants perm.
func (c Catalog) HasPermission(role Role, perm Permission) bool {
	for _, p := range c.permissions[role] {
		if p == perm {
			return true
		}
	}
	return false
}

// IsHigherRank reports whether a strictly outranks b.
func (c Catalog) IsHigherRank(a, b Role) bool {
	return c.HierarchyRank(a) > c.HierarchyRank(b)
}
