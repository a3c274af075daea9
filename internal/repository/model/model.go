package model

import (
	"fmt"
	"time"

	"org-roles-service/internal/roles"
)

// MemberID is the compound document id for a membership: one document per
// (organization, member) pair.
type MemberID struct {
	OrgID    string `bson:"org" json:"orgId"`
	MemberID string `bson:"member" json:"memberId"`
}

// Member is a membership document as stored. Role is kept as a raw string
// at this layer; callers go through RoleValue so garbage data from the
// store is never silently trusted as a valid role.
type Member struct {
	ID          MemberID  `bson:"_id" json:"id"`
	Role        string    `bson:"role" json:"role"`
	DisplayName *string   `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Email       *string   `bson:"email,omitempty" json:"email,omitempty"`
	JoinedAt    time.Time `bson:"joinedAt" json:"joinedAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// RoleValue decodes the stored role against the closed role set.
func (m *Member) RoleValue() (roles.Role, error) {
	role, ok := roles.Parse(m.Role)
	if !ok {
		return "", fmt.Errorf("member %s/%s has invalid role %q", m.ID.OrgID, m.ID.MemberID, m.Role)
	}
	return role, nil
}

// Metadata carries the optional profile fields merged alongside a role
// write. Nil fields are left untouched in the stored document.
type Metadata struct {
	DisplayName *string
	Email       *string
}
