package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"org-roles-service/internal/roles"
)

type roleValueTest struct {
	stored  string
	want    roles.Role
	wantErr bool
}

var roleValueTests = map[string]roleValueTest{
	"owner":   {stored: "owner", want: roles.RoleOwner},
	"admin":   {stored: "admin", want: roles.RoleAdmin},
	"finance": {stored: "finance", want: roles.RoleFinance},
	"marcom":  {stored: "marcom", want: roles.RoleMarcom},

	"empty":         {stored: "", wantErr: true},
	"cased":         {stored: "Owner", wantErr: true},
	"unknown":       {stored: "superadmin", wantErr: true},
	"trailing junk": {stored: "admin ", wantErr: true},
}

func TestMember_RoleValue(t *testing.T) {
	for name, test := range roleValueTests {
		t.Run(name, func(t *testing.T) {
			member := &Member{
				ID:   MemberID{OrgID: "o1", MemberID: "m1"},
				Role: test.stored,
			}

			role, err := member.RoleValue()
			if test.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, test.want, role)
		})
	}
}
