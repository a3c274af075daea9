package repository

import (
	"context"

	"org-roles-service/internal/repository/model"
	"org-roles-service/internal/roles"
)

type Repository interface {
	GetMember(ctx context.Context, orgID string, memberID string) (*model.Member, error)
	ListMembers(ctx context.Context, orgID string) ([]*model.Member, error)

	SetMemberRole(ctx context.Context, orgID string, memberID string, role roles.Role) error
	SetMemberRoleWithMetadata(ctx context.Context, orgID string, memberID string, role roles.Role, meta model.Metadata) error
	RemoveMember(ctx context.Context, orgID string, memberID string) error
}
