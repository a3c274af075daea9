package notifier

import (
	"context"

	"org-roles-service/internal/roles"
)

// ChangeType tags a membership change event.
type ChangeType string

const (
	ChangeTypeSet    ChangeType = "SET"
	ChangeTypeRemove ChangeType = "REMOVE"
)

// Notifier publishes membership change events for the surrounding SaaS
// (cache/UI sync consumers). Publishing is best-effort: the engine logs
// failures and never fails a mutation over them.
type Notifier interface {
	MemberRoleUpdate(ctx context.Context, orgID string, memberID string, role roles.Role) error
	MemberRemoved(ctx context.Context, orgID string, memberID string) error
}
