package policy

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"org-roles-service/internal/messaging/notifier"
	"org-roles-service/internal/repository"
	"org-roles-service/internal/repository/model"
	"org-roles-service/internal/roles"
)

// StoreUnavailableError marks a failure to reach the membership store. It is
// deliberately distinct from a denied Decision: callers must never translate
// an infrastructure fault into "you lack permission".
var StoreUnavailableError = errors.New("membership store unavailable")

// Engine answers authorization questions over organization memberships. It
// is stateless; all state lives in the membership store. Safe for concurrent
// use.
type Engine struct {
	catalog roles.Catalog
	repo    repository.Repository
	notif   notifier.Notifier
	logger  *zap.SugaredLogger
}

func NewEngine(logger *zap.SugaredLogger, catalog roles.Catalog, repo repository.Repository, notif notifier.Notifier) *Engine {
	return &Engine{
		catalog: catalog,
		repo:    repo,
		notif:   notif,
		logger:  logger,
	}
}

// Catalog returns the engine's role catalog.
func (e *Engine) Catalog() roles.Catalog {
	return e.catalog
}

// storeErr classifies a repository failure. Cancellation passes through
// unchanged so callers can tell it apart from an unreachable store.
func (e *Engine) storeErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	e.logger.Errorw("membership store error", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", StoreUnavailableError, op, err)
}

// GetRole resolves a member's role. ok is false when the member has no
// membership in the organization; that is not an error. Memberships whose
// stored role is outside the closed role set are reported as absent.
func (e *Engine) GetRole(ctx context.Context, orgID string, memberID string) (roles.Role, bool, error) {
	member, err := e.repo.GetMember(ctx, orgID, memberID)
	if err != nil {
		if errors.Is(err, repository.MemberNotFoundError) {
			return roles.RoleNone, false, nil
		}
		return roles.RoleNone, false, e.storeErr("get member", err)
	}

	role, err := member.RoleValue()
	if err != nil {
		e.logger.Warnw("treating membership with invalid role as absent", "error", err)
		return roles.RoleNone, false, nil
	}

	return role, true, nil
}

// HasPermission reports whether the member's role grants perm. Absent
// membership means no permission.
func (e *Engine) HasPermission(ctx context.Context, orgID string, memberID string, perm roles.Permission) (bool, error) {
	role, ok, err := e.GetRole(ctx, orgID, memberID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return e.catalog.HasPermission(role, perm), nil
}

// IsOwnerOrAdmin reports whether the member holds the owner or admin role.
func (e *Engine) IsOwnerOrAdmin(ctx context.Context, orgID string, memberID string) (bool, error) {
	role, ok, err := e.GetRole(ctx, orgID, memberID)
	if err != nil {
		return false, err
	}
	return ok && (role == roles.RoleOwner || role == roles.RoleAdmin), nil
}

// RoleInfo is the aggregate role read used by profile/team views.
type RoleInfo struct {
	Role           roles.Role         `json:"role"`
	Permissions    []roles.Permission `json:"permissions"`
	Hierarchy      int                `json:"hierarchy"`
	IsOwnerOrAdmin bool               `json:"isOwnerOrAdmin"`
}

// GetRoleInfo returns the member's role, permission set and rank, or nil if
// the member has no membership.
func (e *Engine) GetRoleInfo(ctx context.Context, orgID string, memberID string) (*RoleInfo, error) {
	role, ok, err := e.GetRole(ctx, orgID, memberID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	return &RoleInfo{
		Role:           role,
		Permissions:    e.catalog.PermissionsFor(role),
		Hierarchy:      e.catalog.HierarchyRank(role),
		IsOwnerOrAdmin: role == roles.RoleOwner || role == roles.RoleAdmin,
	}, nil
}

// CanActOnUser decides whether actor may perform action on target. With
// allowSelf, an actor acting on themselves is always allowed regardless of
// role - the self-service bypass (own profile views etc).
func (e *Engine) CanActOnUser(ctx context.Context, orgID string, actorID string, targetID string, action roles.Permission, allowSelf bool) (Decision, error) {
	if allowSelf && actorID == targetID {
		actorRole, _, err := e.GetRole(ctx, orgID, actorID)
		if err != nil {
			return Decision{}, err
		}
		return Decision{Allowed: true, Reason: ReasonSelfAction, ActorRole: actorRole}, nil
	}

	// Role and permission are independent reads; issue both at once.
	var (
		actorRole roles.Role
		hasAction bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		actorRole, _, err = e.GetRole(gctx, orgID, actorID)
		return err
	})
	g.Go(func() error {
		var err error
		hasAction, err = e.HasPermission(gctx, orgID, actorID, action)
		return err
	})
	if err := g.Wait(); err != nil {
		return Decision{}, err
	}

	if !hasAction {
		return Decision{Allowed: false, Reason: ReasonInsufficientPermissionFor(action), ActorRole: actorRole}, nil
	}

	return Decision{Allowed: true, ActorRole: actorRole}, nil
}

// CanChangeRole decides whether actor may assign newRole to target, against
// live store state. It performs no mutation; callers that get an allow then
// call SetRole/SetRoleWithMetadata themselves.
func (e *Engine) CanChangeRole(ctx context.Context, orgID string, actorID string, targetID string, newRole roles.Role) (Decision, error) {
	var (
		actorRole         roles.Role
		targetRole        roles.Role
		actorIsOwnerAdmin bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		actorRole, _, err = e.GetRole(gctx, orgID, actorID)
		return err
	})
	g.Go(func() error {
		// Always a same-org lookup. The system has no cross-org role
		// semantics.
		var err error
		targetRole, _, err = e.GetRole(gctx, orgID, targetID)
		return err
	})
	g.Go(func() error {
		var err error
		actorIsOwnerAdmin, err = e.IsOwnerOrAdmin(gctx, orgID, actorID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Decision{}, err
	}

	// Only owners/admins change roles at all.
	if !actorIsOwnerAdmin {
		return Decision{Allowed: false, Reason: ReasonInsufficientRole, ActorRole: actorRole}, nil
	}

	// An owner may reassign themselves to owner (a no-op) but never lower
	// their own rank; an org must not lose its sole owner by accident.
	if actorID == targetID && actorRole == roles.RoleOwner && newRole != roles.RoleOwner {
		return Decision{Allowed: false, Reason: ReasonOwnerSelfDemotion, ActorRole: actorRole}, nil
	}

	if actorRole == roles.RoleAdmin {
		if newRole == roles.RoleOwner {
			return Decision{Allowed: false, Reason: ReasonAdminCannotCreateOwner, ActorRole: actorRole}, nil
		}
		if targetRole == roles.RoleOwner {
			return Decision{Allowed: false, Reason: ReasonAdminCannotModifyOwner, ActorRole: actorRole}, nil
		}
	}

	return Decision{Allowed: true, ActorRole: actorRole, CurrentRole: targetRole}, nil
}

// SetRole writes the member's role unconditionally. It does not validate the
// transition; callers run CanChangeRole first. Keeping decision and mutation
// apart lets the validators serve dry-run previews.
func (e *Engine) SetRole(ctx context.Context, orgID string, memberID string, role roles.Role) error {
	if err := e.repo.SetMemberRole(ctx, orgID, memberID, role); err != nil {
		return e.storeErr("set member role", err)
	}

	if err := e.notif.MemberRoleUpdate(ctx, orgID, memberID, role); err != nil {
		e.logger.Errorw("error sending member role update", "error", err)
	}

	return nil
}

// SetRoleWithMetadata is SetRole plus a merge of optional profile fields.
func (e *Engine) SetRoleWithMetadata(ctx context.Context, orgID string, memberID string, role roles.Role, meta model.Metadata) error {
	if err := e.repo.SetMemberRoleWithMetadata(ctx, orgID, memberID, role, meta); err != nil {
		return e.storeErr("set member role with metadata", err)
	}

	if err := e.notif.MemberRoleUpdate(ctx, orgID, memberID, role); err != nil {
		e.logger.Errorw("error sending member role update", "error", err)
	}

	return nil
}

// RemoveMembership deletes the membership unconditionally. Permission
// checking is the caller's responsibility.
func (e *Engine) RemoveMembership(ctx context.Context, orgID string, memberID string) error {
	if err := e.repo.RemoveMember(ctx, orgID, memberID); err != nil {
		return e.storeErr("remove member", err)
	}

	if err := e.notif.MemberRemoved(ctx, orgID, memberID); err != nil {
		e.logger.Errorw("error sending member remove", "error", err)
	}

	return nil
}
