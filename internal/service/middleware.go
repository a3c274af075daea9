package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"org-roles-service/internal/policy"
	"org-roles-service/internal/roles"
)

// actorIDHeader carries the acting member's id, resolved upstream from the
// authenticated session. Session verification itself is out of scope here;
// this service trusts its ingress for identity, not for authorization.
const actorIDHeader = "X-Actor-ID"

type actorContextKey struct{}

// Actor is the acting member attached to the request context by the
// authorization middleware.
type Actor struct {
	OrgID string
	ID    string
	Role  roles.Role
}

// ActorFromRequest returns the actor attached by the middleware chain.
func ActorFromRequest(r *http.Request) (Actor, bool) {
	actor, ok := r.Context().Value(actorContextKey{}).(Actor)
	return actor, ok
}

// extractActor resolves (orgID, actorID) for the request: the organization
// from the {org} route param, the actor from the identity header.
func extractActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actorID := r.Header.Get(actorIDHeader)
		if actorID == "" {
			writeJSON(w, http.StatusUnauthorized, Response{Message: "missing actor identity"})
			return
		}

		actor := Actor{
			OrgID: chi.URLParam(r, "org"),
			ID:    actorID,
		}

		ctx := context.WithValue(r.Context(), actorContextKey{}, actor)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeEngineError maps engine failures onto the 5xx family. Denials never
// reach here; they are Decision values, not errors.
func writeEngineError(w http.ResponseWriter, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Client gave up; nothing useful to write.
		return
	}
	if errors.Is(err, policy.StoreUnavailableError) {
		writeJSON(w, http.StatusServiceUnavailable, Response{Message: "membership store unavailable"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, Response{Message: "authorization check failed"})
}

// PermissionOptions tunes RequirePermission.
type PermissionOptions struct {
	// AllowSelf lets the actor through when the target route param names
	// themselves, regardless of permission set.
	AllowSelf bool
	// SelfParam is the route param naming the target member. Defaults to
	// "member".
	SelfParam string
}

// RequirePermission gates a route on the actor holding action, via
// Engine.CanActOnUser. Denials get a 403 with the decision reason; store
// faults get a 503, never a false 403.
func RequirePermission(engine *policy.Engine, action roles.Permission, opts PermissionOptions) func(http.Handler) http.Handler {
	selfParam := opts.SelfParam
	if selfParam == "" {
		selfParam = "member"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromRequest(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, Response{Message: "missing actor identity"})
				return
			}

			targetID := chi.URLParam(r, selfParam)

			decision, err := engine.CanActOnUser(r.Context(), actor.OrgID, actor.ID, targetID, action, opts.AllowSelf)
			if err != nil {
				writeEngineError(w, err)
				return
			}
			if !decision.Allowed {
				writeDenied(w, decision)
				return
			}

			actor.Role = decision.ActorRole
			ctx := context.WithValue(r.Context(), actorContextKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireOwnerOrAdmin gates a route on the actor holding the owner or admin
// role.
func RequireOwnerOrAdmin(engine *policy.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromRequest(r)
			if !ok {
				writeJSON(w, http.StatusUnauthorized, Response{Message: "missing actor identity"})
				return
			}

			isOwnerAdmin, err := engine.IsOwnerOrAdmin(r.Context(), actor.OrgID, actor.ID)
			if err != nil {
				writeEngineError(w, err)
				return
			}
			if !isOwnerAdmin {
				writeJSON(w, http.StatusForbidden, Response{
					Message: "forbidden",
					Reason:  policy.ReasonInsufficientRole,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Infow("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
			)
		})
	}
}
