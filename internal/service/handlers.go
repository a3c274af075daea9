package service

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"org-roles-service/internal/policy"
	"org-roles-service/internal/repository"
	"org-roles-service/internal/repository/model"
	"org-roles-service/internal/roles"
)

type memberHandler struct {
	logger *zap.SugaredLogger
	engine *policy.Engine
	repo   repository.Repository
}

type memberResponse struct {
	MemberID    string    `json:"memberId"`
	Role        string    `json:"role"`
	DisplayName *string   `json:"displayName,omitempty"`
	Email       *string   `json:"email,omitempty"`
	JoinedAt    time.Time `json:"joinedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (h *memberHandler) listMembers(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org")

	members, err := h.repo.ListMembers(r.Context(), orgID)
	if err != nil {
		h.logger.Errorw("error listing members", "org", orgID, "error", err)
		writeJSON(w, http.StatusServiceUnavailable, Response{Message: "membership store unavailable"})
		return
	}

	resp := make([]memberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, memberResponse{
			MemberID:    m.ID.MemberID,
			Role:        m.Role,
			DisplayName: m.DisplayName,
			Email:       m.Email,
			JoinedAt:    m.JoinedAt,
			UpdatedAt:   m.UpdatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *memberHandler) getRoleInfo(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org")
	memberID := chi.URLParam(r, "member")

	info, err := h.engine.GetRoleInfo(r.Context(), orgID, memberID)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if info == nil {
		writeJSON(w, http.StatusNotFound, Response{Message: "membership not found"})
		return
	}

	writeJSON(w, http.StatusOK, info)
}

type changeRoleRequest struct {
	Role        string  `json:"role"`
	DisplayName *string `json:"displayName,omitempty"`
	Email       *string `json:"email,omitempty"`
}

type changeRoleResponse struct {
	OrgID        string     `json:"orgId"`
	MemberID     string     `json:"memberId"`
	Role         roles.Role `json:"role"`
	PreviousRole roles.Role `json:"previousRole,omitempty"`
}

func (h *memberHandler) changeRole(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org")
	memberID := chi.URLParam(r, "member")

	actor, ok := ActorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "missing actor identity"})
		return
	}

	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid request body"})
		return
	}

	newRole, ok := roles.Parse(req.Role)
	if !ok {
		writeJSON(w, http.StatusBadRequest, Response{Message: "unknown role"})
		return
	}

	decision, err := h.engine.CanChangeRole(r.Context(), orgID, actor.ID, memberID, newRole)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	if !decision.Allowed {
		writeDenied(w, decision)
		return
	}

	err = h.engine.SetRoleWithMetadata(r.Context(), orgID, memberID, newRole, model.Metadata{
		DisplayName: req.DisplayName,
		Email:       req.Email,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, changeRoleResponse{
		OrgID:        orgID,
		MemberID:     memberID,
		Role:         newRole,
		PreviousRole: decision.CurrentRole,
	})
}

type previewRoleRequest struct {
	// FromRole is empty for a brand-new membership (invite acceptance).
	FromRole string `json:"fromRole,omitempty"`
	Role     string `json:"role"`
}

// previewRoleChange runs the pure transition validator against the actor's
// live role. No store mutation; the UI uses this to grey out illegal role
// options before submitting.
func (h *memberHandler) previewRoleChange(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org")

	actor, ok := ActorFromRequest(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, Response{Message: "missing actor identity"})
		return
	}

	var req previewRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, Response{Message: "invalid request body"})
		return
	}

	toRole, ok := roles.Parse(req.Role)
	if !ok {
		writeJSON(w, http.StatusBadRequest, Response{Message: "unknown role"})
		return
	}

	fromRole := roles.RoleNone
	if req.FromRole != "" {
		fromRole, ok = roles.Parse(req.FromRole)
		if !ok {
			writeJSON(w, http.StatusBadRequest, Response{Message: "unknown fromRole"})
			return
		}
	}

	actorRole, _, err := h.engine.GetRole(r.Context(), orgID, actor.ID)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, policy.ValidateRoleTransition(fromRole, toRole, actorRole))
}

func (h *memberHandler) removeMember(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "org")
	memberID := chi.URLParam(r, "member")

	if err := h.engine.RemoveMembership(r.Context(), orgID, memberID); err != nil {
		writeEngineError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
