package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"org-roles-service/internal/messaging/notifier"
	"org-roles-service/internal/policy"
	"org-roles-service/internal/repository"
	"org-roles-service/internal/repository/model"
	"org-roles-service/internal/roles"
	"org-roles-service/internal/utils"
)

func testRouter(t *testing.T) (http.Handler, *repository.MockRepository, *notifier.MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := repository.NewMockRepository(ctrl)
	notif := notifier.NewMockNotifier(ctrl)

	logger := zap.NewNop().Sugar()
	engine := policy.NewEngine(logger, roles.DefaultCatalog(), repo, notif)
	return NewRouter(logger, engine, repo), repo, notif
}

func expectMember(repo *repository.MockRepository, org string, id string, role string) {
	repo.EXPECT().GetMember(gomock.Any(), org, id).Return(&model.Member{
		ID:   model.MemberID{OrgID: org, MemberID: id},
		Role: role,
	}, nil).AnyTimes()
}

func doRequest(router http.Handler, method string, path string, actorID string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	if actorID != "" {
		req.Header.Set(actorIDHeader, actorID)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	var resp Response
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestRouter_MissingActorIdentity(t *testing.T) {
	router, _, _ := testRouter(t)

	rec := doRequest(router, http.MethodGet, "/orgs/o1/members", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListMembers(t *testing.T) {
	t.Run("allowed for admin", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		expectMember(repo, "o1", "admin1", "admin")

		joined := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		repo.EXPECT().ListMembers(gomock.Any(), "o1").Return([]*model.Member{
			{
				ID:          model.MemberID{OrgID: "o1", MemberID: "fin1"},
				Role:        "finance",
				DisplayName: utils.PointerOf("Sam"),
				JoinedAt:    joined,
				UpdatedAt:   joined,
			},
		}, nil)

		rec := doRequest(router, http.MethodGet, "/orgs/o1/members", "admin1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var members []memberResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&members))
		assert.Len(t, members, 1)
		assert.Equal(t, "fin1", members[0].MemberID)
		assert.Equal(t, "finance", members[0].Role)
	})

	t.Run("denied for finance", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		expectMember(repo, "o1", "fin1", "finance")

		rec := doRequest(router, http.MethodGet, "/orgs/o1/members", "fin1", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, policy.ReasonInsufficientPermissionFor(roles.PermManageUsers), decodeResponse(t, rec).Reason)
	})

	t.Run("store unavailable is 503 not 403", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		repo.EXPECT().GetMember(gomock.Any(), "o1", "admin1").Return(nil, errors.New("no reachable servers")).AnyTimes()

		rec := doRequest(router, http.MethodGet, "/orgs/o1/members", "admin1", nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestGetRoleInfo(t *testing.T) {
	t.Run("member reads own role regardless of permissions", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		expectMember(repo, "o1", "mk1", "marcom")

		rec := doRequest(router, http.MethodGet, "/orgs/o1/members/mk1/role", "mk1", nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var info policy.RoleInfo
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&info))
		assert.Equal(t, roles.RoleMarcom, info.Role)
		assert.Equal(t, 60, info.Hierarchy)
		assert.False(t, info.IsOwnerOrAdmin)
	})

	t.Run("marcom cannot read another member's role", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		expectMember(repo, "o1", "mk1", "marcom")

		rec := doRequest(router, http.MethodGet, "/orgs/o1/members/fin1/role", "mk1", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing membership is 404", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		expectMember(repo, "o1", "admin1", "admin")
		repo.EXPECT().GetMember(gomock.Any(), "o1", "ghost").Return(nil, repository.MemberNotFoundError).AnyTimes()

		rec := doRequest(router, http.MethodGet, "/orgs/o1/members/ghost/role", "admin1", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestChangeRole(t *testing.T) {
	t.Run("admin reassigns department role", func(t *testing.T) {
		router, repo, notif := testRouter(t)
		expectMember(repo, "o1", "admin1", "admin")
		expectMember(repo, "o1", "fin1", "finance")

		repo.EXPECT().SetMemberRoleWithMetadata(gomock.Any(), "o1", "fin1", roles.RoleMarcom, model.Metadata{}).Return(nil)
		notif.EXPECT().MemberRoleUpdate(gomock.Any(), "o1", "fin1", roles.RoleMarcom).Return(nil)

		rec := doRequest(router, http.MethodPost, "/orgs/o1/members/fin1/role", "admin1", changeRoleRequest{Role: "marcom"})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp changeRoleResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, roles.RoleMarcom, resp.Role)
		assert.Equal(t, roles.RoleFinance, resp.PreviousRole)
	})

	t.Run("admin cannot touch an owner", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		expectMember(repo, "o1", "admin1", "admin")
		expectMember(repo, "o1", "owner1", "owner")

		rec := doRequest(router, http.MethodPost, "/orgs/o1/members/owner1/role", "admin1", changeRoleRequest{Role: "admin"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, policy.ReasonAdminCannotModifyOwner, decodeResponse(t, rec).Reason)
	})

	t.Run("unknown role is 400", func(t *testing.T) {
		router, _, _ := testRouter(t)

		rec := doRequest(router, http.MethodPost, "/orgs/o1/members/fin1/role", "admin1", changeRoleRequest{Role: "superadmin"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPreviewRoleChange(t *testing.T) {
	t.Run("finance actor previews a denial", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		expectMember(repo, "o1", "fin1", "finance")

		rec := doRequest(router, http.MethodPost, "/orgs/o1/members/mk1/role/preview", "fin1",
			previewRoleRequest{FromRole: "marcom", Role: "finance"})
		assert.Equal(t, http.StatusOK, rec.Code)

		var decision policy.Decision
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&decision))
		assert.False(t, decision.Allowed)
		assert.Equal(t, policy.ReasonInsufficientPermissions, decision.Reason)
	})

	t.Run("owner previews an invite assignment", func(t *testing.T) {
		router, repo, _ := testRouter(t)
		expectMember(repo, "o1", "owner1", "owner")

		rec := doRequest(router, http.MethodPost, "/orgs/o1/members/new1/role/preview", "owner1",
			previewRoleRequest{Role: "admin"})
		assert.Equal(t, http.StatusOK, rec.Code)

		var decision policy.Decision
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&decision))
		assert.True(t, decision.Allowed)
	})
}

func TestRemoveMember(t *testing.T) {
	router, repo, notif := testRouter(t)
	expectMember(repo, "o1", "admin1", "admin")

	repo.EXPECT().RemoveMember(gomock.Any(), "o1", "mk1").Return(nil)
	notif.EXPECT().MemberRemoved(gomock.Any(), "o1", "mk1").Return(nil)

	rec := doRequest(router, http.MethodDelete, "/orgs/o1/members/mk1", "admin1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
