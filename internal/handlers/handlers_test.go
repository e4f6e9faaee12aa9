package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/crewdeck-dev/crewdeck/internal/guard"
	"github.com/crewdeck-dev/crewdeck/internal/handlers"
	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/router"
	"github.com/crewdeck-dev/crewdeck/internal/service"
	"github.com/crewdeck-dev/crewdeck/internal/store/mock"
	"github.com/crewdeck-dev/crewdeck/internal/types"
)

func newTestServer(members *mock.MemberStore, projects *mock.ProjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	memberService := service.NewMemberService(members)
	projectService := service.NewProjectService(projects, members)

	return router.NewRouter(
		guard.HeaderGuard{},
		handlers.NewMemberHandler(memberService, nil),
		handlers.NewProjectHandler(projectService),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, role string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set(types.RoleClaimHeader, role)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))

	return w, decoded
}

func TestNonAdminIsForbiddenWithoutStoreAccess(t *testing.T) {
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/members"},
		{http.MethodPost, "/api/members"},
		{http.MethodGet, "/api/members/" + primitive.NewObjectID().Hex()},
		{http.MethodPut, "/api/members/" + primitive.NewObjectID().Hex()},
		{http.MethodDelete, "/api/members/" + primitive.NewObjectID().Hex()},
		{http.MethodPost, "/api/members/" + primitive.NewObjectID().Hex() + "/avatar"},
		{http.MethodGet, "/api/projects"},
		{http.MethodPost, "/api/projects"},
		{http.MethodGet, "/api/projects/" + primitive.NewObjectID().Hex()},
		{http.MethodPut, "/api/projects/" + primitive.NewObjectID().Hex()},
		{http.MethodDelete, "/api/projects/" + primitive.NewObjectID().Hex()},
	}

	for _, role := range []string{"", "contributor", "Admin"} {
		for _, route := range routes {
			members := &mock.MemberStore{}
			projects := &mock.ProjectStore{}
			r := newTestServer(members, projects)

			w, body := doJSON(t, r, route.method, route.path, role, map[string]any{})

			assert.Equal(t, http.StatusForbidden, w.Code, "%s %s with role %q", route.method, route.path, role)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, "Access denied. Admin only.", body["error"])
			assert.Zero(t, members.Calls, "member store must not be touched")
			assert.Zero(t, projects.Calls, "project store must not be touched")
		}
	}
}

func TestRecommendationsAreUngated(t *testing.T) {
	r := newTestServer(&mock.MemberStore{}, &mock.ProjectStore{})

	w, body := doJSON(t, r, http.MethodGet, "/", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	items, ok := body["recommendations"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, items)

	first, ok := items[0].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{"id", "title", "description", "category"} {
		assert.Contains(t, first, field)
	}
}

func TestHealthCheck(t *testing.T) {
	r := newTestServer(&mock.MemberStore{}, &mock.ProjectStore{})

	w, body := doJSON(t, r, http.MethodGet, "/api/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

// nilListMemberStore mimics the Mongo driver decoding an empty cursor into a
// nil slice.
type nilListMemberStore struct {
	mock.MemberStore
}

func (s *nilListMemberStore) List(ctx context.Context) ([]models.Member, error) {
	return nil, nil
}

func TestListMembersEmptySerializesAsArray(t *testing.T) {
	gin.SetMode(gin.TestMode)

	members := &nilListMemberStore{}
	memberService := service.NewMemberService(members)
	projectService := service.NewProjectService(&mock.ProjectStore{}, members)

	r := router.NewRouter(
		guard.HeaderGuard{},
		handlers.NewMemberHandler(memberService, nil),
		handlers.NewProjectHandler(projectService),
	)

	w, body := doJSON(t, r, http.MethodGet, "/api/members", "admin", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, w.Body.String(), `"members":[]`)
}

func TestCreateMemberEnvelopeAndCredentialStripping(t *testing.T) {
	members := &mock.MemberStore{}
	r := newTestServer(members, &mock.ProjectStore{})

	w, body := doJSON(t, r, http.MethodPost, "/api/members", "admin", map[string]any{
		"name":  "Ada Lovelace",
		"email": "ada@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Member created successfully", body["message"])

	member, ok := body["member"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", member["email"])
	assert.NotContains(t, member, "password")

	// The stored hash exists but never crosses the wire.
	require.Len(t, members.Members, 1)
	assert.NotEmpty(t, members.Members[0].PasswordHash)
	assert.NotContains(t, w.Body.String(), members.Members[0].PasswordHash)
}

func TestCreateMemberDuplicateEmailIsBadRequest(t *testing.T) {
	members := &mock.MemberStore{}
	r := newTestServer(members, &mock.ProjectStore{})

	w, _ := doJSON(t, r, http.MethodPost, "/api/members", "admin", map[string]any{
		"name": "First", "email": "dup@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, body := doJSON(t, r, http.MethodPost, "/api/members", "admin", map[string]any{
		"name": "Second", "email": "dup@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Member with this email already exists", body["error"])
}

func TestGetMemberNotFound(t *testing.T) {
	r := newTestServer(&mock.MemberStore{}, &mock.ProjectStore{})

	for _, id := range []string{primitive.NewObjectID().Hex(), "not-a-hex-id"} {
		w, body := doJSON(t, r, http.MethodGet, "/api/members/"+id, "admin", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Member not found", body["error"])
	}
}

func TestUpdateMemberPartialViaHTTP(t *testing.T) {
	members := &mock.MemberStore{}
	r := newTestServer(members, &mock.ProjectStore{})

	_, body := doJSON(t, r, http.MethodPost, "/api/members", "admin", map[string]any{
		"name": "Partial", "email": "partial@example.com", "role": "admin",
	})
	created := body["member"].(map[string]any)

	w, body := doJSON(t, r, http.MethodPut, "/api/members/"+created["id"].(string), "admin", map[string]any{
		"status": "inactive",
	})

	require.Equal(t, http.StatusOK, w.Code)
	updated := body["member"].(map[string]any)
	assert.Equal(t, "Partial", updated["name"])
	assert.Equal(t, "partial@example.com", updated["email"])
	assert.Equal(t, "admin", updated["role"])
	assert.Equal(t, "inactive", updated["status"])
}

func TestDeleteMemberMessage(t *testing.T) {
	members := &mock.MemberStore{}
	r := newTestServer(members, &mock.ProjectStore{})

	_, body := doJSON(t, r, http.MethodPost, "/api/members", "admin", map[string]any{
		"name": "Gone", "email": "gone@example.com",
	})
	created := body["member"].(map[string]any)

	w, body := doJSON(t, r, http.MethodDelete, "/api/members/"+created["id"].(string), "admin", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Member deleted successfully", body["message"])
	assert.Empty(t, members.Members)
}

func TestCreateProjectMissingFields(t *testing.T) {
	projects := &mock.ProjectStore{}
	r := newTestServer(&mock.MemberStore{}, projects)

	w, body := doJSON(t, r, http.MethodPost, "/api/projects", "admin", map[string]any{
		"projectName": "No Repo",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Project name and GitHub repository are required", body["error"])
	assert.Empty(t, projects.Projects)
}

func TestCreateProjectInvalidMemberRefs(t *testing.T) {
	projects := &mock.ProjectStore{}
	r := newTestServer(&mock.MemberStore{}, projects)

	w, body := doJSON(t, r, http.MethodPost, "/api/projects", "admin", map[string]any{
		"projectName": "X",
		"githubRepo":  "org/x",
		"teamMembers": []string{primitive.NewObjectID().Hex()},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "One or more team members not found", body["error"])
	assert.Empty(t, projects.Projects)
}

func TestProjectRoundTripResolvesTeamSummaries(t *testing.T) {
	members := &mock.MemberStore{
		Members: []models.Member{{
			ID:             primitive.NewObjectID(),
			Name:           "Alpha",
			Email:          "alpha@example.com",
			GithubUsername: "alphadev",
		}},
	}
	r := newTestServer(members, &mock.ProjectStore{})

	_, body := doJSON(t, r, http.MethodPost, "/api/projects", "admin", map[string]any{
		"projectName": "Deploy Tool",
		"githubRepo":  "org/deploy-tool",
		"teamMembers": []string{members.Members[0].ID.Hex()},
	})
	created := body["project"].(map[string]any)

	w, body := doJSON(t, r, http.MethodGet, "/api/projects/"+created["id"].(string), "admin", nil)

	require.Equal(t, http.StatusOK, w.Code)
	project := body["project"].(map[string]any)

	team, ok := project["teamMembers"].([]any)
	require.True(t, ok)
	require.Len(t, team, 1)

	summary := team[0].(map[string]any)
	assert.Equal(t, "Alpha", summary["name"])
	assert.Equal(t, "alpha@example.com", summary["email"])
	assert.Equal(t, "alphadev", summary["githubUsername"])
}

func TestStoreFailureIsGenericInternalError(t *testing.T) {
	members := &mock.MemberStore{Err: assert.AnError}
	r := newTestServer(members, &mock.ProjectStore{})

	w, body := doJSON(t, r, http.MethodGet, "/api/members", "admin", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to fetch members", body["error"])
}
