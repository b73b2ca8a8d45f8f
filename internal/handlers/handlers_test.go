package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/idea_board_app/internal/core/domain"
	portssvc "github.com/SscSPs/idea_board_app/internal/core/ports/services"
	"github.com/SscSPs/idea_board_app/internal/core/services"
	"github.com/SscSPs/idea_board_app/internal/dto"
	"github.com/SscSPs/idea_board_app/internal/handlers"
	"github.com/SscSPs/idea_board_app/internal/middleware"
	"github.com/SscSPs/idea_board_app/internal/platform/config"
	"github.com/SscSPs/idea_board_app/internal/repositories/memory"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "handler-test-secret"
	testIssuer = "idea-board-test"

	userU = "user-u"
	userV = "user-v"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:    testSecret,
		JWTIssuer:    testIssuer,
		IsProduction: true,
	}
}

func bearer(t *testing.T, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    testIssuer,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + token
}

// --- Suite against the in-process store ---

type HandlersTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	repos := memory.NewRepositoryProvider(memory.NewStore())
	container := services.NewContainer(repos, middleware.NewContextIdentityResolver())

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, testConfig(), container, nil)
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) do(method, path, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", bearer(suite.T(), userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decode(w *httptest.ResponseRecorder, out any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func (suite *HandlersTestSuite) errorKind(w *httptest.ResponseRecorder) string {
	var resp handlers.ErrorResponse
	suite.decode(w, &resp)
	return resp.Kind
}

func (suite *HandlersTestSuite) createWorkspace(userID, name string) string {
	w := suite.do(http.MethodPost, "/api/v1/workspaces", userID, dto.CreateWorkspaceRequest{Name: name})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CreateWorkspaceResponse
	suite.decode(w, &resp)
	suite.Require().NotEmpty(resp.WorkspaceID)
	return resp.WorkspaceID
}

func (suite *HandlersTestSuite) addIdea(userID, workspaceID, content string) string {
	w := suite.do(http.MethodPost, "/api/v1/workspaces/"+workspaceID+"/ideas", userID, map[string]string{"contentHTML": content})
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.CreateIdeaResponse
	suite.decode(w, &resp)
	return resp.IdeaID
}

func (suite *HandlersTestSuite) getIdea(userID, ideaID string) dto.IdeaResponse {
	w := suite.do(http.MethodGet, "/api/v1/ideas/"+ideaID, userID, nil)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.IdeaResponse
	suite.decode(w, &resp)
	return resp
}

func (suite *HandlersTestSuite) TestHealthIsPublic() {
	w := suite.do(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestMissingTokenIsUnauthorized() {
	w := suite.do(http.MethodGet, "/api/v1/workspaces", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestLaunchPlanOverHTTP() {
	w1 := suite.createWorkspace(userU, "Launch Plan")
	i1 := suite.addIdea(userU, w1, "<p>kickoff</p>")
	t1 := suite.getIdea(userU, i1).UpdatedAt

	w := suite.do(http.MethodDelete, "/api/v1/ideas/"+i1, userV, nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("forbidden", suite.errorKind(w))

	unchanged := suite.getIdea(userU, i1)
	suite.Equal("<p>kickoff</p>", unchanged.ContentHTML)
	suite.True(unchanged.UpdatedAt.Equal(t1))

	w = suite.do(http.MethodPut, "/api/v1/ideas/"+i1, userU, map[string]string{"contentHTML": "<p>kickoff v2</p>"})
	suite.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())
	updated := suite.getIdea(userU, i1)
	suite.Equal("<p>kickoff v2</p>", updated.ContentHTML)
	suite.True(updated.UpdatedAt.After(t1))

	w = suite.do(http.MethodDelete, "/api/v1/workspaces/"+w1, userU, nil)
	suite.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/workspaces/"+w1+"/ideas", userU, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("not_found", suite.errorKind(w))

	w = suite.do(http.MethodGet, "/api/v1/ideas/"+i1, userU, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestListAndSearchWorkspaces() {
	first := suite.createWorkspace(userU, "Roadmap")
	second := suite.createWorkspace(userU, "Retro notes")
	suite.createWorkspace(userV, "Roadmap of V")

	w := suite.do(http.MethodGet, "/api/v1/workspaces", userU, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var all dto.ListWorkspacesResponse
	suite.decode(w, &all)
	suite.Require().Len(all.Workspaces, 2)
	suite.Equal(first, all.Workspaces[0].WorkspaceID)
	suite.Equal(second, all.Workspaces[1].WorkspaceID)

	w = suite.do(http.MethodGet, "/api/v1/workspaces?q=RETRO", userU, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var found dto.ListWorkspacesResponse
	suite.decode(w, &found)
	suite.Require().Len(found.Workspaces, 1)
	suite.Equal("Retro notes", found.Workspaces[0].Name)
}

func (suite *HandlersTestSuite) TestCreateWorkspaceRejectsBlankName() {
	for _, body := range []any{
		map[string]string{},
		dto.CreateWorkspaceRequest{Name: "   "},
	} {
		w := suite.do(http.MethodPost, "/api/v1/workspaces", userU, body)
		suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		suite.Equal("invalid_argument", suite.errorKind(w))
	}
}

func (suite *HandlersTestSuite) TestRenameWorkspace() {
	ws := suite.createWorkspace(userU, "Draft")

	w := suite.do(http.MethodPut, "/api/v1/workspaces/"+ws, userV, dto.RenameWorkspaceRequest{Name: "Hijacked"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/workspaces/does-not-exist", userU, dto.RenameWorkspaceRequest{Name: "Anything"})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodPut, "/api/v1/workspaces/"+ws, userU, dto.RenameWorkspaceRequest{Name: "Final"})
	suite.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/workspaces", userU, nil)
	var list dto.ListWorkspacesResponse
	suite.decode(w, &list)
	suite.Require().Len(list.Workspaces, 1)
	suite.Equal("Final", list.Workspaces[0].Name)
}

func (suite *HandlersTestSuite) TestAddIdeaRequiresContentField() {
	ws := suite.createWorkspace(userU, "Board")

	w := suite.do(http.MethodPost, "/api/v1/workspaces/"+ws+"/ideas", userU, map[string]string{})
	suite.Equal(http.StatusBadRequest, w.Code)

	// An empty body is still a valid idea.
	id := suite.addIdea(userU, ws, "")
	suite.Equal("", suite.getIdea(userU, id).ContentHTML)
}

func (suite *HandlersTestSuite) TestForeignWorkspaceIsForbidden() {
	ws := suite.createWorkspace(userU, "Private")
	suite.addIdea(userU, ws, "<p>secret</p>")

	w := suite.do(http.MethodGet, "/api/v1/workspaces/"+ws+"/ideas", userV, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/workspaces/"+ws+"/ideas", userV, map[string]string{"contentHTML": "<p>x</p>"})
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do(http.MethodDelete, "/api/v1/workspaces/"+ws, userV, nil)
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteMissingIdeaIsIdempotent() {
	w := suite.do(http.MethodDelete, "/api/v1/ideas/never-existed", userU, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	ws := suite.createWorkspace(userU, "Board")
	id := suite.addIdea(userU, ws, "<p>x</p>")
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/ideas/"+id, userU, nil).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/ideas/"+id, userU, nil).Code)
}

func (suite *HandlersTestSuite) TestUpdateMissingIdeaIsNotFound() {
	w := suite.do(http.MethodPut, "/api/v1/ideas/never-existed", userU, map[string]string{"contentHTML": "<p>x</p>"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestListMyIdeas() {
	ws := suite.createWorkspace(userU, "Mine")
	id := suite.addIdea(userU, ws, "<p>mine</p>")

	w := suite.do(http.MethodGet, "/api/v1/ideas", userU, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var mine dto.ListIdeasResponse
	suite.decode(w, &mine)
	suite.Require().Len(mine.Ideas, 1)
	suite.Equal(id, mine.Ideas[0].IdeaID)

	w = suite.do(http.MethodGet, "/api/v1/ideas", userV, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var none dto.ListIdeasResponse
	suite.decode(w, &none)
	suite.Empty(none.Ideas)
}

// --- Error mapping with a mocked service ---

type MockIdeaService struct {
	mock.Mock
}

func (m *MockIdeaService) ListIdeas(ctx context.Context, callerID, workspaceID string) ([]domain.Idea, error) {
	args := m.Called(ctx, callerID, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Idea), args.Error(1)
}

func (m *MockIdeaService) GetIdea(ctx context.Context, callerID, ideaID string) (*domain.Idea, error) {
	args := m.Called(ctx, callerID, ideaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Idea), args.Error(1)
}

func (m *MockIdeaService) ListMyIdeas(ctx context.Context, callerID string) ([]domain.Idea, error) {
	args := m.Called(ctx, callerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Idea), args.Error(1)
}

func (m *MockIdeaService) AddIdea(ctx context.Context, callerID, workspaceID, contentHTML string) (string, error) {
	args := m.Called(ctx, callerID, workspaceID, contentHTML)
	return args.String(0), args.Error(1)
}

func (m *MockIdeaService) UpdateIdea(ctx context.Context, callerID, ideaID, contentHTML string) error {
	args := m.Called(ctx, callerID, ideaID, contentHTML)
	return args.Error(0)
}

func (m *MockIdeaService) DeleteIdea(ctx context.Context, callerID, ideaID string) error {
	args := m.Called(ctx, callerID, ideaID)
	return args.Error(0)
}

func TestStoreFailureIsInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ideaSvc := new(MockIdeaService)
	ideaSvc.On("GetIdea", mock.Anything, userU, "i-1").Return(nil, errors.New("connection reset"))

	container := &portssvc.ServiceContainer{
		Idea:     ideaSvc,
		Identity: middleware.NewContextIdentityResolver(),
	}
	r := gin.New()
	handlers.RegisterRoutes(r, testConfig(), container, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ideas/i-1", nil)
	req.Header.Set("Authorization", bearer(t, userU))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal", resp.Kind)
	assert.NotContains(t, resp.Error, "connection reset")
	ideaSvc.AssertExpectations(t)
}
