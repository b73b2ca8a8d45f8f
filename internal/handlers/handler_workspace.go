package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/idea_board_app/internal/core/ports/services"
	"github.com/SscSPs/idea_board_app/internal/dto"
	"github.com/SscSPs/idea_board_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workspaceHandler handles HTTP requests related to workspaces.
type workspaceHandler struct {
	workspaceService portssvc.WorkspaceSvcFacade
	ideaService      portssvc.IdeaSvcFacade
	identity         portssvc.IdentityResolver
}

// newWorkspaceHandler creates a new workspaceHandler.
func newWorkspaceHandler(ws portssvc.WorkspaceSvcFacade, is portssvc.IdeaSvcFacade, identity portssvc.IdentityResolver) *workspaceHandler {
	return &workspaceHandler{
		workspaceService: ws,
		ideaService:      is,
		identity:         identity,
	}
}

// registerWorkspaceRoutes registers workspace routes and the ideas nested under a workspace.
func registerWorkspaceRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newWorkspaceHandler(services.Workspace, services.Idea, services.Identity)

	workspaces := rg.Group("/workspaces")
	{
		workspaces.GET("", h.listWorkspaces)
		workspaces.POST("", h.createWorkspace)
		workspaces.PUT("/:workspace_id", h.renameWorkspace)
		workspaces.DELETE("/:workspace_id", h.deleteWorkspace)

		workspaces.GET("/:workspace_id/ideas", h.listIdeas)
		workspaces.POST("/:workspace_id/ideas", h.addIdea)
	}
}

// listWorkspaces godoc
// @Summary List workspaces for current user
// @Description Lists the caller's workspaces in creation order, optionally filtered by name.
// @Tags workspaces
// @Produce  json
// @Param   q query string false "Case-insensitive name filter"
// @Success 200 {object} dto.ListWorkspacesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces [get]
func (h *workspaceHandler) listWorkspaces(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "List workspaces")
		return
	}

	workspaces, err := h.workspaceService.SearchWorkspaces(c.Request.Context(), callerID, c.Query("q"))
	if err != nil {
		respondError(c, err, "List workspaces")
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorkspacesResponse(workspaces))
}

// createWorkspace godoc
// @Summary Create a new workspace
// @Description Creates a workspace owned by the caller.
// @Tags workspaces
// @Accept  json
// @Produce  json
// @Param   workspace body dto.CreateWorkspaceRequest true "Workspace details"
// @Success 201 {object} dto.CreateWorkspaceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces [post]
func (h *workspaceHandler) createWorkspace(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "Create workspace")
		return
	}

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	workspaceID, err := h.workspaceService.CreateWorkspace(c.Request.Context(), callerID, req.Name)
	if err != nil {
		respondError(c, err, "Create workspace")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Workspace created", slog.String("workspace_id", workspaceID))
	c.JSON(http.StatusCreated, dto.CreateWorkspaceResponse{WorkspaceID: workspaceID})
}

// renameWorkspace godoc
// @Summary Rename a workspace
// @Tags workspaces
// @Accept  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   workspace body dto.RenameWorkspaceRequest true "New name"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [put]
func (h *workspaceHandler) renameWorkspace(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "Rename workspace")
		return
	}

	var req dto.RenameWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.workspaceService.RenameWorkspace(c.Request.Context(), callerID, c.Param("workspace_id"), req.Name); err != nil {
		respondError(c, err, "Rename workspace")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteWorkspace godoc
// @Summary Delete a workspace
// @Description Deletes the workspace and every idea in it.
// @Tags workspaces
// @Param   workspace_id path string true "Workspace ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id} [delete]
func (h *workspaceHandler) deleteWorkspace(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "Delete workspace")
		return
	}

	if err := h.workspaceService.DeleteWorkspace(c.Request.Context(), callerID, c.Param("workspace_id")); err != nil {
		respondError(c, err, "Delete workspace")
		return
	}
	c.Status(http.StatusNoContent)
}

// listIdeas godoc
// @Summary List ideas of a workspace
// @Tags ideas
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Success 200 {object} dto.ListIdeasResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/ideas [get]
func (h *workspaceHandler) listIdeas(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "List ideas")
		return
	}

	ideas, err := h.ideaService.ListIdeas(c.Request.Context(), callerID, c.Param("workspace_id"))
	if err != nil {
		respondError(c, err, "List ideas")
		return
	}
	c.JSON(http.StatusOK, dto.ToListIdeasResponse(ideas))
}

// addIdea godoc
// @Summary Add an idea to a workspace
// @Tags ideas
// @Accept  json
// @Produce  json
// @Param   workspace_id path string true "Workspace ID"
// @Param   idea body dto.IdeaContentRequest true "Idea content"
// @Success 201 {object} dto.CreateIdeaResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workspaces/{workspace_id}/ideas [post]
func (h *workspaceHandler) addIdea(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "Add idea")
		return
	}

	var req dto.IdeaContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ideaID, err := h.ideaService.AddIdea(c.Request.Context(), callerID, c.Param("workspace_id"), *req.ContentHTML)
	if err != nil {
		respondError(c, err, "Add idea")
		return
	}
	c.JSON(http.StatusCreated, dto.CreateIdeaResponse{IdeaID: ideaID})
}
