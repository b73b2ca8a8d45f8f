package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/idea_board_app/internal/core/ports/services"
	"github.com/SscSPs/idea_board_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// ideaHandler handles HTTP requests addressing a single idea.
type ideaHandler struct {
	ideaService portssvc.IdeaSvcFacade
	identity    portssvc.IdentityResolver
}

func registerIdeaRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &ideaHandler{ideaService: services.Idea, identity: services.Identity}

	ideas := rg.Group("/ideas")
	{
		ideas.GET("", h.listMyIdeas)
		ideas.GET("/:idea_id", h.getIdea)
		ideas.PUT("/:idea_id", h.updateIdea)
		ideas.DELETE("/:idea_id", h.deleteIdea)
	}
}

// listMyIdeas godoc
// @Summary List ideas written by the caller
// @Tags ideas
// @Produce  json
// @Success 200 {object} dto.ListIdeasResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /ideas [get]
func (h *ideaHandler) listMyIdeas(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "List my ideas")
		return
	}

	ideas, err := h.ideaService.ListMyIdeas(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err, "List my ideas")
		return
	}
	c.JSON(http.StatusOK, dto.ToListIdeasResponse(ideas))
}

// getIdea godoc
// @Summary Get an idea
// @Tags ideas
// @Produce  json
// @Param   idea_id path string true "Idea ID"
// @Success 200 {object} dto.IdeaResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ideas/{idea_id} [get]
func (h *ideaHandler) getIdea(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "Get idea")
		return
	}

	idea, err := h.ideaService.GetIdea(c.Request.Context(), callerID, c.Param("idea_id"))
	if err != nil {
		respondError(c, err, "Get idea")
		return
	}
	c.JSON(http.StatusOK, dto.ToIdeaResponse(idea))
}

// updateIdea godoc
// @Summary Replace the content of an idea
// @Description Last writer wins; the author or the workspace owner may edit.
// @Tags ideas
// @Accept  json
// @Param   idea_id path string true "Idea ID"
// @Param   idea body dto.IdeaContentRequest true "Idea content"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /ideas/{idea_id} [put]
func (h *ideaHandler) updateIdea(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "Update idea")
		return
	}

	var req dto.IdeaContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.ideaService.UpdateIdea(c.Request.Context(), callerID, c.Param("idea_id"), *req.ContentHTML); err != nil {
		respondError(c, err, "Update idea")
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteIdea godoc
// @Summary Delete an idea
// @Description Idempotent: deleting a missing idea succeeds.
// @Tags ideas
// @Param   idea_id path string true "Idea ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /ideas/{idea_id} [delete]
func (h *ideaHandler) deleteIdea(c *gin.Context) {
	callerID, err := h.identity.ResolveCallerID(c.Request.Context())
	if err != nil {
		respondError(c, err, "Delete idea")
		return
	}

	if err := h.ideaService.DeleteIdea(c.Request.Context(), callerID, c.Param("idea_id")); err != nil {
		respondError(c, err, "Delete idea")
		return
	}
	c.Status(http.StatusNoContent)
}
