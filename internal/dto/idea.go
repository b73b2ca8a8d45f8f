package dto

import (
	"time"

	"github.com/SscSPs/idea_board_app/internal/core/domain"
)

// --- Idea DTOs ---

// IdeaContentRequest carries the rich-text body for adding or updating an idea.
// The body may be empty but must be present.
type IdeaContentRequest struct {
	ContentHTML *string `json:"contentHTML" binding:"required"`
}

// CreateIdeaResponse returns the id of the new idea.
type CreateIdeaResponse struct {
	IdeaID string `json:"ideaID"`
}

// IdeaResponse defines data returned for an idea.
type IdeaResponse struct {
	IdeaID      string    `json:"ideaID"`
	WorkspaceID string    `json:"workspaceID"`
	AuthorID    string    `json:"authorID"`
	ContentHTML string    `json:"contentHTML"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToIdeaResponse converts domain.Idea to DTO.
func ToIdeaResponse(i *domain.Idea) IdeaResponse {
	return IdeaResponse{
		IdeaID:      i.IdeaID,
		WorkspaceID: i.WorkspaceID,
		AuthorID:    i.AuthorID,
		ContentHTML: i.ContentHTML,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

// ListIdeasResponse wraps a list of ideas.
type ListIdeasResponse struct {
	Ideas []IdeaResponse `json:"ideas"`
}

// ToListIdeasResponse converts a slice of domain.Idea to DTO.
func ToListIdeasResponse(ideas []domain.Idea) ListIdeasResponse {
	list := make([]IdeaResponse, len(ideas))
	for i := range ideas {
		list[i] = ToIdeaResponse(&ideas[i])
	}
	return ListIdeasResponse{Ideas: list}
}
