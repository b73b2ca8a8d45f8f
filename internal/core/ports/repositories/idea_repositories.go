package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/idea_board_app/internal/core/domain"
)

// IdeaReader defines read operations for idea data
type IdeaReader interface {
	// FindIdeaByID fetches an idea; a missing idea is a Missing lookup, not an error.
	FindIdeaByID(ctx context.Context, ideaID string) (domain.Lookup[domain.Idea], error)

	// ListIdeasByWorkspace returns the workspace's ideas in insertion order.
	ListIdeasByWorkspace(ctx context.Context, workspaceID string) ([]domain.Idea, error)

	// ListIdeasByAuthor returns every idea written by authorID in insertion order.
	ListIdeasByAuthor(ctx context.Context, authorID string) ([]domain.Idea, error)
}

// IdeaWriter defines write operations for idea data
type IdeaWriter interface {
	// SaveIdea persists a new idea.
	SaveIdea(ctx context.Context, idea domain.Idea) error

	// UpdateIdeaContent overwrites the content (last writer wins) and returns the stored
	// updatedAt, which is at least `at` and strictly after the previous value.
	// Returns apperrors.ErrNotFound if the idea no longer exists.
	UpdateIdeaContent(ctx context.Context, ideaID, contentHTML string, at time.Time) (time.Time, error)

	// DeleteIdea removes the idea. Deleting a missing idea succeeds.
	DeleteIdea(ctx context.Context, ideaID string) error
}

// IdeaRepositoryFacade combines all idea-related repository interfaces
type IdeaRepositoryFacade interface {
	IdeaReader
	IdeaWriter
}
