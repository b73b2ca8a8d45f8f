package services

import (
	"context"

	"github.com/SscSPs/idea_board_app/internal/core/domain"
)

// IdeaReaderSvc defines read operations for idea data
type IdeaReaderSvc interface {
	// ListIdeas returns the workspace's ideas in insertion order. Requires read access to the workspace.
	ListIdeas(ctx context.Context, callerID, workspaceID string) ([]domain.Idea, error)

	// GetIdea fetches a single idea. The caller must own the parent workspace or be the author.
	GetIdea(ctx context.Context, callerID, ideaID string) (*domain.Idea, error)

	// ListMyIdeas returns the ideas the caller authored whose workspace still exists.
	ListMyIdeas(ctx context.Context, callerID string) ([]domain.Idea, error)
}

// IdeaWriterSvc defines write operations for idea data
type IdeaWriterSvc interface {
	// AddIdea appends an idea to the workspace and returns its id.
	AddIdea(ctx context.Context, callerID, workspaceID, contentHTML string) (string, error)

	// UpdateIdea overwrites the content. Last writer wins; the author or workspace owner may update.
	UpdateIdea(ctx context.Context, callerID, ideaID, contentHTML string) error

	// DeleteIdea removes the idea. Deleting a missing idea is a no-op.
	DeleteIdea(ctx context.Context, callerID, ideaID string) error
}

// IdeaSvcFacade combines all idea-related service interfaces
type IdeaSvcFacade interface {
	IdeaReaderSvc
	IdeaWriterSvc
}
