package services

import (
	"context"

	"github.com/SscSPs/idea_board_app/internal/core/domain"
)

// WorkspaceReaderSvc defines read operations for workspace data
type WorkspaceReaderSvc interface {
	// ListWorkspaces returns the caller's workspaces in creation order.
	ListWorkspaces(ctx context.Context, callerID string) ([]domain.WorkspaceSummary, error)

	// SearchWorkspaces returns the caller's workspaces whose name contains query.
	// An empty query behaves like ListWorkspaces.
	SearchWorkspaces(ctx context.Context, callerID, query string) ([]domain.WorkspaceSummary, error)
}

// WorkspaceWriterSvc defines write operations for workspace data
type WorkspaceWriterSvc interface {
	// CreateWorkspace creates a workspace owned by the caller and returns its id.
	CreateWorkspace(ctx context.Context, callerID, name string) (string, error)

	// RenameWorkspace changes the name. Only the owner may rename.
	RenameWorkspace(ctx context.Context, callerID, workspaceID, name string) error

	// DeleteWorkspace removes the workspace together with all of its ideas. Only the owner may delete.
	DeleteWorkspace(ctx context.Context, callerID, workspaceID string) error
}

// WorkspaceSvcFacade combines all workspace-related service interfaces
type WorkspaceSvcFacade interface {
	WorkspaceReaderSvc
	WorkspaceWriterSvc
}
