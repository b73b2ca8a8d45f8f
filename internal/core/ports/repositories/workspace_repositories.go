package repositories

import (
	"context"

	"github.com/SscSPs/idea_board_app/internal/core/domain"
)

// WorkspaceReader defines read operations for workspace data
type WorkspaceReader interface {
	// FindWorkspaceByID fetches a workspace. A missing workspace is reported through the
	// Lookup, never as an error; errors are reserved for storage failures.
	FindWorkspaceByID(ctx context.Context, workspaceID string) (domain.Lookup[domain.Workspace], error)

	// ListWorkspacesByOwner returns the owner's workspaces in ascending creation order.
	ListWorkspacesByOwner(ctx context.Context, ownerID string) ([]domain.Workspace, error)

	// SearchWorkspacesByOwner returns the owner's workspaces whose name contains query
	// (case-insensitive), in ascending creation order.
	SearchWorkspacesByOwner(ctx context.Context, ownerID, query string) ([]domain.Workspace, error)
}

// WorkspaceWriter defines write operations for workspace data
type WorkspaceWriter interface {
	// SaveWorkspace persists a new workspace.
	SaveWorkspace(ctx context.Context, workspace domain.Workspace) error

	// RenameWorkspace replaces the name. Returns apperrors.ErrNotFound if the id does not resolve.
	RenameWorkspace(ctx context.Context, workspaceID, name string) error

	// DeleteWorkspaceCascade removes every idea of the workspace and then the workspace itself.
	// Deleting a workspace that is already gone is not an error.
	DeleteWorkspaceCascade(ctx context.Context, workspaceID string) error
}

// WorkspaceRepositoryFacade combines all workspace-related repository interfaces
type WorkspaceRepositoryFacade interface {
	WorkspaceReader
	WorkspaceWriter
}
