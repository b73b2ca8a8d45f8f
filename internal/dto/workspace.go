package dto

import "github.com/SscSPs/idea_board_app/internal/core/domain"

// --- Workspace DTOs ---

// CreateWorkspaceRequest defines data for creating a new workspace.
type CreateWorkspaceRequest struct {
	Name string `json:"name" binding:"required,notblank,max=200"`
}

// RenameWorkspaceRequest defines data for renaming a workspace.
type RenameWorkspaceRequest struct {
	Name string `json:"name" binding:"required,notblank,max=200"`
}

// CreateWorkspaceResponse returns the id of the new workspace.
type CreateWorkspaceResponse struct {
	WorkspaceID string `json:"workspaceID"`
}

// WorkspaceSummaryResponse is one entry of a workspace listing.
type WorkspaceSummaryResponse struct {
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
}

// ListWorkspacesResponse wraps a list of workspaces.
type ListWorkspacesResponse struct {
	Workspaces []WorkspaceSummaryResponse `json:"workspaces"`
}

// ToListWorkspacesResponse converts workspace summaries to DTO.
func ToListWorkspacesResponse(ws []domain.WorkspaceSummary) ListWorkspacesResponse {
	list := make([]WorkspaceSummaryResponse, len(ws))
	for i, w := range ws {
		list[i] = WorkspaceSummaryResponse{WorkspaceID: w.WorkspaceID, Name: w.Name}
	}
	return ListWorkspacesResponse{Workspaces: list}
}
