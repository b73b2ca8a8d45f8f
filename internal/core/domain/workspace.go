package domain

import "time"

// Workspace is a private container of ideas owned by exactly one user.
type Workspace struct {
	WorkspaceID string    `json:"workspaceID"` // Primary Key (UUID)
	Name        string    `json:"name"`        // User-defined, never empty
	OwnerID     string    `json:"ownerID"`     // Fixed at creation, ownership never transfers
	CreatedAt   time.Time `json:"createdAt"`
}

// WorkspaceSummary is the projection returned when listing a user's workspaces.
type WorkspaceSummary struct {
	WorkspaceID string `json:"workspaceID"`
	Name        string `json:"name"`
}

// Summary projects the workspace down to its listing fields.
func (w Workspace) Summary() WorkspaceSummary {
	return WorkspaceSummary{WorkspaceID: w.WorkspaceID, Name: w.Name}
}
