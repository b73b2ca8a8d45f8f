package domain

import "time"

// Idea is a single rich-text contribution scoped to one workspace.
// ContentHTML is stored as given; nothing in the core inspects it.
type Idea struct {
	IdeaID      string    `json:"ideaID"`      // Primary Key (UUID)
	WorkspaceID string    `json:"workspaceID"` // FK -> workspaces.workspace_id, immutable
	AuthorID    string    `json:"authorID"`    // Creating user, immutable
	ContentHTML string    `json:"contentHTML"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"` // Strictly increases with every successful write
}
