// Package authz holds the pure access decisions for workspaces and ideas.
// The functions never touch a store; callers fetch the entities and translate
// a false result into apperrors.ErrForbidden (or ErrNotFound for missing targets).
package authz

import "github.com/SscSPs/idea_board_app/internal/core/domain"

// CanReadWorkspace reports whether userID may read the workspace and its ideas.
func CanReadWorkspace(userID string, ws domain.Lookup[domain.Workspace]) bool {
	return isOwner(userID, ws)
}

// CanMutateWorkspace reports whether userID may rename, delete or add ideas to the workspace.
func CanMutateWorkspace(userID string, ws domain.Lookup[domain.Workspace]) bool {
	return isOwner(userID, ws)
}

// CanMutateIdea reports whether userID may edit or delete the idea.
// Both the idea's author and the parent workspace's owner qualify; a missing
// idea or parent workspace denies.
func CanMutateIdea(userID string, idea domain.Lookup[domain.Idea], ws domain.Lookup[domain.Workspace]) bool {
	i, ok := idea.Get()
	if !ok || userID == "" {
		return false
	}
	w, ok := ws.Get()
	if !ok || w.WorkspaceID != i.WorkspaceID {
		return false
	}
	return userID == i.AuthorID || userID == w.OwnerID
}

func isOwner(userID string, ws domain.Lookup[domain.Workspace]) bool {
	w, ok := ws.Get()
	if !ok || userID == "" {
		return false
	}
	return userID == w.OwnerID
}
