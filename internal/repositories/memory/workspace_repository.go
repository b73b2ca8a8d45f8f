package memory

import (
	"context"
	"strings"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	"github.com/SscSPs/idea_board_app/internal/core/domain"
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
)

// WorkspaceRepository is the in-memory workspace table.
type WorkspaceRepository struct {
	store *Store
}

var _ portsrepo.WorkspaceRepositoryFacade = (*WorkspaceRepository)(nil)

func (r *WorkspaceRepository) SaveWorkspace(_ context.Context, workspace domain.Workspace) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.workspaces[workspace.WorkspaceID]; exists {
		return apperrors.NewConflictError("workspace ID " + workspace.WorkspaceID + " already exists")
	}
	s.workspaces[workspace.WorkspaceID] = workspace
	s.workspaceOrder = append(s.workspaceOrder, workspace.WorkspaceID)
	return nil
}

func (r *WorkspaceRepository) FindWorkspaceByID(_ context.Context, workspaceID string) (domain.Lookup[domain.Workspace], error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ws, ok := s.workspaces[workspaceID]
	if !ok {
		return domain.Missing[domain.Workspace](), nil
	}
	return domain.Found(ws), nil
}

func (r *WorkspaceRepository) ListWorkspacesByOwner(ctx context.Context, ownerID string) ([]domain.Workspace, error) {
	return r.SearchWorkspacesByOwner(ctx, ownerID, "")
}

func (r *WorkspaceRepository) SearchWorkspacesByOwner(_ context.Context, ownerID, query string) ([]domain.Workspace, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	query = strings.ToLower(query)
	workspaces := []domain.Workspace{}
	for _, id := range s.workspaceOrder {
		ws := s.workspaces[id]
		if ws.OwnerID != ownerID {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(ws.Name), query) {
			continue
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, nil
}

func (r *WorkspaceRepository) RenameWorkspace(_ context.Context, workspaceID, name string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	ws, ok := s.workspaces[workspaceID]
	if !ok {
		return apperrors.NewNotFoundError("workspace " + workspaceID + " not found")
	}
	ws.Name = name
	s.workspaces[workspaceID] = ws
	return nil
}

func (r *WorkspaceRepository) DeleteWorkspaceCascade(_ context.Context, workspaceID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.ideaOrder[:0]
	for _, id := range s.ideaOrder {
		if s.ideas[id].WorkspaceID == workspaceID {
			delete(s.ideas, id)
			continue
		}
		kept = append(kept, id)
	}
	s.ideaOrder = kept

	delete(s.workspaces, workspaceID)
	s.workspaceOrder = removeID(s.workspaceOrder, workspaceID)
	return nil
}
