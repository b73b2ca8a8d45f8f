// Package memory keeps workspaces and ideas in process memory. It backs
// STORAGE_BACKEND=memory for local development and the service tests.
package memory

import (
	"sync"

	"github.com/SscSPs/idea_board_app/internal/core/domain"
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
)

// Store is the shared state behind both repositories. A single lock covers
// both tables so the workspace cascade delete is atomic to readers.
type Store struct {
	mu sync.RWMutex

	workspaces     map[string]domain.Workspace
	workspaceOrder []string

	ideas     map[string]domain.Idea
	ideaOrder []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		workspaces: make(map[string]domain.Workspace),
		ideas:      make(map[string]domain.Idea),
	}
}

// NewRepositoryProvider wires both repositories to one shared store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkspaceRepo: &WorkspaceRepository{store: store},
		IdeaRepo:      &IdeaRepository{store: store},
	}
}

// removeID drops id from an insertion-order slice.
func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
