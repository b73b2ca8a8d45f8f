package memory

import (
	"context"
	"time"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	"github.com/SscSPs/idea_board_app/internal/core/domain"
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
)

// timestampResolution matches what Postgres stores for TIMESTAMPTZ.
const timestampResolution = time.Microsecond

// IdeaRepository is the in-memory idea table.
type IdeaRepository struct {
	store *Store
}

var _ portsrepo.IdeaRepositoryFacade = (*IdeaRepository)(nil)

func (r *IdeaRepository) SaveIdea(_ context.Context, idea domain.Idea) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ideas[idea.IdeaID]; exists {
		return apperrors.NewConflictError("idea ID " + idea.IdeaID + " already exists")
	}
	if _, ok := s.workspaces[idea.WorkspaceID]; !ok {
		return apperrors.NewNotFoundError("workspace " + idea.WorkspaceID + " not found")
	}
	idea.CreatedAt = idea.CreatedAt.Truncate(timestampResolution)
	idea.UpdatedAt = idea.UpdatedAt.Truncate(timestampResolution)
	s.ideas[idea.IdeaID] = idea
	s.ideaOrder = append(s.ideaOrder, idea.IdeaID)
	return nil
}

func (r *IdeaRepository) FindIdeaByID(_ context.Context, ideaID string) (domain.Lookup[domain.Idea], error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	idea, ok := s.ideas[ideaID]
	if !ok {
		return domain.Missing[domain.Idea](), nil
	}
	return domain.Found(idea), nil
}

func (r *IdeaRepository) ListIdeasByWorkspace(_ context.Context, workspaceID string) ([]domain.Idea, error) {
	return r.filter(func(i domain.Idea) bool { return i.WorkspaceID == workspaceID }), nil
}

func (r *IdeaRepository) ListIdeasByAuthor(_ context.Context, authorID string) ([]domain.Idea, error) {
	return r.filter(func(i domain.Idea) bool { return i.AuthorID == authorID }), nil
}

func (r *IdeaRepository) filter(keep func(domain.Idea) bool) []domain.Idea {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	ideas := []domain.Idea{}
	for _, id := range s.ideaOrder {
		if idea := s.ideas[id]; keep(idea) {
			ideas = append(ideas, idea)
		}
	}
	return ideas
}

func (r *IdeaRepository) UpdateIdeaContent(_ context.Context, ideaID, contentHTML string, at time.Time) (time.Time, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	idea, ok := s.ideas[ideaID]
	if !ok {
		return time.Time{}, apperrors.NewNotFoundError("idea " + ideaID + " not found")
	}

	updatedAt := at.Truncate(timestampResolution)
	if floor := idea.UpdatedAt.Add(timestampResolution); updatedAt.Before(floor) {
		updatedAt = floor
	}
	idea.ContentHTML = contentHTML
	idea.UpdatedAt = updatedAt
	s.ideas[ideaID] = idea
	return updatedAt, nil
}

func (r *IdeaRepository) DeleteIdea(_ context.Context, ideaID string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ideas[ideaID]; !ok {
		return nil
	}
	delete(s.ideas, ideaID)
	s.ideaOrder = removeID(s.ideaOrder, ideaID)
	return nil
}
