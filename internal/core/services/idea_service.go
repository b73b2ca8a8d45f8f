package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	"github.com/SscSPs/idea_board_app/internal/core/authz"
	"github.com/SscSPs/idea_board_app/internal/core/domain"
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/idea_board_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// ideaService implements the IdeaSvcFacade interface.
// Every call re-reads the idea and its parent workspace before deciding access.
type ideaService struct {
	BaseService
	ideaRepo      portsrepo.IdeaRepositoryFacade
	workspaceRepo portsrepo.WorkspaceReader
}

// NewIdeaService creates a new idea service with the provided dependencies
func NewIdeaService(ideaRepo portsrepo.IdeaRepositoryFacade, workspaceRepo portsrepo.WorkspaceReader, options ...ServiceOption) portssvc.IdeaSvcFacade {
	svc := &ideaService{
		ideaRepo:      ideaRepo,
		workspaceRepo: workspaceRepo,
	}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.IdeaSvcFacade = (*ideaService)(nil)

func (s *ideaService) ListIdeas(ctx context.Context, callerID, workspaceID string) ([]domain.Idea, error) {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return nil, err
	}

	wsLookup, err := s.findWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if !wsLookup.IsFound() {
		return nil, apperrors.NewNotFoundError("workspace " + workspaceID + " not found")
	}
	if !authz.CanReadWorkspace(callerID, wsLookup) {
		s.LogDebug(ctx, "User may not read workspace",
			slog.String("user_id", callerID),
			slog.String("workspace_id", workspaceID))
		return nil, apperrors.NewForbiddenError("only the owner may read this workspace")
	}

	ideas, err := s.ideaRepo.ListIdeasByWorkspace(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ideas", slog.String("workspace_id", workspaceID))
		return nil, err
	}
	return ideas, nil
}

func (s *ideaService) GetIdea(ctx context.Context, callerID, ideaID string) (*domain.Idea, error) {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return nil, err
	}

	ideaLookup, wsLookup, err := s.findIdeaWithWorkspace(ctx, ideaID)
	if err != nil {
		return nil, err
	}
	idea, ok := ideaLookup.Get()
	if !ok || !wsLookup.IsFound() {
		return nil, apperrors.NewNotFoundError("idea " + ideaID + " not found")
	}
	if idea.AuthorID != callerID && !authz.CanReadWorkspace(callerID, wsLookup) {
		return nil, apperrors.NewForbiddenError("you may not read this idea")
	}
	return &idea, nil
}

func (s *ideaService) ListMyIdeas(ctx context.Context, callerID string) ([]domain.Idea, error) {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return nil, err
	}

	ideas, err := s.ideaRepo.ListIdeasByAuthor(ctx, callerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ideas by author", slog.String("user_id", callerID))
		return nil, err
	}

	// Drop ideas caught mid-cascade: their workspace is already gone.
	live := make(map[string]bool)
	visible := make([]domain.Idea, 0, len(ideas))
	for _, idea := range ideas {
		exists, seen := live[idea.WorkspaceID]
		if !seen {
			wsLookup, err := s.findWorkspace(ctx, idea.WorkspaceID)
			if err != nil {
				return nil, err
			}
			exists = wsLookup.IsFound()
			live[idea.WorkspaceID] = exists
		}
		if exists {
			visible = append(visible, idea)
		}
	}
	return visible, nil
}

func (s *ideaService) AddIdea(ctx context.Context, callerID, workspaceID, contentHTML string) (string, error) {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return "", err
	}

	wsLookup, err := s.findWorkspace(ctx, workspaceID)
	if err != nil {
		return "", err
	}
	if !wsLookup.IsFound() {
		return "", apperrors.NewNotFoundError("workspace " + workspaceID + " not found")
	}
	if !authz.CanMutateWorkspace(callerID, wsLookup) {
		s.LogDebug(ctx, "User may not add ideas to workspace",
			slog.String("user_id", callerID),
			slog.String("workspace_id", workspaceID))
		return "", apperrors.NewForbiddenError("only the owner may add ideas to this workspace")
	}

	now := s.Now()
	idea := domain.Idea{
		IdeaID:      uuid.NewString(),
		WorkspaceID: workspaceID,
		AuthorID:    callerID,
		ContentHTML: contentHTML,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.ideaRepo.SaveIdea(ctx, idea); err != nil {
		s.LogError(ctx, err, "Failed to save idea",
			slog.String("idea_id", idea.IdeaID),
			slog.String("workspace_id", workspaceID))
		return "", err
	}

	s.LogInfo(ctx, "Idea added successfully",
		slog.String("idea_id", idea.IdeaID),
		slog.String("workspace_id", workspaceID))
	return idea.IdeaID, nil
}

func (s *ideaService) UpdateIdea(ctx context.Context, callerID, ideaID, contentHTML string) error {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return err
	}

	ideaLookup, wsLookup, err := s.findIdeaWithWorkspace(ctx, ideaID)
	if err != nil {
		return err
	}
	if !ideaLookup.IsFound() {
		return apperrors.NewNotFoundError("idea " + ideaID + " not found")
	}
	if !wsLookup.IsFound() {
		// The parent is being deleted; treat the idea as already gone.
		return apperrors.NewNotFoundError("workspace of idea " + ideaID + " not found")
	}
	if !authz.CanMutateIdea(callerID, ideaLookup, wsLookup) {
		s.LogDebug(ctx, "User may not update idea",
			slog.String("user_id", callerID),
			slog.String("idea_id", ideaID))
		return apperrors.NewForbiddenError("only the author or workspace owner may edit this idea")
	}

	updatedAt, err := s.ideaRepo.UpdateIdeaContent(ctx, ideaID, contentHTML, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to update idea", slog.String("idea_id", ideaID))
		return err
	}

	s.LogInfo(ctx, "Idea updated successfully",
		slog.String("idea_id", ideaID),
		slog.Time("updated_at", updatedAt))
	return nil
}

func (s *ideaService) DeleteIdea(ctx context.Context, callerID, ideaID string) error {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return err
	}

	ideaLookup, wsLookup, err := s.findIdeaWithWorkspace(ctx, ideaID)
	if err != nil {
		return err
	}
	if !ideaLookup.IsFound() || !wsLookup.IsFound() {
		s.LogDebug(ctx, "Idea already gone, nothing to delete", slog.String("idea_id", ideaID))
		return nil
	}
	if !authz.CanMutateIdea(callerID, ideaLookup, wsLookup) {
		s.LogDebug(ctx, "User may not delete idea",
			slog.String("user_id", callerID),
			slog.String("idea_id", ideaID))
		return apperrors.NewForbiddenError("only the author or workspace owner may delete this idea")
	}

	if err := s.ideaRepo.DeleteIdea(ctx, ideaID); err != nil {
		s.LogError(ctx, err, "Failed to delete idea", slog.String("idea_id", ideaID))
		return err
	}

	s.LogInfo(ctx, "Idea deleted successfully", slog.String("idea_id", ideaID))
	return nil
}

func (s *ideaService) findWorkspace(ctx context.Context, workspaceID string) (domain.Lookup[domain.Workspace], error) {
	lookup, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find workspace by ID", slog.String("workspace_id", workspaceID))
		return domain.Missing[domain.Workspace](), err
	}
	return lookup, nil
}

// findIdeaWithWorkspace fetches the idea and, when it exists, its parent workspace.
func (s *ideaService) findIdeaWithWorkspace(ctx context.Context, ideaID string) (domain.Lookup[domain.Idea], domain.Lookup[domain.Workspace], error) {
	ideaLookup, err := s.ideaRepo.FindIdeaByID(ctx, ideaID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find idea by ID", slog.String("idea_id", ideaID))
		return domain.Missing[domain.Idea](), domain.Missing[domain.Workspace](), err
	}
	idea, ok := ideaLookup.Get()
	if !ok {
		return ideaLookup, domain.Missing[domain.Workspace](), nil
	}

	wsLookup, err := s.findWorkspace(ctx, idea.WorkspaceID)
	if err != nil {
		return ideaLookup, domain.Missing[domain.Workspace](), err
	}
	return ideaLookup, wsLookup, nil
}
