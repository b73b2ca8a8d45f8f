package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	"github.com/SscSPs/idea_board_app/internal/core/authz"
	"github.com/SscSPs/idea_board_app/internal/core/domain"
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/idea_board_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// workspaceService implements the WorkspaceSvcFacade interface
type workspaceService struct {
	BaseService
	workspaceRepo portsrepo.WorkspaceRepositoryFacade
}

// NewWorkspaceService creates a new workspace service with the provided dependencies
func NewWorkspaceService(workspaceRepo portsrepo.WorkspaceRepositoryFacade, options ...ServiceOption) portssvc.WorkspaceSvcFacade {
	svc := &workspaceService{workspaceRepo: workspaceRepo}
	for _, option := range options {
		option(&svc.BaseService)
	}
	return svc
}

var _ portssvc.WorkspaceSvcFacade = (*workspaceService)(nil)

func (s *workspaceService) ListWorkspaces(ctx context.Context, callerID string) ([]domain.WorkspaceSummary, error) {
	return s.SearchWorkspaces(ctx, callerID, "")
}

func (s *workspaceService) SearchWorkspaces(ctx context.Context, callerID, query string) ([]domain.WorkspaceSummary, error) {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return nil, err
	}

	var (
		workspaces []domain.Workspace
		err        error
	)
	if query = strings.TrimSpace(query); query == "" {
		workspaces, err = s.workspaceRepo.ListWorkspacesByOwner(ctx, callerID)
	} else {
		workspaces, err = s.workspaceRepo.SearchWorkspacesByOwner(ctx, callerID, query)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list workspaces for user", slog.String("user_id", callerID))
		return nil, err
	}

	summaries := make([]domain.WorkspaceSummary, 0, len(workspaces))
	for _, ws := range workspaces {
		summaries = append(summaries, ws.Summary())
	}

	s.LogDebug(ctx, "Workspaces listed successfully",
		slog.Int("count", len(summaries)),
		slog.String("user_id", callerID))
	return summaries, nil
}

func (s *workspaceService) CreateWorkspace(ctx context.Context, callerID, name string) (string, error) {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return "", err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationFailedError("workspace name must not be empty")
	}

	workspace := domain.Workspace{
		WorkspaceID: uuid.NewString(),
		Name:        name,
		OwnerID:     callerID,
		CreatedAt:   s.Now(),
	}
	if err := s.workspaceRepo.SaveWorkspace(ctx, workspace); err != nil {
		s.LogError(ctx, err, "Failed to save workspace", slog.String("workspace_id", workspace.WorkspaceID))
		return "", err
	}

	s.LogInfo(ctx, "Workspace created successfully",
		slog.String("workspace_id", workspace.WorkspaceID),
		slog.String("owner_id", callerID))
	return workspace.WorkspaceID, nil
}

func (s *workspaceService) RenameWorkspace(ctx context.Context, callerID, workspaceID, name string) error {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.NewValidationFailedError("workspace name must not be empty")
	}

	ws, err := s.authorizeWorkspaceMutation(ctx, callerID, workspaceID)
	if err != nil {
		return err
	}
	if ws.Name == name {
		return nil
	}

	if err := s.workspaceRepo.RenameWorkspace(ctx, workspaceID, name); err != nil {
		s.LogError(ctx, err, "Failed to rename workspace", slog.String("workspace_id", workspaceID))
		return err
	}

	s.LogInfo(ctx, "Workspace renamed successfully", slog.String("workspace_id", workspaceID))
	return nil
}

func (s *workspaceService) DeleteWorkspace(ctx context.Context, callerID, workspaceID string) error {
	if err := s.requireCaller(ctx, callerID); err != nil {
		return err
	}
	if _, err := s.authorizeWorkspaceMutation(ctx, callerID, workspaceID); err != nil {
		return err
	}

	if err := s.workspaceRepo.DeleteWorkspaceCascade(ctx, workspaceID); err != nil {
		s.LogError(ctx, err, "Failed to delete workspace", slog.String("workspace_id", workspaceID))
		return err
	}

	s.LogInfo(ctx, "Workspace deleted with its ideas", slog.String("workspace_id", workspaceID))
	return nil
}

// authorizeWorkspaceMutation fetches the workspace and checks the caller may mutate it.
func (s *workspaceService) authorizeWorkspaceMutation(ctx context.Context, callerID, workspaceID string) (domain.Workspace, error) {
	lookup, err := s.workspaceRepo.FindWorkspaceByID(ctx, workspaceID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find workspace by ID", slog.String("workspace_id", workspaceID))
		return domain.Workspace{}, err
	}
	ws, ok := lookup.Get()
	if !ok {
		return domain.Workspace{}, apperrors.NewNotFoundError("workspace " + workspaceID + " not found")
	}
	if !authz.CanMutateWorkspace(callerID, lookup) {
		s.LogDebug(ctx, "User may not modify workspace",
			slog.String("user_id", callerID),
			slog.String("workspace_id", workspaceID))
		return domain.Workspace{}, apperrors.NewForbiddenError("only the owner may modify this workspace")
	}
	return ws, nil
}
