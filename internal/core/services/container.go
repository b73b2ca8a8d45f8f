package services

import (
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/idea_board_app/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized dependencies.
func NewContainer(repos portsrepo.RepositoryProvider, identity portssvc.IdentityResolver, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Workspace: NewWorkspaceService(repos.WorkspaceRepo, options...),
		Idea:      NewIdeaService(repos.IdeaRepo, repos.WorkspaceRepo, options...),
		Identity:  identity,
	}
}
