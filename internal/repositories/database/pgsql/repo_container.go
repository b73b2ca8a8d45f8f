package pgsql

import (
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WorkspaceRepo: newPgxWorkspaceRepository(dbPool),
		IdeaRepo:      newPgxIdeaRepository(dbPool),
	}
}
