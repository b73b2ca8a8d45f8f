package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/idea_board_app/internal/apperrors"
	"github.com/SscSPs/idea_board_app/internal/core/domain"
	portsrepo "github.com/SscSPs/idea_board_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxWorkspaceRepository struct {
	BaseRepository
}

// newPgxWorkspaceRepository creates a new repository for workspace data.
func newPgxWorkspaceRepository(pool *pgxpool.Pool) portsrepo.WorkspaceRepositoryFacade {
	return &PgxWorkspaceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.WorkspaceRepositoryFacade = (*PgxWorkspaceRepository)(nil)

const fullWorkspaceSelectQuery = `
SELECT w.workspace_id, w.name, w.owner_id, w.created_at
FROM workspaces w
`

type workspaceRow struct {
	WorkspaceID string    `db:"workspace_id"`
	Name        string    `db:"name"`
	OwnerID     string    `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
}

func (row workspaceRow) toDomain() domain.Workspace {
	return domain.Workspace{
		WorkspaceID: row.WorkspaceID,
		Name:        row.Name,
		OwnerID:     row.OwnerID,
		CreatedAt:   row.CreatedAt,
	}
}

// getWorkspaces runs the shared select with the given filter and maps the rows.
func (r *PgxWorkspaceRepository) getWorkspaces(ctx context.Context, filterQuery string, args ...any) ([]domain.Workspace, error) {
	rows, err := r.Pool.Query(ctx, fullWorkspaceSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workspaces", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[workspaceRow])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect workspace rows", err)
	}

	workspaces := make([]domain.Workspace, 0, len(collected))
	for _, row := range collected {
		workspaces = append(workspaces, row.toDomain())
	}
	return workspaces, nil
}

func (r *PgxWorkspaceRepository) SaveWorkspace(ctx context.Context, workspace domain.Workspace) error {
	query := `
		INSERT INTO workspaces (workspace_id, name, owner_id, created_at)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query,
		workspace.WorkspaceID,
		workspace.Name,
		workspace.OwnerID,
		workspace.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return apperrors.NewConflictError("workspace ID " + workspace.WorkspaceID + " already exists")
			case "23514": // check_violation
				return apperrors.NewValidationFailedError("workspace name must not be empty")
			}
		}
		return apperrors.NewAppError(500, "failed to save workspace "+workspace.WorkspaceID, err)
	}
	return nil
}

func (r *PgxWorkspaceRepository) FindWorkspaceByID(ctx context.Context, workspaceID string) (domain.Lookup[domain.Workspace], error) {
	workspaces, err := r.getWorkspaces(ctx, `WHERE w.workspace_id = $1`, workspaceID)
	if err != nil {
		return domain.Missing[domain.Workspace](), err
	}
	if len(workspaces) == 0 {
		return domain.Missing[domain.Workspace](), nil
	}
	return domain.Found(workspaces[0]), nil
}

func (r *PgxWorkspaceRepository) ListWorkspacesByOwner(ctx context.Context, ownerID string) ([]domain.Workspace, error) {
	return r.getWorkspaces(ctx, `WHERE w.owner_id = $1 ORDER BY w.seq ASC`, ownerID)
}

func (r *PgxWorkspaceRepository) SearchWorkspacesByOwner(ctx context.Context, ownerID, query string) ([]domain.Workspace, error) {
	return r.getWorkspaces(ctx,
		`WHERE w.owner_id = $1 AND w.name ILIKE '%' || $2 || '%' ESCAPE '\' ORDER BY w.seq ASC`,
		ownerID, escapeLike(query))
}

func (r *PgxWorkspaceRepository) RenameWorkspace(ctx context.Context, workspaceID, name string) error {
	result, err := r.Pool.Exec(ctx, `UPDATE workspaces SET name = $2 WHERE workspace_id = $1;`, workspaceID, name)
	if err != nil {
		return apperrors.NewAppError(500, "failed to rename workspace "+workspaceID, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("workspace " + workspaceID + " not found")
	}
	return nil
}

// DeleteWorkspaceCascade deletes the ideas and then the workspace in one transaction.
func (r *PgxWorkspaceRepository) DeleteWorkspaceCascade(ctx context.Context, workspaceID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM ideas WHERE workspace_id = $1;`, workspaceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete ideas of workspace "+workspaceID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM workspaces WHERE workspace_id = $1;`, workspaceID); err != nil {
		return apperrors.NewAppError(500, "failed to delete workspace "+workspaceID, err)
	}

	return r.Commit(ctx, tx)
}
