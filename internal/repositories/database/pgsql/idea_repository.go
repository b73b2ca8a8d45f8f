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

type PgxIdeaRepository struct {
	BaseRepository
}

// newPgxIdeaRepository creates a new repository for idea data.
func newPgxIdeaRepository(pool *pgxpool.Pool) portsrepo.IdeaRepositoryFacade {
	return &PgxIdeaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.IdeaRepositoryFacade = (*PgxIdeaRepository)(nil)

const fullIdeaSelectQuery = `
SELECT i.idea_id, i.workspace_id, i.author_id, i.content_html, i.created_at, i.updated_at
FROM ideas i
`

type ideaRow struct {
	IdeaID      string    `db:"idea_id"`
	WorkspaceID string    `db:"workspace_id"`
	AuthorID    string    `db:"author_id"`
	ContentHTML string    `db:"content_html"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row ideaRow) toDomain() domain.Idea {
	return domain.Idea{
		IdeaID:      row.IdeaID,
		WorkspaceID: row.WorkspaceID,
		AuthorID:    row.AuthorID,
		ContentHTML: row.ContentHTML,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func (r *PgxIdeaRepository) getIdeas(ctx context.Context, filterQuery string, args ...any) ([]domain.Idea, error) {
	rows, err := r.Pool.Query(ctx, fullIdeaSelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ideas", err)
	}
	collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[ideaRow])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect idea rows", err)
	}

	ideas := make([]domain.Idea, 0, len(collected))
	for _, row := range collected {
		ideas = append(ideas, row.toDomain())
	}
	return ideas, nil
}

func (r *PgxIdeaRepository) SaveIdea(ctx context.Context, idea domain.Idea) error {
	query := `
		INSERT INTO ideas (idea_id, workspace_id, author_id, content_html, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		idea.IdeaID,
		idea.WorkspaceID,
		idea.AuthorID,
		idea.ContentHTML,
		idea.CreatedAt,
		idea.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch {
			case pgErr.Code == "23505": // unique_violation
				return apperrors.NewConflictError("idea ID " + idea.IdeaID + " already exists")
			case pgErr.Code == "23503" && pgErr.ConstraintName == "fk_ideas_workspace":
				// The workspace was deleted between the authorization check and the insert.
				return apperrors.NewNotFoundError("workspace " + idea.WorkspaceID + " not found")
			}
		}
		return apperrors.NewAppError(500, "failed to save idea "+idea.IdeaID, err)
	}
	return nil
}

func (r *PgxIdeaRepository) FindIdeaByID(ctx context.Context, ideaID string) (domain.Lookup[domain.Idea], error) {
	ideas, err := r.getIdeas(ctx, `WHERE i.idea_id = $1`, ideaID)
	if err != nil {
		return domain.Missing[domain.Idea](), err
	}
	if len(ideas) == 0 {
		return domain.Missing[domain.Idea](), nil
	}
	return domain.Found(ideas[0]), nil
}

func (r *PgxIdeaRepository) ListIdeasByWorkspace(ctx context.Context, workspaceID string) ([]domain.Idea, error) {
	return r.getIdeas(ctx, `WHERE i.workspace_id = $1 ORDER BY i.seq ASC`, workspaceID)
}

func (r *PgxIdeaRepository) ListIdeasByAuthor(ctx context.Context, authorID string) ([]domain.Idea, error) {
	return r.getIdeas(ctx, `WHERE i.author_id = $1 ORDER BY i.seq ASC`, authorID)
}

// UpdateIdeaContent overwrites the content without any version check; Postgres row locks
// order concurrent writers and the last one to commit wins.
func (r *PgxIdeaRepository) UpdateIdeaContent(ctx context.Context, ideaID, contentHTML string, at time.Time) (time.Time, error) {
	query := `
		UPDATE ideas
		SET content_html = $2,
		    updated_at = GREATEST($3::timestamptz, updated_at + INTERVAL '1 microsecond')
		WHERE idea_id = $1
		RETURNING updated_at;
	`
	var updatedAt time.Time
	err := r.Pool.QueryRow(ctx, query, ideaID, contentHTML, at).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, apperrors.NewNotFoundError("idea " + ideaID + " not found")
		}
		return time.Time{}, apperrors.NewAppError(500, "failed to update idea "+ideaID, err)
	}
	return updatedAt, nil
}

func (r *PgxIdeaRepository) DeleteIdea(ctx context.Context, ideaID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM ideas WHERE idea_id = $1;`, ideaID); err != nil {
		return apperrors.NewAppError(500, "failed to delete idea "+ideaID, err)
	}
	return nil
}
