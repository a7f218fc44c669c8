package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const selectProjectFields = `project_id, user_id, name, folder_ids, is_initialized, created_at`

func (r *PgxProjectRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Project, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapReadError(err, "query project")
	}
	project, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Project])
	if err != nil {
		return nil, mapReadError(err, "scan project")
	}
	if project.FolderIDs == nil {
		project.FolderIDs = []string{}
	}
	return project, nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	query := `SELECT ` + selectProjectFields + ` FROM projects WHERE project_id = $1 AND user_id = $2;`
	return r.findOne(ctx, query, projectID, userID)
}

func (r *PgxProjectRepository) FindProjectByName(ctx context.Context, userID, name string) (*domain.Project, error) {
	query := `SELECT ` + selectProjectFields + ` FROM projects WHERE user_id = $1 AND name = $2;`
	return r.findOne(ctx, query, userID, name)
}

func (r *PgxProjectRepository) ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error) {
	query := `SELECT ` + selectProjectFields + ` FROM projects WHERE user_id = $1 ORDER BY created_at, project_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapReadError(err, "list projects")
	}
	projects, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Project])
	if err != nil {
		return nil, mapReadError(err, "scan projects")
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

func (r *PgxProjectRepository) ListProjectNamesWithPrefix(ctx context.Context, userID, prefix string) ([]string, error) {
	query := `SELECT name FROM projects WHERE user_id = $1 AND name LIKE $2 ESCAPE '\';`
	rows, err := r.Pool.Query(ctx, query, userID, escapeLike(prefix)+"%")
	if err != nil {
		return nil, mapReadError(err, "list project names")
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapReadError(err, "scan project names")
	}
	return names, nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	folderIDs := project.FolderIDs
	if folderIDs == nil {
		folderIDs = []string{}
	}
	query := `
		INSERT INTO projects (project_id, user_id, name, folder_ids, is_initialized, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		project.ProjectID,
		project.UserID,
		project.Name,
		folderIDs,
		project.IsInitialized,
		project.CreatedAt,
	)
	if err != nil {
		return mapWriteError(err, "save project")
	}
	return nil
}

// UpdateProject uses COALESCE so a nil field keeps its stored value.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, userID, projectID string, update portsrepo.ProjectUpdate) (*domain.Project, error) {
	query := `
		UPDATE projects
		SET name = COALESCE($3, name),
		    is_initialized = COALESCE($4, is_initialized)
		WHERE project_id = $1 AND user_id = $2
		RETURNING ` + selectProjectFields + `;`
	project, err := r.findOne(ctx, query, projectID, userID, update.Name, update.IsInitialized)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, mapWriteError(err, "update project")
		}
		return nil, err
	}
	return project, nil
}

// AddFolderToProject appends in a single statement. When the id is already
// present the guarded UPDATE touches nothing and the current row is returned.
func (r *PgxProjectRepository) AddFolderToProject(ctx context.Context, userID, projectID, folderID string) (*domain.Project, error) {
	query := `
		UPDATE projects
		SET folder_ids = array_append(folder_ids, $3)
		WHERE project_id = $1 AND user_id = $2 AND NOT ($3 = ANY(folder_ids))
		RETURNING ` + selectProjectFields + `;`
	project, err := r.findOne(ctx, query, projectID, userID, folderID)
	if err == nil {
		return project, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	// Either the project is gone or the folder was already there.
	return r.FindProjectByID(ctx, userID, projectID)
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, userID, projectID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE project_id = $1 AND user_id = $2;`, projectID, userID)
	if err != nil {
		return mapWriteError(err, "delete project")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
