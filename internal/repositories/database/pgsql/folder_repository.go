package pgsql

import (
	"context"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFolderRepository struct {
	BaseRepository
}

func newPgxFolderRepository(db *pgxpool.Pool) portsrepo.FolderRepositoryFacade {
	return &PgxFolderRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.FolderRepositoryFacade = (*PgxFolderRepository)(nil)

const selectFolderFields = `folder_id, user_id, name, created_at`

func (r *PgxFolderRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Folder, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapReadError(err, "query folder")
	}
	folder, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Folder])
	if err != nil {
		return nil, mapReadError(err, "scan folder")
	}
	return folder, nil
}

func (r *PgxFolderRepository) FindFolderByID(ctx context.Context, userID, folderID string) (*domain.Folder, error) {
	query := `SELECT ` + selectFolderFields + ` FROM folders WHERE folder_id = $1 AND user_id = $2;`
	return r.findOne(ctx, query, folderID, userID)
}

func (r *PgxFolderRepository) FindFolderByName(ctx context.Context, userID, name string) (*domain.Folder, error) {
	query := `SELECT ` + selectFolderFields + ` FROM folders WHERE user_id = $1 AND name = $2;`
	return r.findOne(ctx, query, userID, name)
}

func (r *PgxFolderRepository) ListFoldersByUser(ctx context.Context, userID string) ([]domain.Folder, error) {
	query := `SELECT ` + selectFolderFields + ` FROM folders WHERE user_id = $1 ORDER BY created_at, folder_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapReadError(err, "list folders")
	}
	folders, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Folder])
	if err != nil {
		return nil, mapReadError(err, "scan folders")
	}
	if folders == nil {
		folders = []domain.Folder{}
	}
	return folders, nil
}

func (r *PgxFolderRepository) SaveFolder(ctx context.Context, folder domain.Folder) error {
	query := `INSERT INTO folders (folder_id, user_id, name, created_at) VALUES ($1, $2, $3, $4);`
	if _, err := r.Pool.Exec(ctx, query, folder.FolderID, folder.UserID, folder.Name, folder.CreatedAt); err != nil {
		return mapWriteError(err, "save folder")
	}
	return nil
}

func (r *PgxFolderRepository) RenameFolder(ctx context.Context, userID, folderID, newName string) error {
	query := `UPDATE folders SET name = $3 WHERE folder_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, folderID, userID, newName)
	if err != nil {
		return mapWriteError(err, "rename folder")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFolderRepository) DeleteFolder(ctx context.Context, userID, folderID string) error {
	query := `DELETE FROM folders WHERE folder_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, folderID, userID)
	if err != nil {
		return mapWriteError(err, "delete folder")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
