package repositories

import (
	"context"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
)

// FolderReader defines read operations for folder records. Every lookup is
// scoped to the owner; another user's folder is reported as apperrors.ErrNotFound.
type FolderReader interface {
	FindFolderByID(ctx context.Context, userID, folderID string) (*domain.Folder, error)
	FindFolderByName(ctx context.Context, userID, name string) (*domain.Folder, error)
	ListFoldersByUser(ctx context.Context, userID string) ([]domain.Folder, error)
}

// FolderWriter defines write operations for folder records. A (user_id, name)
// collision returns apperrors.ErrDuplicate.
type FolderWriter interface {
	SaveFolder(ctx context.Context, folder domain.Folder) error
	RenameFolder(ctx context.Context, userID, folderID, newName string) error
	DeleteFolder(ctx context.Context, userID, folderID string) error
}

// FolderRepositoryFacade combines all folder-related repository interfaces
type FolderRepositoryFacade interface {
	FolderReader
	FolderWriter
}

// FolderDirectoryStore is the physical side of a folder: one directory per
// (user_id, sanitized name). Failures are apperrors.ErrStorage.
type FolderDirectoryStore interface {
	Ensure(ctx context.Context, userID, name string) error
	Rename(ctx context.Context, userID, oldName, newName string) (recreated bool, err error)
	Remove(ctx context.Context, userID, name string) error
}
