package services

import (
	"context"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
)

// FolderReaderSvc defines read operations for folders
type FolderReaderSvc interface {
	ListFolders(ctx context.Context, userID string) ([]domain.Folder, error)
	GetFolder(ctx context.Context, userID, folderID string) (*domain.Folder, error)
	FindFolderByName(ctx context.Context, userID, name string) (*domain.Folder, error)
}

// FolderWriterSvc defines operations that touch both the record and the directory
type FolderWriterSvc interface {
	CreateFolder(ctx context.Context, userID, rawName string) (*domain.Folder, error)
	RenameFolder(ctx context.Context, userID, folderID, rawName string) (*domain.Folder, error)
	DeleteFolder(ctx context.Context, userID, folderID string) error
}

// FolderSvcFacade combines all folder-related service interfaces
type FolderSvcFacade interface {
	FolderReaderSvc
	FolderWriterSvc
}
