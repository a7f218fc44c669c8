package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/platform/storage"
	"github.com/google/uuid"
)

// folderService keeps each folder record and its directory in step.
// Filesystem work always happens before the matching database write, so a
// failed directory operation never leaves a record behind.
type folderService struct {
	BaseService
	folderRepo portsrepo.FolderRepositoryFacade
	dirs       portsrepo.FolderDirectoryStore
	now        func() time.Time
}

// NewFolderService creates a new folder service.
func NewFolderService(folderRepo portsrepo.FolderRepositoryFacade, dirs portsrepo.FolderDirectoryStore) portssvc.FolderSvcFacade {
	return &folderService{
		folderRepo: folderRepo,
		dirs:       dirs,
		now:        time.Now,
	}
}

func (s *folderService) ListFolders(ctx context.Context, userID string) ([]domain.Folder, error) {
	folders, err := s.folderRepo.ListFoldersByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list folders", slog.String("user_id", userID))
		return nil, err
	}
	return folders, nil
}

func (s *folderService) GetFolder(ctx context.Context, userID, folderID string) (*domain.Folder, error) {
	folder, err := s.folderRepo.FindFolderByID(ctx, userID, folderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Folder not found")
		}
		s.LogError(ctx, err, "Failed to get folder", slog.String("folder_id", folderID))
		return nil, err
	}
	return folder, nil
}

// FindFolderByName sanitizes name the same way creation does before looking it up.
func (s *folderService) FindFolderByName(ctx context.Context, userID, name string) (*domain.Folder, error) {
	safeName, err := storage.SanitizeName(name)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("Invalid folder name")
	}
	folder, err := s.folderRepo.FindFolderByName(ctx, userID, safeName)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Folder not found")
		}
		s.LogError(ctx, err, "Failed to find folder by name", slog.String("name", safeName))
		return nil, err
	}
	return folder, nil
}

func (s *folderService) CreateFolder(ctx context.Context, userID, rawName string) (*domain.Folder, error) {
	safeName, err := storage.SanitizeName(rawName)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("Invalid folder name")
	}

	if err := s.checkNameFree(ctx, userID, safeName); err != nil {
		return nil, err
	}

	if err := s.dirs.Ensure(ctx, userID, safeName); err != nil {
		s.LogError(ctx, err, "Failed to create folder directory",
			slog.String("user_id", userID),
			slog.String("name", safeName))
		return nil, err
	}

	folder := domain.Folder{
		FolderID:  uuid.NewString(),
		UserID:    userID,
		Name:      safeName,
		CreatedAt: s.now().UTC(),
	}
	if err := s.folderRepo.SaveFolder(ctx, folder); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// The directory belongs to whichever request won the insert.
			return nil, apperrors.NewConflictError("Folder with this name already exists")
		}
		s.LogError(ctx, err, "Failed to save folder", slog.String("folder_id", folder.FolderID))
		return nil, fmt.Errorf("failed to save folder: %w", err)
	}

	s.LogInfo(ctx, "Folder created",
		slog.String("folder_id", folder.FolderID),
		slog.String("user_id", userID))
	return &folder, nil
}

// RenameFolder renames the directory and then the record. A missing directory
// is recreated under the new name rather than treated as an error.
func (s *folderService) RenameFolder(ctx context.Context, userID, folderID, rawName string) (*domain.Folder, error) {
	folder, err := s.GetFolder(ctx, userID, folderID)
	if err != nil {
		return nil, err
	}

	newName, err := storage.SanitizeName(rawName)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("Invalid folder name")
	}
	if newName == folder.Name {
		return folder, nil
	}

	if err := s.checkNameFree(ctx, userID, newName); err != nil {
		return nil, err
	}

	recreated, err := s.dirs.Rename(ctx, userID, folder.Name, newName)
	if err != nil {
		s.LogError(ctx, err, "Failed to rename folder directory",
			slog.String("folder_id", folderID),
			slog.String("old_name", folder.Name),
			slog.String("new_name", newName))
		return nil, err
	}
	if recreated {
		s.LogWarn(ctx, "Folder directory was missing and has been recreated",
			slog.String("folder_id", folderID),
			slog.String("old_name", folder.Name),
			slog.String("new_name", newName))
	}

	if err := s.folderRepo.RenameFolder(ctx, userID, folderID, newName); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewConflictError("Folder name already in use")
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError("Folder not found")
		}
		s.LogError(ctx, err, "Failed to update folder name", slog.String("folder_id", folderID))
		return nil, fmt.Errorf("failed to rename folder: %w", err)
	}

	folder.Name = newName
	s.LogInfo(ctx, "Folder renamed", slog.String("folder_id", folderID))
	return folder, nil
}

// DeleteFolder removes the directory tree and then the record. Projects that
// reference the folder keep the id.
func (s *folderService) DeleteFolder(ctx context.Context, userID, folderID string) error {
	folder, err := s.GetFolder(ctx, userID, folderID)
	if err != nil {
		return err
	}

	if err := s.dirs.Remove(ctx, userID, folder.Name); err != nil {
		s.LogError(ctx, err, "Failed to remove folder directory",
			slog.String("folder_id", folderID),
			slog.String("name", folder.Name))
		return err
	}

	if err := s.folderRepo.DeleteFolder(ctx, userID, folderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Folder not found")
		}
		s.LogError(ctx, err, "Failed to delete folder record", slog.String("folder_id", folderID))
		return fmt.Errorf("failed to delete folder: %w", err)
	}

	s.LogInfo(ctx, "Folder deleted", slog.String("folder_id", folderID))
	return nil
}

func (s *folderService) checkNameFree(ctx context.Context, userID, name string) error {
	_, err := s.folderRepo.FindFolderByName(ctx, userID, name)
	switch {
	case err == nil:
		return apperrors.NewConflictError("Folder with this name already exists")
	case errors.Is(err, apperrors.ErrNotFound):
		return nil
	default:
		s.LogError(ctx, err, "Failed to check folder name", slog.String("name", name))
		return fmt.Errorf("failed to check folder name: %w", err)
	}
}
