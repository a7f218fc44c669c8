package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workspace_backend/internal/core/ports/services"
	"github.com/SscSPs/workspace_backend/internal/dto"
	"github.com/google/uuid"
)

// projectService implements ProjectSvcFacade. It reads folders to check
// ownership but never writes them.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	folderRepo  portsrepo.FolderReader
	now         func() time.Time
}

// NewProjectService creates a new project service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, folderRepo portsrepo.FolderReader) portssvc.ProjectSvcFacade {
	return &projectService{
		projectRepo: projectRepo,
		folderRepo:  folderRepo,
		now:         time.Now,
	}
}

func (s *projectService) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjectsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("user_id", userID))
		return nil, err
	}
	return projects, nil
}

func (s *projectService) GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, userID, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Project not found")
		}
		s.LogError(ctx, err, "Failed to get project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

// CreateProject names the project "New Project", "New Project 1", ... and
// seeds it with initialFolderID when that folder belongs to the user.
// An unknown or foreign initial folder is ignored.
func (s *projectService) CreateProject(ctx context.Context, userID string, initialFolderID *string) (*domain.Project, error) {
	existing, err := s.projectRepo.ListProjectNamesWithPrefix(ctx, userID, domain.DefaultProjectName)
	if err != nil {
		s.LogError(ctx, err, "Failed to list project names", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to generate project name: %w", err)
	}

	folderIDs := []string{}
	if initialFolderID != nil && *initialFolderID != "" {
		_, err := s.folderRepo.FindFolderByID(ctx, userID, *initialFolderID)
		switch {
		case err == nil:
			folderIDs = append(folderIDs, *initialFolderID)
		case errors.Is(err, apperrors.ErrNotFound):
			s.LogDebug(ctx, "Ignoring initial folder not owned by user", slog.String("folder_id", *initialFolderID))
		default:
			s.LogError(ctx, err, "Failed to look up initial folder", slog.String("folder_id", *initialFolderID))
			return nil, fmt.Errorf("failed to look up initial folder: %w", err)
		}
	}

	project := domain.Project{
		ProjectID:     uuid.NewString(),
		UserID:        userID,
		Name:          domain.NextDefaultProjectName(existing),
		FolderIDs:     folderIDs,
		IsInitialized: false,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("Project name already in use")
		}
		s.LogError(ctx, err, "Failed to save project", slog.String("project_id", project.ProjectID))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", project.ProjectID),
		slog.String("name", project.Name))
	return &project, nil
}

func (s *projectService) UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	update := portsrepo.ProjectUpdate{IsInitialized: req.IsInitialized}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewValidationFailedError("Project name cannot be empty")
		}
		update.Name = &name
	}
	if update.Name == nil && update.IsInitialized == nil {
		return nil, apperrors.NewValidationFailedError("No valid fields to update")
	}

	if update.Name != nil {
		other, err := s.projectRepo.FindProjectByName(ctx, userID, *update.Name)
		switch {
		case err == nil && other.ProjectID != projectID:
			return nil, apperrors.NewConflictError("Project name already in use")
		case err != nil && !errors.Is(err, apperrors.ErrNotFound):
			s.LogError(ctx, err, "Failed to check project name", slog.String("project_id", projectID))
			return nil, fmt.Errorf("failed to check project name: %w", err)
		}
	}

	project, err := s.projectRepo.UpdateProject(ctx, userID, projectID, update)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError("Project not found")
		case errors.Is(err, apperrors.ErrDuplicate):
			return nil, apperrors.NewConflictError("Project name already in use")
		}
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	return project, nil
}

// AddFolderToProject is idempotent: adding a folder twice leaves one entry.
func (s *projectService) AddFolderToProject(ctx context.Context, userID, projectID, folderID string) (*domain.Project, error) {
	if _, err := s.GetProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	if _, err := s.folderRepo.FindFolderByID(ctx, userID, folderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Folder not found or access denied")
		}
		s.LogError(ctx, err, "Failed to look up folder", slog.String("folder_id", folderID))
		return nil, fmt.Errorf("failed to look up folder: %w", err)
	}

	project, err := s.projectRepo.AddFolderToProject(ctx, userID, projectID, folderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Project not found")
		}
		s.LogError(ctx, err, "Failed to add folder to project",
			slog.String("project_id", projectID),
			slog.String("folder_id", folderID))
		return nil, fmt.Errorf("failed to add folder to project: %w", err)
	}
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	if err := s.projectRepo.DeleteProject(ctx, userID, projectID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("Project not found")
		}
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}
