package repositories

import (
	"context"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
)

// ProjectReader defines read operations for project data
type ProjectReader interface {
	// FindProjectByID retrieves a project owned by userID.
	FindProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error)

	// FindProjectByName retrieves a project of userID by exact name.
	FindProjectByName(ctx context.Context, userID, name string) (*domain.Project, error)

	// ListProjectsByUser retrieves all projects of a user.
	ListProjectsByUser(ctx context.Context, userID string) ([]domain.Project, error)

	// ListProjectNamesWithPrefix returns the names of userID's projects starting with prefix.
	ListProjectNamesWithPrefix(ctx context.Context, userID, prefix string) ([]string, error)
}

// ProjectUpdate carries the fields of a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Name          *string
	IsInitialized *bool
}

// ProjectWriter defines write operations for project data
type ProjectWriter interface {
	// SaveProject persists a new project. A (user_id, name) collision returns apperrors.ErrDuplicate.
	SaveProject(ctx context.Context, project domain.Project) error

	// UpdateProject writes the supplied fields and returns the updated project.
	UpdateProject(ctx context.Context, userID, projectID string, update ProjectUpdate) (*domain.Project, error)

	// AddFolderToProject adds folderID to the project's set in a single statement; re-adding is a no-op.
	AddFolderToProject(ctx context.Context, userID, projectID, folderID string) (*domain.Project, error)

	// DeleteProject removes the project row only.
	DeleteProject(ctx context.Context, userID, projectID string) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
