package services

import (
	"context"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
	"github.com/SscSPs/workspace_backend/internal/dto"
)

// ProjectReaderSvc defines read operations for projects
type ProjectReaderSvc interface {
	ListProjects(ctx context.Context, userID string) ([]domain.Project, error)
	GetProject(ctx context.Context, userID, projectID string) (*domain.Project, error)
}

// ProjectWriterSvc defines write operations for projects
type ProjectWriterSvc interface {
	// CreateProject generates a unique default name and optionally seeds an owned folder.
	CreateProject(ctx context.Context, userID string, initialFolderID *string) (*domain.Project, error)
	UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)
	AddFolderToProject(ctx context.Context, userID, projectID, folderID string) (*domain.Project, error)
	// DeleteProject removes the grouping only; folders are never touched.
	DeleteProject(ctx context.Context, userID, projectID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
