package dto

import (
	"time"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
)

// CreateProjectRequest is the optional body of POST /projects.
type CreateProjectRequest struct {
	InitialFolderID *string `json:"initial_folder_id,omitempty"`
}

// UpdateProjectRequest defines the data allowed for updating a project.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateProjectRequest struct {
	Name          *string `json:"name,omitempty"`
	IsInitialized *bool   `json:"is_initialized,omitempty"`
}

// AddFolderToProjectRequest is the body of POST /projects/:projectID/folders.
type AddFolderToProjectRequest struct {
	FolderID string `json:"folder_id" binding:"required"`
}

// ProjectResponse is the public view of a project.
type ProjectResponse struct {
	ProjectID     string    `json:"project_id"`
	Name          string    `json:"name"`
	FolderIDs     []string  `json:"folder_ids"`
	IsInitialized bool      `json:"is_initialized"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO
func ToProjectResponse(p *domain.Project) ProjectResponse {
	folderIDs := p.FolderIDs
	if folderIDs == nil {
		folderIDs = []string{}
	}
	return ProjectResponse{
		ProjectID:     p.ProjectID,
		Name:          p.Name,
		FolderIDs:     folderIDs,
		IsInitialized: p.IsInitialized,
		CreatedAt:     p.CreatedAt,
	}
}

// ToProjectListResponse converts a slice of domain.Project
func ToProjectListResponse(projects []domain.Project) []ProjectResponse {
	out := make([]ProjectResponse, len(projects))
	for i := range projects {
		out[i] = ToProjectResponse(&projects[i])
	}
	return out
}
