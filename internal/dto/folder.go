package dto

import (
	"time"

	"github.com/SscSPs/workspace_backend/internal/core/domain"
)

// CreateFolderRequest is the body of POST /folders.
type CreateFolderRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// RenameFolderRequest is the body of PUT /folders/:folderID.
type RenameFolderRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// FolderResponse is the public view of a folder.
type FolderResponse struct {
	FolderID  string    `json:"folder_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToFolderResponse converts a domain.Folder to FolderResponse DTO
func ToFolderResponse(f *domain.Folder) FolderResponse {
	return FolderResponse{
		FolderID:  f.FolderID,
		Name:      f.Name,
		CreatedAt: f.CreatedAt,
	}
}

// ToFolderListResponse converts a slice of domain.Folder
func ToFolderListResponse(folders []domain.Folder) []FolderResponse {
	out := make([]FolderResponse, len(folders))
	for i := range folders {
		out[i] = ToFolderResponse(&folders[i])
	}
	return out
}
