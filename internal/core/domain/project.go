package domain

import (
	"fmt"
	"slices"
	"time"
)

// DefaultProjectName is the base for auto-generated project names.
const DefaultProjectName = "New Project"

// Project groups folder references for a user. It never owns the folders.
type Project struct {
	ProjectID     string    `json:"project_id" db:"project_id"`
	UserID        string    `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	FolderIDs     []string  `json:"folder_ids" db:"folder_ids"`
	IsInitialized bool      `json:"is_initialized" db:"is_initialized"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// HasFolder reports whether folderID is already part of the project.
func (p *Project) HasFolder(folderID string) bool {
	return slices.Contains(p.FolderIDs, folderID)
}

// NextDefaultProjectName picks "New Project" if unused, otherwise the first
// unused "New Project N" for N = 1, 2, ...
func NextDefaultProjectName(existing []string) string {
	taken := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		taken[name] = struct{}{}
	}
	if _, ok := taken[DefaultProjectName]; !ok {
		return DefaultProjectName
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s %d", DefaultProjectName, i)
		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}
