package domain

import "time"

// Folder is a user-owned, uniquely named container backed by a directory
// at <data_root>/<user_id>/<name>.
type Folder struct {
	FolderID  string    `json:"folder_id" db:"folder_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
