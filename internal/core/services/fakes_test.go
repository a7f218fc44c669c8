package services_test

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/SscSPs/workspace_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/workspace_backend/internal/core/ports/repositories"
)

// memStore is an in-memory stand-in for the three tables. It enforces the
// same unique keys as the migrations so races resolve to ErrDuplicate.
type memStore struct {
	mu       sync.Mutex
	users    []domain.User
	folders  []domain.Folder
	projects []domain.Project
}

func newMemRepos() portsrepo.RepositoryProvider {
	s := &memStore{}
	return portsrepo.RepositoryProvider{
		UserRepo:    &memUserRepo{s},
		FolderRepo:  &memFolderRepo{s},
		ProjectRepo: &memProjectRepo{s},
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.UserID == userID {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memUserRepo) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memUserRepo) SaveUser(_ context.Context, user domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return apperrors.ErrDuplicate
		}
	}
	r.s.users = append(r.s.users, user)
	return nil
}

type memFolderRepo struct{ s *memStore }

func (r *memFolderRepo) FindFolderByID(_ context.Context, userID, folderID string) (*domain.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.folders {
		if f.FolderID == folderID && f.UserID == userID {
			return &f, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memFolderRepo) FindFolderByName(_ context.Context, userID, name string) (*domain.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.folders {
		if f.Name == name && f.UserID == userID {
			return &f, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memFolderRepo) ListFoldersByUser(_ context.Context, userID string) ([]domain.Folder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Folder{}
	for _, f := range r.s.folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *memFolderRepo) SaveFolder(_ context.Context, folder domain.Folder) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, f := range r.s.folders {
		if f.UserID == folder.UserID && f.Name == folder.Name {
			return apperrors.ErrDuplicate
		}
	}
	r.s.folders = append(r.s.folders, folder)
	return nil
}

func (r *memFolderRepo) RenameFolder(_ context.Context, userID, folderID, newName string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	idx := -1
	for i, f := range r.s.folders {
		if f.UserID == userID && f.Name == newName && f.FolderID != folderID {
			return apperrors.ErrDuplicate
		}
		if f.UserID == userID && f.FolderID == folderID {
			idx = i
		}
	}
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	r.s.folders[idx].Name = newName
	return nil
}

func (r *memFolderRepo) DeleteFolder(_ context.Context, userID, folderID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, f := range r.s.folders {
		if f.UserID == userID && f.FolderID == folderID {
			r.s.folders = slices.Delete(r.s.folders, i, i+1)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

type memProjectRepo struct{ s *memStore }

func (r *memProjectRepo) find(userID, projectID string) int {
	for i, p := range r.s.projects {
		if p.UserID == userID && p.ProjectID == projectID {
			return i
		}
	}
	return -1
}

func (r *memProjectRepo) copyOf(i int) *domain.Project {
	p := r.s.projects[i]
	p.FolderIDs = slices.Clone(p.FolderIDs)
	return &p
}

func (r *memProjectRepo) FindProjectByID(_ context.Context, userID, projectID string) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if i := r.find(userID, projectID); i >= 0 {
		return r.copyOf(i), nil
	}
	return nil, apperrors.ErrNotFound
}

func (r *memProjectRepo) FindProjectByName(_ context.Context, userID, name string) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, p := range r.s.projects {
		if p.UserID == userID && p.Name == name {
			return r.copyOf(i), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memProjectRepo) ListProjectsByUser(_ context.Context, userID string) ([]domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []domain.Project{}
	for i, p := range r.s.projects {
		if p.UserID == userID {
			out = append(out, *r.copyOf(i))
		}
	}
	return out, nil
}

func (r *memProjectRepo) ListProjectNamesWithPrefix(_ context.Context, userID, prefix string) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var names []string
	for _, p := range r.s.projects {
		if p.UserID == userID && strings.HasPrefix(p.Name, prefix) {
			names = append(names, p.Name)
		}
	}
	return names, nil
}

func (r *memProjectRepo) SaveProject(_ context.Context, project domain.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.projects {
		if p.UserID == project.UserID && p.Name == project.Name {
			return apperrors.ErrDuplicate
		}
	}
	project.FolderIDs = slices.Clone(project.FolderIDs)
	r.s.projects = append(r.s.projects, project)
	return nil
}

func (r *memProjectRepo) UpdateProject(_ context.Context, userID, projectID string, update portsrepo.ProjectUpdate) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(userID, projectID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	if update.Name != nil {
		for _, p := range r.s.projects {
			if p.UserID == userID && p.Name == *update.Name && p.ProjectID != projectID {
				return nil, apperrors.ErrDuplicate
			}
		}
		r.s.projects[i].Name = *update.Name
	}
	if update.IsInitialized != nil {
		r.s.projects[i].IsInitialized = *update.IsInitialized
	}
	return r.copyOf(i), nil
}

func (r *memProjectRepo) AddFolderToProject(_ context.Context, userID, projectID, folderID string) (*domain.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(userID, projectID)
	if i < 0 {
		return nil, apperrors.ErrNotFound
	}
	if !r.s.projects[i].HasFolder(folderID) {
		r.s.projects[i].FolderIDs = append(r.s.projects[i].FolderIDs, folderID)
	}
	return r.copyOf(i), nil
}

func (r *memProjectRepo) DeleteProject(_ context.Context, userID, projectID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	i := r.find(userID, projectID)
	if i < 0 {
		return apperrors.ErrNotFound
	}
	r.s.projects = slices.Delete(r.s.projects, i, i+1)
	return nil
}
