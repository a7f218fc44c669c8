package storage

import (
	"context"
	"fmt"
	"os"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
	"github.com/spf13/afero"
	"golang.org/x/sync/semaphore"
)

const dirPerm os.FileMode = 0o755

// DirectoryStore performs the physical half of folder operations.
// At most maxConcurrent blocking filesystem calls run at once; callers wait
// for a slot and give up when their context is done.
type DirectoryStore struct {
	fs       afero.Fs
	resolver *Resolver
	slots    *semaphore.Weighted
}

// NewDirectoryStore wraps fs, which must already be rooted at resolver.Root().
func NewDirectoryStore(fs afero.Fs, resolver *Resolver, maxConcurrent int64) *DirectoryStore {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &DirectoryStore{
		fs:       fs,
		resolver: resolver,
		slots:    semaphore.NewWeighted(maxConcurrent),
	}
}

// NewOSDirectoryStore creates dataDir if needed and sandboxes all access to it.
func NewOSDirectoryStore(dataDir string, maxConcurrent int64) (*DirectoryStore, error) {
	resolver, err := NewResolver(dataDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(resolver.Root(), dirPerm); err != nil {
		return nil, fmt.Errorf("create data dir %q: %w", resolver.Root(), err)
	}
	fs := afero.NewBasePathFs(afero.NewOsFs(), resolver.Root())
	return NewDirectoryStore(fs, resolver, maxConcurrent), nil
}

// Resolver exposes the path mapping used by the store.
func (s *DirectoryStore) Resolver() *Resolver {
	return s.resolver
}

// Ensure creates <user>/<name>. An existing directory is not an error.
func (s *DirectoryStore) Ensure(ctx context.Context, userID, name string) error {
	rel, err := s.resolver.RelPath(userID, name)
	if err != nil {
		return err
	}
	return s.run(ctx, func() error {
		if err := s.fs.MkdirAll(rel, dirPerm); err != nil {
			return apperrors.NewStorageError("File system error", err)
		}
		return nil
	})
}

// Rename moves <user>/<oldName> to <user>/<newName>. If the old directory is
// missing, the new one is created instead and recreated is true.
func (s *DirectoryStore) Rename(ctx context.Context, userID, oldName, newName string) (recreated bool, err error) {
	oldRel, err := s.resolver.RelPath(userID, oldName)
	if err != nil {
		return false, err
	}
	newRel, err := s.resolver.RelPath(userID, newName)
	if err != nil {
		return false, err
	}
	err = s.run(ctx, func() error {
		exists, err := afero.DirExists(s.fs, oldRel)
		if err != nil {
			return apperrors.NewStorageError("File system error", err)
		}
		if !exists {
			recreated = true
			if err := s.fs.MkdirAll(newRel, dirPerm); err != nil {
				return apperrors.NewStorageError("File system error", err)
			}
			return nil
		}
		if err := s.fs.Rename(oldRel, newRel); err != nil {
			return apperrors.NewStorageError("File system error", err)
		}
		return nil
	})
	return recreated, err
}

// Remove deletes <user>/<name> and everything below it. A missing directory is not an error.
func (s *DirectoryStore) Remove(ctx context.Context, userID, name string) error {
	rel, err := s.resolver.RelPath(userID, name)
	if err != nil {
		return err
	}
	return s.run(ctx, func() error {
		if err := s.fs.RemoveAll(rel); err != nil {
			return apperrors.NewStorageError("File system error", err)
		}
		return nil
	})
}

// Exists reports whether <user>/<name> is a directory.
func (s *DirectoryStore) Exists(ctx context.Context, userID, name string) (bool, error) {
	rel, err := s.resolver.RelPath(userID, name)
	if err != nil {
		return false, err
	}
	var exists bool
	err = s.run(ctx, func() error {
		var statErr error
		exists, statErr = afero.DirExists(s.fs, rel)
		if statErr != nil {
			return apperrors.NewStorageError("File system error", statErr)
		}
		return nil
	})
	return exists, err
}

func (s *DirectoryStore) run(ctx context.Context, op func() error) error {
	if err := s.slots.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("waiting for filesystem slot: %w", err)
	}
	defer s.slots.Release(1)
	return op()
}
