// Package storage maps folders to sandboxed directories under the data root.
//
// SanitizeName is the only place raw user input is turned into a path
// component; everything downstream refuses names that did not pass through it.
package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/SscSPs/workspace_backend/internal/apperrors"
)

// SanitizeName drops every rune that is not a letter, a digit, a space, an
// underscore or a hyphen, then trims surrounding whitespace.
func SanitizeName(raw string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == ' ' || r == '_' || r == '-' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimSpace(b.String())
	if safe == "" {
		return "", apperrors.ErrInvalidName
	}
	return safe, nil
}

// Resolver turns (user_id, safe_name) into paths under the data root.
type Resolver struct {
	root string
}

// NewResolver returns a Resolver rooted at the absolute form of dataDir.
func NewResolver(dataDir string) (*Resolver, error) {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir %q: %w", dataDir, err)
	}
	return &Resolver{root: abs}, nil
}

// Root is the absolute data root.
func (r *Resolver) Root() string {
	return r.root
}

// UserDir is the user's directory relative to the data root.
func (r *Resolver) UserDir(userID string) (string, error) {
	if err := checkUserID(userID); err != nil {
		return "", err
	}
	return userID, nil
}

// RelPath is <user_id>/<safe_name> relative to the data root.
func (r *Resolver) RelPath(userID, safeName string) (string, error) {
	if err := checkUserID(userID); err != nil {
		return "", err
	}
	clean, err := SanitizeName(safeName)
	if err != nil {
		return "", err
	}
	if clean != safeName {
		return "", fmt.Errorf("folder name %q is not sanitized: %w", safeName, apperrors.ErrInvalidName)
	}
	return filepath.Join(userID, safeName), nil
}

// Resolve returns the absolute path <data_root>/<user_id>/<safe_name>.
func (r *Resolver) Resolve(userID, safeName string) (string, error) {
	rel, err := r.RelPath(userID, safeName)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.root, rel), nil
}

func checkUserID(userID string) error {
	if userID == "" || userID == "." || userID == ".." || strings.ContainsAny(userID, `/\`) {
		return fmt.Errorf("user id %q cannot be used as a directory: %w", userID, apperrors.ErrValidation)
	}
	return nil
}
