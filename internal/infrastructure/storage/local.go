package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store persists uploaded files and hands back /storage/ relative paths
// suitable for persisting in the database.
type Store interface {
	Save(file *multipart.FileHeader, dir string) (string, error)
	SaveReader(r io.Reader, dir, originalName string) (string, error)
	Delete(relPath string) error
}

// LocalStore writes files under a root directory on local disk.
type LocalStore struct {
	root string
}

// NewLocalStore creates a local disk store rooted at root
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

// Save stores an uploaded file and returns its /storage/ relative path.
func (s *LocalStore) Save(file *multipart.FileHeader, dir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	return s.SaveReader(src, dir, file.Filename)
}

// SaveReader stores the contents of r under dir with a random filename
// keeping the original extension, and returns the /storage/ relative path.
func (s *LocalStore) SaveReader(r io.Reader, dir, originalName string) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	target := filepath.Join(s.root, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return "/storage/" + filepath.ToSlash(filepath.Join(dir, name)), nil
}

// Delete removes a previously saved file by its /storage/ relative path.
// Deleting a path that no longer exists is not an error.
func (s *LocalStore) Delete(relPath string) error {
	trimmed := strings.TrimPrefix(relPath, "/storage/")
	if trimmed == "" || strings.Contains(trimmed, "..") {
		return fmt.Errorf("invalid storage path: %s", relPath)
	}

	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(trimmed)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
