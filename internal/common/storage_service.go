package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StorageService writes uploaded logo/avatar files to local disk under random
// names and hands back the public URL stored on the record. Replaced files are
// not garbage collected, matching the original behavior.
type StorageService struct {
	dir     string
	baseURL string
}

func NewStorageService(dir, publicBaseURL string) (*StorageService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &StorageService{
		dir:     dir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Save stores the content under a random name keeping the original extension
// and returns the public URL.
func (s *StorageService) Save(originalName string, content io.Reader) (string, error) {
	ext := filepath.Ext(originalName)
	name := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}

// Dir exposes the storage root for the static file route.
func (s *StorageService) Dir() string {
	return s.dir
}
