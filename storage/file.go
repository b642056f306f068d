package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ruteri/embedded-signing-demo/interfaces"
)

// FileBackend implements scratch storage on the local file system.
// Each area is a subdirectory of the base directory.
type FileBackend struct {
	baseDir     string
	log         *slog.Logger
	locationURI string
}

// NewFileBackend creates a file backend rooted at baseDir, creating the area
// subdirectories if they don't exist.
func NewFileBackend(baseDir string, log *slog.Logger) (*FileBackend, error) {
	for _, area := range []interfaces.ScratchArea{interfaces.UploadsArea, interfaces.SignedArea} {
		if err := os.MkdirAll(filepath.Join(baseDir, area.String()), 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s directory: %w", area, err)
		}
	}

	return &FileBackend{
		baseDir:     baseDir,
		log:         log,
		locationURI: fmt.Sprintf("file://%s", baseDir),
	}, nil
}

// Put writes data to area/name, replacing any previous file with that name.
func (b *FileBackend) Put(ctx context.Context, area interfaces.ScratchArea, name string, data []byte) (string, error) {
	filePath, err := b.getFilePath(area, name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	b.log.Debug("Stored scratch file",
		slog.String("path", filePath),
		slog.Int("size", len(data)))

	return filePath, nil
}

// Get reads area/name. Returns ErrContentNotFound if the file doesn't exist.
func (b *FileBackend) Get(ctx context.Context, area interfaces.ScratchArea, name string) ([]byte, error) {
	filePath, err := b.getFilePath(area, name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil, interfaces.ErrContentNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return data, nil
}

// Name returns a unique identifier for this storage backend.
func (b *FileBackend) Name() string {
	return fmt.Sprintf("file-%s", filepath.Base(b.baseDir))
}

// LocationURI returns the URI that identifies this storage backend.
func (b *FileBackend) LocationURI() string {
	return b.locationURI
}

func (b *FileBackend) getFilePath(area interfaces.ScratchArea, name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return filepath.Join(b.baseDir, area.String(), name), nil
}
