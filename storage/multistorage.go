package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ruteri/embedded-signing-demo/interfaces"
)

// MultiStorageBackend mirrors scratch objects to several backends. Writes go
// to every backend and succeed if at least one does; reads return the first
// backend that has the object.
type MultiStorageBackend struct {
	backends []interfaces.ScratchStorage
	log      *slog.Logger
}

// NewMultiStorageBackend creates a mirroring backend over backends, in read order.
func NewMultiStorageBackend(backends []interfaces.ScratchStorage, logger *slog.Logger) *MultiStorageBackend {
	if logger == nil {
		logger = slog.Default()
	}

	return &MultiStorageBackend{
		backends: backends,
		log:      logger,
	}
}

// Put stores data in all backends. The returned location is that of the first
// backend that accepted the write.
func (m *MultiStorageBackend) Put(ctx context.Context, area interfaces.ScratchArea, name string, data []byte) (string, error) {
	start := time.Now()
	var location string
	var errs []error

	for _, backend := range m.backends {
		loc, err := backend.Put(ctx, area, name, data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
			m.log.Warn("Failed to store to backend",
				slog.String("backend_name", backend.Name()),
				slog.String("name", name),
				"err", err)
			continue
		}
		if location == "" {
			location = loc
		}
	}

	if location == "" {
		m.log.Error("All backends failed to store data",
			slog.Int("failed_backends", len(errs)),
			slog.Duration("duration", time.Since(start)))
		return "", fmt.Errorf("all backends failed to store %s: %w", name, errors.Join(errs...))
	}

	return location, nil
}

// Get returns the object from the first backend that has it.
func (m *MultiStorageBackend) Get(ctx context.Context, area interfaces.ScratchArea, name string) ([]byte, error) {
	var errs []error

	for _, backend := range m.backends {
		data, err := backend.Get(ctx, area, name)
		if err == nil {
			return data, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", backend.Name(), err))
		m.log.Debug("Failed to fetch from backend",
			slog.String("backend_name", backend.Name()),
			slog.String("name", name),
			"err", err)
	}

	if len(errs) == 0 {
		return nil, interfaces.ErrContentNotFound
	}
	return nil, fmt.Errorf("all backends failed to fetch %s: %w", name, errors.Join(errs...))
}

// Name returns the name of this backend
func (m *MultiStorageBackend) Name() string {
	return "multi-storage"
}

// LocationURI returns the URI of this backend
func (m *MultiStorageBackend) LocationURI() string {
	var locations []string
	for _, backend := range m.backends {
		locations = append(locations, backend.LocationURI())
	}

	return "multi:[" + strings.Join(locations, ",") + "]"
}
