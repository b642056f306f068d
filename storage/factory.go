package storage

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ruteri/embedded-signing-demo/interfaces"
)

// StorageBackendFactory creates scratch storage backends from URI strings.
type StorageBackendFactory struct {
	log *slog.Logger
}

// NewStorageBackendFactory creates a new factory instance.
func NewStorageBackendFactory(logger *slog.Logger) *StorageBackendFactory {
	return &StorageBackendFactory{log: logger}
}

// StorageBackendFor creates a scratch backend from a location URI.
//
// Supported schemes:
//   - file:///absolute/path or file://./relative/path - local directory
//   - s3://[ACCESS_KEY:SECRET_KEY@]bucket/prefix?region=us-east-1&endpoint=host - S3 bucket
func (sf *StorageBackendFactory) StorageBackendFor(location interfaces.StorageBackendLocation) (interfaces.ScratchStorage, error) {
	switch {
	case location.IsFile():
		return sf.createFileBackend(location)
	case location.IsS3():
		return sf.createS3Backend(location)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", interfaces.ErrInvalidLocationURI, location.Scheme)
	}
}

func (sf *StorageBackendFactory) createS3Backend(loc interfaces.StorageBackendLocation) (interfaces.ScratchStorage, error) {
	sf.log.Debug("Creating S3 backend", slog.String("bucket", loc.Host))

	if loc.Host == "" {
		return nil, fmt.Errorf("%w: missing bucket in %s", interfaces.ErrInvalidLocationURI, loc.Raw)
	}

	region := loc.GetParam("region")
	if region == "" {
		region = "us-east-1"
	}

	var accessKey, secretKey string
	if loc.Auth != "" {
		accessKey, secretKey, _ = strings.Cut(loc.Auth, ":")
	}

	return NewS3Backend(loc.Host, strings.TrimPrefix(loc.Path, "/"), region, loc.GetParam("endpoint"), accessKey, secretKey, sf.log)
}

func (sf *StorageBackendFactory) createFileBackend(loc interfaces.StorageBackendLocation) (interfaces.ScratchStorage, error) {
	sf.log.Debug("Creating file backend", slog.String("uri", loc.Raw))

	path := loc.Path
	if loc.Host != "" {
		path = loc.Host + "/" + strings.TrimPrefix(path, "/")
	}

	if path == "" {
		return nil, fmt.Errorf("%w: empty path in %s", interfaces.ErrInvalidLocationURI, loc.Raw)
	}

	return NewFileBackend(path, sf.log)
}

// StorageBackendFromURIs builds a scratch backend from a comma-separated list
// of location URIs. A single URI yields that backend directly; several yield a
// MultiStorageBackend mirroring writes across all of them.
func (sf *StorageBackendFactory) StorageBackendFromURIs(uris string) (interfaces.ScratchStorage, error) {
	var backends []interfaces.ScratchStorage
	for _, raw := range strings.Split(uris, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		location, err := interfaces.NewStorageBackendLocation(raw)
		if err != nil {
			return nil, err
		}

		backend, err := sf.StorageBackendFor(location)
		if err != nil {
			return nil, fmt.Errorf("creating backend for %s: %w", raw, err)
		}
		backends = append(backends, backend)
	}

	switch len(backends) {
	case 0:
		return nil, fmt.Errorf("%w: no scratch location given", interfaces.ErrInvalidLocationURI)
	case 1:
		return backends[0], nil
	default:
		return NewMultiStorageBackend(backends, sf.log), nil
	}
}
