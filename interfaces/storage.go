package interfaces

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ScratchArea names a namespace inside scratch storage.
type ScratchArea string

const (
	// UploadsArea holds the documents users upload before they are sent.
	UploadsArea ScratchArea = "uploads"
	// SignedArea holds combined documents fetched from the provider.
	SignedArea ScratchArea = "signed"
)

// String returns area name.
func (a ScratchArea) String() string {
	return string(a)
}

// StorageBackendLocation represents URI for a scratch storage backend.
type StorageBackendLocation struct {
	Raw    string     // Original URI
	Scheme string     // Protocol
	Host   string     // Hostname or bucket
	Path   string     // Resource path
	Query  url.Values // Query parameters
	Auth   string     // Authentication info
}

// NewStorageBackendLocation creates a new storage location from a URI string with validation.
func NewStorageBackendLocation(uri string) (StorageBackendLocation, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return StorageBackendLocation{}, fmt.Errorf("%w: %v", ErrInvalidLocationURI, err)
	}

	switch parsed.Scheme {
	case "file", "s3":
	default:
		return StorageBackendLocation{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLocationURI, parsed.Scheme)
	}

	var auth string
	if parsed.User != nil {
		auth = parsed.User.String()
	}

	return StorageBackendLocation{
		Raw:    uri,
		Scheme: parsed.Scheme,
		Host:   parsed.Host,
		Path:   parsed.Path,
		Query:  parsed.Query(),
		Auth:   auth,
	}, nil
}

// String returns the original URI string.
func (loc StorageBackendLocation) String() string {
	return loc.Raw
}

// IsFile checks if this is a file system storage location.
func (loc StorageBackendLocation) IsFile() bool {
	return loc.Scheme == "file"
}

// IsS3 checks if this is an S3 storage location.
func (loc StorageBackendLocation) IsS3() bool {
	return loc.Scheme == "s3"
}

// GetParam returns a query parameter value.
func (loc StorageBackendLocation) GetParam(name string) string {
	return loc.Query.Get(name)
}

var (
	// ErrContentNotFound is returned when a scratch object does not exist.
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidLocationURI is returned when a storage location URI is malformed or unsupported.
	// URIs must follow the format: [scheme]://[auth@]host[:port][/path][?params]
	ErrInvalidLocationURI = errors.New("invalid storage location URI")

	// ErrInvalidName is returned for object names that would escape their area.
	ErrInvalidName = errors.New("invalid scratch object name")
)

// ScratchStorage keeps transient copies of uploads and signed output.
// Writes to an existing name overwrite it.
type ScratchStorage interface {
	// Put stores data under area/name and returns a location for logging.
	Put(ctx context.Context, area ScratchArea, name string, data []byte) (string, error)

	// Get reads back an object previously stored with Put.
	Get(ctx context.Context, area ScratchArea, name string) ([]byte, error)

	// Name returns identifier for logging.
	Name() string

	// LocationURI returns URI identifying this backend.
	LocationURI() string
}
