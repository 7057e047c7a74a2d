package sample

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"kml-smoke/core/storage"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned by Open when the sample file does not exist.
var ErrNotFound = errors.New("sample file not found")

// Source provides the sample KML file. Every Open returns a fresh reader
// that the caller must close.
type Source interface {
	// Name is the file name sent in the multipart upload.
	Name() string
	// Location describes where the file is read from, for diagnostics.
	Location() string
	// Exists reports whether the file is present.
	Exists(ctx context.Context) (bool, error)
	// Open returns a reader over the file contents.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// New builds the Source described by cfg. client may be nil for local sources.
func New(cfg Config, client storage.Client, bucket string) (Source, error) {
	switch cfg.Source {
	case SourceLocal, "":
		return NewLocal(cfg.Path), nil
	case SourceStorage:
		if client == nil {
			return nil, fmt.Errorf("storage sample source requires a storage client")
		}
		return NewStorage(client, bucket, cfg.Object), nil
	default:
		return nil, fmt.Errorf("unknown sample source: %s", cfg.Source)
	}
}

// Local reads the sample from the filesystem.
type Local struct {
	path string
}

// NewLocal creates a Local source for path.
func NewLocal(path string) *Local {
	return &Local{path: path}
}

func (l *Local) Name() string     { return filepath.Base(l.path) }
func (l *Local) Location() string { return l.path }

func (l *Local) Exists(_ context.Context) (bool, error) {
	info, err := os.Stat(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", l.path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", l.path)
	}
	return true, nil
}

func (l *Local) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open %s: %w", l.path, err)
	}
	return f, nil
}

// Storage reads the sample from an object bucket.
type Storage struct {
	client storage.Client
	bucket string
	object string
}

// NewStorage creates a Storage source for bucket/object.
func NewStorage(client storage.Client, bucket, object string) *Storage {
	return &Storage{client: client, bucket: bucket, object: object}
}

func (s *Storage) Name() string     { return path.Base(s.object) }
func (s *Storage) Location() string { return "s3://" + s.bucket + "/" + s.object }

func (s *Storage) Exists(ctx context.Context) (bool, error) {
	ok, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return false, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !ok {
		return false, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	if _, err := s.client.StatObject(ctx, s.bucket, s.object, minio.StatObjectOptions{}); err != nil {
		if storage.IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", s.Location(), err)
	}
	return true, nil
}

func (s *Storage) Open(ctx context.Context) (io.ReadCloser, error) {
	rc, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.Location(), err)
	}
	return rc, nil
}
