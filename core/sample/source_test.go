package sample_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kml-smoke/core/sample"
	"kml-smoke/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocal(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "Bike routes.kml")
	require.NoError(t, os.WriteFile(p, []byte("<kml/>"), 0o644))

	t.Run("Present", func(t *testing.T) {
		src := sample.NewLocal(p)
		assert.Equal(t, "Bike routes.kml", src.Name())

		ok, err := src.Exists(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)

		rc, err := src.Open(context.Background())
		require.NoError(t, err)
		defer rc.Close()
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "<kml/>", string(data))
	})

	t.Run("Absent", func(t *testing.T) {
		src := sample.NewLocal(filepath.Join(dir, "missing.kml"))
		ok, err := src.Exists(context.Background())
		require.NoError(t, err)
		assert.False(t, ok)

		_, err = src.Open(context.Background())
		assert.ErrorIs(t, err, sample.ErrNotFound)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := sample.NewLocal(dir).Exists(context.Background())
		assert.Error(t, err)
	})
}

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Present", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "samples").Return(true, nil)
		client.On("StatObject", mock.Anything, "samples", "kml/route.kml", mock.Anything).Return(minio.ObjectInfo{Key: "kml/route.kml"}, nil)
		client.On("GetObject", mock.Anything, "samples", "kml/route.kml", mock.Anything).
			Return(io.NopCloser(strings.NewReader("<kml/>")), nil)

		src := sample.NewStorage(client, "samples", "kml/route.kml")
		assert.Equal(t, "route.kml", src.Name())
		assert.Equal(t, "s3://samples/kml/route.kml", src.Location())

		ok, err := src.Exists(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		rc, err := src.Open(ctx)
		require.NoError(t, err)
		rc.Close()
		client.AssertExpectations(t)
	})

	t.Run("ObjectMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "samples").Return(true, nil)
		client.On("StatObject", mock.Anything, "samples", "route.kml", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

		ok, err := sample.NewStorage(client, "samples", "route.kml").Exists(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "samples").Return(false, nil)

		_, err := sample.NewStorage(client, "samples", "route.kml").Exists(ctx)
		assert.ErrorContains(t, err, "does not exist")
		client.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("StatFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "samples").Return(true, nil)
		client.On("StatObject", mock.Anything, "samples", "route.kml", mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("connection reset"))

		_, err := sample.NewStorage(client, "samples", "route.kml").Exists(ctx)
		assert.ErrorContains(t, err, "connection reset")
	})
}

func TestNew(t *testing.T) {
	src, err := sample.New(sample.Config{Source: sample.SourceLocal, Path: "a.kml"}, nil, "")
	require.NoError(t, err)
	assert.IsType(t, &sample.Local{}, src)

	_, err = sample.New(sample.Config{Source: sample.SourceStorage, Object: "a.kml"}, nil, "b")
	assert.Error(t, err)

	src, err = sample.New(sample.Config{Source: sample.SourceStorage, Object: "a.kml"}, new(mocks.Client), "b")
	require.NoError(t, err)
	assert.IsType(t, &sample.Storage{}, src)

	_, err = sample.New(sample.Config{Source: "ftp"}, nil, "")
	assert.Error(t, err)
}

func TestConfig_IsValidSource(t *testing.T) {
	assert.True(t, sample.Config{Source: sample.SourceLocal}.IsValidSource())
	assert.True(t, sample.Config{Source: sample.SourceStorage}.IsValidSource())
	assert.False(t, sample.Config{Source: ""}.IsValidSource())
}
