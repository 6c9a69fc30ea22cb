package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocalStorage(t *testing.T) {
	tests := []struct {
		name      string
		baseDir   string
		wantError bool
	}{
		{name: "valid base directory", baseDir: t.TempDir()},
		{name: "creates non-existent directory", baseDir: filepath.Join(t.TempDir(), "downloads")},
		{name: "empty base directory", baseDir: "", wantError: true},
		{name: "dot as base directory", baseDir: ".", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage, err := NewLocalStorage(tt.baseDir)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrInvalidPath)
				return
			}
			require.NoError(t, err)
			info, err := os.Stat(storage.BaseDir())
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		})
	}
}

func TestLocalStorageUploadAndDownload(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	storage, err := NewLocalStorage(baseDir)
	require.NoError(t, err)

	require.NoError(t, storage.Upload(ctx, "a.txt", strings.NewReader("hello")))

	onDisk, err := os.ReadFile(filepath.Join(baseDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(onDisk))

	reader, err := storage.Download(ctx, "a.txt")
	require.NoError(t, err)
	defer reader.Close()
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestLocalStorageUploadOverwrites(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Upload(ctx, "test.py", strings.NewReader("first version, longer")))
	require.NoError(t, storage.Upload(ctx, "test.py", strings.NewReader("second")))

	reader, err := storage.Download(ctx, "test.py")
	require.NoError(t, err)
	defer reader.Close()
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestLocalStorageRecreatesMissingBaseDir(t *testing.T) {
	ctx := context.Background()
	baseDir := filepath.Join(t.TempDir(), "downloads")
	storage, err := NewLocalStorage(baseDir)
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(baseDir))
	require.NoError(t, storage.Upload(ctx, "a.txt", strings.NewReader("again")))

	exists, err := storage.Exists(ctx, "a.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalStorageUploadLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	storage, err := NewLocalStorage(baseDir)
	require.NoError(t, err)

	require.NoError(t, storage.Upload(ctx, "large.bin", bytes.NewReader(bytes.Repeat([]byte("x"), 1024*1024))))

	entries, err := os.ReadDir(baseDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "large.bin", entries[0].Name())

	info, err := entries[0].Info()
	require.NoError(t, err)
	assert.Equal(t, int64(1024*1024), info.Size())
}

func TestLocalStorageConcurrentWritersLastWins(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	contents := []string{"alpha", "bravo", "charlie", "delta"}
	var wg sync.WaitGroup
	for _, c := range contents {
		wg.Add(1)
		go func(c string) {
			defer wg.Done()
			assert.NoError(t, storage.Upload(ctx, "shared.txt", strings.NewReader(c)))
		}(c)
	}
	wg.Wait()

	reader, err := storage.Download(ctx, "shared.txt")
	require.NoError(t, err)
	defer reader.Close()
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Contains(t, contents, string(got))
}

func TestLocalStorageNotFound(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Download(ctx, "missing.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)

	err = storage.Delete(ctx, "missing.txt")
	assert.ErrorIs(t, err, ErrFileNotFound)

	exists, err := storage.Exists(ctx, "missing.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorageDelete(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Upload(ctx, "gone.feature", strings.NewReader("Feature: x")))
	require.NoError(t, storage.Delete(ctx, "gone.feature"))

	exists, err := storage.Exists(ctx, "gone.feature")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStoragePathTraversalPrevention(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	maliciousPaths := []string{
		"",
		"../../../etc/passwd",
		"..\\..\\..\\windows\\system32",
		"../../outside.txt",
		"subdir/../../outside.txt",
		"/etc/passwd",
	}

	for _, path := range maliciousPaths {
		t.Run("block_"+path, func(t *testing.T) {
			err := storage.Upload(ctx, path, strings.NewReader("malicious"))
			assert.ErrorIs(t, err, ErrInvalidPath)

			_, err = storage.Download(ctx, path)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}
