package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studytrack/studytrack-backend/internal/config"
)

func TestRemoveUpload(t *testing.T) {
	dir := t.TempDir()
	s := NewMediaService(&config.Config{UploadDir: dir})

	stored := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(stored, []byte("img"), 0o644))

	t.Run("removes stored file", func(t *testing.T) {
		assert.NoError(t, s.RemoveUpload("/uploads/photo.jpg"))
		_, err := os.Stat(stored)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		assert.NoError(t, s.RemoveUpload("/uploads/gone.jpg"))
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		assert.NoError(t, s.RemoveUpload(""))
	})

	t.Run("traversal is confined to the upload dir", func(t *testing.T) {
		outside := filepath.Join(dir, "..", "escape.txt")
		require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
		defer os.Remove(outside)

		assert.NoError(t, s.RemoveUpload("/uploads/../escape.txt"))
		_, err := os.Stat(outside)
		assert.NoError(t, err, "file outside the upload dir must survive")
	})
}
