package usecases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupOldSpoolFiles(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "upload-old.bin")
	newFile := filepath.Join(dir, "upload-new.bin")
	require.NoError(t, os.WriteFile(oldFile, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(newFile, []byte("y"), 0644))

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	svc := NewCleanupService(dir)
	require.NoError(t, svc.CleanupOldSpoolFiles(24*time.Hour))

	_, err := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(newFile)
	assert.NoError(t, err)
}

func TestCleanupMissingDirReturnsError(t *testing.T) {
	svc := NewCleanupService(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, svc.CleanupOldSpoolFiles(time.Hour))
}
