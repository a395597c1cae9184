package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkinFileRepository_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	repo := NewSkinFileRepository(dir)
	ctx := context.Background()

	assert.Equal(t, filepath.Join(dir, "skin-1.png"), repo.Path("skin-1"))

	data := []byte("\xff\xd8\xff jpeg bytes")
	require.NoError(t, repo.Save(ctx, "skin-1", data))

	got, err := os.ReadFile(filepath.Join(dir, "skin-1.png"))
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// ids are never reused
	assert.Error(t, repo.Save(ctx, "skin-1", []byte("other")))

	require.NoError(t, repo.Delete(ctx, "skin-1"))
	_, err = os.Stat(filepath.Join(dir, "skin-1.png"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, repo.Delete(ctx, "skin-1"))
}

func TestSkinFileRepository_MissingDir(t *testing.T) {
	repo := NewSkinFileRepository(filepath.Join(t.TempDir(), "missing"))

	err := repo.Save(context.Background(), "skin-1", []byte("data"))
	assert.Error(t, err)
}
