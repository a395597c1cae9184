package repositories

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sbilibin2017/skins-api/internal/logger"
)

// SkinFileRepository stores raw skin bytes as <dir>/<id>.png.
// The suffix is fixed regardless of the sniffed content type.
type SkinFileRepository struct {
	dir string
}

func NewSkinFileRepository(dir string) *SkinFileRepository {
	return &SkinFileRepository{dir: dir}
}

// Path returns the file location for a skin id.
func (r *SkinFileRepository) Path(id string) string {
	return filepath.Join(r.dir, id+".png")
}

// Save writes data to a new file; an existing file for the same id is an error.
func (r *SkinFileRepository) Save(ctx context.Context, id string, data []byte) error {
	path := r.Path(id)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		logger.Log.Errorw("failed to create skin file", "path", path, "error", err)
		return err
	}

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	logger.Log.Infow("skin file", "path", path, "size", len(data), "error", err)

	if err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}

// Delete removes the file for id. A missing file is not an error.
func (r *SkinFileRepository) Delete(ctx context.Context, id string) error {
	err := os.Remove(r.Path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
