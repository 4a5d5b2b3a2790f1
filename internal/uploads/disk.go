package uploads

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"hotelhub/internal/adapters/observability"
)

// Disk stores uploaded files under a fixed directory and returns the
// relative path assigned to each file. Names combine the form field, the
// current time and a UUID, so concurrent uploads cannot collide.
type Disk struct{ dir string }

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Disk{dir: dir}, nil
}

func (d *Disk) Store(ctx context.Context, field string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%d-%s", field, time.Now().UnixMilli(), uuid.NewString())
	full := filepath.Join(d.dir, name)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		observability.ObserveUpload("disk", "failed")
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(full) // no partial files
		observability.ObserveUpload("disk", "failed")
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(full)
		observability.ObserveUpload("disk", "failed")
		return "", err
	}
	observability.ObserveUpload("disk", "stored")
	return filepath.ToSlash(full), nil
}
