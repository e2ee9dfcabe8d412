package imageio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mediakit/nv12/pkg/frame"
)

// WriteFileAtomic writes data to path through a uniquely named temp file in
// the same directory followed by a rename. Readers never observe a partial
// file, and a failed write leaves no output at path.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", frame.ErrIO, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", frame.ErrIO, err)
	}
	return nil
}
