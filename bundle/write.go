package bundle

import (
	"fmt"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// WriteFile writes b to path, replacing whatever was there.
// The new contents go to a temporary file next to path that is renamed into place, so readers never see a half-written page
// and a failed write leaves the old one alone. A new page is 0644 whatever the umask; an existing one keeps its mode.
func WriteFile(path string, b []byte) error {
	if err := renameio.WriteFile(path, b, 0o644, renameio.WithTempDir(filepath.Dir(path)), renameio.WithStaticPermissions(0o644)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
