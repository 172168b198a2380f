package latex

import (
	"fmt"
	"os"
	"path/filepath"

	"resume-tailor/internal/shared/util"
)

// NewStagingDir creates a per-request build directory under root,
// named from the sanitized company and title labels. Collisions get a
// numeric suffix so concurrent runs for the same posting never share
// a directory.
func NewStagingDir(root, company, title string) (string, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return "", fmt.Errorf("create output root: %w", err)
	}

	base := util.SanitizeLabel(company) + "_" + util.SanitizeLabel(title)
	candidate := filepath.Join(root, base)
	for i := 0; ; i++ {
		if i > 0 {
			candidate = filepath.Join(root, fmt.Sprintf("%s_%d", base, i))
		}
		err := os.Mkdir(candidate, 0o750)
		if err == nil {
			return candidate, nil
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("create staging dir: %w", err)
		}
	}
}
