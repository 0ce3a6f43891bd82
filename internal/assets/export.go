package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Export writes the built-in sprite set to a directory so experimenters can
// customize the art and point assets_dir at their copy. Existing files are
// not overwritten unless force is set.
func Export(targetDir string, force bool) ([]string, error) {
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create sprites directory: %w", err)
	}

	entries, err := fs.ReadDir(builtin, "sprites")
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in sprites: %w", err)
	}

	var written []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		dst := filepath.Join(targetDir, entry.Name())
		if !force {
			if _, err := os.Stat(dst); err == nil {
				continue
			}
		}
		data, err := builtin.ReadFile("sprites/" + entry.Name())
		if err != nil {
			return written, fmt.Errorf("failed to read sprite %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return written, fmt.Errorf("failed to write sprite %s: %w", entry.Name(), err)
		}
		written = append(written, entry.Name())
	}
	return written, nil
}
