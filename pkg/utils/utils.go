package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigDir returns the directory holding runx's config and history
// files. RUNX_CONFIG_DIR overrides the default ~/.runx.
func ConfigDir() (string, error) {
	if dir := os.Getenv("RUNX_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".runx"), nil
}

// ExpandHome replaces a leading ~ with the user's home directory. Paths
// without the prefix come back unchanged, as does everything when the
// home directory cannot be determined.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
