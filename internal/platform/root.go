package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigFileName is the configuration file looked up when --config is not given.
const ConfigFileName = ".jot.yaml"

// ErrNoConfig is returned by FindConfig when no configuration file exists
// between startDir and the filesystem root.
var ErrNoConfig = fmt.Errorf("%s not found", ConfigFileName)

// FindConfig looks upwards from startDir for a ConfigFileName file and
// returns its absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, ConfigFileName) {
			return filepath.Join(dir, ConfigFileName), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrNoConfig
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
