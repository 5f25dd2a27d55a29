package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "zmkbuild"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644
)

// Path to the directory for user-level configuration.
//
//	Linux:   $XDG_CONFIG_HOME/zmkbuild or ~/.config/zmkbuild
//	macOS:   ~/Library/Application Support/zmkbuild
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, toolName)
}

// Default path to the user-level configuration file.
//
//	Linux:   $XDG_CONFIG_HOME/zmkbuild/config.yaml
//	macOS:   ~/Library/Application Support/zmkbuild/config.yaml
func GlobalConfig() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Name of the per-workspace configuration file, resolved against the
// directory the tool runs in.
const WorkspaceConfigName = ".zmkbuild.yaml"

// Path to the workspace configuration file under the given directory.
func WorkspaceConfig(dir string) string {
	return filepath.Join(dir, WorkspaceConfigName)
}
