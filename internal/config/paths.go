package config

import "path/filepath"

const (
	// DirName is the per-repository settings directory.
	DirName = ".changelog"
	// FileName is the settings file inside DirName.
	FileName = "changelog.config"
	// backupSuffix is appended to a malformed settings file before it is replaced.
	backupSuffix = ".bak"
)

// Dir returns the settings directory for the repository rooted at root.
func Dir(root string) string {
	return filepath.Join(root, DirName)
}

// Path returns the settings file path for the repository rooted at root.
func Path(root string) string {
	return filepath.Join(root, DirName, FileName)
}

// BackupPath returns where a malformed settings file is moved before defaults are written.
func BackupPath(root string) string {
	return Path(root) + backupSuffix
}
