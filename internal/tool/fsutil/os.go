// Package fsutil provides the real-OS implementations of the small
// filesystem interfaces the tool packages declare for themselves.
package fsutil

import "os"

// OSFileSystem implements filesystem operations using the real OS.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}
