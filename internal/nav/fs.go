package nav

import (
	"io/fs"
	"os"
)

// FS is the filesystem capability the scanner needs. Implementations must
// return entries sorted by filename, the way os.ReadDir does; the scanner
// relies on that order directly.
type FS interface {
	ReadDir(dir string) ([]fs.DirEntry, error)
}

type osFS struct{}

func (osFS) ReadDir(dir string) ([]fs.DirEntry, error) { return os.ReadDir(dir) }

// OS returns an FS backed by the real filesystem.
func OS() FS { return osFS{} }
