package store

import (
	"io"
	"io/fs"
	"os"
)

// FileSystem is the narrow slice of filesystem behaviour the store needs.
// Implementations must surface OS-level errors (os.ErrNotExist,
// os.ErrPermission, os.ErrExist) unwrapped enough for errors.Is to match,
// rather than swallowing them. Tests substitute an in-memory fake.
type FileSystem interface {
	// OpenWrite opens path for writing, creating it if necessary and
	// truncating any prior content.
	OpenWrite(path string) (WritableFile, error)

	// Rename atomically replaces newpath with oldpath.
	Rename(oldpath, newpath string) error

	// Remove deletes the named file.
	Remove(path string) error

	// ListDir returns the entries of dir.
	ListDir(dir string) ([]fs.DirEntry, error)

	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)

	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
}

// WritableFile is an open file handle that can be flushed to stable storage
// before being closed.
type WritableFile interface {
	io.Writer
	Sync() error
	Close() error
}

// osFS implements [FileSystem] on the real filesystem.
type osFS struct{}

// NewOSFileSystem returns the operating-system backed [FileSystem].
func NewOSFileSystem() FileSystem {
	return osFS{}
}

func (osFS) OpenWrite(path string) (WritableFile, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
}

func (osFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

func (osFS) Remove(path string) error {
	return os.Remove(path)
}

func (osFS) ListDir(dir string) ([]fs.DirEntry, error) {
	return os.ReadDir(dir)
}

func (osFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (osFS) MkdirAll(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
