package repository

import (
	"github.com/diillson/count-ovro-files/internal/domain/entity"
)

// FileSystemRepository defines the directory listing operations the scanner needs.
type FileSystemRepository interface {
	// ListChildren returns the immediate children of path.
	// A directory that cannot be listed yields a *types.TraversalError.
	ListChildren(path string) ([]entity.DirEntry, error)
	IsDir(path string) bool
}
