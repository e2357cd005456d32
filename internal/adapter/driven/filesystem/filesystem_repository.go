package filesystem

import (
	"os"
	"path/filepath"

	"github.com/diillson/count-ovro-files/internal/domain/entity"
	"github.com/diillson/count-ovro-files/internal/domain/repository"
	"github.com/diillson/count-ovro-files/internal/shared/types"
)

// FileSystemRepositoryImpl implementa o FileSystemRepository sobre o sistema de arquivos local.
type FileSystemRepositoryImpl struct{}

// NewFileSystemRepository cria uma nova implementação do FileSystemRepository.
func NewFileSystemRepository() repository.FileSystemRepository {
	return &FileSystemRepositoryImpl{}
}

// ListChildren lista os filhos imediatos de path.
// Links simbólicos são seguidos; entradas que não podem ser resolvidas são ignoradas.
func (r *FileSystemRepositoryImpl) ListChildren(path string) ([]entity.DirEntry, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &types.TraversalError{Path: path, Err: err}
	}

	children := make([]entity.DirEntry, 0, len(entries))
	for _, e := range entries {
		childPath := filepath.Join(path, e.Name())

		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(childPath)
			if err != nil {
				// link quebrado
				continue
			}
			isDir = info.IsDir()
		}

		children = append(children, entity.DirEntry{
			Name:  e.Name(),
			Path:  childPath,
			IsDir: isDir,
		})
	}

	return children, nil
}

// IsDir reports whether path resolves to a directory.
func (r *FileSystemRepositoryImpl) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
