package usecase

import (
	"fmt"

	"github.com/diillson/count-ovro-files/internal/domain/entity"
	"github.com/diillson/count-ovro-files/internal/domain/repository"
	"github.com/diillson/count-ovro-files/internal/shared/types"
)

// LeafFunc receives every leaf container found by a TreeWalker.
type LeafFunc func(leaf entity.DirEntry)

// TreeWalker visits directories depth-first below a root, down to MaxDepth levels,
// and reports leaf containers without ever opening them.
type TreeWalker struct {
	fsRepo   repository.FileSystemRepository
	maxDepth int
}

// NewTreeWalker cria um novo TreeWalker.
func NewTreeWalker(fsRepo repository.FileSystemRepository, maxDepth int) *TreeWalker {
	return &TreeWalker{
		fsRepo:   fsRepo,
		maxDepth: maxDepth,
	}
}

// Walk lista os filhos imediatos de root e visita cada diretório na profundidade 0.
// The root itself is never tested as a leaf. The first listing failure aborts the walk.
func (w *TreeWalker) Walk(root string, onLeaf LeafFunc) error {
	if !w.fsRepo.IsDir(root) {
		return &types.TraversalError{Path: root, Err: types.ErrNotDirectory}
	}

	children, err := w.fsRepo.ListChildren(root)
	if err != nil {
		return fmt.Errorf("error reading input directory: %w", err)
	}

	for _, child := range children {
		if !child.IsDir {
			continue
		}
		if err := w.visit(child, 0, onLeaf); err != nil {
			return err
		}
	}
	return nil
}

// visit testa a entrada como folha antes de checar o limite de profundidade,
// então uma folha exatamente em maxDepth ainda é contada.
func (w *TreeWalker) visit(dir entity.DirEntry, depth int, onLeaf LeafFunc) error {
	if dir.IsLeaf() {
		onLeaf(dir)
		return nil
	}
	if depth >= w.maxDepth {
		return nil
	}

	children, err := w.fsRepo.ListChildren(dir.Path)
	if err != nil {
		return fmt.Errorf("unable to read sub-directory: %w", err)
	}

	for _, child := range children {
		if !child.IsDir {
			continue
		}
		if err := w.visit(child, depth+1, onLeaf); err != nil {
			return err
		}
	}
	return nil
}
