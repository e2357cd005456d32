package usecase

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"testing"

	"github.com/diillson/count-ovro-files/internal/domain/entity"
	"github.com/diillson/count-ovro-files/internal/shared/types"
	"github.com/stretchr/testify/require"
)

// fakeFS is an in-memory directory tree keyed by slash-separated paths.
type fakeFS struct {
	dirs   map[string]bool
	files  map[string]bool
	fail   map[string]error
	listed []string
}

func newFakeFS(root string) *fakeFS {
	return &fakeFS{
		dirs:  map[string]bool{root: true},
		files: map[string]bool{},
		fail:  map[string]error{},
	}
}

func (f *fakeFS) addDir(p string) {
	for p != "." && p != "/" && p != "" {
		f.dirs[p] = true
		p = path.Dir(p)
	}
}

func (f *fakeFS) addFile(p string) {
	f.addDir(path.Dir(p))
	f.files[p] = true
}

func (f *fakeFS) ListChildren(dir string) ([]entity.DirEntry, error) {
	f.listed = append(f.listed, dir)
	if err, ok := f.fail[dir]; ok {
		return nil, &types.TraversalError{Path: dir, Err: err}
	}
	if !f.dirs[dir] {
		return nil, &types.TraversalError{Path: dir, Err: os.ErrNotExist}
	}

	var children []entity.DirEntry
	for p := range f.dirs {
		if path.Dir(p) == dir && p != dir {
			children = append(children, entity.DirEntry{Name: path.Base(p), Path: p, IsDir: true})
		}
	}
	for p := range f.files {
		if path.Dir(p) == dir {
			children = append(children, entity.DirEntry{Name: path.Base(p), Path: p})
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].Path < children[j].Path })
	return children, nil
}

func (f *fakeFS) IsDir(p string) bool {
	return f.dirs[p]
}

func (f *fakeFS) wasListed(p string) bool {
	for _, l := range f.listed {
		if l == p {
			return true
		}
	}
	return false
}

// fakeConsole records everything written through the console interface.
type fakeConsole struct {
	out      string
	infos    []string
	warnings []string
	errors   []string
	success  []string
	statuses []string
}

func (c *fakeConsole) Print(a ...interface{}) { c.out += fmt.Sprint(a...) }
func (c *fakeConsole) Printf(format string, a ...interface{}) { c.out += fmt.Sprintf(format, a...) }
func (c *fakeConsole) Println(a ...interface{}) { c.out += fmt.Sprintln(a...) }

func (c *fakeConsole) LogInfo(format string, a ...interface{}) {
	c.infos = append(c.infos, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogWarning(format string, a ...interface{}) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogError(format string, a ...interface{}) {
	c.errors = append(c.errors, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) LogSuccess(format string, a ...interface{}) {
	c.success = append(c.success, fmt.Sprintf(format, a...))
}

func (c *fakeConsole) Status(message string) types.StatusHandle {
	c.statuses = append(c.statuses, message)
	return &fakeStatus{console: c}
}

type fakeStatus struct {
	console *fakeConsole
	stopped bool
}

func (s *fakeStatus) Update(message string) {
	s.console.statuses = append(s.console.statuses, message)
}

func (s *fakeStatus) Stop() { s.stopped = true }

// fakeExport records export calls.
type fakeExport struct {
	texts []string
	pdfs  int
	err   error
}

func (e *fakeExport) ExportToText(report string, filename, outputDir string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	e.texts = append(e.texts, report)
	return filepath.Join(outputDir, filename+".txt"), nil
}

func (e *fakeExport) ExportToPDF(table *entity.CountTable, bands []string, filename, outputDir string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	e.pdfs++
	return filepath.Join(outputDir, filename+".pdf"), nil
}

// fakeConfig returns a fixed configuration.
type fakeConfig struct {
	cfg *types.Config
	err error
}

func (c *fakeConfig) LoadConfigFile(filePath string) (*types.Config, error) {
	return c.cfg, c.err
}

// mkdirs creates directories below root on the real filesystem.
func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755))
	}
}
