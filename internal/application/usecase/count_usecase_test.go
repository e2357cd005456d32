package usecase

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/diillson/count-ovro-files/internal/adapter/driven/filesystem"
	"github.com/diillson/count-ovro-files/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUseCase(fsRepo *fakeFS) (*CountUseCase, *fakeConsole, *fakeExport, *fakeConfig) {
	console := &fakeConsole{}
	export := &fakeExport{}
	config := &fakeConfig{cfg: &types.Config{}}
	if fsRepo == nil {
		return NewCountUseCase(filesystem.NewFileSystemRepository(), export, config, console), console, export, config
	}
	return NewCountUseCase(fsRepo, export, config, console), console, export, config
}

func noFlagsSet(string) bool { return false }

func TestRunCountMalformedSuffixIgnored(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"20230101_120000_41MHz.ms",
		"20230101_130000_46MHt.ms",
		"20230102_010000_41MHz.ms",
	)

	uc, console, _, _ := newTestUseCase(nil)
	err := uc.RunCount(&types.CLIArgs{Dirs: []string{root}, MaxDepth: 1})
	require.NoError(t, err)

	want := "" +
		"  date    41MHz\n" +
		"20230101      1\n" +
		"20230102      1\n"
	assert.Equal(t, want, console.out)
	assert.NotContains(t, console.out, "46MHz")
}

func TestRunCountConsolidatesMissingBands(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"day1/20230101_120000_41MHz.ms",
		"day1/20230101_120000_46MHz.ms",
		"day2/20230102_120000_41MHz.ms",
	)

	uc, console, _, _ := newTestUseCase(nil)
	require.NoError(t, uc.RunCount(&types.CLIArgs{Dirs: []string{root}, MaxDepth: 5}))

	want := "" +
		"  date    41MHz  46MHz\n" +
		"20230101      1      1\n" +
		"20230102      1      0\n"
	assert.Equal(t, want, console.out)
}

func TestRunCountEmptyDirectory(t *testing.T) {
	uc, console, _, _ := newTestUseCase(nil)

	err := uc.RunCount(&types.CLIArgs{Dirs: []string{t.TempDir()}, MaxDepth: 5})

	require.NoError(t, err)
	assert.Equal(t, "  date  \n", console.out)
}

func TestRunCountMultipleRootsAccumulate(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	mkdirs(t, first, "20230101_120000_41MHz.ms")
	mkdirs(t, second, "20230101_130000_41MHz.ms", "obs/20230103_130000_73MHz.ms")

	uc, console, _, _ := newTestUseCase(nil)
	require.NoError(t, uc.RunCount(&types.CLIArgs{Dirs: []string{first, second}, MaxDepth: 5}))

	want := "" +
		"  date    41MHz  73MHz\n" +
		"20230101      2      0\n" +
		"20230103      0      1\n"
	assert.Equal(t, want, console.out)
}

func TestRunCountUnreadableRoot(t *testing.T) {
	t.Run("missing root", func(t *testing.T) {
		uc, console, _, _ := newTestUseCase(nil)

		err := uc.RunCount(&types.CLIArgs{Dirs: []string{filepath.Join(t.TempDir(), "missing")}, MaxDepth: 5})

		require.Error(t, err)
		var traversalErr *types.TraversalError
		assert.True(t, errors.As(err, &traversalErr))
		assert.Empty(t, console.out, "no table is printed on failure")
	})

	t.Run("listing fails", func(t *testing.T) {
		fs := newFakeFS("/data")
		fs.fail["/data"] = os.ErrPermission
		uc, console, _, _ := newTestUseCase(fs)

		err := uc.RunCount(&types.CLIArgs{Dirs: []string{"/data"}, MaxDepth: 5})

		require.Error(t, err)
		assert.True(t, errors.Is(err, os.ErrPermission))
		assert.Empty(t, console.out)
	})

	t.Run("second root fails after first succeeded", func(t *testing.T) {
		fs := newFakeFS("/data")
		fs.addDir("/data/20230101_120000_41MHz.ms")
		fs.addDir("/other/deep")
		fs.fail["/other/deep"] = os.ErrPermission
		uc, console, _, _ := newTestUseCase(fs)

		err := uc.RunCount(&types.CLIArgs{Dirs: []string{"/data", "/other"}, MaxDepth: 5})

		require.Error(t, err)
		assert.Empty(t, console.out)
	})
}

func TestScanLogsSkippedLeaves(t *testing.T) {
	fs := newFakeFS("/data")
	fs.addDir("/data/garbage_MHz.ms")
	fs.addDir("/data/20230101_120000_41MHz.ms")
	uc, console, _, _ := newTestUseCase(fs)

	table, err := uc.Scan([]string{"/data"}, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, table.Total())
	assert.Contains(t, console.infos, "Skipping /data/garbage_MHz.ms: name does not match the expected pattern")
	assert.Contains(t, console.infos, "Found 2 leaf containers, 1 matched")
	assert.NotEmpty(t, console.statuses)
}

func TestValidateArgs(t *testing.T) {
	uc, _, _, _ := newTestUseCase(nil)

	t.Run("defaults to current directory", func(t *testing.T) {
		args := &types.CLIArgs{MaxDepth: 5}
		require.NoError(t, uc.ValidateArgs(args))
		assert.Equal(t, []string{"."}, args.Dirs)
	})

	t.Run("negative max depth", func(t *testing.T) {
		err := uc.ValidateArgs(&types.CLIArgs{MaxDepth: -1})
		assert.True(t, errors.Is(err, types.ErrInvalidMaxDepth))
	})

	t.Run("report types normalized", func(t *testing.T) {
		args := &types.CLIArgs{ReportName: "r", ReportType: []string{" PDF", "txt"}}
		require.NoError(t, uc.ValidateArgs(args))
		assert.Equal(t, []string{"pdf", "txt"}, args.ReportType)
	})

	t.Run("unsupported report type", func(t *testing.T) {
		err := uc.ValidateArgs(&types.CLIArgs{ReportName: "r", ReportType: []string{"csv"}})
		assert.True(t, errors.Is(err, types.ErrUnsupportedReportType))
	})

	t.Run("report type ignored without report name", func(t *testing.T) {
		require.NoError(t, uc.ValidateArgs(&types.CLIArgs{ReportType: []string{"csv"}}))
	})
}

func TestApplyConfig(t *testing.T) {
	depth := 2

	t.Run("no config file", func(t *testing.T) {
		uc, _, _, config := newTestUseCase(nil)
		config.err = errors.New("must not be called")

		args := &types.CLIArgs{MaxDepth: 5}
		require.NoError(t, uc.ApplyConfig(args, noFlagsSet))
		assert.Equal(t, 5, args.MaxDepth)
	})

	t.Run("fills unset values", func(t *testing.T) {
		uc, _, _, config := newTestUseCase(nil)
		config.cfg = &types.Config{
			Dirs:       []string{"/data"},
			MaxDepth:   &depth,
			ReportName: "weekly",
			ReportType: []string{"pdf"},
			Dir:        "/reports",
			Verbose:    true,
		}

		args := &types.CLIArgs{ConfigFile: "count.toml", MaxDepth: 5, ReportType: []string{"txt"}}
		require.NoError(t, uc.ApplyConfig(args, noFlagsSet))

		assert.Equal(t, []string{"/data"}, args.Dirs)
		assert.Equal(t, 2, args.MaxDepth)
		assert.Equal(t, "weekly", args.ReportName)
		assert.Equal(t, []string{"pdf"}, args.ReportType)
		assert.Equal(t, "/reports", args.Dir)
		assert.True(t, args.Verbose)
	})

	t.Run("command line wins", func(t *testing.T) {
		uc, _, _, config := newTestUseCase(nil)
		config.cfg = &types.Config{Dirs: []string{"/data"}, MaxDepth: &depth, ReportName: "weekly"}

		args := &types.CLIArgs{ConfigFile: "count.yaml", Dirs: []string{"/cli"}, MaxDepth: 7, ReportName: "cli"}
		set := func(flag string) bool { return flag == "max-depth" || flag == "report-name" }
		require.NoError(t, uc.ApplyConfig(args, set))

		assert.Equal(t, []string{"/cli"}, args.Dirs)
		assert.Equal(t, 7, args.MaxDepth)
		assert.Equal(t, "cli", args.ReportName)
	})

	t.Run("load error", func(t *testing.T) {
		uc, _, _, config := newTestUseCase(nil)
		config.err = errors.New("boom")

		err := uc.ApplyConfig(&types.CLIArgs{ConfigFile: "count.json"}, noFlagsSet)
		assert.EqualError(t, err, "boom")
	})
}

func TestRunCountExportsReports(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "20230101_120000_41MHz.ms")

	uc, console, export, _ := newTestUseCase(nil)
	err := uc.RunCount(&types.CLIArgs{
		Dirs:       []string{root},
		MaxDepth:   5,
		ReportName: "counts",
		ReportType: []string{"txt", "pdf"},
		Dir:        "/reports",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{console.out}, export.texts)
	assert.Equal(t, 1, export.pdfs)
	assert.Len(t, console.success, 2)
}

func TestRunCountExportFailureIsNotFatal(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "20230101_120000_41MHz.ms")

	uc, console, export, _ := newTestUseCase(nil)
	export.err = errors.New("disk full")

	err := uc.RunCount(&types.CLIArgs{
		Dirs:       []string{root},
		MaxDepth:   5,
		ReportName: "counts",
		ReportType: []string{"pdf"},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, console.out)
	require.Len(t, console.errors, 1)
	assert.Contains(t, console.errors[0], "disk full")
}
