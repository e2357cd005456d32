package usecase

import (
	"fmt"
	"strings"

	"github.com/diillson/count-ovro-files/internal/domain/entity"
	"github.com/diillson/count-ovro-files/internal/domain/repository"
	"github.com/diillson/count-ovro-files/internal/shared/types"
)

const (
	DefaultMaxDepth = 5
	DefaultDir      = "."
)

var supportedReportTypes = map[string]bool{
	"txt": true,
	"pdf": true,
}

// CountUseCase conta os MS files por data e sub-band e imprime a tabela.
type CountUseCase struct {
	fsRepo     repository.FileSystemRepository
	exportRepo repository.ExportRepository
	configRepo repository.ConfigRepository
	console    types.ConsoleInterface
}

// NewCountUseCase creates a new count use case.
func NewCountUseCase(
	fsRepo repository.FileSystemRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	console types.ConsoleInterface,
) *CountUseCase {
	return &CountUseCase{
		fsRepo:     fsRepo,
		exportRepo: exportRepo,
		configRepo: configRepo,
		console:    console,
	}
}

// ApplyConfig mescla o arquivo de configuração nos argumentos.
// Values in the file only fill what the command line left unset; set reports which
// flags were given explicitly.
func (uc *CountUseCase) ApplyConfig(args *types.CLIArgs, set func(flag string) bool) error {
	if args.ConfigFile == "" {
		return nil
	}

	cfg, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
	if err != nil {
		return err
	}

	if len(args.Dirs) == 0 && len(cfg.Dirs) > 0 {
		args.Dirs = cfg.Dirs
	}
	if !set("max-depth") && cfg.MaxDepth != nil {
		args.MaxDepth = *cfg.MaxDepth
	}
	if !set("report-name") && cfg.ReportName != "" {
		args.ReportName = cfg.ReportName
	}
	if !set("report-type") && len(cfg.ReportType) > 0 {
		args.ReportType = cfg.ReportType
	}
	if !set("dir") && cfg.Dir != "" {
		args.Dir = cfg.Dir
	}
	if !set("verbose") && cfg.Verbose {
		args.Verbose = true
	}

	uc.console.LogInfo("Loaded configuration from %s", args.ConfigFile)
	return nil
}

// ValidateArgs aplica os valores padrão e rejeita argumentos inválidos.
func (uc *CountUseCase) ValidateArgs(args *types.CLIArgs) error {
	if args.MaxDepth < 0 {
		return fmt.Errorf("invalid --max-depth %d: %w", args.MaxDepth, types.ErrInvalidMaxDepth)
	}
	if len(args.Dirs) == 0 {
		args.Dirs = []string{DefaultDir}
	}

	if args.ReportName == "" {
		return nil
	}
	for i, reportType := range args.ReportType {
		reportType = strings.ToLower(strings.TrimSpace(reportType))
		if !supportedReportTypes[reportType] {
			return fmt.Errorf("%w: %q (supported: txt, pdf)", types.ErrUnsupportedReportType, reportType)
		}
		args.ReportType[i] = reportType
	}
	return nil
}

// Scan percorre cada diretório de entrada e acumula as contagens em uma nova tabela.
// Nothing is kept if any directory fails to list.
func (uc *CountUseCase) Scan(dirs []string, maxDepth int) (*entity.CountTable, error) {
	table := entity.NewCountTable()
	walker := NewTreeWalker(uc.fsRepo, maxDepth)

	status := uc.console.Status("Scanning for MS files...")
	defer status.Stop()

	leaves := 0
	onLeaf := func(leaf entity.DirEntry) {
		leaves++
		match, ok := entity.MatchFilename(leaf.Name)
		if !ok {
			uc.console.LogInfo("Skipping %s: name does not match the expected pattern", leaf.Path)
			return
		}
		table.RecordMatch(match)
	}

	for _, dir := range dirs {
		uc.console.LogInfo("Scanning %s (max depth %d)", dir, maxDepth)
		status.Update(fmt.Sprintf("Scanning %s...", dir))

		if err := walker.Walk(dir, onLeaf); err != nil {
			return nil, err
		}
	}

	uc.console.LogInfo("Found %d leaf containers, %d matched", leaves, table.Total())
	return table, nil
}

// RunCount executa a funcionalidade principal: varredura, consolidação e relatório.
func (uc *CountUseCase) RunCount(args *types.CLIArgs) error {
	if err := uc.ValidateArgs(args); err != nil {
		return err
	}

	table, err := uc.Scan(args.Dirs, args.MaxDepth)
	if err != nil {
		return err
	}

	bands := table.Consolidate()
	report := RenderReport(table, bands)
	uc.console.Print(report)

	if args.ReportName != "" {
		uc.exportReports(table, bands, report, args)
	}

	return nil
}

// exportReports grava cópias do relatório; falhas são registradas e não interrompem a execução.
func (uc *CountUseCase) exportReports(table *entity.CountTable, bands []string, report string, args *types.CLIArgs) {
	for _, reportType := range args.ReportType {
		switch reportType {
		case "txt":
			path, err := uc.exportRepo.ExportToText(report, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export report to text: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to text: %s", path)
			}
		case "pdf":
			path, err := uc.exportRepo.ExportToPDF(table, bands, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export report to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported report to PDF: %s", path)
			}
		}
	}
}
