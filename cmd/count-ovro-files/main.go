package main

import (
	"os"

	"github.com/diillson/count-ovro-files/internal/adapter/driven/config"
	"github.com/diillson/count-ovro-files/internal/adapter/driven/export"
	"github.com/diillson/count-ovro-files/internal/adapter/driven/filesystem"
	"github.com/diillson/count-ovro-files/internal/adapter/driving/cli"
	"github.com/diillson/count-ovro-files/internal/application/usecase"
	"github.com/diillson/count-ovro-files/pkg/console"
	"github.com/diillson/count-ovro-files/pkg/version"
	"github.com/fatih/color"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.FormatVersion())

	// Inicializa os repositórios
	fsRepo := filesystem.NewFileSystemRepository()
	exportRepo := export.NewExportRepository()
	configRepo := config.NewConfigRepository()
	consoleImpl := console.NewConsole(false)

	countUseCase := usecase.NewCountUseCase(
		fsRepo,
		exportRepo,
		configRepo,
		consoleImpl,
	)

	app.SetCountUseCase(countUseCase)
	app.SetConsole(consoleImpl)

	if err := app.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
