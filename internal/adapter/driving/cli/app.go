package cli

import (
	"path/filepath"

	"github.com/diillson/count-ovro-files/internal/application/usecase"
	"github.com/diillson/count-ovro-files/internal/shared/types"
	"github.com/diillson/count-ovro-files/pkg/version"
	"github.com/spf13/cobra"
)

// VerboseSetter is implemented by consoles whose info output can be toggled.
type VerboseSetter interface {
	SetVerbose(verbose bool)
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd      *cobra.Command
	countUseCase *usecase.CountUseCase
	console      VerboseSetter
	version      string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string) *CLIApp {
	app := &CLIApp{
		version: versionStr,
	}

	rootCmd := &cobra.Command{
		Use:   "count-ovro-files [dirs...]",
		Short: "Count OVRO-LWA MS files and aggregate them by date and sub-band",
		Long: `Count the number of OVRO-LWA measurement sets and aggregate them by date and sub-band.

Each directory is searched at least 0 and at most --max-depth levels down for
directories ending in "MHz.ms". A measurement set is never opened once found.
The execution time depends heavily on --max-depth.`,
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "count-ovro-files version: %s\n" .Version}}`)

	rootCmd.Flags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.Flags().Int("max-depth", usecase.DefaultMaxDepth, "Maximum depth to search for MS files below each directory")
	rootCmd.Flags().StringP("report-name", "n", "", "Also save the report under this base name (without extension)")
	rootCmd.Flags().StringSliceP("report-type", "y", []string{"txt"}, "Specify report types: txt, pdf")
	rootCmd.Flags().StringP("dir", "d", "", "Directory to save the report files (default: current directory)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Log scan progress and skipped MS directories to stderr")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs overrides the command-line arguments, mainly for tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
func (app *CLIApp) parseArgs(dirs []string) (*types.CLIArgs, error) {
	flags := app.rootCmd.Flags()
	configFile, _ := flags.GetString("config-file")
	maxDepth, _ := flags.GetInt("max-depth")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	verbose, _ := flags.GetBool("verbose")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		Dirs:       dirs,
		MaxDepth:   maxDepth,
		ReportName: reportName,
		ReportType: reportType,
		Dir:        dir,
		Verbose:    verbose,
	}, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, args []string) error {
	cliArgs, err := app.parseArgs(args)
	if err != nil {
		return err
	}

	if cliArgs.Verbose {
		displayWelcomeBanner(cmd.ErrOrStderr(), app.version)
	}
	app.setVerbose(cliArgs.Verbose)

	if err := app.countUseCase.ApplyConfig(cliArgs, cmd.Flags().Changed); err != nil {
		return err
	}
	app.setVerbose(cliArgs.Verbose)

	return app.countUseCase.RunCount(cliArgs)
}

func (app *CLIApp) setVerbose(verbose bool) {
	if app.console != nil {
		app.console.SetVerbose(verbose)
	}
}

// SetCountUseCase sets the count use case for the CLI app.
func (app *CLIApp) SetCountUseCase(useCase *usecase.CountUseCase) {
	app.countUseCase = useCase
}

// SetConsole registers the console whose verbosity follows --verbose.
func (app *CLIApp) SetConsole(console VerboseSetter) {
	app.console = console
}
