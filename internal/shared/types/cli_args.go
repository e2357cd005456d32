package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Dirs       []string
	MaxDepth   int
	ReportName string
	ReportType []string
	Dir        string
	Verbose    bool
}
