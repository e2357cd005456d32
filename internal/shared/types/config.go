package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Dirs       []string `json:"dirs" yaml:"dirs" toml:"dirs"`
	MaxDepth   *int     `json:"max_depth" yaml:"max_depth" toml:"max_depth"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	Verbose    bool     `json:"verbose" yaml:"verbose" toml:"verbose"`
}
