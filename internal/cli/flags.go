package cli

import "flag"

// Flags holds all command line flags
type Flags struct {
	Version *bool
	Session *string
	Config  *string
	Json    *bool
	Verbose *bool
	NoGroup *bool
}

// GlobalFlags holds the parsed command line flags
var GlobalFlags *Flags

// InitFlags initializes all command line flags
func InitFlags() *Flags {
	return &Flags{
		Version: flag.Bool("version", false, "Show version information"),
		Session: flag.String("session", "", "Path to the session snapshot file (overrides config)"),
		Config:  flag.String("config", "", "Path to the config file (defaults to ~/.config/gocalc/config.yaml)"),
		Json:    flag.Bool("json", false, "Output results in JSON format"),
		Verbose: flag.Bool("verbose", false, "Enable verbose output"),
		NoGroup: flag.Bool("no-group", false, "Disable digit grouping in printed results"),
	}
}

// ParseFlags parses command line flags with custom usage
func ParseFlags(usage func()) {
	if GlobalFlags == nil {
		GlobalFlags = InitFlags()
	}
	flag.Usage = usage
	flag.Parse()
}
