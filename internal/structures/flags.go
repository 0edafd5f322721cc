package structures

import "flag"

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

// ParseFlags reads the common command line flags shared by all service
// binaries. Must be called once from main.
func ParseFlags() *CliFlags {
	flags := &CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "configs/config.yaml", "path to the yaml config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug logging to stdout")
	flag.Parse()
	return flags
}
