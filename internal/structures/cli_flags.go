package structures

import "github.com/spf13/pflag"

// CliFlags carries what was parsed from the command line. FlagSet is kept so
// the config provider can bind individual flags over file and env values.
type CliFlags struct {
	ConfigPath string
	DebugMode  bool
	Command    string
	FlagSet    *pflag.FlagSet
}
