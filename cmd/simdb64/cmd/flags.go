package cmd

import (
	"runtime"

	"github.com/spf13/pflag"
)

// Common flags
const (
	flagJobs    flagName = "jobs"
	flagStdout  flagName = "stdout"
	flagOutDir  flagName = "outdir"
	flagVerbose flagName = "verbose"
)

func addGlobalFlags(f *pflag.FlagSet) {
	f.IntP(string(flagJobs), "j", runtime.GOMAXPROCS(0),
		"maximum number of files converted at the same time")
	f.Bool(string(flagStdout), false,
		"write every result to stdout in argument order")
	f.StringP(string(flagOutDir), "o", "",
		"directory for output files (default: next to the input)")
	f.BoolP(string(flagVerbose), "v", false,
		"log every converted file")
}

type flagName string

func (f flagName) Bool(cmd *Command) bool {
	v, _ := cmd.Flags().GetBool(string(f))
	return v
}

func (f flagName) Int(cmd *Command) int {
	v, _ := cmd.Flags().GetInt(string(f))
	return v
}

func (f flagName) String(cmd *Command) string {
	v, _ := cmd.Flags().GetString(string(f))
	return v
}
