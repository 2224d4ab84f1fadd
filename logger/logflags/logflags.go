// Package logflags implements command line flags to set up the log
package logflags

import (
	"github.com/mordilloSan/go-colorlog/logger"
	"github.com/spf13/pflag"
)

// AddFlags adds the log flags to the flagSet, using the current values
// in opt as defaults.
func AddFlags(flagSet *pflag.FlagSet, opt *logger.Options) {
	flagSet.StringVar(&opt.FilePath, "log-file", opt.FilePath, "Also log to this file (appended, ~ expanded)")
	flagSet.StringVar(&opt.Format, "log-format", opt.Format, "Log line template using {time}, {level}, {message} and {pid}")
	flagSet.StringVar(&opt.DateFormat, "log-date-format", opt.DateFormat, "Go time layout used for {time}")
	flagSet.BoolVar(&opt.StripConsole, "strip-console", opt.StripConsole, "Remove ANSI escape codes from console lines")
	flagSet.BoolVar(&opt.StripFile, "strip-file", opt.StripFile, "Remove ANSI escape codes from log file lines")
	flagSet.Var(&opt.Color, "color", "When to show colors on the console: AUTO|NEVER|ALWAYS")
}
