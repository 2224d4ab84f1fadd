package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mordilloSan/go-colorlog/logger"
	"github.com/mordilloSan/go-colorlog/logger/logflags"
	"github.com/spf13/cobra"
)

// Example demonstrating go-colorlog routing and colorizers.
// Usage: ./go-colorlog [--log-file ~/logs/app.log] [--color AUTO]
func main() {
	opt := logger.DefaultOptions()

	root := &cobra.Command{
		Use:           "go-colorlog",
		Short:         "Show how records are routed to the console and the log file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt)
		},
	}
	logflags.AddFlags(root.Flags(), &opt)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "go-colorlog:", err)
		os.Exit(1)
	}
}

func run(opt logger.Options) error {
	if err := logger.Configure(opt); err != nil {
		return err
	}
	defer logger.Close()

	if path := logger.Active().FilePath(); path != "" {
		logger.Infof("Logging to file %s", logger.File(path))
	} else {
		logger.Infof("Logging to console only (use --log-file to enable file logging)")
	}

	cwd, _ := os.Getwd()
	logger.Debugf("this never appears: DEBUG is below INFO")
	logger.Infof("started in %s at %s", logger.Dir(cwd), logger.Time(time.Now().Format(time.Kitchen)))
	logger.Infof("user %s is in %s, answer is %s", logger.Name("alice"), logger.Place("Lisbon"), logger.Val(42))
	logger.Infof("docs at %s", logger.URL("https://example.com/docs"))
	logger.Warnln("be careful, the disk is", logger.Val("91%"), "full")
	logger.Errorf("oops: %v", "something happened")

	logger.Api(200, "request successful")
	logger.Api(404, "resource not found")
	logger.Api(500, "internal server error")
	return nil
}
