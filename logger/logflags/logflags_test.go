package logflags

import (
	"testing"

	"github.com/mordilloSan/go-colorlog/logger"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(opt *logger.Options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(flagSet, opt)
	return flagSet
}

func TestAddFlagsDefaults(t *testing.T) {
	t.Setenv("LOGGER_COLOR", "")
	opt := logger.DefaultOptions()
	flagSet := newFlagSet(&opt)
	require.NoError(t, flagSet.Parse(nil))

	assert.Equal(t, logger.DefaultOptions(), opt)
	for name, want := range map[string]string{
		"log-file":        "",
		"log-format":      logger.DefaultFormat,
		"log-date-format": logger.DefaultDateFormat,
		"strip-console":   "false",
		"strip-file":      "true",
		"color":           "ALWAYS",
	} {
		f := flagSet.Lookup(name)
		require.NotNil(t, f, name)
		assert.Equal(t, want, f.DefValue, name)
	}
}

func TestAddFlagsParse(t *testing.T) {
	t.Setenv("LOGGER_COLOR", "")
	opt := logger.DefaultOptions()
	flagSet := newFlagSet(&opt)
	require.NoError(t, flagSet.Parse([]string{
		"--log-file", "~/logs/app.log",
		"--log-format", "{level}: {message}",
		"--log-date-format", "15:04",
		"--strip-console",
		"--strip-file=false",
		"--color", "never",
	}))

	assert.Equal(t, logger.Options{
		FilePath:     "~/logs/app.log",
		Format:       "{level}: {message}",
		DateFormat:   "15:04",
		StripConsole: true,
		StripFile:    false,
		Color:        logger.ColorNever,
	}, opt)
}

func TestAddFlagsBadColor(t *testing.T) {
	opt := logger.DefaultOptions()
	flagSet := newFlagSet(&opt)
	err := flagSet.Parse([]string{"--color", "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown color mode")
}
