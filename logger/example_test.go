package logger_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mordilloSan/go-colorlog/logger"
	"github.com/sirupsen/logrus"
)

// This example shows the default console setup: INFO plain, WARNING
// yellow, ERROR red.
func ExampleConfigure() {
	if err := logger.Configure(logger.DefaultOptions()); err != nil {
		panic(err)
	}
	logger.Infof("ready")
	logger.Warnf("disk at %s", logger.Val("91%"))
	logger.Errorf("oops: %v", "boom")
}

// This example adds a log file. Colors are stripped in the file.
func ExampleConfigure_file() {
	opt := logger.DefaultOptions()
	opt.FilePath = filepath.Join(os.TempDir(), "go-colorlog-example", "app.log")
	if err := logger.Configure(opt); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Infof("logging to %s", logger.File(opt.FilePath))
}

// Colorizers mark parts of a message by category.
func ExampleFile() {
	s := logger.File("/etc/hosts")
	fmt.Printf("%q\n", s)
	fmt.Println(logger.Strip(s))
	// Output:
	// "\x1b[34m/etc/hosts\x1b[0m"
	// /etc/hosts
}

func ExampleStrip() {
	fmt.Println(logger.Strip("\x1b[33mcareful\x1b[0m " + logger.Time(3*time.Second)))
	// Output: careful 3s
}

// A Formatter can serve any logrus logger.
func ExampleNewFormatter() {
	f, err := logger.NewFormatter(logger.FormatterConfig{
		Format: "{level}: {message}",
		Strip:  true,
	})
	if err != nil {
		panic(err)
	}
	l := logrus.New()
	l.Out = os.Stdout
	l.Formatter = f
	l.Info("wrote ", logger.File("a.txt"))
	// Output: INFO: wrote a.txt
}
