package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLevelFilterExactMatch(t *testing.T) {
	all := []Level{
		logrus.PanicLevel,
		logrus.FatalLevel,
		logrus.ErrorLevel,
		logrus.WarnLevel,
		logrus.InfoLevel,
		logrus.DebugLevel,
		logrus.TraceLevel,
	}
	for _, target := range RoutedLevels() {
		f := LevelFilter{Level: target}
		for _, level := range all {
			got := f.Admits(&logrus.Entry{Level: level})
			assert.Equal(t, level == target, got, "filter %s, record %s", target, level)
		}
	}
}

func TestLevelFilterNilEntry(t *testing.T) {
	assert.False(t, LevelFilter{Level: InfoLevel}.Admits(nil))
}
