package logger

import "github.com/sirupsen/logrus"

// LevelFilter admits records of exactly one level. A WARNING filter
// rejects ERROR records: routing is per level, not a threshold.
type LevelFilter struct {
	Level Level
}

// Admits reports whether entry has the filter's level.
func (f LevelFilter) Admits(entry *logrus.Entry) bool {
	return entry != nil && entry.Level == f.Level
}
