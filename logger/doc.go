// Package logger sets up leveled, colored console logging with an
// optional plain-text log file, on top of logrus.
//
// # Routing
//
// Each of INFO, WARNING and ERROR gets its own handler per destination.
// A handler only admits records of exactly its level:
//
//	INFO     console (no color)     file (stripped)
//	WARNING  console (yellow)       file (stripped)
//	ERROR    console (red)          file (stripped)
//
// DEBUG is below the process level and never emitted. Levels above ERROR
// have no handler.
//
// # Usage
//
// The package configures itself for console output when imported. Call
// Configure to add a file or change the line format:
//
//	opt := logger.DefaultOptions()
//	opt.FilePath = "~/logs/app.log"
//	if err := logger.Configure(opt); err != nil {
//	    return err
//	}
//	defer logger.Close()
//
// Configure replaces the whole routing table; records are never routed to
// handlers of an earlier configuration.
//
// # Colorizers
//
// URL, File, Dir, Time, Place, Val and Name wrap a value in the color of
// its category for use inside messages:
//
//	logger.Infof("wrote %s in %s", logger.File(path), logger.Time(elapsed))
//
// Colored lines (WARNING, ERROR) have embedded colors stripped before the
// line color is applied, and the log file gets plain text unless
// Options.StripFile is false.
package logger
