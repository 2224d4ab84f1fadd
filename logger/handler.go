package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Destination names.
const (
	ConsoleDestination = "console"
	FileDestination    = "file"
)

// consoleMu serializes console writes across routing tables, since a
// table being replaced may still be firing.
var consoleMu sync.Mutex

// destination is a writer shared by every handler routed to it. Each
// line goes out in a single Write under mu.
type destination struct {
	name string
	mu   *sync.Mutex
	w    io.Writer
}

func newDestination(name string, w io.Writer) *destination {
	mu := &consoleMu
	if name != ConsoleDestination {
		mu = new(sync.Mutex)
	}
	return &destination{name: name, mu: mu, w: w}
}

func (d *destination) writeLine(line string) error {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.w.Write(buf)
	return err
}

// Handler routes records admitted by its filter through its formatter to
// one destination. It implements logrus.Hook.
type Handler struct {
	filter    LevelFilter
	formatter *Formatter
	dest      *destination
}

// Filter returns the handler's level filter.
func (h *Handler) Filter() LevelFilter { return h.filter }

// Formatter returns the handler's formatter.
func (h *Handler) Formatter() *Formatter { return h.formatter }

// Destination returns ConsoleDestination or FileDestination.
func (h *Handler) Destination() string { return h.dest.name }

// Levels implements logrus.Hook.
func (h *Handler) Levels() []logrus.Level {
	return []logrus.Level{h.filter.Level}
}

// Fire implements logrus.Hook. A failed write is reported on stderr and
// swallowed so the other handlers for the record still run.
func (h *Handler) Fire(entry *logrus.Entry) error {
	if !h.filter.Admits(entry) {
		return nil
	}
	if err := h.dest.writeLine(h.formatter.FormatRecord(entry)); err != nil {
		fmt.Fprintf(outStderr, "Failed to fire hook: %s: %v\n", h.dest.name, err)
	}
	return nil
}
