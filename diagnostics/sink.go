package diagnostics

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Sink is the diagnostic message target every package reports progress and
// failures through: CLEAN progress, self-cal before/after fit reports,
// telescope correction listings.
type Sink interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// charmSink adapts github.com/charmbracelet/log's leveled, printf-style
// logger to Sink.
type charmSink struct {
	logger *log.Logger
}

// New returns a Sink that writes leveled log lines to w.
func New(w io.Writer) Sink {
	return &charmSink{logger: log.NewWithOptions(w, log.Options{ReportTimestamp: true})}
}

// Default returns a Sink writing to os.Stderr, the usual destination for
// operational diagnostics.
func Default() Sink {
	return New(os.Stderr)
}

func (s *charmSink) Infof(format string, args ...any)  { s.logger.Infof(format, args...) }
func (s *charmSink) Warnf(format string, args ...any)  { s.logger.Warnf(format, args...) }
func (s *charmSink) Errorf(format string, args ...any) { s.logger.Errorf(format, args...) }

// Discard is a Sink that drops every message, useful in tests that do not
// want to assert on log output.
var Discard Sink = discardSink{}

type discardSink struct{}

func (discardSink) Infof(string, ...any)  {}
func (discardSink) Warnf(string, ...any)  {}
func (discardSink) Errorf(string, ...any) {}
