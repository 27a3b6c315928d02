package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects the minimum severity loggers emit.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelMap = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// Progress lines carry millisecond timestamps so chunk throughput can be
// read straight off the log; the module name separates renderer output
// from CLI output.
var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:-7s} %{module}%{color:reset} %{message}`,
)

// Logger is the leveled logging surface handed out to packages
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

var (
	leveled      logging.LeveledBackend
	currentLevel = Notice
)

// New returns a named logger. The name appears in every line, so callers
// use their package name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all loggers to sink, keeping the current level. Tests
// use this to capture or discard output.
func SetSink(sink io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveled = logging.AddModuleLevel(backend)
	leveled.SetLevel(levelMap[currentLevel], "")
	logging.SetBackend(leveled)
}

// SetLevel adjusts verbosity for all loggers
func SetLevel(level Level) {
	currentLevel = level
	leveled.SetLevel(levelMap[level], "")
}

func init() {
	// Render milestones (Notice) are visible by default; per-frame detail
	// (Info) and chunk-level chatter (Debug) sit behind -v and -vv
	SetSink(os.Stderr)
}
