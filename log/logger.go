package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function, from most to least verbose.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = [...]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

// Unknown levels map to Error.
func (l Level) backendLevel() logging.Level {
	if l < Debug || l > Error {
		return logging.ERROR
	}
	return backendLevels[l]
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level:.4s}]%{color:reset} %{message}`,
)

// The active backend and the level applied to it. The level outlives
// backend swaps performed by SetSink.
var (
	leveledBackend logging.LeveledBackend
	currentLevel   = Notice
)

// Logger is the subset of the go-logging logger API used by this module.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Notice(v ...interface{})
	Noticef(format string, v ...interface{})
	Warning(v ...interface{})
	Warningf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Get the logger for a module; loggers are tagged with their module name.
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// Route all log output to sink.
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	leveledBackend = logging.AddModuleLevel(formatted)
	logging.SetBackend(leveledBackend)
	SetLevel(currentLevel)
}

// Set the verbosity for all modules.
func SetLevel(level Level) {
	currentLevel = level
	leveledBackend.SetLevel(level.backendLevel(), "")
}

// Enabled reports whether messages at level are emitted for module. Callers
// use it to skip expensive diagnostics.
func Enabled(level Level, module string) bool {
	return leveledBackend.IsEnabledFor(level.backendLevel(), module)
}

func init() {
	SetSink(os.Stdout)
}
