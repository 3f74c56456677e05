// Package log routes the leveled logs of every creatures package through a
// single replaceable uni-logger instance.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"
	"sync"

	unilogger "github.com/neuronlabs/uni-logger"
)

// Logger is the subset of unilogger.LeveledLogger used across the module.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

var (
	mu      sync.RWMutex
	current Logger = Discard()
)

var levels = map[string]unilogger.Level{
	"debug":    unilogger.DEBUG,
	"info":     unilogger.INFO,
	"warning":  unilogger.WARNING,
	"warn":     unilogger.WARNING,
	"error":    unilogger.ERROR,
	"critical": unilogger.CRITICAL,
}

// ParseLevel maps a level name to its uni-logger level.
func ParseLevel(name string) (unilogger.Level, error) {
	level, ok := levels[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return unilogger.UNKNOWN, fmt.Errorf("unknown log level: %q", name)
	}
	return level, nil
}

// New creates a basic uni-logger writing to out at the given level.
func New(out io.Writer, level string) (Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	basic := unilogger.NewBasicLogger(out, "", stdlog.Ldate|stdlog.Ltime)
	basic.SetLevel(lvl)
	return basic, nil
}

// Default installs an info level logger writing to stderr.
func Default() {
	logger, _ := New(os.Stderr, "info")
	SetLogger(logger)
}

// SetLevel installs a stderr logger at the named level.
func SetLevel(name string) error {
	logger, err := New(os.Stderr, name)
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

func SetLogger(logger Logger) {
	if logger == nil {
		logger = Discard()
	}
	mu.Lock()
	current = logger
	mu.Unlock()
}

func Get() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

func Debugf(format string, args ...interface{}) {
	Get().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Get().Infof(format, args...)
}

func Warningf(format string, args ...interface{}) {
	Get().Warningf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	Get().Errorf(format, args...)
}

type discard struct{}

// Discard returns a logger that drops every message.
func Discard() Logger {
	return discard{}
}

func (discard) Debugf(string, ...interface{})   {}
func (discard) Infof(string, ...interface{})    {}
func (discard) Warningf(string, ...interface{}) {}
func (discard) Errorf(string, ...interface{})   {}
