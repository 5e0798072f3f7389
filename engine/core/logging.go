package core

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			s := CurrentSettings()
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          s.LogPrefix,
			})
			if level, err := log.ParseLevel(s.LogLevel); err == nil {
				l.SetLevel(level)
			}
			singleton = &logger{l}
		})
	return singleton
}

// SetLogLevel changes the level of the kernel logger. Accepted values are the
// charmbracelet/log level names ("debug", "info", "warn", "error", "fatal").
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidSettings, level)
	}
	getLogger().SetLevel(lvl)
	return nil
}

// LogLevel returns the name of the current logger level.
func LogLevel() string {
	return getLogger().GetLevel().String()
}

// SetLogOutput redirects the kernel logger, e.g. to a buffer in tests.
func SetLogOutput(w io.Writer) {
	getLogger().SetOutput(w)
}

// SetLogPrefix changes the prefix printed in front of every message.
func SetLogPrefix(prefix string) {
	getLogger().SetPrefix(prefix)
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
