// Package log writes diagnostics to a daily file under where.Logs() through
// logrus. Nothing is written unless logs.write is on, so stdout and stderr
// stay clean for piping resolved URLs.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/livelink-cli/livelink/constant"
	"github.com/livelink-cli/livelink/filesystem"
	"github.com/livelink-cli/livelink/key"
	"github.com/livelink-cli/livelink/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is a set of structured key/value pairs attached to a log entry.
type Fields = logrus.Fields

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

var logger = discard

// File is today's log file.
func File() string {
	return filepath.Join(where.Logs(), fmt.Sprintf("%s-%s.log", constant.Livelink, time.Now().Format("2006-01-02")))
}

// Setup configures the logger from the logs.* settings.
func Setup() error {
	if !viper.GetBool(key.LogsWrite) {
		logger = discard
		return nil
	}

	f, err := filesystem.API().OpenFile(File(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	l := logrus.New()
	l.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	logger = l
	return nil
}

// With returns an entry carrying fields.
func With(fields Fields) *logrus.Entry {
	return logger.WithFields(fields)
}

func Error(args ...any) {
	logger.Error(args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Warn(args ...any) {
	logger.Warn(args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Info(args ...any) {
	logger.Info(args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Tracef(format string, args ...any) {
	logger.Tracef(format, args...)
}
