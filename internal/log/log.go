// Package log sets up the logger codecop components share.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LevelEnv is the environment variable holding the log level.
const LevelEnv = "CODECOP_LOG_LEVEL"

// New creates a logger writing to stderr. The level is taken from [LevelEnv],
// unknown or empty values keep the warn level.
func New(version string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	SetLevel(logger, os.Getenv(LevelEnv))

	return logger.WithFields(logrus.Fields{
		"program":         "codecop",
		"codecop_version": version,
	})
}

// SetLevel sets the logger level by its name. Unknown names set the warn level.
func SetLevel(logger *logrus.Logger, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
}

// Discard creates a logger dropping everything, for library use and tests.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
