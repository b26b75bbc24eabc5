// Command codecop runs codecop naming analyzers over Go packages.
//
// Usage:
//
//	codecop [-fix] [-enumname.rootnamespace=app] ./...
//
// A .codecop.yaml in the current directory or any of its parents is picked up
// unless -enumname.config / -namespace.config points elsewhere. The log level is
// taken from CODECOP_LOG_LEVEL.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/sirkon/codecop"
	"github.com/sirkon/codecop/internal/config"
	"github.com/sirkon/codecop/internal/log"
)

var version = ""

func main() {
	logE := log.New(version)

	fs := afero.NewOsFs()
	cfgPath, err := lookupConfig(fs, logE)
	if err != nil {
		logerr.WithError(logE, err).Fatal("look for config file")
	}

	multichecker.Main(codecop.New(codecop.Options{
		ConfigPath: cfgPath,
		Fs:         fs,
		Logger:     logE,
	})...)
}

func lookupConfig(fs afero.Fs, logE *logrus.Entry) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	p, err := config.Lookup(fs, wd, codecop.ConfigFileName)
	if err != nil {
		return "", fmt.Errorf("look up %s: %w", codecop.ConfigFileName, err)
	}
	if p != "" {
		logE.WithField("config", p).Debug("config file found")
	}

	return p, nil
}
