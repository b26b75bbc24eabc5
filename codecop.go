// Package codecop bundles the codecop naming analyzers:
//
//	UXE0001  enumname   enumeration type names must end with "Enum"
//	UXE0002  namespace  package names must match the project root namespace
//
// Both analyzers share one configuration; see [Options].
package codecop

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/tools/go/analysis"

	"github.com/sirkon/codecop/internal/config"
	"github.com/sirkon/codecop/internal/enumname"
	"github.com/sirkon/codecop/internal/log"
	"github.com/sirkon/codecop/internal/namespace"
)

// ConfigFileName is the config file name looked up by the command.
const ConfigFileName = ".codecop.yaml"

// Options to create analyzers with. Zero value is usable: no config file, namespace
// rule off until -rootnamespace is given, logging discarded.
type Options struct {
	// ConfigPath is a path to the YAML config file.
	ConfigPath string

	// RootNamespace is the expected package name. Nil means absent.
	RootNamespace *string

	// ProjectName is the name namespace fixes rename packages to.
	ProjectName string

	// IncludeGenerated enables analysis of generated files.
	IncludeGenerated bool

	// Fs is used to read the config file. The OS file system by default.
	Fs afero.Fs

	Logger *logrus.Entry
}

// New creates both analyzers sharing the configuration built from opts.
func New(opts Options) []*analysis.Analyzer {
	logE := opts.Logger
	if logE == nil {
		logE = log.Discard()
	}

	cfg := config.Default()
	if opts.Fs != nil {
		cfg = config.New(opts.Fs)
	}
	cfg.SetPath(opts.ConfigPath).SetProjectName(opts.ProjectName)
	if opts.IncludeGenerated {
		cfg.SetIncludeGenerated(true)
	}
	if opts.RootNamespace != nil {
		cfg.SetRootNamespace(*opts.RootNamespace)
	}

	return []*analysis.Analyzer{
		enumname.NewAnalyzer(cfg, logE),
		namespace.NewAnalyzer(cfg, logE),
	}
}

// Analyzers creates both analyzers with default options.
func Analyzers() []*analysis.Analyzer {
	return New(Options{})
}

// AnalyzerPlugin exposes codecop analyzers to plugin loaders.
type AnalyzerPlugin struct{}

// GetAnalyzers returns all codecop analyzers.
func (*AnalyzerPlugin) GetAnalyzers() []*analysis.Analyzer {
	return Analyzers()
}
