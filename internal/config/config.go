// Package config holds codecop settings: the build-level values the rules read and
// the knobs controlling which rules run.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/spf13/afero"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/codecop/internal/coprules"
)

// File is the YAML representation of a config file.
type File struct {
	// RootNamespace is the expected package name. Absent means the namespace rule is skipped.
	RootNamespace *string `yaml:"rootnamespace"`

	// ProjectName is the project display name namespace fixes rename to.
	ProjectName string `yaml:"project_name"`

	// IncludeGenerated enables analysis of generated files.
	IncludeGenerated bool `yaml:"include_generated"`

	// DisabledRules lists rule codes not to run.
	DisabledRules []coprules.Rule `yaml:"disabled_rules"`
}

// Config is the resolved configuration of an analyzer.
// It is built from an optional YAML file with flag values put on top of it.
type Config struct {
	fs   afero.Fs
	path string

	flags     File
	generated *bool

	once   sync.Once
	loaded File
	err    error
}

// New creates a config reading its file, if any, from the given file system.
func New(fs afero.Fs) *Config {
	return &Config{fs: fs}
}

// Default creates a config reading its file from the OS file system.
func Default() *Config {
	return New(afero.NewOsFs())
}

// SetPath sets the location of the YAML file.
func (c *Config) SetPath(p string) *Config {
	c.path = p
	return c
}

// SetRootNamespace sets the expected namespace, as if passed with a flag.
func (c *Config) SetRootNamespace(ns string) *Config {
	c.flags.RootNamespace = &ns
	return c
}

// SetProjectName sets the project display name, as if passed with a flag.
func (c *Config) SetProjectName(name string) *Config {
	c.flags.ProjectName = name
	return c
}

// SetIncludeGenerated enables or disables analysis of generated files.
func (c *Config) SetIncludeGenerated(v bool) *Config {
	c.generated = &v
	return c
}

// Disable turns given rules off.
func (c *Config) Disable(rules ...coprules.Rule) *Config {
	c.flags.DisabledRules = append(c.flags.DisabledRules, rules...)
	return c
}

// RegisterFlags binds config values the rule reads to analyzer flags. Values set
// so far become flag defaults. Analyzers built over one config share the values
// of flags they have in common.
func (c *Config) RegisterFlags(fs *flag.FlagSet, rule coprules.Rule) {
	fs.StringVar(&c.path, "config", c.path, "path to codecop YAML config (shared by all codecop analyzers)")
	fs.Var(optionalBool{dst: &c.generated}, "generated", "analyze generated files too (shared by all codecop analyzers)")

	if rule == coprules.NamespaceMatch() {
		fs.Var(optionalString{dst: &c.flags.RootNamespace}, "rootnamespace", "expected package name of the project")
		fs.StringVar(&c.flags.ProjectName, "project", c.flags.ProjectName, "project display name namespace fixes rename to")
	}
}

// Load reads the config file once. Subsequent calls return the first result.
func (c *Config) Load() error {
	c.once.Do(func() {
		c.loaded, c.err = c.load()
	})
	return c.err
}

func (c *Config) load() (File, error) {
	var res File
	if c.path != "" {
		data, err := afero.ReadFile(c.fs, c.path)
		if err != nil {
			return File{}, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, &res); err != nil {
			return File{}, fmt.Errorf("parse config file %s: %w", c.path, err)
		}
	}

	if c.flags.RootNamespace != nil {
		res.RootNamespace = c.flags.RootNamespace
	}
	if c.flags.ProjectName != "" {
		res.ProjectName = c.flags.ProjectName
	}
	if c.generated != nil {
		res.IncludeGenerated = *c.generated
	}
	res.DisabledRules = append(res.DisabledRules, c.flags.DisabledRules...)

	return res, nil
}

// ExpectedNamespace returns the configured root namespace. It returns false when the
// value is absent, which is not the same as an empty value.
func (c *Config) ExpectedNamespace() (string, bool) {
	if c.loaded.RootNamespace == nil {
		return "", false
	}

	return *c.loaded.RootNamespace, true
}

// ProjectName returns the project display name. modulePath is used when no name
// is configured: its last element, major version suffix aside. The result is empty
// when neither is known.
func (c *Config) ProjectName(modulePath string) string {
	if c.loaded.ProjectName != "" {
		return c.loaded.ProjectName
	}
	if modulePath == "" {
		return ""
	}

	if prefix, _, ok := module.SplitPathVersion(modulePath); ok && prefix != "" {
		modulePath = prefix
	}

	return path.Base(modulePath)
}

// IncludeGenerated reports whether generated files are analyzed.
func (c *Config) IncludeGenerated() bool {
	return c.loaded.IncludeGenerated
}

// Enabled reports whether the rule runs.
func (c *Config) Enabled(rule coprules.Rule) bool {
	return !slices.Contains(c.loaded.DisabledRules, rule)
}

// Lookup finds a config file named name in dir or any of its parents.
// It returns an empty path when none exists.
func Lookup(fs afero.Fs, dir, name string) (string, error) {
	for {
		p := filepath.Join(dir, name)
		_, err := fs.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("check config file %s: %w", p, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// optionalString is a flag value telling unset from empty.
type optionalString struct {
	dst **string
}

func (v optionalString) String() string {
	if v.dst == nil || *v.dst == nil {
		return ""
	}
	return **v.dst
}

func (v optionalString) Set(s string) error {
	*v.dst = &s
	return nil
}

// optionalBool is a boolean flag value telling unset from false.
type optionalBool struct {
	dst **bool
}

func (v optionalBool) String() string {
	if v.dst == nil || *v.dst == nil {
		return "false"
	}
	return strconv.FormatBool(**v.dst)
}

func (v optionalBool) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("parse boolean value: %w", err)
	}
	*v.dst = &b
	return nil
}

func (v optionalBool) IsBoolFlag() bool { return true }
