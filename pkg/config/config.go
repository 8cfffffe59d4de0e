// Package config loads srpkg configuration: embedded defaults, an optional
// .srpkg.toml in the working directory, then SRPKG_* environment variables,
// each layer overriding the previous one.
package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

// FileName is the per-directory configuration file srpkg looks for.
const FileName = ".srpkg.toml"

// Build file formats accepted for scaffold.build_file.
const (
	BuildFileMakefile = "makefile"
	BuildFileCMake    = "cmake"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// ScaffoldConfig controls what the scaffold builder emits.
type ScaffoldConfig struct {
	// BuildFile selects the build file format: "makefile" or "cmake".
	BuildFile string `koanf:"build_file" toml:"build_file"`
	// ReadmeSuffix is appended after the package name on the README title.
	ReadmeSuffix string `koanf:"readme_suffix" toml:"readme_suffix"`
}

// RegistryConfig controls node registry maintenance.
type RegistryConfig struct {
	File     string `koanf:"file" toml:"file"`
	NodeType string `koanf:"node_type" toml:"node_type"`
	Target   string `koanf:"target" toml:"target"`
}

// Config is the effective srpkg configuration.
type Config struct {
	Scaffold ScaffoldConfig `koanf:"scaffold" toml:"scaffold"`
	Registry RegistryConfig `koanf:"registry" toml:"registry"`
}

// rawBytesProvider implements a koanf provider for embedded bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration for a working directory.
func Load(workDir string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, srpkgerr.Wrap(err, srpkgerr.ErrConfigLoad, "failed to load built-in defaults")
	}

	path := filepath.Join(workDir, FileName)
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, srpkgerr.Wrapf(err, srpkgerr.ErrConfigParse, "failed to parse %s", path)
		}
	}

	if err := k.Load(env.Provider("SRPKG_", ".", envToKey), nil); err != nil {
		return nil, srpkgerr.Wrap(err, srpkgerr.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, srpkgerr.Wrap(err, srpkgerr.ErrConfigParse, "failed to decode configuration")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration with no overrides applied.
func Default() *Config {
	return &Config{
		Scaffold: ScaffoldConfig{
			BuildFile:    BuildFileMakefile,
			ReadmeSuffix: "DDS Node",
		},
		Registry: RegistryConfig{
			File:     "node_registry.json",
			NodeType: "rti_dds",
			Target:   "qnx",
		},
	}
}

func (c *Config) validate() error {
	switch c.Scaffold.BuildFile {
	case BuildFileMakefile, BuildFileCMake:
	default:
		return srpkgerr.Newf(srpkgerr.ErrConfigParse,
			"scaffold.build_file must be %q or %q, got %q",
			BuildFileMakefile, BuildFileCMake, c.Scaffold.BuildFile)
	}
	if c.Registry.File == "" {
		return srpkgerr.New(srpkgerr.ErrConfigParse, "registry.file cannot be empty")
	}
	return nil
}

// envToKey maps SRPKG_SCAFFOLD_BUILD_FILE to scaffold.build_file. The first
// underscore separates the section; the rest of the name keeps its
// underscores.
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "SRPKG_"))
	return strings.Replace(s, "_", ".", 1)
}
