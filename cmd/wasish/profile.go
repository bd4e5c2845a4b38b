package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/wasi-shim/engine"
	"github.com/wippyai/wasi-shim/errors"
)

// profile is the YAML file passed with -config.
type profile struct {
	// Preopens are mounted in order; the first gets descriptor 3.
	Preopens []mount `yaml:"preopens"`

	// MemoryLimitPages caps the engine's scratch memory. 0 means no cap.
	MemoryLimitPages uint32 `yaml:"memory_limit_pages"`

	// LogLevel is a zap level name. Empty means info, or debug with -v.
	LogLevel string `yaml:"log_level"`
}

type mount struct {
	Host     string `yaml:"host"`
	Guest    string `yaml:"guest"`
	ReadOnly bool   `yaml:"readonly"`
}

func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseConfig, errors.KindNotFound).
			Path("config").
			Value(path).
			Cause(err).
			Detail("read profile").
			Build()
	}
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "parse profile "+path)
	}
	return &p, nil
}

// config converts the profile into an engine configuration.
func (p *profile) config() engine.Config {
	cfg := engine.Config{MemoryLimitPages: p.MemoryLimitPages}
	for _, m := range p.Preopens {
		cfg.Preopens = append(cfg.Preopens, engine.Preopen{
			HostPath:  m.Host,
			GuestPath: m.Guest,
			ReadOnly:  m.ReadOnly,
		})
	}
	return cfg
}

// parseMount parses host:guest[:ro]. A missing guest path mounts at "/".
func parseMount(s string) (mount, error) {
	parts := strings.Split(s, ":")
	if parts[0] == "" {
		return mount{}, fmt.Errorf("mount %q: empty host path", s)
	}
	m := mount{Host: parts[0], Guest: "/"}
	switch len(parts) {
	case 1:
	case 2:
		if parts[1] != "" {
			m.Guest = parts[1]
		}
	case 3:
		if parts[2] != "ro" {
			return mount{}, fmt.Errorf("mount %q: unknown option %q", s, parts[2])
		}
		if parts[1] != "" {
			m.Guest = parts[1]
		}
		m.ReadOnly = true
	default:
		return mount{}, fmt.Errorf("mount %q: want host:guest[:ro]", s)
	}
	return m, nil
}

// mountList is a repeatable -mount flag.
type mountList []mount

func (l *mountList) String() string {
	var parts []string
	for _, m := range *l {
		s := m.Host + ":" + m.Guest
		if m.ReadOnly {
			s += ":ro"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ",")
}

func (l *mountList) Set(s string) error {
	m, err := parseMount(s)
	if err != nil {
		return err
	}
	*l = append(*l, m)
	return nil
}

// newLogger builds the CLI logger. Verbose output uses the development
// encoder at debug level unless level says otherwise.
func newLogger(verbose bool, level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "log_level")
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
