package engine

import (
	"io"
	"os"
	"path"
	"strconv"

	"go.uber.org/zap"

	"github.com/wippyai/wasi-shim/errors"
)

// maxMemoryPages is the wasm32 address space in 64KiB pages.
const maxMemoryPages = 65536

// Preopen mounts a host directory into the sandbox. Preopens receive
// descriptors from 3 upwards in the order they are listed.
type Preopen struct {
	// HostPath is the directory on the host.
	HostPath string

	// GuestPath is the name the sandbox sees, reported by fd_prestat_dir_name.
	GuestPath string

	// ReadOnly rejects every call that would modify the mount.
	ReadOnly bool
}

// Config holds configuration for host creation
type Config struct {
	// Preopens are the directories visible to the sandbox.
	Preopens []Preopen

	// Stdin, Stdout and Stderr back descriptors 0, 1 and 2. nil means empty
	// input and discarded output.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// RandSource backs random_get. nil means crypto/rand.
	RandSource io.Reader

	// MemoryLimitPages caps the scratch memory calls are marshaled through,
	// in 64KiB pages. 0 means the wasm32 maximum (65536 pages = 4GB).
	MemoryLimitPages uint32

	// Exit is called by proc_exit with the exit code once the sandbox has
	// shut down. nil means os.Exit.
	Exit func(code uint32)

	// Logger receives lifecycle and trap messages. nil means Logger().
	Logger *zap.Logger
}

func (c *Config) validate() error {
	for i, p := range c.Preopens {
		idx := strconv.Itoa(i)
		if p.HostPath == "" {
			return errors.InvalidConfig([]string{"preopens", idx, "host"}, p.HostPath, "host path must not be empty")
		}
		info, err := os.Stat(p.HostPath)
		if err != nil {
			return errors.NotFound(errors.PhaseConfig, []string{"preopens", idx, "host"}, p.HostPath, err)
		}
		if !info.IsDir() {
			return errors.InvalidConfig([]string{"preopens", idx, "host"}, p.HostPath, "not a directory")
		}
		if p.GuestPath == "" {
			return errors.InvalidConfig([]string{"preopens", idx, "guest"}, p.GuestPath, "guest path must not be empty")
		}
	}
	if c.MemoryLimitPages > maxMemoryPages {
		return errors.InvalidConfig([]string{"memory_limit_pages"}, c.MemoryLimitPages, "exceeds 65536 pages")
	}
	return nil
}

// cleanGuest normalizes a guest path the way wazero reports it back.
func cleanGuest(p string) string {
	if p == "/" {
		return p
	}
	return path.Clean(p)
}

func (c *Config) exit() func(uint32) {
	if c.Exit != nil {
		return c.Exit
	}
	return func(code uint32) { os.Exit(int(code)) }
}

func (c *Config) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return Logger()
}
