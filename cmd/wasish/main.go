// Command wasish explores a WASI sandbox from the host.
//
// Every command mounts the configured directories into a fresh wazero
// sandbox and performs its work through the checked wasi_unstable layer, so
// paths are guest paths and failures are WASI status codes.
//
// Usage:
//
//	wasish [-config profile.yaml] [-mount host:guest[:ro]]... [-v] <command> [args]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

func main() {
	g := &globals{}
	flag.StringVar(&g.config, "config", "", "YAML profile with preopens and limits")
	flag.Var(&g.mounts, "mount", "mount a host directory as host:guest[:ro] (repeatable)")
	flag.BoolVar(&g.verbose, "v", false, "verbose logging")

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")

	subcommands.Register(&preopensCmd{command: cmd(g, "preopens", "list preopened directories", "")}, "files")
	subcommands.Register(&lsCmd{command: cmd(g, "ls", "list a directory", "[-l] [path]")}, "files")
	subcommands.Register(&catCmd{command: cmd(g, "cat", "print files", "path...")}, "files")
	subcommands.Register(&writeCmd{command: cmd(g, "write", "replace a file with stdin", "path")}, "files")
	subcommands.Register(&statCmd{command: cmd(g, "stat", "show file metadata", "path...")}, "files")
	subcommands.Register(&mkdirCmd{command: cmd(g, "mkdir", "create directories", "path...")}, "files")
	subcommands.Register(&rmCmd{command: cmd(g, "rm", "remove files or empty directories", "[-d] path...")}, "files")
	subcommands.Register(&mvCmd{command: cmd(g, "mv", "rename a file or directory", "src dst")}, "files")
	subcommands.Register(&browseCmd{command: cmd(g, "browse", "browse the sandbox interactively", "[path]")}, "files")

	subcommands.Register(&timeCmd{command: cmd(g, "time", "show sandbox clocks", "")}, "process")
	subcommands.Register(&randCmd{command: cmd(g, "rand", "print random bytes as hex", "[-n bytes]")}, "process")
	subcommands.Register(&sleepCmd{command: cmd(g, "sleep", "sleep through poll_oneoff", "duration")}, "process")
	subcommands.Register(&exitCmd{command: cmd(g, "exit", "exit through proc_exit", "code")}, "process")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// command carries the metadata and shared flags of a subcommand.
type command struct {
	g        *globals
	name     string
	synopsis string
	args     string
}

func cmd(g *globals, name, synopsis, args string) command {
	return command{g: g, name: name, synopsis: synopsis, args: args}
}

func (c *command) Name() string     { return c.name }
func (c *command) Synopsis() string { return c.synopsis }
func (c *command) Usage() string {
	return fmt.Sprintf("%s %s\n\t%s\n", c.name, c.args, c.synopsis)
}
func (c *command) SetFlags(*flag.FlagSet) {}

// run opens a session, checks the argument count and runs fn.
func (c *command) run(ctx context.Context, f *flag.FlagSet, minArgs, maxArgs int, fn func(*session, []string) error) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < minArgs || (maxArgs >= 0 && len(args) > maxArgs) {
		f.Usage()
		return subcommands.ExitUsageError
	}
	s, err := c.g.open(ctx, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wasish: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close(ctx)

	if err := fn(s, args); err != nil {
		fmt.Fprintf(os.Stderr, "wasish %s: %v\n", c.name, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
