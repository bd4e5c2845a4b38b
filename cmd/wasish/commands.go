package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/wippyai/wasi-shim/wasi"
)

type preopensCmd struct{ command }

func (c *preopensCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 0, 0, func(s *session, _ []string) error {
		for _, p := range s.preopens {
			fmt.Printf("%d\t%s\n", p.fd, p.name)
		}
		return nil
	})
}

type lsCmd struct {
	command
	long bool
}

func (c *lsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.long, "l", false, "show type and size")
}

func (c *lsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 0, 1, func(s *session, args []string) error {
		dir := "/"
		if len(args) == 1 {
			dir = args[0]
		}
		entries, err := s.readDir(dir)
		if err != nil {
			return err
		}
		if !c.long {
			for _, e := range entries {
				fmt.Println(e.name)
			}
			return nil
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, e := range entries {
			size := "-"
			if st, err := s.stat(joinGuest(dir, e.name)); err == nil {
				size = strconv.FormatUint(st.Size, 10)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", typeName(e.typ), size, e.name)
		}
		return tw.Flush()
	})
}

type catCmd struct{ command }

func (c *catCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 1, -1, func(s *session, args []string) error {
		for _, p := range args {
			if _, err := s.copyFile(os.Stdout, p, -1); err != nil {
				return err
			}
		}
		return nil
	})
}

type writeCmd struct{ command }

func (c *writeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 1, 1, func(s *session, args []string) error {
		n, err := s.writeFile(args[0], os.Stdin)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%d bytes written\n", n)
		return nil
	})
}

type statCmd struct{ command }

func (c *statCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 1, -1, func(s *session, args []string) error {
		for _, p := range args {
			st, err := s.stat(p)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", p)
			fmt.Printf("  type:  %s\n", typeName(st.Filetype))
			fmt.Printf("  size:  %d\n", st.Size)
			fmt.Printf("  dev:   %d  ino: %d  links: %d\n", st.Dev, st.Ino, st.Nlink)
			fmt.Printf("  atime: %s\n", formatTimestamp(st.Atim))
			fmt.Printf("  mtime: %s\n", formatTimestamp(st.Mtim))
			fmt.Printf("  ctime: %s\n", formatTimestamp(st.Ctim))
		}
		return nil
	})
}

type mkdirCmd struct{ command }

func (c *mkdirCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 1, -1, func(s *session, args []string) error {
		for _, p := range args {
			dir, rel, err := s.resolve(p)
			if err != nil {
				return err
			}
			if err := s.sys.PathCreateDirectory(dir, rel); err != nil {
				return fmt.Errorf("mkdir %s: %w", p, err)
			}
		}
		return nil
	})
}

type rmCmd struct {
	command
	dir bool
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dir, "d", false, "remove empty directories")
}

func (c *rmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 1, -1, func(s *session, args []string) error {
		for _, p := range args {
			dir, rel, err := s.resolve(p)
			if err != nil {
				return err
			}
			if c.dir {
				err = s.sys.PathRemoveDirectory(dir, rel)
			} else {
				err = s.sys.PathUnlinkFile(dir, rel)
			}
			if err != nil {
				return fmt.Errorf("rm %s: %w", p, err)
			}
		}
		return nil
	})
}

type mvCmd struct{ command }

func (c *mvCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 2, 2, func(s *session, args []string) error {
		oldDir, oldRel, err := s.resolve(args[0])
		if err != nil {
			return err
		}
		newDir, newRel, err := s.resolve(args[1])
		if err != nil {
			return err
		}
		if err := s.sys.PathRename(oldDir, oldRel, newDir, newRel); err != nil {
			return fmt.Errorf("mv %s %s: %w", args[0], args[1], err)
		}
		return nil
	})
}

type timeCmd struct{ command }

func (c *timeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 0, 0, func(s *session, _ []string) error {
		clocks := []struct {
			name string
			id   wasi.ClockID
		}{
			{"realtime", wasi.ClockRealtime},
			{"monotonic", wasi.ClockMonotonic},
		}
		for _, clk := range clocks {
			now, err := s.sys.ClockTimeGet(clk.id, 1)
			if err != nil {
				return fmt.Errorf("%s: %w", clk.name, err)
			}
			res, err := s.sys.ClockResGet(clk.id)
			if err != nil {
				return fmt.Errorf("%s resolution: %w", clk.name, err)
			}
			value := strconv.FormatUint(now, 10) + "ns"
			if clk.id == wasi.ClockRealtime {
				value = formatTimestamp(now)
			}
			fmt.Printf("%-10s %s (resolution %s)\n", clk.name, value, time.Duration(res))
		}
		return nil
	})
}

type randCmd struct {
	command
	n int
}

func (c *randCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 16, "number of bytes")
}

func (c *randCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.n < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return c.run(ctx, f, 0, 0, func(s *session, _ []string) error {
		buf := make([]byte, c.n)
		if err := s.sys.RandomGet(buf); err != nil {
			return err
		}
		fmt.Println(hex.EncodeToString(buf))
		return nil
	})
}

type sleepCmd struct{ command }

func (c *sleepCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 1, 1, func(s *session, args []string) error {
		d, err := time.ParseDuration(args[0])
		if err != nil || d < 0 {
			return fmt.Errorf("invalid duration %q", args[0])
		}
		start := time.Now()
		in := []wasi.Subscription{wasi.ClockSubscription(1, 0, wasi.ClockMonotonic, wasi.Timestamp(d), 0, 0)}
		out := make([]wasi.Event, len(in))
		n, err := s.sys.PollOneoff(in, out)
		if err != nil {
			return err
		}
		for _, ev := range out[:n] {
			if err := wasi.EventErr(ev); err != nil {
				return err
			}
			s.log.Debug(wasi.FormatEvent(ev))
		}
		fmt.Printf("slept %s\n", time.Since(start).Round(time.Millisecond))
		return nil
	})
}

type exitCmd struct{ command }

func (c *exitCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return c.run(ctx, f, 1, 1, func(s *session, args []string) error {
		code, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return errors.New("exit code must be a non-negative integer")
		}
		s.sys.ProcExit(wasi.ExitCode(code))
		return nil
	})
}

func formatTimestamp(ts wasi.Timestamp) string {
	return time.Unix(0, int64(ts)).UTC().Format(time.RFC3339Nano)
}

func joinGuest(dir, name string) string {
	if dir == "" || dir[len(dir)-1] == '/' {
		return dir + name
	}
	return dir + "/" + name
}
