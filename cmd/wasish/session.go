package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wasi-shim/engine"
	"github.com/wippyai/wasi-shim/wasi"
)

// globals are the flags shared by every command.
type globals struct {
	config  string
	mounts  mountList
	verbose bool
}

// session is one sandbox with its preopens discovered.
type session struct {
	sys      *wasi.System
	host     *engine.Host
	log      *zap.Logger
	preopens []preopen
}

type preopen struct {
	fd   wasi.Fd
	name string
}

type entry struct {
	name string
	typ  wasi.FileType
}

func (g *globals) open(ctx context.Context, stdin io.Reader) (*session, error) {
	prof := &profile{}
	if g.config != "" {
		var err error
		if prof, err = loadProfile(g.config); err != nil {
			return nil, err
		}
	}
	prof.Preopens = append(prof.Preopens, g.mounts...)
	if len(prof.Preopens) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		prof.Preopens = []mount{{Host: wd, Guest: "/"}}
	}

	log, err := newLogger(g.verbose, prof.LogLevel)
	if err != nil {
		return nil, err
	}
	engine.SetLogger(log)

	cfg := prof.config()
	cfg.Stdin = stdin
	cfg.Stdout = os.Stdout
	cfg.Stderr = os.Stderr
	cfg.Logger = log
	return newSession(ctx, cfg)
}

func newSession(ctx context.Context, cfg engine.Config) (*session, error) {
	host, err := engine.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	sys, err := wasi.New(host)
	if err != nil {
		host.Close(ctx)
		return nil, err
	}
	s := &session{sys: sys, host: host, log: cfg.Logger}
	if s.log == nil {
		s.log = engine.Logger()
	}
	if err := s.discover(); err != nil {
		host.Close(ctx)
		return nil, err
	}
	return s, nil
}

func (s *session) Close(ctx context.Context) error {
	_ = s.log.Sync()
	return s.host.Close(ctx)
}

// discover walks descriptors from 3 until the first one that is not a
// preopen.
func (s *session) discover() error {
	for fd := wasi.Fd(3); ; fd++ {
		p, err := s.sys.FdPrestatGet(fd)
		if errors.Is(err, wasi.EBADF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("prestat %d: %w", fd, err)
		}
		if p.PrType != wasi.PreopentypeDir {
			continue
		}
		name := make([]byte, p.Dir.PrNameLen)
		if err := s.sys.FdPrestatDirName(fd, name); err != nil {
			return fmt.Errorf("prestat name %d: %w", fd, err)
		}
		s.preopens = append(s.preopens, preopen{fd: fd, name: string(name)})
		s.log.Debug("discovered preopen", zap.Uint32("fd", fd), zap.String("name", string(name)))
	}
}

// resolve maps a guest path onto the preopen with the longest matching
// prefix and returns the path relative to it.
func (s *session) resolve(p string) (wasi.Fd, string, error) {
	p = path.Clean("/" + p)
	best, rel := -1, ""
	for i, po := range s.preopens {
		root := path.Clean("/" + po.name)
		var r string
		switch {
		case p == root:
			r = "."
		case root == "/":
			r = p[1:]
		case strings.HasPrefix(p, root+"/"):
			r = p[len(root)+1:]
		default:
			continue
		}
		if best < 0 || len(root) > len(path.Clean("/"+s.preopens[best].name)) {
			best, rel = i, r
		}
	}
	if best < 0 {
		return 0, "", fmt.Errorf("%s: %w", p, wasi.ENOENT)
	}
	return s.preopens[best].fd, rel, nil
}

func (s *session) openAt(p string, oflags wasi.OFlags, rights wasi.Rights, fdflags wasi.FdFlags) (wasi.Fd, error) {
	dir, rel, err := s.resolve(p)
	if err != nil {
		return 0, err
	}
	fd, err := s.sys.PathOpen(dir, wasi.LookupSymlinkFollow, rel, oflags, rights, rights, fdflags)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", p, err)
	}
	return fd, nil
}

func (s *session) stat(p string) (wasi.FileStat, error) {
	dir, rel, err := s.resolve(p)
	if err != nil {
		return wasi.FileStat{}, err
	}
	st, err := s.sys.PathFilestatGet(dir, wasi.LookupSymlinkFollow, rel)
	if err != nil {
		return wasi.FileStat{}, fmt.Errorf("stat %s: %w", p, err)
	}
	return st, nil
}

// readDir lists p sorted by name, without "." and "..".
func (s *session) readDir(p string) ([]entry, error) {
	dir, rel, err := s.resolve(p)
	if err != nil {
		return nil, err
	}
	fd := dir
	if rel != "." {
		fd, err = s.sys.PathOpen(dir, wasi.LookupSymlinkFollow, rel, wasi.ODirectory, wasi.RightFdReaddir, 0, 0)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		defer s.sys.FdClose(fd)
	}

	var out []entry
	buf := make([]byte, 4096)
	cookie := wasi.DircookieStart
	for {
		n, err := s.sys.FdReaddir(fd, buf, cookie)
		if err != nil {
			return nil, fmt.Errorf("readdir %s: %w", p, err)
		}
		progressed := false
		for d, name := range wasi.Dirents(buf[:n]) {
			cookie = d.Next
			progressed = true
			if name == "." || name == ".." {
				continue
			}
			out = append(out, entry{name: name, typ: d.Type})
		}
		if n < len(buf) {
			break
		}
		// a full buffer may end in a truncated entry; grow when not even
		// one entry fit
		if !progressed {
			buf = make([]byte, 2*len(buf))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out, nil
}

// copyFile writes up to limit bytes of p to w. A negative limit copies
// everything.
func (s *session) copyFile(w io.Writer, p string, limit int64) (int64, error) {
	fd, err := s.openAt(p, 0, wasi.RightFdRead, 0)
	if err != nil {
		return 0, err
	}
	defer s.sys.FdClose(fd)

	var total int64
	buf := make([]byte, 32*1024)
	for limit < 0 || total < limit {
		chunk := buf
		if limit >= 0 {
			chunk = buf[:min(int64(len(buf)), limit-total)]
		}
		n, err := s.sys.FdRead(fd, []wasi.IoVec{wasi.NewIoVec(chunk)})
		if err != nil {
			return total, fmt.Errorf("read %s: %w", p, err)
		}
		if n == 0 {
			break
		}
		if _, err := w.Write(chunk[:n]); err != nil {
			return total, err
		}
		total += int64(n)
	}
	return total, nil
}

// writeFile replaces p with everything read from r.
func (s *session) writeFile(p string, r io.Reader) (int64, error) {
	fd, err := s.openAt(p, wasi.OCreat|wasi.OTrunc, wasi.RightFdWrite, 0)
	if err != nil {
		return 0, err
	}
	defer s.sys.FdClose(fd)

	var total int64
	buf := make([]byte, 32*1024)
	for {
		n, rerr := r.Read(buf)
		for off := 0; off < n; {
			w, err := s.sys.FdWrite(fd, []wasi.CIoVec{wasi.NewCIoVec(buf[off:n])})
			if err != nil {
				return total, fmt.Errorf("write %s: %w", p, err)
			}
			if w == 0 {
				return total, fmt.Errorf("write %s: %w", p, io.ErrShortWrite)
			}
			off += w
			total += int64(w)
		}
		if rerr == io.EOF {
			return total, nil
		}
		if rerr != nil {
			return total, rerr
		}
	}
}

func typeName(t wasi.FileType) string {
	switch t {
	case wasi.FiletypeDirectory:
		return "dir"
	case wasi.FiletypeRegularFile:
		return "file"
	case wasi.FiletypeSymbolicLink:
		return "link"
	case wasi.FiletypeBlockDevice, wasi.FiletypeCharacterDevice:
		return "dev"
	case wasi.FiletypeSocketDgram, wasi.FiletypeSocketStream:
		return "sock"
	}
	return "?"
}
