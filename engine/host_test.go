package engine

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/wasi-shim/abi"
	werrors "github.com/wippyai/wasi-shim/errors"
	"github.com/wippyai/wasi-shim/wasi"
)

const (
	sandboxFd = 3
	rwRights  = wasi.RightFdRead | wasi.RightFdWrite | wasi.RightFdSeek | wasi.RightFdTell | wasi.RightFdFilestatGet
)

func writeFile(t *testing.T, name, data string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newHost(t *testing.T, cfg Config) *Host {
	t.Helper()
	ctx := context.Background()
	h, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		if err := h.Close(ctx); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return h
}

// sandbox returns a System over a host with dir mounted at /sandbox.
func sandbox(t *testing.T, dir string) *wasi.System {
	t.Helper()
	h := newHost(t, Config{Preopens: []Preopen{{HostPath: dir, GuestPath: "/sandbox"}}})
	return wasi.MustNew(h)
}

func openFile(t *testing.T, s *wasi.System, name string, oflags wasi.OFlags) wasi.Fd {
	t.Helper()
	fd, err := s.PathOpen(sandboxFd, 0, name, oflags, rwRights, 0, 0)
	if err != nil {
		t.Fatalf("PathOpen(%q): %v", name, err)
	}
	t.Cleanup(func() { s.FdClose(fd) })
	return fd
}

func TestNew_ConfigError(t *testing.T) {
	_, err := New(context.Background(), Config{Preopens: []Preopen{{GuestPath: "/"}}})
	var e *werrors.Error
	if !errors.As(err, &e) || e.Kind != werrors.KindInvalidInput {
		t.Fatalf("New = %v, want invalid input", err)
	}
}

func TestHost_Preopen(t *testing.T) {
	s := sandbox(t, t.TempDir())

	p, err := s.FdPrestatGet(sandboxFd)
	if err != nil {
		t.Fatalf("FdPrestatGet: %v", err)
	}
	if p.PrType != wasi.PreopentypeDir {
		t.Errorf("pr_type = %d, want dir", p.PrType)
	}
	name := make([]byte, p.Dir.PrNameLen)
	if err := s.FdPrestatDirName(sandboxFd, name); err != nil {
		t.Fatalf("FdPrestatDirName: %v", err)
	}
	if string(name) != "/sandbox" {
		t.Errorf("name = %q, want /sandbox", name)
	}

	if _, err := s.FdPrestatGet(sandboxFd + 1); !errors.Is(err, wasi.EBADF) {
		t.Errorf("FdPrestatGet past the last preopen = %v, want EBADF", err)
	}
}

func TestHost_WriteSeekRead(t *testing.T) {
	dir := t.TempDir()
	s := sandbox(t, dir)
	fd := openFile(t, s, "notes.txt", wasi.OCreat|wasi.OTrunc)

	n, err := s.FdWrite(fd, []wasi.CIoVec{wasi.CIoVecString("hello "), wasi.CIoVecString("world")})
	if err != nil {
		t.Fatalf("FdWrite: %v", err)
	}
	if n != 11 {
		t.Fatalf("FdWrite = %d, want 11", n)
	}

	tests := []struct {
		name   string
		delta  wasi.FileDelta
		whence wasi.Whence
		want   wasi.FileSize
	}{
		{"set", 0, wasi.WhenceSet, 0},
		{"end", 0, wasi.WhenceEnd, 11},
		{"end relative", -5, wasi.WhenceEnd, 6},
		{"cur", 0, wasi.WhenceCur, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			off, err := s.FdSeek(fd, tc.delta, tc.whence)
			if err != nil {
				t.Fatalf("FdSeek: %v", err)
			}
			if off != tc.want {
				t.Errorf("FdSeek = %d, want %d", off, tc.want)
			}
		})
	}

	tell, err := s.FdTell(fd)
	if err != nil || tell != 6 {
		t.Fatalf("FdTell = %d, %v, want 6", tell, err)
	}

	buf := make([]byte, 16)
	n, err = s.FdRead(fd, []wasi.IoVec{wasi.NewIoVec(buf)})
	if err != nil {
		t.Fatalf("FdRead: %v", err)
	}
	if got := string(buf[:n]); got != "world" {
		t.Errorf("FdRead = %q, want world", got)
	}

	host, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(host) != "hello world" {
		t.Errorf("host file = %q", host)
	}
}

func TestHost_PreadPwrite(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "data"), "0123456789")
	s := sandbox(t, dir)
	fd := openFile(t, s, "data", 0)

	n, err := s.FdPwrite(fd, []wasi.CIoVec{wasi.CIoVecString("AB")}, 4)
	if err != nil || n != 2 {
		t.Fatalf("FdPwrite = %d, %v", n, err)
	}

	head, tail := make([]byte, 3), make([]byte, 3)
	n, err = s.FdPread(fd, []wasi.IoVec{wasi.NewIoVec(head), wasi.NewIoVec(tail)}, 2)
	if err != nil {
		t.Fatalf("FdPread: %v", err)
	}
	if n != 6 || string(head) != "23A" || string(tail) != "B67" {
		t.Errorf("FdPread = %d %q %q", n, head, tail)
	}

	// positional calls leave the offset alone
	if off, err := s.FdTell(fd); err != nil || off != 0 {
		t.Errorf("FdTell = %d, %v, want 0", off, err)
	}
}

func TestHost_Filestat(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "data"), "0123456789")
	s := sandbox(t, dir)

	st, err := s.PathFilestatGet(sandboxFd, wasi.LookupSymlinkFollow, "data")
	if err != nil {
		t.Fatalf("PathFilestatGet: %v", err)
	}
	if st.Filetype != wasi.FiletypeRegularFile || st.Size != 10 || st.Nlink != 1 {
		t.Errorf("stat = %+v", st)
	}

	fd := openFile(t, s, "data", 0)
	fst, err := s.FdFilestatGet(fd)
	if err != nil {
		t.Fatalf("FdFilestatGet: %v", err)
	}
	if fst.Ino != st.Ino || fst.Size != st.Size || fst.Mtim != st.Mtim {
		t.Errorf("fd stat %+v differs from path stat %+v", fst, st)
	}

	if err := s.FdFilestatSetSize(fd, 4); err != nil {
		t.Fatalf("FdFilestatSetSize: %v", err)
	}
	if fst, _ = s.FdFilestatGet(fd); fst.Size != 4 {
		t.Errorf("size after truncate = %d, want 4", fst.Size)
	}

	fdst, err := s.FdFdstatGet(fd)
	if err != nil {
		t.Fatalf("FdFdstatGet: %v", err)
	}
	if fdst.FsFiletype != wasi.FiletypeRegularFile {
		t.Errorf("fdstat filetype = %d", fdst.FsFiletype)
	}

	_, err = s.PathFilestatGet(sandboxFd, 0, "missing")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("stat missing = %v, want fs.ErrNotExist", err)
	}
}

func TestHost_Directories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	s := sandbox(t, dir)

	if err := s.PathCreateDirectory(sandboxFd, "sub"); err != nil {
		t.Fatalf("PathCreateDirectory: %v", err)
	}
	if err := s.PathCreateDirectory(sandboxFd, "sub"); !errors.Is(err, fs.ErrExist) {
		t.Errorf("second mkdir = %v, want fs.ErrExist", err)
	}
	if err := s.PathRename(sandboxFd, "a.txt", sandboxFd, "sub/b.txt"); err != nil {
		t.Fatalf("PathRename: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sub", "b.txt")); err != nil {
		t.Errorf("renamed file: %v", err)
	}

	buf := make([]byte, 256)
	n, err := s.FdReaddir(sandboxFd, buf, wasi.DircookieStart)
	if err != nil {
		t.Fatalf("FdReaddir: %v", err)
	}
	var names []string
	for d, name := range wasi.Dirents(buf[:n]) {
		names = append(names, name)
		if name == "sub" && d.Type != wasi.FiletypeDirectory {
			t.Errorf("sub has type %d", d.Type)
		}
	}
	if !slices.Contains(names, "sub") || slices.Contains(names, "a.txt") {
		t.Errorf("entries = %v", names)
	}

	if err := s.PathRemoveDirectory(sandboxFd, "sub"); err == nil {
		t.Error("removing a non-empty directory succeeded")
	}
	if err := s.PathUnlinkFile(sandboxFd, "sub/b.txt"); err != nil {
		t.Fatalf("PathUnlinkFile: %v", err)
	}
	if err := s.PathRemoveDirectory(sandboxFd, "sub"); err != nil {
		t.Fatalf("PathRemoveDirectory: %v", err)
	}
}

func TestHost_Symlink(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "target"), "x")
	s := sandbox(t, dir)

	if err := s.PathSymlink("target", sandboxFd, "link"); err != nil {
		t.Fatalf("PathSymlink: %v", err)
	}
	buf := make([]byte, 32)
	n, err := s.PathReadlink(sandboxFd, "link", buf)
	if err != nil {
		t.Fatalf("PathReadlink: %v", err)
	}
	if got := string(buf[:n]); got != "target" {
		t.Errorf("PathReadlink = %q, want target", got)
	}
}

func TestHost_ReadOnlyMount(t *testing.T) {
	dir := t.TempDir()
	h := newHost(t, Config{Preopens: []Preopen{{HostPath: dir, GuestPath: "/ro", ReadOnly: true}}})
	s := wasi.MustNew(h)

	if err := s.PathCreateDirectory(sandboxFd, "nope"); err == nil {
		t.Error("mkdir on a read-only mount succeeded")
	}
	if _, err := os.Stat(filepath.Join(dir, "nope")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("host dir was created: %v", err)
	}
}

func TestHost_Stdio(t *testing.T) {
	var out bytes.Buffer
	h := newHost(t, Config{
		Stdin:  bytes.NewReader([]byte("hello world")),
		Stdout: &out,
	})
	s := wasi.MustNew(h)

	first, second := make([]byte, 3), make([]byte, 16)
	n, err := s.FdRead(0, []wasi.IoVec{wasi.NewIoVec(first), wasi.NewIoVec(second)})
	if err != nil {
		t.Fatalf("FdRead: %v", err)
	}
	if n != 11 || string(first) != "hel" || string(second[:n-3]) != "lo world" {
		t.Errorf("FdRead = %d %q %q", n, first, second[:n-3])
	}

	if _, err := s.FdWrite(1, []wasi.CIoVec{wasi.CIoVecString("out")}); err != nil {
		t.Fatalf("FdWrite: %v", err)
	}
	if out.String() != "out" {
		t.Errorf("stdout = %q", out.String())
	}
}

func TestHost_ClocksAndRandom(t *testing.T) {
	seed := []byte("0123456789abcdef0123456789abcdef")
	h := newHost(t, Config{RandSource: bytes.NewReader(seed)})
	s := wasi.MustNew(h)

	now, err := s.ClockTimeGet(wasi.ClockRealtime, 1)
	if err != nil || now == 0 {
		t.Errorf("ClockTimeGet = %d, %v", now, err)
	}
	res, err := s.ClockResGet(wasi.ClockMonotonic)
	if err != nil || res == 0 {
		t.Errorf("ClockResGet = %d, %v", res, err)
	}

	buf := make([]byte, 16)
	if err := s.RandomGet(buf); err != nil {
		t.Fatalf("RandomGet: %v", err)
	}
	if diff := cmp.Diff(seed[:16], buf); diff != "" {
		t.Errorf("RandomGet mismatch (-want +got):\n%s", diff)
	}

	if err := s.SchedYield(); err != nil {
		t.Errorf("SchedYield: %v", err)
	}
}

func TestHost_PollClock(t *testing.T) {
	s := wasi.MustNew(newHost(t, Config{}))

	in := []wasi.Subscription{
		wasi.ClockSubscription(42, 7, wasi.ClockMonotonic, 1_000_000, 0, 0),
	}
	out := make([]wasi.Event, len(in))
	n, err := s.PollOneoff(in, out)
	if err != nil {
		t.Fatalf("PollOneoff: %v", err)
	}
	if n != 1 {
		t.Fatalf("events = %d, want 1", n)
	}
	if out[0].Userdata != 42 || out[0].Type != wasi.EventtypeClock || out[0].Error != abi.ESUCCESS {
		t.Errorf("event = %s", wasi.FormatEvent(out[0]))
	}
}

func TestHost_MemoryLimit(t *testing.T) {
	h := newHost(t, Config{MemoryLimitPages: 2})
	s := wasi.MustNew(h)

	big := make([]byte, 3*pageSize)
	if _, err := s.FdWrite(1, []wasi.CIoVec{wasi.NewCIoVec(big)}); !errors.Is(err, wasi.ENOMEM) {
		t.Fatalf("oversized write = %v, want ENOMEM", err)
	}

	// the frame is reset for the next call
	if _, err := s.FdWrite(1, []wasi.CIoVec{wasi.CIoVecString("ok")}); err != nil {
		t.Errorf("small write after ENOMEM: %v", err)
	}
}

func TestHost_ProcExit(t *testing.T) {
	var code uint32
	exited := false
	h := newHost(t, Config{Exit: func(c uint32) { code, exited = c, true }})

	h.ProcExit(3)
	if !exited || code != 3 {
		t.Fatalf("exit hook = %v %d, want 3", exited, code)
	}

	var ts abi.Timestamp
	if errno := h.ClockTimeGet(abi.CLOCK_REALTIME, 1, &ts); errno != abi.ENOTRECOVERABLE {
		t.Errorf("call after exit = %d, want ENOTRECOVERABLE", errno)
	}

	s := wasi.MustNew(h)
	func() {
		defer func() {
			err, ok := recover().(*werrors.Error)
			if !ok || err.Kind != werrors.KindContract {
				t.Errorf("recover = %v, want contract error", err)
			}
		}()
		s.ProcExit(4)
	}()
	if code != 4 {
		t.Errorf("second exit code = %d, want 4", code)
	}
}

func TestHost_Concurrent(t *testing.T) {
	var out bytes.Buffer
	s := wasi.MustNew(newHost(t, Config{Stdout: &out}))

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				if _, err := s.FdWrite(1, []wasi.CIoVec{wasi.CIoVecString("x")}); err != nil {
					t.Error(err)
					return
				}
				if _, err := s.ClockTimeGet(wasi.ClockMonotonic, 1); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	wg.Wait()
	if out.Len() != 400 {
		t.Errorf("stdout length = %d, want 400", out.Len())
	}
}
