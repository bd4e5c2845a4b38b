package wasi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/wippyai/wasi-shim/abi"
	werrors "github.com/wippyai/wasi-shim/errors"
)

func newSystem(t *testing.T, h *mockHost) *System {
	t.Helper()
	s, err := New(h)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

// mustPanic runs fn and returns the recovered value, failing if fn returns.
func mustPanic(t *testing.T, fn func()) (v any) {
	t.Helper()
	defer func() {
		v = recover()
		if v == nil {
			t.Fatal("expected panic")
		}
	}()
	fn()
	return nil
}

func contractKind(t *testing.T, v any) *werrors.Error {
	t.Helper()
	err, ok := v.(*werrors.Error)
	if !ok {
		t.Fatalf("panic value %T (%v), want *errors.Error", v, v)
	}
	return err
}

func TestFdRead_ScatterIntoFirstBuffer(t *testing.T) {
	h := &mockHost{
		fdRead: func(fd abi.Fd, iovs []abi.IoVec, nread *abi.Size) abi.Errno {
			if fd != 5 || len(iovs) != 2 {
				t.Errorf("fd=%d len(iovs)=%d", fd, len(iovs))
			}
			copy(iovBytes(iovs[0]), "wasi")
			*nread = 4
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	first, second := make([]byte, 4), make([]byte, 4)
	n, err := s.FdRead(5, []IoVec{NewIoVec(first), NewIoVec(second)})
	if err != nil {
		t.Fatalf("FdRead: %v", err)
	}
	if n != 4 {
		t.Fatalf("n = %d, want 4", n)
	}
	if string(first[:n]) != "wasi" {
		t.Errorf("first buffer = %q, want %q", first[:n], "wasi")
	}
	if h.calls != 1 {
		t.Errorf("host calls = %d, want 1", h.calls)
	}
}

func TestFdWrite_FailureHasNoCount(t *testing.T) {
	h := &mockHost{
		fdWrite: func(fd abi.Fd, iovs []abi.CIoVec, nwritten *abi.Size) abi.Errno {
			return abi.EBADF
		},
	}
	s := newSystem(t, h)

	n, err := s.FdWrite(9, []CIoVec{CIoVecString("data")})
	if n != 0 {
		t.Errorf("n = %d on failure, want 0", n)
	}
	var errno Errno
	if !errors.As(err, &errno) || errno != EBADF {
		t.Fatalf("err = %v, want EBADF", err)
	}
	if errno.Code() != abi.EBADF {
		t.Errorf("Code() = %d, want %d", errno.Code(), abi.EBADF)
	}
}

func TestFdWrite_Gather(t *testing.T) {
	var got []byte
	h := &mockHost{
		fdWrite: func(fd abi.Fd, iovs []abi.CIoVec, nwritten *abi.Size) abi.Errno {
			for _, v := range iovs {
				got = append(got, ciovBytes(v)...)
			}
			*nwritten = abi.Size(len(got))
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	n, err := s.FdWrite(1, []CIoVec{CIoVecString("hello, "), NewCIoVec([]byte("world"))})
	if err != nil {
		t.Fatalf("FdWrite: %v", err)
	}
	if n != 12 || string(got) != "hello, world" {
		t.Errorf("n=%d got=%q", n, got)
	}
}

func TestPollOneoff_CapacityPrecondition(t *testing.T) {
	h := &mockHost{
		pollOneoff: func([]abi.Subscription, []abi.Event, *abi.Size) abi.Errno {
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	in := []Subscription{
		ClockSubscription(1, 0, ClockMonotonic, 10, 0, 0),
		FdReadSubscription(2, 0),
		FdWriteSubscription(3, 1),
	}
	out := make([]Event, 2)

	v := mustPanic(t, func() { s.PollOneoff(in, out) })
	if err := contractKind(t, v); err.Kind != werrors.KindInvalidInput || err.Call != "poll_oneoff" {
		t.Errorf("panic = %v", err)
	}
	if h.calls != 0 {
		t.Errorf("host called %d times before precondition check", h.calls)
	}
}

func TestPollOneoff(t *testing.T) {
	h := &mockHost{
		pollOneoff: func(in []abi.Subscription, out []abi.Event, nevents *abi.Size) abi.Errno {
			out[0] = abi.Event{Userdata: in[1].Userdata, Type: in[1].Type}
			out[0].FdReadwrite.Nbytes = 7
			*nevents = 1
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	in := []Subscription{
		ClockSubscription(1, 0, ClockMonotonic, 1_000_000, 0, 0),
		FdReadSubscription(2, 0),
	}
	out := make([]Event, 2)
	n, err := s.PollOneoff(in, out)
	if err != nil {
		t.Fatalf("PollOneoff: %v", err)
	}
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	want := Event{Userdata: 2, Type: EventtypeFdRead, FdReadwrite: EventFdReadwrite{Nbytes: 7}}
	if diff := cmp.Diff(want, out[0], cmpopts.IgnoreUnexported(Event{}, EventFdReadwrite{})); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
	if EventErr(out[0]) != nil {
		t.Errorf("EventErr = %v", EventErr(out[0]))
	}
}

func TestPollOneoff_TooManyEvents(t *testing.T) {
	h := &mockHost{
		pollOneoff: func(in []abi.Subscription, out []abi.Event, nevents *abi.Size) abi.Errno {
			*nevents = abi.Size(len(in) + 1)
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	v := mustPanic(t, func() {
		s.PollOneoff([]Subscription{FdReadSubscription(1, 0)}, make([]Event, 4))
	})
	if err := contractKind(t, v); err.Kind != werrors.KindContract {
		t.Errorf("Kind = %v, want contract", err.Kind)
	}
}

func TestSockRecv_CountAndFlagsTogether(t *testing.T) {
	h := &mockHost{
		sockRecv: func(sock abi.Fd, iovs []abi.IoVec, flags abi.RiFlags, n *abi.Size, ro *abi.RoFlags) abi.Errno {
			if flags != abi.SOCK_RECV_PEEK {
				t.Errorf("flags = %d, want peek", flags)
			}
			*n = 10
			*ro = abi.SOCK_RECV_DATA_TRUNCATED
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	r, err := s.SockRecv(3, []IoVec{NewIoVec(make([]byte, 10))}, SockRecvPeek)
	if err != nil {
		t.Fatalf("SockRecv: %v", err)
	}
	if diff := cmp.Diff(Received{N: 10, Flags: SockRecvDataTruncated}, r); diff != "" {
		t.Errorf("Received mismatch (-want +got):\n%s", diff)
	}
	if !r.Truncated() {
		t.Error("Truncated() = false")
	}
	if h.calls != 1 {
		t.Errorf("host calls = %d, want 1", h.calls)
	}
}

func TestSockRecv_FailureDropsBothOutputs(t *testing.T) {
	h := &mockHost{
		sockRecv: func(sock abi.Fd, iovs []abi.IoVec, flags abi.RiFlags, n *abi.Size, ro *abi.RoFlags) abi.Errno {
			*n = poison
			*ro = 0xffff
			return abi.ENOTCONN
		},
	}
	s := newSystem(t, h)

	r, err := s.SockRecv(3, []IoVec{NewIoVec(make([]byte, 4))}, 0)
	if !errors.Is(err, ENOTCONN) {
		t.Fatalf("err = %v, want ENOTCONN", err)
	}
	if r != (Received{}) {
		t.Errorf("Received = %+v on failure, want zero", r)
	}
}

func TestTransferCountsBounded(t *testing.T) {
	tests := []struct {
		name string
		call string
		host *mockHost
		run  func(s *System)
	}{
		{
			name: "fd_read",
			call: "fd_read",
			host: &mockHost{fdRead: func(_ abi.Fd, _ []abi.IoVec, n *abi.Size) abi.Errno {
				*n = 9
				return abi.ESUCCESS
			}},
			run: func(s *System) {
				s.FdRead(0, []IoVec{NewIoVec(make([]byte, 4)), NewIoVec(make([]byte, 4))})
			},
		},
		{
			name: "fd_write",
			call: "fd_write",
			host: &mockHost{fdWrite: func(_ abi.Fd, _ []abi.CIoVec, n *abi.Size) abi.Errno {
				*n = 6
				return abi.ESUCCESS
			}},
			run: func(s *System) {
				s.FdWrite(1, []CIoVec{CIoVecString("five!")})
			},
		},
		{
			name: "sock_send",
			call: "sock_send",
			host: &mockHost{sockSend: func(_ abi.Fd, _ []abi.CIoVec, _ abi.SiFlags, n *abi.Size) abi.Errno {
				*n = 1
				return abi.ESUCCESS
			}},
			run: func(s *System) {
				s.SockSend(4, nil, 0)
			},
		},
		{
			name: "sock_recv",
			call: "sock_recv",
			host: &mockHost{sockRecv: func(_ abi.Fd, _ []abi.IoVec, _ abi.RiFlags, n *abi.Size, _ *abi.RoFlags) abi.Errno {
				*n = 11
				return abi.ESUCCESS
			}},
			run: func(s *System) {
				s.SockRecv(4, []IoVec{NewIoVec(make([]byte, 10))}, 0)
			},
		},
		{
			name: "fd_readdir",
			call: "fd_readdir",
			host: &mockHost{fdReaddir: func(_ abi.Fd, buf []byte, _ abi.DirCookie, used *abi.Size) abi.Errno {
				*used = abi.Size(len(buf) + 1)
				return abi.ESUCCESS
			}},
			run: func(s *System) {
				s.FdReaddir(3, make([]byte, 64), DircookieStart)
			},
		},
		{
			name: "path_readlink",
			call: "path_readlink",
			host: &mockHost{pathReadlink: func(_ abi.Fd, _ string, buf []byte, used *abi.Size) abi.Errno {
				*used = abi.Size(len(buf) + 1)
				return abi.ESUCCESS
			}},
			run: func(s *System) {
				s.PathReadlink(3, "link", make([]byte, 8))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSystem(t, tt.host)
			v := mustPanic(t, func() { tt.run(s) })
			err := contractKind(t, v)
			if err.Kind != werrors.KindContract || err.Call != tt.call {
				t.Errorf("panic = %v, want contract in %s", err, tt.call)
			}
		})
	}
}

func TestOutputsNotReadOnFailure(t *testing.T) {
	h := &mockHost{
		clockTimeGet: func(_ abi.ClockID, _ abi.Timestamp, ts *abi.Timestamp) abi.Errno {
			*ts = poison
			return abi.EINVAL
		},
		fdFilestatGet: func(_ abi.Fd, st *abi.FileStat) abi.Errno {
			*st = abi.FileStat{Dev: poison, Ino: poison, Size: poison, Nlink: poison}
			return abi.EBADF
		},
		fdFdstatGet: func(_ abi.Fd, st *abi.FdStat) abi.Errno {
			st.FsRightsBase = poison
			return abi.EBADF
		},
		fdSeek: func(_ abi.Fd, _ abi.FileDelta, _ abi.Whence, off *abi.FileSize) abi.Errno {
			*off = poison
			return abi.ESPIPE
		},
		pathOpen: func(_ abi.Fd, _ string, fd *abi.Fd) abi.Errno {
			*fd = poison
			return abi.ENOENT
		},
		fdRead: func(_ abi.Fd, _ []abi.IoVec, n *abi.Size) abi.Errno {
			*n = poison
			return abi.EIO
		},
	}
	s := newSystem(t, h)

	if ts, err := s.ClockTimeGet(ClockRealtime, 0); ts != 0 || !errors.Is(err, EINVAL) {
		t.Errorf("ClockTimeGet = %d, %v", ts, err)
	}
	if st, err := s.FdFilestatGet(3); st != (FileStat{}) || !errors.Is(err, EBADF) {
		t.Errorf("FdFilestatGet = %+v, %v", st, err)
	}
	if st, err := s.FdFdstatGet(3); st != (FdStat{}) || !errors.Is(err, EBADF) {
		t.Errorf("FdFdstatGet = %+v, %v", st, err)
	}
	if off, err := s.FdSeek(3, 0, WhenceCur); off != 0 || !errors.Is(err, ESPIPE) {
		t.Errorf("FdSeek = %d, %v", off, err)
	}
	if fd, err := s.PathOpen(3, 0, "missing", 0, 0, 0, 0); fd != 0 || !errors.Is(err, ENOENT) {
		t.Errorf("PathOpen = %d, %v", fd, err)
	}
	// a poisoned count above capacity would panic if it were read
	if n, err := s.FdRead(0, []IoVec{NewIoVec(make([]byte, 1))}); n != 0 || !errors.Is(err, EIO) {
		t.Errorf("FdRead = %d, %v", n, err)
	}
}

func TestOutputsOnSuccess(t *testing.T) {
	want := FileStat{Dev: 1, Ino: 2, Filetype: FiletypeRegularFile, Nlink: 1, Size: 42, Atim: 10, Mtim: 20, Ctim: 30}
	h := &mockHost{
		fdFilestatGet: func(_ abi.Fd, st *abi.FileStat) abi.Errno {
			*st = want
			return abi.ESUCCESS
		},
		pathOpen: func(dirfd abi.Fd, path string, fd *abi.Fd) abi.Errno {
			if dirfd != 3 || path != "dir/file.txt" {
				t.Errorf("dirfd=%d path=%q", dirfd, path)
			}
			*fd = 7
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	got, err := s.FdFilestatGet(7)
	if err != nil {
		t.Fatalf("FdFilestatGet: %v", err)
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(FileStat{})); diff != "" {
		t.Errorf("FileStat mismatch (-want +got):\n%s", diff)
	}

	fd, err := s.PathOpen(3, LookupSymlinkFollow, "dir/file.txt", OCreat, RightFdRead, 0, 0)
	if err != nil || fd != 7 {
		t.Errorf("PathOpen = %d, %v", fd, err)
	}
}

func TestRightsRoundTrip(t *testing.T) {
	var stored abi.FdStat
	h := &mockHost{
		fdFdstatSetRights: func(_ abi.Fd, base, inheriting abi.Rights) abi.Errno {
			stored.FsRightsBase, stored.FsRightsInheriting = base, inheriting
			return abi.ESUCCESS
		},
		fdFdstatGet: func(_ abi.Fd, st *abi.FdStat) abi.Errno {
			*st = stored
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	sets := []Rights{
		0,
		RightFdRead | RightFdSeek | RightFdTell,
		RightPathOpen | RightFdReaddir | RightPathCreateFile,
		RightSockShutdown | RightPollFdReadwrite,
		1<<29 - 1,
	}
	for _, base := range sets {
		inheriting := base &^ RightFdSeek
		if err := s.FdFdstatSetRights(3, base, inheriting); err != nil {
			t.Fatalf("FdFdstatSetRights: %v", err)
		}
		st, err := s.FdFdstatGet(3)
		if err != nil {
			t.Fatalf("FdFdstatGet: %v", err)
		}
		if st.FsRightsBase != base || st.FsRightsInheriting != inheriting {
			t.Errorf("rights %#x/%#x, want %#x/%#x", st.FsRightsBase, st.FsRightsInheriting, base, inheriting)
		}
	}
}

func TestNew_Catalogue(t *testing.T) {
	bad := abi.Catalogue{Module: "wasi_future", Success: 1}

	s, err := New(&mockHost{}, WithCatalogue(bad))
	if s != nil {
		t.Error("New returned a System for a non-zero success status")
	}
	if !errors.Is(err, &werrors.Error{Phase: werrors.PhaseInit, Kind: werrors.KindCatalogue}) {
		t.Fatalf("err = %v, want catalogue error", err)
	}

	mustPanic(t, func() { MustNew(&mockHost{}, WithCatalogue(bad)) })

	if _, err := New(&mockHost{}, WithCatalogue(abi.Unstable)); err != nil {
		t.Errorf("New with abi.Unstable: %v", err)
	}
}

func TestNew_NilHost(t *testing.T) {
	_, err := New(nil)
	if !errors.Is(err, &werrors.Error{Phase: werrors.PhaseInit, Kind: werrors.KindInvalidInput}) {
		t.Errorf("err = %v", err)
	}
}

type exited struct{ code abi.ExitCode }

func TestProcExit(t *testing.T) {
	t.Run("terminates", func(t *testing.T) {
		h := &mockHost{procExit: func(code abi.ExitCode) { panic(exited{code}) }}
		s := newSystem(t, h)

		v := mustPanic(t, func() { s.ProcExit(3) })
		if v != (exited{3}) {
			t.Errorf("exit = %v, want code 3", v)
		}
	})

	t.Run("host returns", func(t *testing.T) {
		h := &mockHost{}
		s := newSystem(t, h)

		v := mustPanic(t, func() { s.ProcExit(0) })
		if err := contractKind(t, v); err.Call != "proc_exit" {
			t.Errorf("panic = %v", err)
		}
		if h.calls != 1 {
			t.Errorf("host calls = %d, want 1", h.calls)
		}
	})
}

func TestFlatBuffers(t *testing.T) {
	h := &mockHost{
		randomGet: func(buf []byte) abi.Errno {
			for i := range buf {
				buf[i] = byte(i + 1)
			}
			return abi.ESUCCESS
		},
		fdPrestatDirName: func(fd abi.Fd, path []byte) abi.Errno {
			copy(path, "/sandbox")
			return abi.ESUCCESS
		},
		pathReadlink: func(_ abi.Fd, path string, buf []byte, used *abi.Size) abi.Errno {
			*used = abi.Size(copy(buf, "target/"+path))
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	buf := make([]byte, 4)
	if err := s.RandomGet(buf); err != nil {
		t.Fatalf("RandomGet: %v", err)
	}
	if diff := cmp.Diff([]byte{1, 2, 3, 4}, buf); diff != "" {
		t.Errorf("RandomGet (-want +got):\n%s", diff)
	}

	name := make([]byte, len("/sandbox"))
	if err := s.FdPrestatDirName(3, name); err != nil || string(name) != "/sandbox" {
		t.Errorf("FdPrestatDirName = %q, %v", name, err)
	}

	link := make([]byte, 32)
	n, err := s.PathReadlink(3, "x", link)
	if err != nil || string(link[:n]) != "target/x" {
		t.Errorf("PathReadlink = %q, %v", link[:n], err)
	}
}

func TestEmptyViews(t *testing.T) {
	h := &mockHost{
		fdRead: func(_ abi.Fd, iovs []abi.IoVec, n *abi.Size) abi.Errno {
			if len(iovs) != 0 {
				t.Errorf("len(iovs) = %d", len(iovs))
			}
			*n = 0
			return abi.ESUCCESS
		},
	}
	s := newSystem(t, h)

	n, err := s.FdRead(0, nil)
	if n != 0 || err != nil {
		t.Errorf("FdRead(nil) = %d, %v", n, err)
	}
}

func TestNoSysHost(t *testing.T) {
	s := MustNew(abi.NoSys{})
	_, err := s.ClockResGet(ClockMonotonic)
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
}
