package wasi

import "github.com/wippyai/wasi-shim/errors"

// ProcExit terminates the process with code. It does not return; a host that
// hands control back is broken and ProcExit panics.
func (s *System) ProcExit(code ExitCode) {
	s.host.ProcExit(code)
	panic(errors.Unreachable("proc_exit"))
}

// ProcRaise sends sig to the process.
func (s *System) ProcRaise(sig Signal) error {
	return check(s.host.ProcRaise(sig))
}

// SchedYield gives up the rest of the time slice.
func (s *System) SchedYield() error {
	return check(s.host.SchedYield())
}

// RandomGet fills buf with random bytes. On failure buf may hold partial
// output and must not be used.
func (s *System) RandomGet(buf []byte) error {
	p, n := bytesArg(buf)
	return check(s.host.RandomGet(p, n))
}
