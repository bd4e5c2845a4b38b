// Package wasishim is a checked Go layer over the wasi_unstable system
// interface.
//
// The raw interface speaks in status codes, caller-owned buffers and output
// pointers. This module turns each entry point into a Go method that returns
// its outputs only when the host reported success, and an error otherwise.
//
// # Architecture Overview
//
//	wasishim/
//	├── abi/             Raw host interface, C-layout records and constants
//	├── wasi/            Checked operations over an abi.Host
//	├── engine/          abi.Host backed by wazero, usable outside a sandbox
//	├── errors/          Structured errors for failures that are not status codes
//	└── cmd/wasish/      Command line explorer for a sandbox
//
// Compiled for GOOS=wasip1, abi.Native binds the wasi_unstable imports of the
// running module. Everywhere else engine.New provides a host that runs the
// same calls against wazero's WASI implementation and preopened host
// directories.
//
// # Quick Start
//
//	host, err := engine.New(ctx, engine.Config{
//	    Preopens: []engine.Preopen{{HostPath: dir, GuestPath: "/"}},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer host.Close(ctx)
//
//	sys := wasi.MustNew(host)
//	fd, err := sys.PathOpen(3, 0, "notes.txt", wasi.OCreat, wasi.RightFdWrite, 0, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	n, err := sys.FdWrite(fd, []wasi.CIoVec{wasi.CIoVecString("hello")})
//
// # Error Handling
//
// Every failed operation returns a wasi.Errno carrying the host's status
// unchanged. Errno matches fs.ErrNotExist, fs.ErrExist, fs.ErrPermission and
// errors.ErrUnsupported with errors.Is. Programming errors, such as a poll
// result slice shorter than its subscriptions or a host reporting more bytes
// than the buffers hold, panic with an *errors.Error.
package wasishim
