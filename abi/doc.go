// Package abi describes the raw wasi_unstable system-call surface.
//
// Everything in this package mirrors the host contract one to one: primitive
// integer types, fixed-layout records, the numeric constant catalogue and the
// Host interface with one method per entry point. Methods take primitive
// integers, typed pointers and pointer+length pairs and report a single Errno
// status. Nothing here checks bounds or hides uninitialized memory; that is the
// job of the wasi package, which is the intended entry point for callers.
//
// # Hosts
//
// Native returns the host of the running process. Under GOOS=wasip1 it is
// backed by //go:wasmimport declarations against the "wasi_unstable" module.
// On every other platform it answers ENOSYS to all calls and implements
// proc_exit with os.Exit.
//
// The engine package provides a Host backed by a wazero runtime, and tests
// provide their own.
//
// # Layout
//
// Record types use structs.HostLayout and match the wasm32 C layout of the
// wasi_unstable headers field for field, with the exception of IoVec and
// CIoVec: those carry a Go pointer and are converted to the 32-bit layout by
// the host that needs it.
package abi
