// Package proxy generates the guest module the engine calls WASI through.
//
// Host functions cannot be called with caller memory of their own: wazero's
// WASI implementation reads and writes the memory of the module that imported
// it. The proxy module imports each covered function, owns one linear memory,
// and exports a trampoline per import that forwards its parameters unchanged.
package proxy

import (
	"sync"

	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// ValType is a core wasm value type.
type ValType byte

const (
	I32 ValType = 0x7f
	I64 ValType = 0x7e
)

// Func identifies a forwarded WASI function.
type Func int

const (
	ClockResGet Func = iota
	ClockTimeGet
	FdAdvise
	FdAllocate
	FdClose
	FdDatasync
	FdFdstatGet
	FdFdstatSetFlags
	FdFdstatSetRights
	FdFilestatGet
	FdFilestatSetSize
	FdFilestatSetTimes
	FdPread
	FdPrestatGet
	FdPrestatDirName
	FdPwrite
	FdRead
	FdReaddir
	FdRenumber
	FdSeek
	FdSync
	FdTell
	FdWrite
	PathCreateDirectory
	PathFilestatGet
	PathFilestatSetTimes
	PathLink
	PathOpen
	PathReadlink
	PathRemoveDirectory
	PathRename
	PathSymlink
	PathUnlinkFile
	PollOneoff
	ProcExit
	ProcRaise
	SchedYield
	RandomGet
	SockRecv
	SockSend
	SockShutdown

	NumFuncs
)

// Signature is the import type of a forwarded function. Every function but
// proc_exit returns an i32 errno.
type Signature struct {
	Name   string
	Params []ValType
	Errno  bool
}

func sig(name string, params ...ValType) Signature {
	return Signature{Name: name, Params: params, Errno: true}
}

// Signatures is indexed by Func.
var Signatures = [NumFuncs]Signature{
	ClockResGet:          sig("clock_res_get", I32, I32),
	ClockTimeGet:         sig("clock_time_get", I32, I64, I32),
	FdAdvise:             sig("fd_advise", I32, I64, I64, I32),
	FdAllocate:           sig("fd_allocate", I32, I64, I64),
	FdClose:              sig("fd_close", I32),
	FdDatasync:           sig("fd_datasync", I32),
	FdFdstatGet:          sig("fd_fdstat_get", I32, I32),
	FdFdstatSetFlags:     sig("fd_fdstat_set_flags", I32, I32),
	FdFdstatSetRights:    sig("fd_fdstat_set_rights", I32, I64, I64),
	FdFilestatGet:        sig("fd_filestat_get", I32, I32),
	FdFilestatSetSize:    sig("fd_filestat_set_size", I32, I64),
	FdFilestatSetTimes:   sig("fd_filestat_set_times", I32, I64, I64, I32),
	FdPread:              sig("fd_pread", I32, I32, I32, I64, I32),
	FdPrestatGet:         sig("fd_prestat_get", I32, I32),
	FdPrestatDirName:     sig("fd_prestat_dir_name", I32, I32, I32),
	FdPwrite:             sig("fd_pwrite", I32, I32, I32, I64, I32),
	FdRead:               sig("fd_read", I32, I32, I32, I32),
	FdReaddir:            sig("fd_readdir", I32, I32, I32, I64, I32),
	FdRenumber:           sig("fd_renumber", I32, I32),
	FdSeek:               sig("fd_seek", I32, I64, I32, I32),
	FdSync:               sig("fd_sync", I32),
	FdTell:               sig("fd_tell", I32, I32),
	FdWrite:              sig("fd_write", I32, I32, I32, I32),
	PathCreateDirectory:  sig("path_create_directory", I32, I32, I32),
	PathFilestatGet:      sig("path_filestat_get", I32, I32, I32, I32, I32),
	PathFilestatSetTimes: sig("path_filestat_set_times", I32, I32, I32, I32, I64, I64, I32),
	PathLink:             sig("path_link", I32, I32, I32, I32, I32, I32, I32),
	PathOpen:             sig("path_open", I32, I32, I32, I32, I32, I64, I64, I32, I32),
	PathReadlink:         sig("path_readlink", I32, I32, I32, I32, I32, I32),
	PathRemoveDirectory:  sig("path_remove_directory", I32, I32, I32),
	PathRename:           sig("path_rename", I32, I32, I32, I32, I32, I32),
	PathSymlink:          sig("path_symlink", I32, I32, I32, I32, I32),
	PathUnlinkFile:       sig("path_unlink_file", I32, I32, I32),
	PollOneoff:           sig("poll_oneoff", I32, I32, I32, I32),
	ProcExit:             {Name: "proc_exit", Params: []ValType{I32}},
	ProcRaise:            sig("proc_raise", I32),
	SchedYield:           sig("sched_yield"),
	RandomGet:            sig("random_get", I32, I32),
	SockRecv:             sig("sock_recv", I32, I32, I32, I32, I32, I32),
	SockSend:             sig("sock_send", I32, I32, I32, I32, I32),
	SockShutdown:         sig("sock_shutdown", I32, I32),
}

// String returns the WASI name of f.
func (f Func) String() string {
	if f < 0 || f >= NumFuncs {
		return "unknown"
	}
	return Signatures[f].Name
}

// MaxParams is the longest parameter list of any forwarded function.
var MaxParams = func() int {
	n := 0
	for _, s := range Signatures {
		n = max(n, len(s.Params))
	}
	return n
}()

// MemoryName is the export name of the proxy's linear memory.
const MemoryName = "memory"

// InitialPages is the initial size of the proxy memory.
const InitialPages = 1

const (
	magic   = 0x6d736100 // \0asm
	version = 1

	sectionType     = 1
	sectionImport   = 2
	sectionFunction = 3
	sectionMemory   = 5
	sectionExport   = 7
	sectionCode     = 10

	funcTypeByte = 0x60
	kindFunc     = 0x00
	kindMemory   = 0x02

	opLocalGet = 0x20
	opCall     = 0x10
	opEnd      = 0x0b
)

// Build returns the encoded proxy module. The result is shared; do not modify
// it.
var Build = sync.OnceValue(build)

func build() []byte {
	var w writer
	w.u32le(magic)
	w.u32le(version)

	// one type per function, same index as the import and the trampoline
	var types writer
	types.u32(uint32(NumFuncs))
	for _, s := range Signatures {
		types.byte(funcTypeByte)
		types.u32(uint32(len(s.Params)))
		for _, p := range s.Params {
			types.byte(byte(p))
		}
		if s.Errno {
			types.u32(1)
			types.byte(byte(I32))
		} else {
			types.u32(0)
		}
	}
	w.section(sectionType, &types)

	var imports writer
	imports.u32(uint32(NumFuncs))
	for i, s := range Signatures {
		imports.name(wasi_snapshot_preview1.ModuleName)
		imports.name(s.Name)
		imports.byte(kindFunc)
		imports.u32(uint32(i))
	}
	w.section(sectionImport, &imports)

	var funcs writer
	funcs.u32(uint32(NumFuncs))
	for i := range Signatures {
		funcs.u32(uint32(i))
	}
	w.section(sectionFunction, &funcs)

	var mem writer
	mem.u32(1)
	mem.byte(0x00) // no maximum
	mem.u32(InitialPages)
	w.section(sectionMemory, &mem)

	// imported functions occupy indices [0, NumFuncs)
	var exports writer
	exports.u32(uint32(NumFuncs) + 1)
	for i, s := range Signatures {
		exports.name(s.Name)
		exports.byte(kindFunc)
		exports.u32(uint32(NumFuncs) + uint32(i))
	}
	exports.name(MemoryName)
	exports.byte(kindMemory)
	exports.u32(0)
	w.section(sectionExport, &exports)

	var code writer
	code.u32(uint32(NumFuncs))
	for i, s := range Signatures {
		var body writer
		body.u32(0) // no locals
		for p := range s.Params {
			body.byte(opLocalGet)
			body.u32(uint32(p))
		}
		body.byte(opCall)
		body.u32(uint32(i))
		body.byte(opEnd)

		code.u32(uint32(body.buf.Len()))
		code.write(body.bytes())
	}
	w.section(sectionCode, &code)

	return w.bytes()
}
