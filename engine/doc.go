// Package engine provides an abi.Host that runs outside of a WASI sandbox.
//
// The host is backed by wazero's wasi_snapshot_preview1 implementation. That
// implementation only reads and writes the linear memory of the module that
// imported it, so the engine instantiates a small generated proxy module
// whose trampolines forward to each WASI function, and marshals every call
// through the proxy's memory.
//
// # Call Flow
//
//  1. Host.begin locks the host and resets the scratch frame
//  2. inputs (paths, write buffers, subscriptions) are copied into the frame
//  3. output slots are reserved in the frame
//  4. the trampoline runs with the frame offsets as parameters
//  5. on ESUCCESS the outputs are copied back to caller memory
//
// Nothing is written to caller memory when the call fails.
//
// # Layout Translation
//
// wazero implements preview1, which differs from wasi_unstable in three
// places the engine rewrites on the way through:
//
//	whence          unstable CUR=0 END=1 SET=2, preview1 SET=0 CUR=1 END=2
//	filestat        nlink u32 (56 bytes) vs u64 (64 bytes)
//	subscription    clock arm has an identifier (56 bytes) vs none (48 bytes)
//
// A link count above 2^32-1 fails the call with EOVERFLOW.
//
// # Errors
//
// Marshaling failures surface as errno values: ENOMEM when the frame cannot
// grow within Config.MemoryLimitPages, ENOTRECOVERABLE when the trampoline
// traps. Configuration and instantiation failures are returned from New as
// *errors.Error values.
//
// # Thread Safety
//
// Host is safe for concurrent use. Calls are serialized.
package engine
