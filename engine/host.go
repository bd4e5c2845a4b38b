package engine

import (
	"context"
	"crypto/rand"
	stderrors "errors"
	"runtime"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/wippyai/wasi-shim/abi"
	"github.com/wippyai/wasi-shim/engine/internal/proxy"
	"github.com/wippyai/wasi-shim/errors"
)

// moduleName is the instance name of the proxy module.
const moduleName = "wasi-shim"

// Host is an abi.Host backed by wazero's WASI implementation.
//
// Every call copies its arguments into the proxy module's memory, runs the
// matching trampoline, and copies results back to caller memory only when the
// call succeeded. Calls are serialized.
type Host struct {
	runtime wazero.Runtime
	mod     api.Module
	fns     [proxy.NumFuncs]api.Function
	stack   []uint64
	frame   frame
	ctx     context.Context
	exit    func(uint32)
	log     *zap.Logger
	mu      sync.Mutex
	exited  bool
}

var _ abi.Host = (*Host)(nil)

// New creates a wazero runtime, instantiates WASI and the proxy module, and
// returns a Host for it. Close the host to release the runtime.
func New(ctx context.Context, cfg Config) (*Host, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log := cfg.logger()

	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	r := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	if _, err := instantiateWASI(ctx, r); err != nil {
		return nil, multierr.Append(errors.Instantiation("instantiate WASI", err), r.Close(ctx))
	}

	compiled, err := r.CompileModule(ctx, proxy.Build())
	if err != nil {
		return nil, multierr.Append(errors.Instantiation("compile proxy module", err), r.Close(ctx))
	}

	fsCfg := wazero.NewFSConfig()
	for _, p := range cfg.Preopens {
		guest := cleanGuest(p.GuestPath)
		if p.ReadOnly {
			fsCfg = fsCfg.WithReadOnlyDirMount(p.HostPath, guest)
		} else {
			fsCfg = fsCfg.WithDirMount(p.HostPath, guest)
		}
		log.Debug("preopen", zap.String("host", p.HostPath), zap.String("guest", guest), zap.Bool("readonly", p.ReadOnly))
	}

	randSource := cfg.RandSource
	if randSource == nil {
		randSource = rand.Reader
	}

	modCfg := wazero.NewModuleConfig().
		WithName(moduleName).
		WithStartFunctions().
		WithFSConfig(fsCfg).
		WithRandSource(randSource).
		WithSysWalltime().
		WithSysNanotime().
		WithSysNanosleep().
		WithOsyield(runtime.Gosched)
	if cfg.Stdin != nil {
		modCfg = modCfg.WithStdin(cfg.Stdin)
	}
	if cfg.Stdout != nil {
		modCfg = modCfg.WithStdout(cfg.Stdout)
	}
	if cfg.Stderr != nil {
		modCfg = modCfg.WithStderr(cfg.Stderr)
	}

	mod, err := r.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return nil, multierr.Append(errors.Instantiation("instantiate proxy module", err), r.Close(ctx))
	}

	h := &Host{
		runtime: r,
		mod:     mod,
		stack:   make([]uint64, proxy.MaxParams),
		ctx:     context.WithoutCancel(ctx),
		exit:    cfg.exit(),
		log:     log,
	}

	var missing []string
	for f := proxy.Func(0); f < proxy.NumFuncs; f++ {
		h.fns[f] = mod.ExportedFunction(f.String())
		if h.fns[f] == nil {
			missing = append(missing, f.String())
		}
	}
	mem := mod.ExportedMemory(proxy.MemoryName)
	if mem == nil {
		missing = append(missing, proxy.MemoryName)
	}
	if len(missing) > 0 {
		return nil, multierr.Append(&errors.MissingExportsError{Module: moduleName, Names: missing}, r.Close(ctx))
	}
	h.frame.mem = mem

	log.Debug("host ready", zap.Int("preopens", len(cfg.Preopens)), zap.Uint32("memory_limit_pages", cfg.MemoryLimitPages))
	return h, nil
}

// Close releases the proxy module and the runtime.
func (h *Host) Close(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return multierr.Combine(h.mod.Close(ctx), h.runtime.Close(ctx))
}

// begin locks the host and resets the scratch frame. The caller must call
// h.mu.Unlock.
func (h *Host) begin() *frame {
	h.mu.Lock()
	h.frame.reset()
	return &h.frame
}

// call runs the trampoline for fn and returns its errno. Marshaling failures
// recorded in the frame win over the call.
func (h *Host) call(fn proxy.Func, params ...uint64) abi.Errno {
	if h.frame.err != abi.ESUCCESS {
		return h.frame.err
	}
	if h.exited {
		return abi.ENOTRECOVERABLE
	}
	stack := h.stack[:max(len(params), 1)]
	copy(stack, params)
	if err := h.fns[fn].CallWithStack(h.ctx, stack); err != nil {
		h.log.Warn("guest trap", zap.Stringer("call", fn), zap.Error(err))
		return abi.ENOTRECOVERABLE
	}
	return abi.Errno(stack[0])
}

// done returns the marshaling status of the copy-out phase.
func (h *Host) done() abi.Errno {
	return h.frame.err
}

// ProcExit shuts the sandbox down and hands the exit code to Config.Exit.
func (h *Host) ProcExit(rval abi.ExitCode) {
	h.mu.Lock()
	code := rval
	if !h.exited {
		stack := h.stack[:1]
		stack[0] = api.EncodeU32(rval)
		err := h.fns[proxy.ProcExit].CallWithStack(h.ctx, stack)
		var exitErr *sys.ExitError
		if stderrors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		} else if err != nil {
			h.log.Warn("proc_exit", zap.Error(err))
		}
		h.exited = true
	}
	h.mu.Unlock()

	h.log.Debug("exit", zap.Uint32("code", code))
	h.exit(code)
}
