package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
)

// instantiateWASI instantiates wazero's preview1 functions as the host module
// the proxy imports from. A runtime that already has it is left as is.
func instantiateWASI(ctx context.Context, r wazero.Runtime) (api.Module, error) {
	if m := r.Module(wasi_snapshot_preview1.ModuleName); m != nil {
		return m, nil
	}
	builder := r.NewHostModuleBuilder(wasi_snapshot_preview1.ModuleName)
	wasi_snapshot_preview1.NewFunctionExporter().ExportFunctions(builder)
	return builder.Instantiate(ctx)
}
