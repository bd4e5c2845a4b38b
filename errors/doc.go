// Package errors provides structured error types for failures that are not
// host status codes: building the translation layer, configuring and
// instantiating the wazero host, and hosts that break the calling
// convention.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Host status codes themselves are wasi.Errno values and never pass
// through this package.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfig, errors.KindInvalidInput).
//		Path("preopens", "0", "guest").
//		Value(guest).
//		Detail("guest path must not be empty").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Contract("fd_read", 12, 8)
//	err := errors.Instantiation("compile proxy module", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
