package wasi

import (
	"sync"

	"github.com/wippyai/wasi-shim/abi"
	"github.com/wippyai/wasi-shim/errors"
)

// Build fails here if the catalogue ever stops using zero for success: the
// constant expression overflows uint16.
const _ = 0 - abi.ESUCCESS

func init() {
	if abi.Unstable.Success != 0 {
		panic(errors.Catalogue(abi.Unstable.Module, abi.Unstable.Success))
	}
}

// System is the checked view of one host. It holds no mutable state and adds
// no locking: concurrent use is as safe as the host makes it.
type System struct {
	host abi.Host
}

// Option configures New.
type Option func(*options)

type options struct {
	catalogue abi.Catalogue
}

// WithCatalogue sets the constant catalogue the host speaks. The default is
// abi.Unstable.
func WithCatalogue(c abi.Catalogue) Option {
	return func(o *options) {
		o.catalogue = c
	}
}

// New wraps host. It fails when the catalogue's success status is not zero,
// since every status check in this package depends on it.
func New(host abi.Host, opts ...Option) (*System, error) {
	o := options{catalogue: abi.Unstable}
	for _, opt := range opts {
		opt(&o)
	}
	if o.catalogue.Success != abi.ESUCCESS {
		return nil, errors.Catalogue(o.catalogue.Module, o.catalogue.Success)
	}
	if host == nil {
		return nil, errors.InvalidInput(errors.PhaseInit, "nil host")
	}
	return &System{host: host}, nil
}

// MustNew is like New but panics on error.
func MustNew(host abi.Host, opts ...Option) *System {
	s, err := New(host, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

var native = sync.OnceValue(func() *System {
	return MustNew(abi.Native())
})

// Default returns the System of the running process.
func Default() *System {
	return native()
}

// Host returns the wrapped host.
func (s *System) Host() abi.Host {
	return s.host
}

// check is the only conversion from a status to an error.
func check(errno abi.Errno) error {
	if errno == abi.ESUCCESS {
		return nil
	}
	return Errno(errno)
}

// call1 runs fn with a fresh output slot and returns the slot only when the
// host reported success.
func call1[T any](fn func(*T) abi.Errno) (T, error) {
	var out T
	if err := check(fn(&out)); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// bounded converts a host-reported transfer count, panicking when it exceeds
// what the caller offered.
func bounded(call string, n abi.Size, limit uint64) int {
	if uint64(n) > limit {
		panic(errors.Contract(call, int(n), int(min(limit, uint64(^uint(0)>>1)))))
	}
	return int(n)
}
