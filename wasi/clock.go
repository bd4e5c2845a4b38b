package wasi

import "github.com/wippyai/wasi-shim/abi"

// ClockResGet returns the resolution of clock id.
func (s *System) ClockResGet(id ClockID) (Timestamp, error) {
	return call1(func(res *abi.Timestamp) abi.Errno {
		return s.host.ClockResGet(id, res)
	})
}

// ClockTimeGet returns the time of clock id in nanoseconds. precision is the
// maximum lag the caller accepts.
func (s *System) ClockTimeGet(id ClockID, precision Timestamp) (Timestamp, error) {
	return call1(func(t *abi.Timestamp) abi.Errno {
		return s.host.ClockTimeGet(id, precision, t)
	})
}
