package wasi

import "github.com/wippyai/wasi-shim/abi"

// SockRecv receives a message from sock into iovs. The byte count and the
// output flags come back together from one host call.
func (s *System) SockRecv(sock Fd, iovs []IoVec, flags RiFlags) (Received, error) {
	ptr, n := iovecs(iovs)
	type out struct {
		n     abi.Size
		flags abi.RoFlags
	}
	r, err := call1(func(o *out) abi.Errno {
		return s.host.SockRecv(sock, ptr, n, flags, &o.n, &o.flags)
	})
	if err != nil {
		return Received{}, err
	}
	return Received{N: bounded("sock_recv", r.n, capacity(iovs)), Flags: r.flags}, nil
}

// SockSend sends iovs on sock and returns the number of bytes sent.
func (s *System) SockSend(sock Fd, iovs []CIoVec, flags SiFlags) (int, error) {
	ptr, n := ciovecs(iovs)
	sent, err := call1(func(sent *abi.Size) abi.Errno {
		return s.host.SockSend(sock, ptr, n, flags, sent)
	})
	if err != nil {
		return 0, err
	}
	return bounded("sock_send", sent, capacity(iovs)), nil
}

// SockShutdown shuts down the directions of sock named by how.
func (s *System) SockShutdown(sock Fd, how SdFlags) error {
	return check(s.host.SockShutdown(sock, how))
}
