package engine

import (
	"unsafe"

	"github.com/wippyai/wasi-shim/abi"
	"github.com/wippyai/wasi-shim/engine/internal/proxy"
)

func (h *Host) ClockResGet(id abi.ClockID, resolution *abi.Timestamp) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	out := f.alloc(8, 8)
	if errno := h.call(proxy.ClockResGet, uint64(id), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	return store(f, resolution, f.u64(out))
}

func (h *Host) ClockTimeGet(id abi.ClockID, precision abi.Timestamp, time *abi.Timestamp) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	out := f.alloc(8, 8)
	if errno := h.call(proxy.ClockTimeGet, uint64(id), precision, uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	return store(f, time, f.u64(out))
}

func (h *Host) PollOneoff(in *abi.Subscription, out *abi.Event, nsubscriptions abi.Size, nevents *abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	subs := f.encodeSubscriptions(unsafe.Slice(in, nsubscriptions))
	evs := f.alloc(uint64(nsubscriptions)*eventSize, 8)
	cnt := f.alloc(4, 4)
	if errno := h.call(proxy.PollOneoff, uint64(subs), uint64(evs), uint64(nsubscriptions), uint64(cnt)); errno != abi.ESUCCESS {
		return errno
	}
	n := f.u32(cnt)
	got := make([]abi.Event, min(n, nsubscriptions))
	f.decodeEvents(evs, got)
	if f.err != abi.ESUCCESS {
		return f.err
	}
	copy(unsafe.Slice(out, nsubscriptions), got)
	return store(f, nevents, n)
}

func (h *Host) ProcRaise(sig abi.Signal) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.ProcRaise, uint64(sig))
}

func (h *Host) SchedYield() abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.SchedYield)
}

func (h *Host) RandomGet(buf *byte, bufLen abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	dst := f.alloc(uint64(bufLen), 1)
	if errno := h.call(proxy.RandomGet, uint64(dst), uint64(bufLen)); errno != abi.ESUCCESS {
		return errno
	}
	f.copyOut(buf, dst, bufLen)
	return h.done()
}

func (h *Host) SockRecv(sock abi.Fd, riData *abi.IoVec, riDataLen abi.Size, riFlags abi.RiFlags, roDatalen *abi.Size, roFlags *abi.RoFlags) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	vs := unsafe.Slice(riData, riDataLen)
	arr, data := f.readVecs(vs)
	outLen := f.alloc(4, 4)
	outFlags := f.alloc(2, 2)
	errno := h.call(proxy.SockRecv, uint64(sock), uint64(arr), uint64(riDataLen), uint64(riFlags), uint64(outLen), uint64(outFlags))
	if errno != abi.ESUCCESS {
		return errno
	}
	n := f.u32(outLen)
	flags := f.u16(outFlags)
	f.scatter(vs, data, n)
	if errno := store(f, roDatalen, n); errno != abi.ESUCCESS {
		return errno
	}
	return store(f, roFlags, flags)
}

func (h *Host) SockSend(sock abi.Fd, siData *abi.CIoVec, siDataLen abi.Size, siFlags abi.SiFlags, soDatalen *abi.Size) abi.Errno {
	f := h.begin()
	defer h.mu.Unlock()
	arr := f.writeVecs(unsafe.Slice(siData, siDataLen))
	out := f.alloc(4, 4)
	if errno := h.call(proxy.SockSend, uint64(sock), uint64(arr), uint64(siDataLen), uint64(siFlags), uint64(out)); errno != abi.ESUCCESS {
		return errno
	}
	return store(f, soDatalen, f.u32(out))
}

func (h *Host) SockShutdown(sock abi.Fd, how abi.SdFlags) abi.Errno {
	h.begin()
	defer h.mu.Unlock()
	return h.call(proxy.SockShutdown, uint64(sock), uint64(how))
}
