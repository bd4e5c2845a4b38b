package wasi

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/wasi-shim/abi"
	"github.com/wippyai/wasi-shim/errors"
)

// PollOneoff waits until at least one subscription in in fires and writes
// one Event per fired subscription to out. It returns the number of events
// written.
//
// out must hold at least len(in) events; a shorter out is a programming
// error and panics before the host is called.
func (s *System) PollOneoff(in []Subscription, out []Event) (int, error) {
	if len(out) < len(in) {
		panic(errors.New(errors.PhaseHost, errors.KindInvalidInput).
			Call("poll_oneoff").
			Value(len(out)).
			Detail("%d events cannot hold results for %d subscriptions", len(out), len(in)).
			Build())
	}
	nsubs := sizeOf(len(in))
	nevents, err := call1(func(nevents *abi.Size) abi.Errno {
		return s.host.PollOneoff(unsafe.SliceData(in), unsafe.SliceData(out), nsubs, nevents)
	})
	if err != nil {
		return 0, err
	}
	return bounded("poll_oneoff", nevents, uint64(nsubs)), nil
}

// ClockSubscription builds a subscription that fires when clock reaches
// timeout. Without SubscriptionClockAbstime the timeout is relative to now.
func ClockSubscription(userdata Userdata, identifier Userdata, clock ClockID, timeout, precision Timestamp, flags SubclockFlags) Subscription {
	var s Subscription
	s.Userdata = userdata
	s.SetClock(SubscriptionClock{
		Identifier: identifier,
		ClockID:    clock,
		Timeout:    timeout,
		Precision:  precision,
		Flags:      flags,
	})
	return s
}

// FdReadSubscription builds a subscription that fires when fd has data to read.
func FdReadSubscription(userdata Userdata, fd Fd) Subscription {
	return fdSubscription(userdata, EventtypeFdRead, fd)
}

// FdWriteSubscription builds a subscription that fires when fd accepts writes.
func FdWriteSubscription(userdata Userdata, fd Fd) Subscription {
	return fdSubscription(userdata, EventtypeFdWrite, fd)
}

func fdSubscription(userdata Userdata, typ EventType, fd Fd) Subscription {
	var s Subscription
	s.Userdata = userdata
	s.SetFdReadwrite(typ, SubscriptionFdReadwrite{Fd: fd})
	return s
}

// EventErr returns the status carried by a poll event, or nil if it is
// success.
func EventErr(ev Event) error {
	return check(ev.Error)
}

// FormatEvent renders an event for diagnostics.
func FormatEvent(ev Event) string {
	status := "ok"
	if err := EventErr(ev); err != nil {
		status = err.(Errno).Name()
	}
	switch ev.Type {
	case EventtypeClock:
		return fmt.Sprintf("clock userdata=%d %s", ev.Userdata, status)
	case EventtypeFdRead, EventtypeFdWrite:
		dir := "read"
		if ev.Type == EventtypeFdWrite {
			dir = "write"
		}
		hangup := ""
		if ev.FdReadwrite.Flags&EventFdReadwriteHangup != 0 {
			hangup = " hangup"
		}
		return fmt.Sprintf("fd_%s userdata=%d nbytes=%d%s %s", dir, ev.Userdata, ev.FdReadwrite.Nbytes, hangup, status)
	}
	return fmt.Sprintf("type=%d userdata=%d %s", ev.Type, ev.Userdata, status)
}
