package progress

// This file contains the Win32 half of the bridge: the cancel event DISM
// polls, and the native-callable trampoline.

import (
	"sync"
	"syscall"

	"golang.org/x/sys/windows"
)

// cancelEvent wraps the Win32 event DISM observes between progress
// callbacks. Manual-reset and initially unset; set at most once.
type cancelEvent struct {
	handle windows.Handle
}

func newCancelEvent() (cancelEvent, error) {
	h, err := windows.CreateEvent(nil, 1 /*manual reset*/, 0 /*initially unset*/, nil)
	if err != nil {
		return cancelEvent{}, err
	}
	return cancelEvent{handle: h}, nil
}

func (e cancelEvent) set() {
	_ = windows.SetEvent(e.handle)
}

func (e cancelEvent) close() error {
	return windows.CloseHandle(e.handle)
}

// Handle is the value to pass as the native call's CancelEvent argument.
func (b *Bridge) Handle() windows.Handle {
	if b == nil {
		return 0
	}
	return b.event.handle
}

var (
	callbackOnce sync.Once
	callbackPtr  uintptr
)

// Callback returns the DISM_PROGRESS_CALLBACK trampoline.
//
// syscall.NewCallback allocations are never released for the lifetime of the
// process, so a single shared trampoline is created and reports are routed to
// the right bridge through the token in UserData.
func Callback() uintptr {
	callbackOnce.Do(func() {
		callbackPtr = syscall.NewCallback(func(current, total uint32, userData uintptr) uintptr {
			lookup(userData).Notify(current, total)
			return 0
		})
	})
	return callbackPtr
}
