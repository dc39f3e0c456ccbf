// Package progress bridges the caller's progress handler and the native
// callback mechanism of dismapi.dll.
//
// One Bridge serves exactly one native invocation: it owns the one-shot
// cancellation signal for that call and the token under which the native
// callback finds it. Bridges must never be reused or shared between calls.
package progress

import (
	"sync"
	"sync/atomic"

	"github.com/0xrawsec/golang-utils/log"
)

// Report is one progress notification from a long-running operation. The
// final report's Current is not guaranteed to reach Total.
type Report struct {
	Current uint32
	Total   uint32
}

// Handler receives progress reports. Returning cancel=true asks the native
// library to abort the operation; it keeps running until it observes the
// request, typically by the next report.
//
// The handler runs on whatever execution context the native library chooses,
// so it must not assume thread affinity nor block indefinitely.
type Handler func(r Report) (cancel bool)

// Bridge adapts a Handler into the function pointer + event handle shape the
// native library expects.
type Bridge struct {
	handler   Handler
	token     uintptr
	cancelled atomic.Bool
	event     cancelEvent
}

var (
	bridgesMu sync.RWMutex
	bridges   = make(map[uintptr]*Bridge)
	lastToken uintptr
)

// New creates the bridge for a single native invocation, with its
// cancellation signal unset. Close must be called once the native call has
// returned, on every exit path.
func New(handler Handler) (b *Bridge, err error) {
	event, err := newCancelEvent()
	if err != nil {
		return nil, err
	}

	b = &Bridge{
		handler: handler,
		event:   event,
	}

	bridgesMu.Lock()
	defer bridgesMu.Unlock()

	lastToken++
	b.token = lastToken
	bridges[b.token] = b

	return b, nil
}

// Token identifies this bridge. It rides in the native call's UserData
// argument and comes back unchanged on every callback.
func (b *Bridge) Token() uintptr {
	if b == nil {
		return 0
	}
	return b.token
}

// Notify forwards one (current, total) report to the handler and, when the
// handler requests it, sets the cancellation signal. It is invoked
// synchronously from the native operation's own execution context, so it
// must not panic outward.
func (b *Bridge) Notify(current, total uint32) {
	if b == nil || b.handler == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			log.Errorf("progress handler panicked: %v", r)
		}
	}()

	if b.handler(Report{Current: current, Total: total}) {
		b.requestCancel()
	}
}

// requestCancel sets the one-shot signal. Repeated requests are no-ops.
func (b *Bridge) requestCancel() {
	if !b.cancelled.CompareAndSwap(false, true) {
		return
	}
	b.event.set()
}

// Cancelled reports whether the handler requested cancellation at any point
// during this invocation.
func (b *Bridge) Cancelled() bool {
	return b != nil && b.cancelled.Load()
}

// Close unregisters the bridge and releases the cancellation signal's native
// resource. Safe to call more than once and on a nil bridge.
func (b *Bridge) Close() error {
	if b == nil {
		return nil
	}

	bridgesMu.Lock()
	_, registered := bridges[b.token]
	delete(bridges, b.token)
	bridgesMu.Unlock()

	if !registered {
		return nil
	}
	return b.event.close()
}

// lookup resolves the bridge a native callback is reporting to. Reports for
// already-closed bridges resolve to nil and are dropped.
func lookup(token uintptr) *Bridge {
	bridgesMu.RLock()
	defer bridgesMu.RUnlock()
	return bridges[token]
}
