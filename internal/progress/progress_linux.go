package progress

// This file contains mocks for the Win32 half of the bridge. Off Windows
// there is no native library polling the signal, so the in-process flag in
// Bridge is all the mock backend needs.

type cancelEvent struct{}

func newCancelEvent() (cancelEvent, error) {
	return cancelEvent{}, nil
}

func (cancelEvent) set() {}

func (cancelEvent) close() error {
	return nil
}
