// Package dismerror translates the status codes returned by dismapi.dll into
// errors, so that both backends surface failures the same way.
package dismerror

import (
	"errors"
	"fmt"
)

// Status codes defined by Windows and by dismapi.h. DISM entry points return
// an HRESULT; zero is success.
const (
	CodeSuccess        uint32 = 0
	CodeRebootRequired uint32 = 3010       // ERROR_SUCCESS_REBOOT_REQUIRED, a soft success
	CodeCancelled      uint32 = 0x800704C7 // HRESULT_FROM_WIN32(ERROR_CANCELLED)

	CodeNotInitialized       uint32 = 0xC0040001 // DISMAPI_E_DISMAPI_NOT_INITIALIZED
	CodeShutdownInProgress   uint32 = 0xC0040002 // DISMAPI_E_SHUTDOWN_IN_PROGRESS
	CodeOpenSessionHandles   uint32 = 0xC0040003 // DISMAPI_E_OPEN_SESSION_HANDLES
	CodeInvalidSession       uint32 = 0xC0040004 // DISMAPI_E_INVALID_DISM_SESSION
	CodeInvalidImageIndex    uint32 = 0xC0040005 // DISMAPI_E_INVALID_IMAGE_INDEX
	CodeInvalidImageName     uint32 = 0xC0040006 // DISMAPI_E_INVALID_IMAGE_NAME
	CodeUnableToUnmount      uint32 = 0xC0040007 // DISMAPI_E_UNABLE_TO_UNMOUNT_IMAGE_PATH
	CodeLoggingDisabled      uint32 = 0xC0040009 // DISMAPI_E_LOGGING_DISABLED
	CodeOpenHandlesOnUnmount uint32 = 0xC004000A // DISMAPI_E_OPEN_HANDLES_UNABLE_TO_UNMOUNT_IMAGE_PATH
)

// ErrRebootRequired reports that an operation succeeded but Windows must be
// rebooted before the change takes full effect. Callers that tolerate the
// reboot should treat it as success.
var ErrRebootRequired = errors.New("the operation completed but a reboot is required")

// ErrCancelled reports that an operation was aborted because the caller's
// progress handler requested cancellation.
var ErrCancelled = errors.New("the operation was cancelled on request")

// NativeError is a failure reported by dismapi.dll. It carries the raw status
// code and, when available, the diagnostic text DISM recorded for the failing
// call.
type NativeError struct {
	Code    uint32
	Message string
}

func (e *NativeError) Error() string {
	name := codeName(e.Code)
	if name != "" && e.Message != "" {
		return fmt.Sprintf("failed DISM call: %s (0x%08X): %s", name, e.Code, e.Message)
	}
	if name != "" {
		return fmt.Sprintf("failed DISM call: %s (0x%08X)", name, e.Code)
	}
	if e.Message != "" {
		return fmt.Sprintf("failed DISM call: 0x%08X: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("failed DISM call: 0x%08X", e.Code)
}

// Is ensures NativeErrors can be matched with errors.Is regardless of message.
func (e *NativeError) Is(target error) bool {
	t, ok := target.(*NativeError) //nolint:errorlint
	if !ok {
		return false
	}
	return t.Code == 0 || t.Code == e.Code
}

// Translate maps the status code of a finished native call to the error the
// caller sees.
//
// cancelled must be true only when this invocation's own cancellation signal
// was set by the caller's handler: an abort code without it is an ordinary
// failure. The reboot-required code wins over a set cancellation signal, as
// it is the more specific success-path code DISM defines.
//
// lastMessage is only consulted on the failure path. It must fetch DISM's
// last error text for the current call, before any other native call can
// overwrite it; backends with no such text pass nil.
func Translate(code uint32, cancelled bool, lastMessage func() string) error {
	switch {
	case code == CodeSuccess:
		return nil
	case code == CodeRebootRequired:
		return ErrRebootRequired
	case code == CodeCancelled && cancelled:
		return ErrCancelled
	}

	var msg string
	if lastMessage != nil {
		msg = lastMessage()
	}
	return &NativeError{Code: code, Message: msg}
}

// codeName resolves the well-known DISMAPI_E constants to their header names.
func codeName(code uint32) string {
	switch code {
	case CodeNotInitialized:
		return "DISMAPI_E_DISMAPI_NOT_INITIALIZED"
	case CodeShutdownInProgress:
		return "DISMAPI_E_SHUTDOWN_IN_PROGRESS"
	case CodeOpenSessionHandles:
		return "DISMAPI_E_OPEN_SESSION_HANDLES"
	case CodeInvalidSession:
		return "DISMAPI_E_INVALID_DISM_SESSION"
	case CodeInvalidImageIndex:
		return "DISMAPI_E_INVALID_IMAGE_INDEX"
	case CodeInvalidImageName:
		return "DISMAPI_E_INVALID_IMAGE_NAME"
	case CodeUnableToUnmount:
		return "DISMAPI_E_UNABLE_TO_UNMOUNT_IMAGE_PATH"
	case CodeLoggingDisabled:
		return "DISMAPI_E_LOGGING_DISABLED"
	case CodeOpenHandlesOnUnmount:
		return "DISMAPI_E_OPEN_HANDLES_UNABLE_TO_UNMOUNT_IMAGE_PATH"
	}
	return ""
}
