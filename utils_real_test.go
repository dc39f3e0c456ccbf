//go:build !godismmock

// This file contains the implementation of testutils geared towards the real back-end.

package godism_test

import (
	"context"
	"testing"

	dismmock "github.com/ubuntu/godism/mock"
)

// backendInContext returns the context unchanged and no mock back-end: the
// real dismapi.dll will be used. Tests that mutate the image, or that rely on
// error injection, skip themselves when they receive no mock.
func backendInContext(t *testing.T, ctx context.Context) (context.Context, *dismmock.Backend) {
	t.Helper()

	return ctx, nil
}
