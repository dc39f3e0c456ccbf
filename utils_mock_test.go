//go:build godismmock

// This file contains the implementation of testutils geared towards the mock back-end.

package godism_test

import (
	"context"
	"testing"

	dism "github.com/ubuntu/godism"
	dismmock "github.com/ubuntu/godism/mock"
)

// backendInContext returns a context with a fresh mock back-end attached, and
// the back-end itself so that tests can inject errors into it.
func backendInContext(t *testing.T, ctx context.Context) (context.Context, *dismmock.Backend) {
	t.Helper()

	m := dismmock.New()
	return dism.WithMock(ctx, m), m
}
