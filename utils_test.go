package godism_test

// This file contains testing functionality shared by both back-ends.

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	dism "github.com/ubuntu/godism"
	dismmock "github.com/ubuntu/godism/mock"
)

// setup initializes the engine against a fresh mock back-end. The test is
// skipped when running against the real back-end, as every servicing
// operation there needs an elevated process and a scratch image.
func setup(t *testing.T) (context.Context, *dismmock.Backend) {
	t.Helper()

	ctx, m := backendInContext(t, context.Background())
	if m == nil {
		t.Skip("this test needs the mock back-end")
	}

	err := dism.Initialize(ctx)
	require.NoError(t, err, "Setup: could not initialize the engine")

	return ctx, m
}
