//go:build !godismmock

package godism

import (
	"context"

	"github.com/ubuntu/godism/internal/backend"
	"github.com/ubuntu/godism/internal/backend/windows"
)

func selectBackend(ctx context.Context) backend.Backend {
	return windows.Backend{}
}
