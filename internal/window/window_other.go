//go:build !windows && !linux && !darwin

package window

import (
	"context"
	"fmt"
	"runtime"
)

// List is not supported on this platform.
func List(ctx context.Context) ([]Window, error) {
	return nil, fmt.Errorf("window listing is not supported on %s", runtime.GOOS)
}
