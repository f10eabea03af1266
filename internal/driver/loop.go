package driver

import (
	"context"
	"fmt"
	"time"
)

// Loop calls tick at fps until ctx is done. It returns ctx.Err() on
// cancellation.
func Loop(ctx context.Context, fps int, tick func()) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick()
		}
	}
}
