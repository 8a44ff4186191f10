//go:build !linux && !darwin && !windows

package processor

import (
	"os"
	"time"
)

// creationTime is unavailable on this platform.
func creationTime(_ os.FileInfo) *time.Time {
	return nil
}
