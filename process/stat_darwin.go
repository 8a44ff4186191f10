package processor

import (
	"os"
	"syscall"
	"time"
)

// creationTime reports the file's birth time.
func creationTime(info os.FileInfo) *time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	t := time.Unix(int64(st.Birthtimespec.Sec), int64(st.Birthtimespec.Nsec))
	return &t
}
