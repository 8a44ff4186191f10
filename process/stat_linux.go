package processor

import (
	"os"
	"syscall"
	"time"
)

// creationTime reports the closest thing Linux exposes to a creation time,
// the inode change time.
func creationTime(info os.FileInfo) *time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	t := time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	return &t
}
