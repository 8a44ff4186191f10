package processor

import (
	"os"
	"syscall"
	"time"
)

// creationTime reports the file's creation time.
func creationTime(info os.FileInfo) *time.Time {
	st, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return nil
	}
	t := time.Unix(0, st.CreationTime.Nanoseconds())
	return &t
}
