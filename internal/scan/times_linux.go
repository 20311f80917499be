//go:build linux

package scan

import (
	"time"

	"golang.org/x/sys/unix"
)

// platformTimes returns the access time of path. Linux exposes no portable
// creation time, so the birth time is always zero here.
func platformTimes(path string) (atime, birth time.Time, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return time.Unix(st.Atim.Sec, st.Atim.Nsec), time.Time{}, nil
}
