//go:build darwin

package scan

import (
	"time"

	"golang.org/x/sys/unix"
)

// platformTimes returns the access and creation times of path.
func platformTimes(path string) (atime, birth time.Time, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return time.Time{}, time.Time{}, err
	}
	atime = time.Unix(st.Atimespec.Sec, st.Atimespec.Nsec)
	birth = time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	return atime, birth, nil
}
