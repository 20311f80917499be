//go:build !linux && !darwin

package scan

import "time"

// platformTimes has no portable implementation here; the date resolver treats
// zero values as "use the modification time".
func platformTimes(string) (atime, birth time.Time, err error) {
	return time.Time{}, time.Time{}, nil
}
