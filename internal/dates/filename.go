package dates

import (
	"regexp"
	"time"
)

// filenamePattern maps submatch indices onto date components so that patterns
// with different component orders share one extraction path.
type filenamePattern struct {
	re               *regexp.Regexp
	year, month, day int
}

// Patterns are tried in this fixed priority order. The documented order puts
// DD-MM before MM-DD; both share a regex shape, so an ambiguous match is
// interpreted day-first and only reinterpreted month-first when the day-first
// reading is not a valid calendar date.
var filenamePatterns = []filenamePattern{
	// YYYY-MM-DD or YYYY_MM_DD
	{regexp.MustCompile(`(\d{4})[-_](\d{2})[-_](\d{2})`), 1, 2, 3},
	// YYYYMMDD
	{regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`), 1, 2, 3},
	// DD-MM-YYYY or DD_MM_YYYY
	{regexp.MustCompile(`(\d{2})[-_](\d{2})[-_](\d{4})`), 3, 2, 1},
	// MM-DD-YYYY or MM_DD_YYYY
	{regexp.MustCompile(`(\d{2})[-_](\d{2})[-_](\d{4})`), 3, 1, 2},
	// Camera/phone prefix such as IMG_20181216_140830
	{regexp.MustCompile(`IMG[_-](\d{4})(\d{2})(\d{2})[_-]`), 1, 2, 3},
	// Bare 20YYMMDD anywhere, bounded by non-digits
	{regexp.MustCompile(`(?:^|\D)(20\d{2})(0[1-9]|1[0-2])([0-3]\d)(?:\D|$)`), 1, 2, 3},
}

// FromFilename extracts a date from filename patterns such as 2023-05-15,
// 20230515, 15-05-2023, or IMG_20230515_120000. The first pattern whose
// captured components form a valid calendar date wins; matches with
// impossible dates (Feb 30) fall through to the next pattern.
func FromFilename(name string) (time.Time, bool) {
	for _, pattern := range filenamePatterns {
		match := pattern.re.FindStringSubmatch(name)
		if match == nil {
			continue
		}
		year := atoi(match[pattern.year])
		month := atoi(match[pattern.month])
		day := atoi(match[pattern.day])
		if t, ok := calendarDate(year, month, day); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// calendarDate validates component ranges and calendar validity. Years are
// restricted to [1900, 2100] so stray digit runs do not become dates.
func calendarDate(year, month, day int) (time.Time, bool) {
	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		// time.Date normalizes overflow (Feb 30 -> Mar 2); a changed component
		// means the input was not a real date.
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
