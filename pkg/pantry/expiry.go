package pantry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseExpiry turns a user-entered expiry hint into an absolute time.
// Accepted forms: "3d" (days), "2w" (weeks), "12h" (hours), a bare
// number of days ("5"), or a date as 2006-01-02. An empty hint means no
// expiry and returns nil.
func ParseExpiry(hint string, now time.Time) (*time.Time, error) {
	hint = strings.ToLower(strings.TrimSpace(hint))
	if hint == "" {
		return nil, nil
	}

	if t, err := time.Parse("2006-01-02", hint); err == nil {
		// Expire at end of that day
		t = t.Add(24*time.Hour - time.Second)
		return &t, nil
	}

	unit := hint[len(hint)-1]
	number := hint
	var per time.Duration
	switch unit {
	case 'd':
		number, per = hint[:len(hint)-1], 24*time.Hour
	case 'w':
		number, per = hint[:len(hint)-1], 7*24*time.Hour
	case 'h':
		number, per = hint[:len(hint)-1], time.Hour
	default:
		per = 24 * time.Hour
	}

	n, err := strconv.Atoi(number)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("unrecognized expiry %q (try 3d, 2w or 2006-01-02)", hint)
	}

	t := now.Add(time.Duration(n) * per)
	return &t, nil
}
