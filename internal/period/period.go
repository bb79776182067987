package period

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FormatMonth returns a month key like "2024-01".
func FormatMonth(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonth parses "2024-01" into year and month.
func ParseMonth(key string) (int, time.Month, error) {
	parts := strings.SplitN(key, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid month key: %q", key)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in month key %q: %w", key, err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month in month key %q: %w", key, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month out of range in month key %q", key)
	}
	return year, time.Month(month), nil
}

// MonthLabel returns the three-letter abbreviation, e.g. "Jan".
func MonthLabel(m time.Month) string {
	return m.String()[:3]
}

// ParseMonthLabel parses a month abbreviation or full name, ignoring case.
func ParseMonthLabel(s string) (time.Month, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for m := time.January; m <= time.December; m++ {
			name := strings.ToLower(m.String())
			if s == name || s == name[:3] {
				return m, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid month label: %q", s)
}

// SortMonthLabels orders labels in calendar order. Unknown labels go last,
// in their original relative order.
func SortMonthLabels(labels []string) {
	rank := func(s string) int {
		m, err := ParseMonthLabel(s)
		if err != nil {
			return 13
		}
		return int(m)
	}
	sort.SliceStable(labels, func(i, j int) bool {
		return rank(labels[i]) < rank(labels[j])
	})
}

// Before reports whether (y1, m1) precedes (y2, m2).
func Before(y1 int, m1 time.Month, y2 int, m2 time.Month) bool {
	if y1 != y2 {
		return y1 < y2
	}
	return m1 < m2
}
