package model

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// Grouping selects the time bucket used by aggregation.
type Grouping int

const (
	GroupNone Grouping = iota
	GroupMonth
	GroupYear
)

var groupingNames = [...]string{"none", "month", "year"}

func (g Grouping) String() string {
	if g < 0 || int(g) >= len(groupingNames) {
		return fmt.Sprintf("Grouping(%d)", int(g))
	}
	return groupingNames[g]
}

// ParseGrouping parses "none", "month" or "year". Empty means none.
func ParseGrouping(s string) (Grouping, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "daily":
		return GroupNone, nil
	case "month", "monthly", "month-wise":
		return GroupMonth, nil
	case "year", "yearly", "year-wise":
		return GroupYear, nil
	}
	return GroupNone, fmt.Errorf("unknown grouping %q", s)
}

// Query selects records by item and inclusive date range.
type Query struct {
	Descriptions []string
	Start        civil.Date
	End          civil.Date
	Grouping     Grouping
}

// InRange reports whether d lies within [Start, End].
func (q Query) InRange(d civil.Date) bool {
	return !d.Before(q.Start) && !d.After(q.End)
}
