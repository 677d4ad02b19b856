package dateparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolver converts user-typed date tokens and period names into calendar
// dates. All results are midnight in the resolver's timezone; the baseTime
// argument is the "today" anchor (usually time.Now()).
type Resolver struct {
	location *time.Location
}

// NewResolver creates a date resolver for the given IANA timezone string,
// e.g. "Europe/Moscow".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// dayWords maps date keywords to pure offset functions. Matched
// case-insensitively.
var dayWords = map[string]func(today time.Time) time.Time{
	"now":         func(today time.Time) time.Time { return today },
	"today":       func(today time.Time) time.Time { return today },
	"сегодня":     func(today time.Time) time.Time { return today },
	"tomorrow":    func(today time.Time) time.Time { return today.AddDate(0, 0, 1) },
	"завтра":      func(today time.Time) time.Time { return today.AddDate(0, 0, 1) },
	"послезавтра": func(today time.Time) time.Time { return today.AddDate(0, 0, 2) },
}

// datePattern is the syntactic shape of a numeric date: 1-2 digit day,
// separator, 1-2 digit month, separator, 1-4 digit year. Deliberately
// permissive; real calendar validation happens after parsing.
var (
	datePattern = regexp.MustCompile(`^\d{1,2}[.\-/\\_]\d{1,2}[.\-/\\_]\d{1,4}$`)
	separators  = regexp.MustCompile(`[\-/\\_]`)
)

// ResolveDate converts a free-form token into a calendar date.
// Keywords (now, today, tomorrow and their Russian equivalents) are matched
// case-insensitively; anything else must be a numeric day.month.year date.
func (r *Resolver) ResolveDate(text string, baseTime time.Time) (time.Time, error) {
	token := strings.ToLower(strings.TrimSpace(text))

	if offset, ok := dayWords[token]; ok {
		return offset(r.startOfDay(baseTime)), nil
	}

	if !datePattern.MatchString(token) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnparseableDate, text)
	}

	parts := strings.Split(separators.ReplaceAllString(token, "."), ".")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, r.location)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, text)
	}
	return d, nil
}

// periodRanges maps period names to range functions anchored at today.
// Names are case-sensitive.
var periodRanges = map[string]func(today time.Time) (time.Time, time.Time){
	"day": func(today time.Time) (time.Time, time.Time) {
		return today, today
	},
	"week": func(today time.Time) (time.Time, time.Time) {
		// Monday-based week: Go weekdays start at Sunday(0).
		monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
		return monday, monday.AddDate(0, 0, 6)
	},
	"month": func(today time.Time) (time.Time, time.Time) {
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return first, first.AddDate(0, 1, -1)
	},
	"year": func(today time.Time) (time.Time, time.Time) {
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location()),
			time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
	},
}

// ResolvePeriod converts a period name (day, week, month, year) into an
// inclusive date range anchored at baseTime's calendar date.
func (r *Resolver) ResolvePeriod(name string, baseTime time.Time) (time.Time, time.Time, error) {
	span, ok := periodRanges[name]
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrUnknownPeriod, name)
	}
	start, end := span(r.startOfDay(baseTime))
	return start, end, nil
}

// IsPeriod reports whether name is a recognized period token.
func IsPeriod(name string) bool {
	_, ok := periodRanges[name]
	return ok
}

// startOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
