package dateparse

import "errors"

// Resolution errors. Callers distinguish them with errors.Is.
var (
	// ErrUnknownPeriod is returned for a period name outside day/week/month/year.
	ErrUnknownPeriod = errors.New("unknown period name")

	// ErrInvalidDateFormat is returned when a token looks like a numeric date
	// but its values do not form a real calendar date.
	ErrInvalidDateFormat = errors.New("wrong date string format")

	// ErrUnparseableDate is returned when a token matches neither a keyword
	// nor the numeric date shape.
	ErrUnparseableDate = errors.New("unconvertable date string")
)
