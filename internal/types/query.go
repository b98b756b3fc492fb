package types

import (
	"time"

	"github.com/moznion/go-optional"
)

// Query is the bar range a money manager is bound to.
type Query struct {
	StartTime optional.Option[time.Time]
	EndTime   optional.Option[time.Time]
	// Interval is the bar interval, e.g. "1d" or "1m".
	Interval string
}

// EmptyQuery returns a query with no bounds.
func EmptyQuery() Query {
	return Query{
		StartTime: optional.None[time.Time](),
		EndTime:   optional.None[time.Time](),
		Interval:  "",
	}
}
