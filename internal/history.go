package internal

import (
	"context"
	"fmt"
	"time"
)

// MaxDays is the longest history a single run may request.
const MaxDays = 10

func ValidateDays(days int) error {
	if days > MaxDays {
		return Invalid("too_many_days", fmt.Sprintf("Cannot retrieve rates for more than %d days.", MaxDays))
	}
	if days < 1 {
		return Invalid("too_few_days", "Number of days must be at least 1.")
	}
	return nil
}

type History struct {
	fetcher *Fetcher
}

func NewHistory(fetcher *Fetcher) *History { return &History{fetcher: fetcher} }

// Collect validates days before any request is made, then fetches and
// aggregates the last days starting at ref.
func (h *History) Collect(ctx context.Context, ref time.Time, days int) (AggregatedResult, error) {
	if err := ValidateDays(days); err != nil {
		return nil, err
	}

	dates := DateRange(ref, days)

	lists, err := h.fetcher.FetchAll(ctx, dates)
	if err != nil {
		return nil, err
	}

	return Aggregate(dates, lists)
}
