package internal

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type RatesClient interface {
	ExchangeRates(ctx context.Context, date DateKey) ([]CurrencyRate, error)
}

type Fetcher struct {
	client         RatesClient
	maxConcurrency int
	logger         *slog.Logger
}

// NewFetcher returns a Fetcher running at most maxConcurrency requests at once.
// Values below 1 mean one request per date, all in flight together.
func NewFetcher(client RatesClient, maxConcurrency int, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fetcher{client: client, maxConcurrency: maxConcurrency, logger: logger}
}

// FetchAll fetches every date concurrently. results[i] always belongs to
// dates[i]. The first failure cancels the rest and no partial result is returned.
func (f *Fetcher) FetchAll(ctx context.Context, dates []DateKey) ([][]CurrencyRate, error) {
	results := make([][]CurrencyRate, len(dates))
	if len(dates) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if f.maxConcurrency > 0 {
		g.SetLimit(f.maxConcurrency)
	}

	for i, date := range dates {
		g.Go(func() error {
			f.logger.Debug("fetching rates", "date", date)

			rates, err := f.client.ExchangeRates(gctx, date)
			if err != nil {
				f.logger.Error("fetch failed", "date", date, "err", err)
				return &FetchError{Date: date, Err: err}
			}

			f.logger.Debug("rates fetched", "date", date, "records", len(rates))
			results[i] = rates
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
