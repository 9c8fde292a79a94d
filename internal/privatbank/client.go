package privatbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"rates-history/internal"
	"time"
)

const (
	DefaultBaseURL = "https://api.privatbank.ua/p24api/exchange_rates"

	maxBodyBytes = 1 << 20
)

var (
	ErrMissingRates    = errors.New("response has no exchangeRate list")
	ErrMalformedRecord = errors.New("malformed exchange rate record")
)

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("privatbank http %d: %s", e.StatusCode, e.Body)
}

type exchangeRatesResponse struct {
	Date            string                `json:"date"`
	Bank            string                `json:"bank"`
	BaseCurrency    int                   `json:"baseCurrency"`
	BaseCurrencyLit string                `json:"baseCurrencyLit"`
	ExchangeRate    *[]exchangeRateRecord `json:"exchangeRate"`
}

type exchangeRateRecord struct {
	BaseCurrency   string         `json:"baseCurrency"`
	Currency       *string        `json:"currency"`
	SaleRateNB     *internal.Rate `json:"saleRateNB"`
	PurchaseRateNB *internal.Rate `json:"purchaseRateNB"`
}

type Client struct {
	BaseURL    string
	httpClient *http.Client
}

// New returns a client whose requests each time out after timeout.
// A zero timeout falls back to 20 seconds.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		BaseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ExchangeRates returns the NBU rates PrivatBank published for date.
func (c *Client) ExchangeRates(ctx context.Context, date internal.DateKey) ([]internal.CurrencyRate, error) {
	date, err := internal.ParseDateKey(date.String())
	if err != nil {
		return nil, err
	}

	resp, err := c.doRates(ctx, date)
	if err != nil {
		return nil, err
	}
	if resp.ExchangeRate == nil {
		return nil, ErrMissingRates
	}

	out := make([]internal.CurrencyRate, 0, len(*resp.ExchangeRate))
	for i, rec := range *resp.ExchangeRate {
		switch {
		case rec.Currency == nil || *rec.Currency == "":
			return nil, fmt.Errorf("record %d: %w: currency is missing", i, ErrMalformedRecord)
		case rec.SaleRateNB == nil:
			return nil, fmt.Errorf("record %d (%s): %w: saleRateNB is missing", i, *rec.Currency, ErrMalformedRecord)
		case rec.PurchaseRateNB == nil:
			return nil, fmt.Errorf("record %d (%s): %w: purchaseRateNB is missing", i, *rec.Currency, ErrMalformedRecord)
		}

		out = append(out, internal.CurrencyRate{
			Currency:       internal.CurrencyCode(*rec.Currency),
			SaleRateNB:     *rec.SaleRateNB,
			PurchaseRateNB: *rec.PurchaseRateNB,
		})
	}
	return out, nil
}

func (c *Client) doRates(ctx context.Context, date internal.DateKey) (*exchangeRatesResponse, error) {
	// The bank wants the bare "json" flag first; url.Values would turn it into "json=".
	u := c.BaseURL + "?json&date=" + date.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out exchangeRatesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	return &out, nil
}
