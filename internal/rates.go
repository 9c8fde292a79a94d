package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CurrencyRate is one currency's NBU rates for one date.
type CurrencyRate struct {
	Currency       CurrencyCode `json:"currency"`
	SaleRateNB     Rate         `json:"saleRateNB"`
	PurchaseRateNB Rate         `json:"purchaseRateNB"`
}

type Quote struct {
	Sale     Rate `json:"sale"`
	Purchase Rate `json:"purchase"`
}

// DayRates marshals as a single-key object: {"DD.MM.YYYY": {"USD": {...}}}.
type DayRates struct {
	Date  DateKey
	Rates map[CurrencyCode]Quote
}

func (d DayRates) MarshalJSON() ([]byte, error) {
	rates := d.Rates
	if rates == nil {
		rates = map[CurrencyCode]Quote{}
	}

	key, err := json.Marshal(d.Date.String())
	if err != nil {
		return nil, err
	}
	val, err := json.Marshal(rates)
	if err != nil {
		return nil, fmt.Errorf("marshal rates for %s: %w", d.Date, err)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(val)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (d *DayRates) UnmarshalJSON(b []byte) error {
	var m map[DateKey]map[CurrencyCode]Quote
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("day entry must have exactly one date, got %d", len(m))
	}
	for date, rates := range m {
		if rates == nil {
			rates = map[CurrencyCode]Quote{}
		}
		d.Date, d.Rates = date, rates
	}
	return nil
}

// AggregatedResult is ordered like the requested dates: today first.
type AggregatedResult []DayRates

// Aggregate pairs dates[i] with lists[i]. Within a date the last record for
// a currency wins.
func Aggregate(dates []DateKey, lists [][]CurrencyRate) (AggregatedResult, error) {
	if len(dates) != len(lists) {
		return nil, fmt.Errorf("aggregate: %d dates but %d rate lists", len(dates), len(lists))
	}

	out := make(AggregatedResult, 0, len(dates))
	for i, date := range dates {
		rates := make(map[CurrencyCode]Quote, len(lists[i]))
		for _, r := range lists[i] {
			rates[r.Currency] = Quote{Sale: r.SaleRateNB, Purchase: r.PurchaseRateNB}
		}
		out = append(out, DayRates{Date: date, Rates: rates})
	}
	return out, nil
}
