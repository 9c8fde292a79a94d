package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyCode is taken verbatim from the bank response; the set is not validated.
type CurrencyCode string

func (c CurrencyCode) String() string { return string(c) }

// Rate is a decimal rate that keeps the text it was read from, so "38.0"
// is printed back as "38.0" and not normalised to "38".
type Rate struct {
	text  string
	value decimal.Decimal
}

func NewRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rate{}, fmt.Errorf("rate is empty")
	}

	v, err := decimal.NewFromString(s)
	if err != nil {
		return Rate{}, fmt.Errorf("parse rate %q: %w", s, err)
	}
	return Rate{text: s, value: v}, nil
}

func MustRate(s string) Rate {
	r, err := NewRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rate) String() string { return r.text }

func (r Rate) Decimal() decimal.Decimal { return r.value }

// UnmarshalJSON accepts both JSON numbers and numeric strings.
func (r *Rate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return fmt.Errorf("rate is null")
	}

	s := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode rate: %w", err)
		}
	}

	rate, err := NewRate(s)
	if err != nil {
		return err
	}
	*r = rate
	return nil
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.text)
}
