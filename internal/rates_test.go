package internal_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rates-history/internal"
)

func rec(ccy, sale, purchase string) internal.CurrencyRate {
	return internal.CurrencyRate{
		Currency:       internal.CurrencyCode(ccy),
		SaleRateNB:     internal.MustRate(sale),
		PurchaseRateNB: internal.MustRate(purchase),
	}
}

func TestAggregate_SingleDate(t *testing.T) {
	result, err := internal.Aggregate(
		[]internal.DateKey{"01.01.2024"},
		[][]internal.CurrencyRate{{rec("USD", "38.0", "37.5")}},
	)
	require.NoError(t, err)

	out, err := json.Marshal(result[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"01.01.2024": {"USD": {"sale": "38.0", "purchase": "37.5"}}}`, string(out))
	assert.Equal(t, `{"01.01.2024":{"USD":{"sale":"38.0","purchase":"37.5"}}}`, string(out))
}

func TestAggregate_DuplicateCurrencyLastWins(t *testing.T) {
	result, err := internal.Aggregate(
		[]internal.DateKey{"01.01.2024"},
		[][]internal.CurrencyRate{{
			rec("EUR", "41.0", "40.5"),
			rec("USD", "38.0", "37.5"),
			rec("EUR", "42.1", "41.9"),
		}},
	)
	require.NoError(t, err)
	require.Len(t, result, 1)

	rates := result[0].Rates
	require.Len(t, rates, 2)
	assert.Equal(t, "42.1", rates["EUR"].Sale.String())
	assert.Equal(t, "41.9", rates["EUR"].Purchase.String())
}

func TestAggregate_EmptyDatesKeepOrder(t *testing.T) {
	dates := []internal.DateKey{"10.03.2024", "09.03.2024", "08.03.2024"}

	result, err := internal.Aggregate(dates, [][]internal.CurrencyRate{{}, nil, {}})
	require.NoError(t, err)

	out, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Equal(t, `[{"10.03.2024":{}},{"09.03.2024":{}},{"08.03.2024":{}}]`, string(out))
}

func TestAggregate_NoDedupAcrossDates(t *testing.T) {
	dates := []internal.DateKey{"02.01.2024", "01.01.2024"}

	result, err := internal.Aggregate(dates, [][]internal.CurrencyRate{
		{rec("USD", "38.2", "38.1")},
		{rec("USD", "38.0", "37.5")},
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, internal.DateKey("02.01.2024"), result[0].Date)
	assert.Equal(t, "38.2", result[0].Rates["USD"].Sale.String())
	assert.Equal(t, internal.DateKey("01.01.2024"), result[1].Date)
	assert.Equal(t, "38.0", result[1].Rates["USD"].Sale.String())
}

func TestAggregate_LengthMismatch(t *testing.T) {
	_, err := internal.Aggregate([]internal.DateKey{"01.01.2024"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 dates but 0 rate lists")
}

func TestDayRates_UnmarshalJSON(t *testing.T) {
	var result internal.AggregatedResult
	err := json.Unmarshal([]byte(`[{"01.01.2024":{"USD":{"sale":"38.0","purchase":37.5}}},{"31.12.2023":{}}]`), &result)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, internal.DateKey("01.01.2024"), result[0].Date)
	assert.Equal(t, "37.5", result[0].Rates["USD"].Purchase.String())
	assert.Empty(t, result[1].Rates)
	assert.NotNil(t, result[1].Rates)

	var day internal.DayRates
	err = json.Unmarshal([]byte(`{"01.01.2024":{},"02.01.2024":{}}`), &day)
	require.Error(t, err)
}

func TestRate_UnmarshalJSON(t *testing.T) {
	var r internal.Rate

	require.NoError(t, json.Unmarshal([]byte(`15.056413`), &r))
	assert.Equal(t, "15.056413", r.String())
	assert.True(t, r.Decimal().Equal(decimal.RequireFromString("15.056413")))

	require.NoError(t, json.Unmarshal([]byte(`"38.0"`), &r))
	assert.Equal(t, "38.0", r.String())
	assert.True(t, r.Decimal().Equal(decimal.NewFromInt(38)))

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &r))
	assert.Error(t, json.Unmarshal([]byte(`""`), &r))
	assert.Error(t, json.Unmarshal([]byte(`null`), &r))
	assert.Error(t, json.Unmarshal([]byte(`true`), &r))
}

func TestRate_MarshalKeepsText(t *testing.T) {
	out, err := json.Marshal(internal.MustRate("0.0105"))
	require.NoError(t, err)
	assert.Equal(t, `"0.0105"`, string(out))
}
