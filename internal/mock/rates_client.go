package mock

import (
	"context"
	"rates-history/internal"

	"github.com/stretchr/testify/mock"
)

// MockRatesClient mocks internal.RatesClient.
type MockRatesClient struct {
	mock.Mock
}

// NewMockRatesClient registers AssertExpectations as a test cleanup.
func NewMockRatesClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRatesClient {
	m := &MockRatesClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRatesClient) ExchangeRates(ctx context.Context, date internal.DateKey) ([]internal.CurrencyRate, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]internal.CurrencyRate), args.Error(1)
}
