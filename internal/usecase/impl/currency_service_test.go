package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"expatmart/config"
	domainerrors "expatmart/internal/domain/errors"
	mockSvc "expatmart/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCurrencyService(t *testing.T) (*currencyService, *mockSvc.MockRateProvider, *mockSvc.MockRateCache) {
	provider := mockSvc.NewMockRateProvider(t)
	cache := mockSvc.NewMockRateCache(t)
	cfg := &config.Config{Currency: &config.CurrencyConfig{
		BaseCurrency: "USD",
		CacheTTL:     time.Hour,
		StaticRates:  map[string]float64{"EUR": 0.9, "AED": 3.6725},
	}}

	svc := NewCurrencyService(provider, cache, cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*currencyService)
	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	return svc, provider, cache
}

func rateTable(pairs map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(pairs))
	for code, rate := range pairs {
		out[code] = decimal.RequireFromString(rate)
	}

	return out
}

func TestCurrencyService_ConvertCurrency_SameCurrencyIsIdentity(t *testing.T) {
	svc, _, _ := createTestCurrencyService(t)

	result, err := svc.ConvertCurrency(context.Background(), decimal.NewFromInt(1000), "USD", "usd")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.ConvertedAmount.Equal(decimal.NewFromInt(1000)))
	assert.True(t, result.Rate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "USD", result.From)
	assert.Equal(t, "USD", result.To)
}

func TestCurrencyService_ConvertCurrency_IdentityForEverySupportedCode(t *testing.T) {
	svc, _, _ := createTestCurrencyService(t)
	amount := decimal.RequireFromString("12.345")

	for _, info := range svc.ListCurrencies() {
		result, err := svc.ConvertCurrency(context.Background(), amount, info.Code, info.Code)
		require.NoError(t, err, info.Code)
		assert.True(t, result.ConvertedAmount.Equal(amount), info.Code)
		assert.True(t, result.Rate.Equal(decimal.NewFromInt(1)), info.Code)
	}
}

func TestCurrencyService_ConvertCurrency_FromCache(t *testing.T) {
	svc, _, cache := createTestCurrencyService(t)
	ctx := context.Background()

	cache.EXPECT().GetRates(ctx, "USD").Return(rateTable(map[string]string{"JPY": "150", "KWD": "0.3"}), true, nil)

	result, err := svc.ConvertCurrency(ctx, decimal.NewFromInt(100), "USD", "JPY")

	require.NoError(t, err)
	assert.Equal(t, "15000", result.ConvertedAmount.String())
}

func TestCurrencyService_ConvertCurrency_CrossRateThroughBase(t *testing.T) {
	svc, provider, cache := createTestCurrencyService(t)
	ctx := context.Background()

	cache.EXPECT().GetRates(ctx, "USD").Return(nil, false, nil)
	provider.EXPECT().FetchRates(ctx, "USD").Return(rateTable(map[string]string{"EUR": "0.8", "JPY": "160"}), nil)
	provider.EXPECT().Name().Return("http")
	cache.EXPECT().SetRates(ctx, "USD", mock.Anything, time.Hour).Return(nil)

	result, err := svc.ConvertCurrency(ctx, decimal.NewFromInt(10), "EUR", "JPY")

	require.NoError(t, err)
	assert.Equal(t, "200", result.Rate.String())
	assert.Equal(t, "2000", result.ConvertedAmount.String())
}

func TestCurrencyService_ConvertCurrency_StaticFallback(t *testing.T) {
	svc, provider, cache := createTestCurrencyService(t)
	ctx := context.Background()

	cache.EXPECT().GetRates(ctx, "USD").Return(nil, false, errors.New("redis down"))
	provider.EXPECT().FetchRates(ctx, "USD").Return(nil, errors.New("timeout"))
	provider.EXPECT().Name().Return("http")

	result, err := svc.ConvertCurrency(ctx, decimal.NewFromInt(100), "USD", "AED")

	require.NoError(t, err)
	assert.Equal(t, "367.25", result.ConvertedAmount.StringFixed(2))
}

func TestCurrencyService_ConvertCurrency_Unsupported(t *testing.T) {
	svc, _, _ := createTestCurrencyService(t)

	_, err := svc.ConvertCurrency(context.Background(), decimal.NewFromInt(1), "USD", "XYZ")

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedCurrency)
}

func TestCurrencyService_ConvertCurrency_MissingRate(t *testing.T) {
	svc, _, cache := createTestCurrencyService(t)
	ctx := context.Background()

	cache.EXPECT().GetRates(ctx, "USD").Return(rateTable(map[string]string{"EUR": "0.9"}), true, nil)

	_, err := svc.ConvertCurrency(ctx, decimal.NewFromInt(1), "USD", "VND")

	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedCurrency)
}

func TestCurrencyService_GetCurrencyInfo(t *testing.T) {
	svc, _, _ := createTestCurrencyService(t)

	info, err := svc.GetCurrencyInfo("JPY")
	require.NoError(t, err)
	assert.Equal(t, "JPY", info.Code)
	assert.Equal(t, "¥", info.Symbol)
	assert.Equal(t, int32(0), info.Decimals)

	_, err = svc.GetCurrencyInfo("ABC")
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedCurrency)
}

func TestCurrencyService_GetExchangeRates_Rebased(t *testing.T) {
	svc, _, cache := createTestCurrencyService(t)
	ctx := context.Background()

	cache.EXPECT().GetRates(ctx, "USD").Return(rateTable(map[string]string{"EUR": "0.5", "GBP": "0.25"}), true, nil)

	result, err := svc.GetExchangeRates(ctx, "eur")

	require.NoError(t, err)
	assert.Equal(t, "EUR", result.Base)
	assert.Equal(t, "cache", result.Source)
	assert.Equal(t, "2", result.Rates["USD"].String())
	assert.Equal(t, "1", result.Rates["EUR"].String())
	assert.Equal(t, "0.5", result.Rates["GBP"].String())
}
