package usecase

import (
	"context"
	"time"

	"expatmart/internal/domain/currency"

	"github.com/shopspring/decimal"
)

// ExchangeRates is a rate table quoted against Base.
type ExchangeRates struct {
	Base      string                     `json:"base"`
	Rates     map[string]decimal.Decimal `json:"rates"`
	Source    string                     `json:"source"`
	FetchedAt time.Time                  `json:"fetched_at"`
}

// CurrencyUsecase exposes currency metadata, formatting and conversion.
type CurrencyUsecase interface {
	ListCurrencies() []currency.Info
	GetCurrencyInfo(code string) (*currency.Info, error)

	// ConvertCurrency is the identity (rate 1) when from equals to.
	ConvertCurrency(ctx context.Context, amount decimal.Decimal, from, to string) (*currency.ConversionResult, error)
	GetExchangeRates(ctx context.Context, base string) (*ExchangeRates, error)
}
