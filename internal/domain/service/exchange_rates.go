package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateProvider fetches exchange rates quoted against a base currency.
type RateProvider interface {
	Name() string
	FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error)
}

// RateCache stores rate tables keyed by base currency.
type RateCache interface {
	// GetRates returns ok=false on a cache miss.
	GetRates(ctx context.Context, base string) (rates map[string]decimal.Decimal, ok bool, err error)
	SetRates(ctx context.Context, base string, rates map[string]decimal.Decimal, ttl time.Duration) error
}
