package impl

import (
	"context"
	"log/slog"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/currency"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/service"
	"expatmart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const (
	rateSourceCache  = "cache"
	rateSourceStatic = "static"
	ratePrecision    = 8
)

type currencyService struct {
	provider service.RateProvider
	cache    service.RateCache
	cfg      *config.CurrencyConfig
	logger   *slog.Logger
	now      func() time.Time
}

// NewCurrencyService creates the currency service. Rates are always fetched for
// the configured base currency and crossed from there.
func NewCurrencyService(
	provider service.RateProvider,
	cache service.RateCache,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CurrencyUsecase {
	return &currencyService{
		provider: provider,
		cache:    cache,
		cfg:      cfg.Currency,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *currencyService) ListCurrencies() []currency.Info {
	return currency.SupportedCurrencies()
}

func (s *currencyService) GetCurrencyInfo(code string) (*currency.Info, error) {
	info, ok := currency.GetCurrencyInfo(code)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", code)
	}

	return &info, nil
}

// ConvertCurrency converts through the base currency and rounds to the target precision.
func (s *currencyService) ConvertCurrency(ctx context.Context, amount decimal.Decimal, from, to string) (*currency.ConversionResult, error) {
	from, to = currency.Normalize(from), currency.Normalize(to)
	for _, code := range []string{from, to} {
		if !currency.IsSupported(code) {
			return nil, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", code)
		}
	}

	if from == to {
		return &currency.ConversionResult{
			Success:         true,
			OriginalAmount:  amount,
			ConvertedAmount: amount,
			Rate:            decimal.NewFromInt(1),
			From:            from,
			To:              to,
			Timestamp:       s.now(),
		}, nil
	}

	rates, err := s.baseRates(ctx)
	if err != nil {
		return nil, err
	}

	rate, err := crossRate(rates.Rates, from, to)
	if err != nil {
		return nil, err
	}

	return &currency.ConversionResult{
		Success:         true,
		OriginalAmount:  amount,
		ConvertedAmount: currency.Convert(amount, rate, to),
		Rate:            rate,
		From:            from,
		To:              to,
		Timestamp:       rates.FetchedAt,
	}, nil
}

// GetExchangeRates returns every known rate quoted against base.
func (s *currencyService) GetExchangeRates(ctx context.Context, base string) (*usecase.ExchangeRates, error) {
	base = currency.Normalize(base)
	if base == "" {
		base = s.cfg.BaseCurrency
	}
	if !currency.IsSupported(base) {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "currency %q", base)
	}

	rates, err := s.baseRates(ctx)
	if err != nil {
		return nil, err
	}
	if base == rates.Base {
		return rates, nil
	}

	rebased := make(map[string]decimal.Decimal, len(rates.Rates))
	for code := range rates.Rates {
		rate, err := crossRate(rates.Rates, base, code)
		if err != nil {
			return nil, err
		}
		rebased[code] = rate
	}

	return &usecase.ExchangeRates{
		Base:      base,
		Rates:     rebased,
		Source:    rates.Source,
		FetchedAt: rates.FetchedAt,
	}, nil
}

// baseRates resolves rates for the configured base: cache, then provider, then static table.
func (s *currencyService) baseRates(ctx context.Context) (*usecase.ExchangeRates, error) {
	base := s.cfg.BaseCurrency

	if s.cache != nil {
		rates, ok, err := s.cache.GetRates(ctx, base)
		if err != nil {
			s.logger.Warn("Exchange rate cache read failed", slog.String("base", base), slog.Any("error", err))
		} else if ok {
			return withBase(base, rates, rateSourceCache, s.now()), nil
		}
	}

	if s.provider != nil {
		rates, err := s.provider.FetchRates(ctx, base)
		if err == nil && len(rates) > 0 {
			if s.cache != nil {
				if err := s.cache.SetRates(ctx, base, rates, s.cfg.CacheTTL); err != nil {
					s.logger.Warn("Exchange rate cache write failed", slog.String("base", base), slog.Any("error", err))
				}
			}

			return withBase(base, rates, s.provider.Name(), s.now()), nil
		}
		s.logger.Warn("Exchange rate provider failed, using static rates",
			slog.String("provider", s.provider.Name()),
			slog.Any("error", err),
		)
	}

	if len(s.cfg.StaticRates) == 0 {
		return nil, errors.Wrap(domainerrors.ErrInternalError, "no exchange rates available")
	}

	static := make(map[string]decimal.Decimal, len(s.cfg.StaticRates))
	for code, rate := range s.cfg.StaticRates {
		static[currency.Normalize(code)] = decimal.NewFromFloat(rate)
	}

	return withBase(base, static, rateSourceStatic, s.now()), nil
}

func withBase(base string, rates map[string]decimal.Decimal, source string, at time.Time) *usecase.ExchangeRates {
	out := make(map[string]decimal.Decimal, len(rates)+1)
	for code, rate := range rates {
		out[code] = rate
	}
	out[base] = decimal.NewFromInt(1)

	return &usecase.ExchangeRates{Base: base, Rates: out, Source: source, FetchedAt: at}
}

// crossRate returns how many units of to one unit of from buys.
func crossRate(rates map[string]decimal.Decimal, from, to string) (decimal.Decimal, error) {
	fromRate, ok := rates[from]
	if !ok || !fromRate.IsPositive() {
		return decimal.Zero, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "no rate for %s", from)
	}
	toRate, ok := rates[to]
	if !ok || !toRate.IsPositive() {
		return decimal.Zero, errors.Wrapf(domainerrors.ErrUnsupportedCurrency, "no rate for %s", to)
	}

	return toRate.DivRound(fromRate, ratePrecision), nil
}
