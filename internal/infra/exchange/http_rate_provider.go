// Package exchange fetches and caches currency exchange rates.
package exchange

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/constants"
	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"github.com/valyala/fasttemplate"
)

const defaultRatesTimeout = 10 * time.Second

// rateTablePaths lists where common rate APIs put the table.
var rateTablePaths = []string{"rates", "conversion_rates", "data"}

type httpRateProvider struct {
	ratesURL   string
	apiKey     string
	httpClient *http.Client
}

// NewRateProvider returns the configured rate source, or nil when only the
// static table is used.
func NewRateProvider(cfg *config.Config) service.RateProvider {
	if cfg.Currency == nil || cfg.Currency.RatesURL == "" || strings.EqualFold(cfg.Currency.Provider, constants.RateProviderStatic) {
		return nil
	}

	timeout := cfg.Currency.Timeout
	if timeout <= 0 {
		timeout = defaultRatesTimeout
	}

	return &httpRateProvider{
		ratesURL:   cfg.Currency.RatesURL,
		apiKey:     cfg.Currency.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (p *httpRateProvider) Name() string {
	return constants.RateProviderHTTP
}

// FetchRates calls the rates URL, where {base} and {apiKey} are substituted,
// and reads the first rate table found in the response.
func (p *httpRateProvider) FetchRates(ctx context.Context, base string) (map[string]decimal.Decimal, error) {
	endpoint := fasttemplate.ExecuteString(p.ratesURL, "{", "}", map[string]any{
		"base":   currency.Normalize(base),
		"apiKey": p.apiKey,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if p.apiKey != "" {
		req.Header.Set("apikey", p.apiKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "exchange rate request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read exchange rate response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("exchange rate request failed: status=%d", resp.StatusCode)
	}

	return parseRates(body)
}

func parseRates(body []byte) (map[string]decimal.Decimal, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("exchange rate response is not valid JSON")
	}

	var table gjson.Result
	for _, path := range rateTablePaths {
		if candidate := gjson.GetBytes(body, path); candidate.IsObject() {
			table = candidate
			break
		}
	}
	if !table.Exists() {
		return nil, errors.New("exchange rate response has no rate table")
	}

	rates := make(map[string]decimal.Decimal)
	var parseErr error
	table.ForEach(func(key, value gjson.Result) bool {
		code := currency.Normalize(key.String())
		if !currency.IsSupported(code) {
			return true
		}

		rate, err := decimal.NewFromString(value.String())
		if err != nil {
			parseErr = errors.Wrapf(err, "invalid rate for %s", code)
			return false
		}
		if rate.IsPositive() {
			rates[code] = rate
		}

		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(rates) == 0 {
		return nil, errors.New("exchange rate response has no supported currencies")
	}

	return rates, nil
}
