package handler

import (
	"net/http"
	"strings"

	"expatmart/internal/delivery/api/response"
	"expatmart/internal/domain/currency"
	"expatmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CurrencyHandler serves currency metadata, conversion and rate tables.
type CurrencyHandler struct {
	currencyUC usecase.CurrencyUsecase
}

func NewCurrencyHandler(currencyUC usecase.CurrencyUsecase) *CurrencyHandler {
	return &CurrencyHandler{currencyUC: currencyUC}
}

// ConversionResponse adds display strings to a conversion.
type ConversionResponse struct {
	*currency.ConversionResult
	FormattedOriginal  string `json:"formattedOriginal"`
	FormattedConverted string `json:"formattedConverted"`
}

func (h *CurrencyHandler) ListCurrencies(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.currencyUC.ListCurrencies())
}

func (h *CurrencyHandler) GetCurrency(c echo.Context) error {
	info, err := h.currencyUC.GetCurrencyInfo(c.Param("code"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info)
}

// Convert reads amount, from and to from the query string.
func (h *CurrencyHandler) Convert(c echo.Context) error {
	amount, err := decimal.NewFromString(c.QueryParam("amount"))
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", "amount must be a number")
	}

	from := strings.ToUpper(c.QueryParam("from"))
	to := strings.ToUpper(c.QueryParam("to"))
	if from == "" || to == "" {
		return response.BadRequest(c, "INVALID_QUERY", "from and to are required")
	}

	result, err := h.currencyUC.ConvertCurrency(c.Request().Context(), amount, from, to)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ConversionResponse{
		ConversionResult:   result,
		FormattedOriginal:  currency.FormatCurrency(result.OriginalAmount, result.From),
		FormattedConverted: currency.FormatCurrency(result.ConvertedAmount, result.To),
	})
}

// GetRates returns the rate table for ?base= (the configured base by default).
func (h *CurrencyHandler) GetRates(c echo.Context) error {
	rates, err := h.currencyUC.GetExchangeRates(c.Request().Context(), strings.ToUpper(c.QueryParam("base")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rates)
}
