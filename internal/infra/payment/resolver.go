// Package payment holds the provider gateways behind service.PaymentGateway.
package payment

import (
	"log/slog"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
)

type gatewayResolver struct {
	gateways map[entity.PaymentProvider]service.PaymentGateway
}

// NewGatewayResolver registers every gateway the configuration enables.
// MOCK is only served when payments.mockEnabled is set, CHECKOUT only when
// its base URL and API key are present. CASH and BANK_TRANSFER are always on.
func NewGatewayResolver(cfg *config.Config, logger *slog.Logger) service.GatewayResolver {
	paymentsCfg := config.PaymentsConfig{}
	if cfg.Payments != nil {
		paymentsCfg = *cfg.Payments
	}

	gateways := map[entity.PaymentProvider]service.PaymentGateway{
		entity.ProviderCash:         NewCashGateway(&paymentsCfg),
		entity.ProviderBankTransfer: NewBankTransferGateway(&paymentsCfg),
	}

	if paymentsCfg.MockEnabled {
		gateways[entity.ProviderMock] = NewMockGateway(&paymentsCfg)
		logger.Warn("Mock payment provider enabled")
	}

	if paymentsCfg.Checkout.BaseURL != "" && paymentsCfg.Checkout.APIKey != "" {
		gateways[entity.ProviderCheckout] = NewCheckoutGateway(&paymentsCfg)
	} else {
		logger.Info("Checkout provider not configured")
	}

	return &gatewayResolver{gateways: gateways}
}

func (r *gatewayResolver) Gateway(provider entity.PaymentProvider) (service.PaymentGateway, error) {
	gateway, ok := r.gateways[provider]
	if !ok {
		return nil, errors.Wrapf(service.ErrGatewayNotConfigured, "provider %s", provider)
	}

	return gateway, nil
}
