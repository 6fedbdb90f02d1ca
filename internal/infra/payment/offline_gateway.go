package payment

import (
	"context"
	"strings"

	"expatmart/config"
	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/valyala/fasttemplate"
)

const (
	defaultCashInstructions = "Pay {amount} in cash on delivery and quote reference {reference}."

	bankTransferInstructions = "Transfer {amount} to {bank}, account name {account_name}, " +
		"account number {account_number}, IBAN {iban}, SWIFT {swift}. " +
		"Quote reference {reference} so the seller can verify your payment."
)

// offlineGateway settles outside the platform. Payments wait in
// PENDING_VERIFICATION until the seller or an admin confirms them.
type offlineGateway struct {
	provider     entity.PaymentProvider
	instructions *fasttemplate.Template
	vars         map[string]any
}

// NewCashGateway creates the pay-on-delivery gateway.
func NewCashGateway(cfg *config.PaymentsConfig) service.PaymentGateway {
	text := cfg.Cash.Instructions
	if strings.TrimSpace(text) == "" {
		text = defaultCashInstructions
	}

	tmpl, err := fasttemplate.NewTemplate(text, "{", "}")
	if err != nil {
		tmpl = fasttemplate.New(defaultCashInstructions, "{", "}")
	}

	return &offlineGateway{
		provider:     entity.ProviderCash,
		instructions: tmpl,
		vars:         map[string]any{},
	}
}

// NewBankTransferGateway creates the manual bank transfer gateway.
func NewBankTransferGateway(cfg *config.PaymentsConfig) service.PaymentGateway {
	bank := cfg.BankTransfer

	return &offlineGateway{
		provider:     entity.ProviderBankTransfer,
		instructions: fasttemplate.New(bankTransferInstructions, "{", "}"),
		vars: map[string]any{
			"bank":           orDash(bank.BankName),
			"account_name":   orDash(bank.AccountName),
			"account_number": orDash(bank.AccountNumber),
			"iban":           orDash(bank.IBAN),
			"swift":          orDash(bank.SwiftCode),
		},
	}
}

func (g *offlineGateway) Provider() entity.PaymentProvider {
	return g.provider
}

func (g *offlineGateway) Initiate(_ context.Context, tx *entity.PaymentTransaction) (*service.GatewayResult, error) {
	vars := make(map[string]any, len(g.vars)+2)
	for k, v := range g.vars {
		vars[k] = v
	}
	vars["amount"] = currency.FormatCurrency(tx.Amount, tx.Currency)
	vars["reference"] = tx.ReferenceCode

	return &service.GatewayResult{
		Status:               entity.PaymentStatusPendingVerification,
		ProviderRef:          tx.ReferenceCode,
		Instructions:         g.instructions.ExecuteString(vars),
		RequiresVerification: true,
		Metadata:             map[string]any{"settlement": "offline"},
	}, nil
}

// Refund has nothing to call; the money is returned by hand.
func (g *offlineGateway) Refund(context.Context, *entity.PaymentTransaction, string) error {
	return nil
}

func (g *offlineGateway) ParseWebhook([]byte, string) (*service.WebhookNotification, error) {
	return nil, errors.Errorf("%s payments have no webhooks", g.provider)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}
