package payment

import (
	"context"
	"net/url"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

type mockGateway struct {
	successURL string
}

// NewMockGateway creates a gateway that settles every payment on the spot.
func NewMockGateway(cfg *config.PaymentsConfig) service.PaymentGateway {
	return &mockGateway{successURL: cfg.SuccessURL}
}

func (g *mockGateway) Provider() entity.PaymentProvider {
	return entity.ProviderMock
}

func (g *mockGateway) Initiate(_ context.Context, tx *entity.PaymentTransaction) (*service.GatewayResult, error) {
	return &service.GatewayResult{
		Status:      entity.PaymentStatusCompleted,
		ProviderRef: "mock_" + tx.ID.String(),
		RedirectURL: withQuery(g.successURL, tx),
		Metadata:    map[string]any{"mock": true},
	}, nil
}

func (g *mockGateway) Refund(context.Context, *entity.PaymentTransaction, string) error {
	return nil
}

// ParseWebhook accepts unsigned events so local setups can drive the flow.
func (g *mockGateway) ParseWebhook(payload []byte, _ string) (*service.WebhookNotification, error) {
	if !gjson.ValidBytes(payload) {
		return nil, errors.New("webhook payload is not valid JSON")
	}

	result := gjson.ParseBytes(payload)
	reference := result.Get("reference").String()
	if reference == "" {
		return nil, errors.New("webhook has no reference")
	}

	status, err := mapProviderStatus(result.Get("status").String())
	if err != nil {
		return nil, err
	}

	eventID := result.Get("id").String()
	if eventID == "" {
		eventID = "mock_" + reference + "_" + string(status)
	}

	return &service.WebhookNotification{
		EventID:   eventID,
		EventType: "mock." + string(status),
		Reference: reference,
		Status:    status,
	}, nil
}

// withQuery appends the transaction identifiers to a return URL.
func withQuery(rawURL string, tx *entity.PaymentTransaction) string {
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	q.Set("transaction_id", tx.ID.String())
	q.Set("reference", tx.ReferenceCode)
	u.RawQuery = q.Encode()

	return u.String()
}
