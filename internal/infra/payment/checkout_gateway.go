package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"expatmart/config"
	"expatmart/internal/domain/currency"
	"expatmart/internal/domain/entity"
	domainerrors "expatmart/internal/domain/errors"
	"expatmart/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const (
	defaultCheckoutTimeout = 15 * time.Second
	maxErrorBodyBytes      = 512
	signaturePrefix        = "sha256="
)

type checkoutGateway struct {
	cfg        config.CheckoutConfig
	successURL string
	cancelURL  string
	httpClient *http.Client
}

type checkoutSessionRequest struct {
	Reference  string            `json:"reference"`
	Amount     string            `json:"amount"`
	Currency   string            `json:"currency"`
	SuccessURL string            `json:"success_url,omitempty"`
	CancelURL  string            `json:"cancel_url,omitempty"`
	Metadata   map[string]string `json:"metadata"`
}

type checkoutRefundRequest struct {
	SessionID string `json:"session_id"`
	Amount    string `json:"amount"`
	Reason    string `json:"reason,omitempty"`
}

// NewCheckoutGateway creates the hosted checkout adapter. Sessions are
// created over HTTP and settled through signed webhooks.
func NewCheckoutGateway(cfg *config.PaymentsConfig) service.PaymentGateway {
	timeout := cfg.Checkout.Timeout
	if timeout <= 0 {
		timeout = defaultCheckoutTimeout
	}

	return &checkoutGateway{
		cfg:        cfg.Checkout,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (g *checkoutGateway) Provider() entity.PaymentProvider {
	return entity.ProviderCheckout
}

func (g *checkoutGateway) Initiate(ctx context.Context, tx *entity.PaymentTransaction) (*service.GatewayResult, error) {
	body, err := g.post(ctx, "/sessions", checkoutSessionRequest{
		Reference:  tx.ReferenceCode,
		Amount:     tx.Amount.StringFixed(currency.Decimals(tx.Currency)),
		Currency:   strings.ToLower(tx.Currency),
		SuccessURL: withQuery(g.successURL, tx),
		CancelURL:  withQuery(g.cancelURL, tx),
		Metadata: map[string]string{
			"transaction_id": tx.ID.String(),
			"order_id":       tx.OrderID.String(),
		},
	})
	if err != nil {
		return nil, err
	}

	session := gjson.ParseBytes(body)
	sessionID := session.Get("id").String()
	redirectURL := session.Get("url").String()
	if sessionID == "" || redirectURL == "" {
		return nil, errors.New("checkout session response is missing id or url")
	}

	return &service.GatewayResult{
		Status:      entity.PaymentStatusProcessing,
		ProviderRef: sessionID,
		RedirectURL: redirectURL,
		Metadata: map[string]any{
			"checkout_session_id": sessionID,
			"expires_at":          session.Get("expires_at").String(),
		},
	}, nil
}

func (g *checkoutGateway) Refund(ctx context.Context, tx *entity.PaymentTransaction, reason string) error {
	if tx.ProviderRef == "" {
		return errors.New("transaction has no checkout session")
	}

	_, err := g.post(ctx, "/refunds", checkoutRefundRequest{
		SessionID: tx.ProviderRef,
		Amount:    tx.Amount.StringFixed(currency.Decimals(tx.Currency)),
		Reason:    reason,
	})

	return err
}

// ParseWebhook verifies the hex HMAC-SHA256 of the raw payload, with or
// without a "sha256=" prefix, and reads the event with gjson.
func (g *checkoutGateway) ParseWebhook(payload []byte, signature string) (*service.WebhookNotification, error) {
	if !g.validSignature(payload, signature) {
		return nil, errors.WithStack(domainerrors.ErrWebhookSignatureInvalid)
	}
	if !gjson.ValidBytes(payload) {
		return nil, errors.New("webhook payload is not valid JSON")
	}

	event := gjson.ParseBytes(payload)
	object := event.Get("data.object")
	if !object.Exists() {
		object = event.Get("data")
	}

	eventID := event.Get("id").String()
	if eventID == "" {
		return nil, errors.New("webhook has no event id")
	}

	reference := object.Get("reference").String()
	if reference == "" {
		reference = object.Get("id").String()
	}
	if reference == "" {
		return nil, errors.New("webhook has no payment reference")
	}

	eventType := event.Get("type").String()
	rawStatus := object.Get("status").String()
	if rawStatus == "" {
		// checkout.session.completed -> completed
		rawStatus = eventType[strings.LastIndex(eventType, ".")+1:]
	}
	status, err := mapProviderStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	notification := &service.WebhookNotification{
		EventID:     eventID,
		EventType:   eventType,
		Reference:   reference,
		Status:      status,
		Currency:    strings.ToUpper(object.Get("currency").String()),
		FailureCode: object.Get("failure_code").String(),
	}

	if amount := object.Get("amount"); amount.Exists() {
		parsed, err := decimal.NewFromString(amount.String())
		if err != nil {
			return nil, errors.Wrapf(err, "invalid webhook amount %q", amount.String())
		}
		notification.Amount = &parsed
	}

	return notification, nil
}

func (g *checkoutGateway) validSignature(payload []byte, signature string) bool {
	if g.cfg.WebhookSecret == "" || signature == "" {
		return false
	}

	got, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(signature), signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(g.cfg.WebhookSecret))
	mac.Write(payload)

	return hmac.Equal(got, mac.Sum(nil))
}

func (g *checkoutGateway) post(ctx context.Context, path string, payload any) ([]byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(g.cfg.BaseURL, "/")+path, bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "checkout request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read checkout response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := gjson.GetBytes(body, "error.message").String()
		if message == "" {
			if len(body) > maxErrorBodyBytes {
				body = body[:maxErrorBodyBytes]
			}
			message = string(body)
		}

		return nil, errors.Errorf("checkout %s failed: status=%d %s", path, resp.StatusCode, message)
	}

	return body, nil
}

// mapProviderStatus folds the provider vocabulary onto PaymentStatus.
func mapProviderStatus(raw string) (entity.PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "completed", "complete", "paid", "succeeded", "success":
		return entity.PaymentStatusCompleted, nil
	case "pending", "processing", "open":
		return entity.PaymentStatusProcessing, nil
	case "failed", "declined", "payment_failed":
		return entity.PaymentStatusFailed, nil
	case "cancelled", "canceled", "expired":
		return entity.PaymentStatusCancelled, nil
	case "refunded":
		return entity.PaymentStatusRefunded, nil
	default:
		return "", errors.Errorf("unsupported payment status %q", raw)
	}
}
