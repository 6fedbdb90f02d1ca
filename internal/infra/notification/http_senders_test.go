package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"expatmart/config"
	"expatmart/internal/domain/entity"
	"expatmart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailSender_Send(t *testing.T) {
	var got emailSendBody
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"emails":[{"contact":{"id":"c1"},"email":"em_42"}]}`))
	}))
	defer server.Close()

	sender := NewEmailSender(&config.Config{Email: &config.EmailConfig{
		APIURL:  server.URL,
		APIKey:  "sk_test",
		From:    "hello@expatmart.app",
		ReplyTo: "support@expatmart.app",
	}})

	receipt, err := sender.Send(context.Background(), &service.ChannelMessage{
		UserID: uuid.New(),
		Type:   entity.NotificationTypePayment,
		Title:  "Payment received",
		Body:   "We received your payment.",
		Email:  "buyer@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "em_42", receipt.ProviderMessageID)
	assert.Equal(t, emailSendBody{
		To:      "buyer@example.com",
		Subject: "Payment received",
		Body:    "We received your payment.",
		From:    "hello@expatmart.app",
		Reply:   "support@expatmart.app",
	}, got)
}

func TestEmailSender_Send_Failures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"invalid recipient"}`))
	}))
	defer server.Close()

	tests := []struct {
		name    string
		cfg     *config.EmailConfig
		email   string
		wantErr string
	}{
		{name: "no api key", cfg: &config.EmailConfig{APIURL: server.URL}, email: "a@b.c", wantErr: "api key"},
		{name: "no recipient", cfg: &config.EmailConfig{APIURL: server.URL, APIKey: "k"}, wantErr: "no email address"},
		{name: "provider rejects", cfg: &config.EmailConfig{APIURL: server.URL, APIKey: "k"}, email: "a@b.c", wantErr: "status=422"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := NewEmailSender(&config.Config{Email: tt.cfg})

			_, err := sender.Send(context.Background(), &service.ChannelMessage{UserID: uuid.New(), Email: tt.email})

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSMSSender_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Accounts/AC123/Messages.json", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+971500000000", r.PostForm.Get("To"))
		assert.Equal(t, "ExpatMart", r.PostForm.Get("From"))
		assert.Equal(t, "Booking confirmed: See you at 10:00", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM99","status":"queued"}`))
	}))
	defer server.Close()

	sender := NewSMSSender(&config.Config{SMS: &config.SMSConfig{
		APIURL:     server.URL + "/Accounts/{accountSid}/Messages.json",
		AccountSID: "AC123",
		AuthToken:  "secret",
		From:       "ExpatMart",
	}})

	receipt, err := sender.Send(context.Background(), &service.ChannelMessage{
		UserID: uuid.New(),
		Title:  "Booking confirmed",
		Body:   "See you at 10:00",
		Phone:  "+971500000000",
	})

	require.NoError(t, err)
	assert.Equal(t, "SM99", receipt.ProviderMessageID)
	assert.Equal(t, entity.ChannelSMS, sender.Channel())
}

func TestSMSSender_Send_NoPhone(t *testing.T) {
	sender := NewSMSSender(&config.Config{SMS: &config.SMSConfig{APIURL: "http://127.0.0.1:1", AccountSID: "AC1"}})

	_, err := sender.Send(context.Background(), &service.ChannelMessage{UserID: uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no phone number")
}
