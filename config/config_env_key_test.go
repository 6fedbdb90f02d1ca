package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"supabase": map[string]any{
			"serviceRoleKey": "",
			"realtime": map[string]any{
				"heartbeatInterval": "30s",
			},
		},
		"payments": map[string]any{
			"mockEnabled": true,
			"checkout": map[string]any{
				"webhookSecret": "",
			},
		},
		"qrcode": map[string]any{
			"errorCorrectionLevel": "M",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SUPABASE_SERVICEROLEKEY", want: "supabase.serviceRoleKey"},
		{envKey: "SUPABASE_REALTIME_HEARTBEATINTERVAL", want: "supabase.realtime.heartbeatInterval"},
		{envKey: "PAYMENTS_MOCKENABLED", want: "payments.mockEnabled"},
		{envKey: "PAYMENTS_CHECKOUT_WEBHOOKSECRET", want: "payments.checkout.webhookSecret"},
		{envKey: "QRCODE_ERRORCORRECTIONLEVEL", want: "qrcode.errorCorrectionLevel"},
		{envKey: "CURRENCY__APIKEY", want: "currency.apikey"},
		{envKey: "UNKNOWN_SECTION_KEY", want: "unknown.section.key"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Supabase)
	assert.Equal(t, "public", cfg.Supabase.Realtime.Schema)
	assert.Equal(t, 30*time.Second, cfg.Supabase.Realtime.HeartbeatInterval)

	require.NotNil(t, cfg.Payments)
	assert.True(t, cfg.Payments.MockEnabled)
	assert.Equal(t, "USD", cfg.Payments.DefaultCurrency)

	assert.Equal(t, 50, cfg.Notifications.BatchSize)
	assert.Equal(t, 500, cfg.Notifications.PushBatchSize)
	assert.Equal(t, 10*time.Minute, cfg.Notifications.ProcessingLease)
	assert.Equal(t, 6, cfg.Escrow.ReleaseCodeLength)
	assert.Equal(t, "@every 10s", cfg.Scheduler.NotificationQueue)
	assert.Equal(t, "kyc/", cfg.Storage.KYCPrefix)
	assert.Nil(t, cfg.Metrics)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Notifications: &NotificationsConfig{BatchSize: 10, PushBatchSize: 2000},
		Scheduler:     &SchedulerConfig{NotificationQueue: "@every 1m"},
		Metrics:       &MetricsConfig{Enabled: true},
	}

	applyDefaults(cfg)

	assert.Equal(t, 10, cfg.Notifications.BatchSize)
	assert.Equal(t, 500, cfg.Notifications.PushBatchSize, "push batches are capped at the FCM limit")
	assert.Equal(t, "@every 1m", cfg.Scheduler.NotificationQueue)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}
