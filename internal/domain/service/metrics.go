package service

import "time"

// MetricsRecorder captures domain counters.
type MetricsRecorder interface {
	NotificationAttempt(channel, status string)
	PaymentTransition(provider, status string)
	EscrowTransition(from, to string)
	QueueProcessed(status string, duration time.Duration)
}

// NoopMetrics discards every measurement.
type NoopMetrics struct{}

func (NoopMetrics) NotificationAttempt(string, string) {}
func (NoopMetrics) PaymentTransition(string, string) {}
func (NoopMetrics) EscrowTransition(string, string) {}
func (NoopMetrics) QueueProcessed(string, time.Duration) {}
