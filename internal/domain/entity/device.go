package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevicePlatform is the client platform a push token was issued for.
type DevicePlatform string

const (
	PlatformIOS     DevicePlatform = "ios"
	PlatformAndroid DevicePlatform = "android"
	PlatformWeb     DevicePlatform = "web"
)

// ParseDevicePlatform accepts any casing of a known platform.
func ParseDevicePlatform(s string) (DevicePlatform, bool) {
	switch p := DevicePlatform(strings.ToLower(strings.TrimSpace(s))); p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return p, true
	default:
		return "", false
	}
}

// UserDevice is a push target. One row per (user, client device id).
type UserDevice struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	FCMToken   string         `json:"fcm_token"`
	DeviceID   string         `json:"device_id"`
	Platform   DevicePlatform `json:"platform"`
	AppVersion string         `json:"app_version,omitempty"`
	IsActive   bool           `json:"is_active"`
	LastSeenAt *time.Time     `json:"last_seen_at,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// Deliverable reports whether pushes may be sent to the device.
func (d *UserDevice) Deliverable() bool {
	return d != nil && d.IsActive && d.FCMToken != ""
}
