package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDeviceModel maps 'user_devices'. (user_id, device_id) is unique.
type UserDeviceModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_devices_user_device"`
	FCMToken   string     `gorm:"column:fcm_token;type:text;not null;index"`
	DeviceID   string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_user_devices_user_device"`
	Platform   string     `gorm:"type:varchar(10);not null"`
	AppVersion string     `gorm:"type:varchar(32);not null;default:''"`
	IsActive   bool       `gorm:"not null;default:true"`
	LastSeenAt *time.Time `gorm:"type:timestamptz"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}

// AllModels lists every persisted model, in dependency order. Used by cmd/gen.
func AllModels() []any {
	return []any{
		ProfileModel{},
		VendorModel{},
		VendorProductModel{},
		VendorFollowerModel{},
		ListingModel{},
		SearchQueryModel{},
		ServiceModel{},
		ServiceBookingModel{},
		GroupBuyDealModel{},
		GroupBuyParticipantModel{},
		OrderModel{},
		PaymentTransactionModel{},
		PaymentWebhookEventModel{},
		EscrowAccountModel{},
		KYCVerificationModel{},
		SecurityEventModel{},
		NotificationModel{},
		NotificationPreferenceModel{},
		NotificationTemplateModel{},
		NotificationDeliveryModel{},
		NotificationQueueModel{},
		UserDeviceModel{},
	}
}
