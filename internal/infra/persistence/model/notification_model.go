package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one in-app inbox entry.
type NotificationModel struct {
	ID        uuid.UUID         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_notifications_user_created"`
	Type      string            `gorm:"type:varchar(30);not null"`
	Title     string            `gorm:"type:text;not null"`
	Message   string            `gorm:"type:text;not null"`
	Data      datatypes.JSONMap `gorm:"type:jsonb"`
	ReadAt    *time.Time
	CreatedAt time.Time `gorm:"index:idx_notifications_user_created,sort:desc"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

// NotificationPreferenceModel is the GORM-specific struct for the 'notification_preferences' table.
type NotificationPreferenceModel struct {
	UserID       uuid.UUID                   `gorm:"type:uuid;primary_key"`
	EmailEnabled bool                        `gorm:"not null;default:true"`
	SMSEnabled   bool                        `gorm:"column:sms_enabled;not null;default:true"`
	PushEnabled  bool                        `gorm:"not null;default:true"`
	InAppEnabled bool                        `gorm:"not null;default:true"`
	MutedTypes   datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationPreferenceModel) TableName() string {
	return "notification_preferences"
}

// NotificationTemplateModel is the GORM-specific struct for the 'notification_templates' table.
type NotificationTemplateModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string                      `gorm:"type:varchar(100);not null;uniqueIndex"`
	Type            string                      `gorm:"type:varchar(30);not null"`
	TitleTemplate   string                      `gorm:"type:text;not null"`
	BodyTemplate    string                      `gorm:"type:text;not null"`
	DefaultChannels datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	IsActive        bool                        `gorm:"not null;default:true"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationTemplateModel) TableName() string {
	return "notification_templates"
}

// NotificationDeliveryModel is the GORM-specific struct for the 'notification_deliveries' table.
// It represents a log entry for one channel attempt.
type NotificationDeliveryModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index"`
	NotificationID    *uuid.UUID `gorm:"type:uuid;index"`
	Type              string     `gorm:"type:varchar(30);not null"`
	Channel           string     `gorm:"type:varchar(10);not null"`
	Status            string     `gorm:"type:varchar(10);not null"`
	ProviderMessageID string     `gorm:"type:text"`
	ErrorMessage      string     `gorm:"type:text"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationDeliveryModel) TableName() string {
	return "notification_deliveries"
}

// NotificationQueueModel is the GORM-specific struct for the 'notification_queue' table
// polled by the worker.
type NotificationQueueModel struct {
	ID            uuid.UUID                             `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID                             `gorm:"type:uuid;not null"`
	Type          string                                `gorm:"type:varchar(30);not null"`
	Title         string                                `gorm:"type:text"`
	Message       string                                `gorm:"type:text"`
	Data          datatypes.JSONMap                     `gorm:"type:jsonb"`
	Channels      datatypes.JSONSlice[string]           `gorm:"type:jsonb"`
	TemplateName  string                                `gorm:"type:varchar(100)"`
	Variables     datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	Status        string                                `gorm:"type:varchar(20);not null;index:idx_queue_status_next"`
	Attempts      int                                   `gorm:"not null;default:0"`
	LastError     string                                `gorm:"type:text"`
	NextAttemptAt time.Time                             `gorm:"not null;index:idx_queue_status_next"`
	ProcessedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationQueueModel) TableName() string {
	return "notification_queue"
}
