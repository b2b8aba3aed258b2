// Package model holds the GORM table mappings. They never leave the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Optional identifiers are nullable so absent values never collide in their unique indexes.
type AccountModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ExternalID *string   `gorm:"type:varchar(128);uniqueIndex:accounts_external_id_key"`
	DeviceID   *string   `gorm:"type:varchar(255);uniqueIndex:accounts_device_id_key"`
	Email      *string   `gorm:"type:varchar(255);uniqueIndex:accounts_email_key"`
	Mobile     *string   `gorm:"type:varchar(20);uniqueIndex:accounts_mobile_key"`
	Role       string    `gorm:"type:varchar(20);not null"`
	Status     string    `gorm:"type:varchar(20);not null"`

	FirstName string `gorm:"type:varchar(100);not null"`
	LastName  string `gorm:"type:varchar(100);not null"`
	PinCode   string `gorm:"type:varchar(10);not null"`
	City      string `gorm:"type:varchar(100);not null"`
	State     string `gorm:"type:varchar(100);not null"`
	Address   string `gorm:"type:text;not null"`

	StoreName    string `gorm:"type:varchar(150);not null"`
	StoreAddress string `gorm:"type:text;not null"`
	FacebookURL  string `gorm:"column:facebook_url;type:varchar(255);not null"`
	InstagramURL string `gorm:"column:instagram_url;type:varchar(255);not null"`
	YoutubeURL   string `gorm:"column:youtube_url;type:varchar(255);not null"`

	ProfilePhotoURL string `gorm:"column:profile_photo_url;type:varchar(512);not null"`
	ProfilePhotoKey string `gorm:"type:varchar(512);not null"`
	CoverPhotoURL   string `gorm:"column:cover_photo_url;type:varchar(512);not null"`
	CoverPhotoKey   string `gorm:"type:varchar(512);not null"`

	IsEmailVerified bool `gorm:"not null"`
	IsPhoneVerified bool `gorm:"not null"`
	IsActive        bool `gorm:"not null"`

	ReviewedAt *time.Time
	ReviewNote string `gorm:"type:text;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
