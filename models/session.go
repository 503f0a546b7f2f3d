package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Session struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID               string    `gorm:"type:varchar(64);not null;index" json:"user_id"`
	Token                string    `gorm:"uniqueIndex;not null;type:varchar(128)" json:"-"` // access_token cookie value
	RefreshToken         string    `gorm:"uniqueIndex;type:varchar(128)" json:"-"`          // refresh_token cookie value
	UpstreamToken        string    `gorm:"type:text" json:"-"`                              // bearer token for the data source
	UpstreamRefreshToken string    `gorm:"type:text" json:"-"`
	ExpiresAt            time.Time `gorm:"not null;index" json:"expires_at"`
	RefreshExpiresAt     time.Time `gorm:"index" json:"refresh_expires_at"`
	IPAddress            string    `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent            string    `gorm:"type:text" json:"user_agent"`
}

// BeforeCreate hook to generate UUID
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for Session model
func (Session) TableName() string {
	return "sessions"
}

// IsExpired checks if the session has expired
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// CanRefresh checks if the refresh token is still usable
func (s *Session) CanRefresh() bool {
	return s.RefreshToken != "" && time.Now().Before(s.RefreshExpiresAt)
}
