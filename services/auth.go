package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"legali_app_go/logger"
	"legali_app_go/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// SessionTokenLength is the length of the session token in bytes (64 chars hex)
	SessionTokenLength = 32
	// DefaultSessionDuration is the lifetime of the access_token cookie (7 days)
	DefaultSessionDuration = 7 * 24 * time.Hour
	// RefreshSessionDuration is the lifetime of the refresh_token cookie (30 days)
	RefreshSessionDuration = 30 * 24 * time.Hour
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrRefreshExpired  = errors.New("refresh token expired")
)

// SessionParams describes a login to persist
type SessionParams struct {
	UserID               string
	UpstreamToken        string
	UpstreamRefreshToken string
	IPAddress            string
	UserAgent            string
}

// GenerateSessionToken generates a cryptographically secure random token
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// CreateSession creates a new session with a fresh access/refresh token pair
func CreateSession(db *gorm.DB, params SessionParams) (*models.Session, error) {
	access, refresh, err := newTokenPair()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &models.Session{
		ID:                   uuid.New().String(),
		UserID:               params.UserID,
		Token:                access,
		RefreshToken:         refresh,
		UpstreamToken:        params.UpstreamToken,
		UpstreamRefreshToken: params.UpstreamRefreshToken,
		ExpiresAt:            now.Add(DefaultSessionDuration),
		RefreshExpiresAt:     now.Add(RefreshSessionDuration),
		IPAddress:            params.IPAddress,
		UserAgent:            params.UserAgent,
	}

	if err := db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// ValidateSession validates an access token and returns the session if valid
func ValidateSession(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session

	err := db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	if session.IsExpired() {
		// the row stays while the refresh token is usable
		if !session.CanRefresh() {
			db.Delete(&session)
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// FindRefreshableSession looks up a session by refresh token
func FindRefreshableSession(db *gorm.DB, refreshToken string) (*models.Session, error) {
	var session models.Session

	err := db.Where("refresh_token = ?", refreshToken).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	if !session.CanRefresh() {
		db.Delete(&session)
		return nil, ErrRefreshExpired
	}
	return &session, nil
}

// RotateSession issues a new token pair for an existing session and stores
// the renewed upstream tokens. Empty upstream values keep the current ones.
func RotateSession(db *gorm.DB, session *models.Session, upstreamToken, upstreamRefreshToken string) (*models.Session, error) {
	access, refresh, err := newTokenPair()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"token":              access,
		"refresh_token":      refresh,
		"expires_at":         now.Add(DefaultSessionDuration),
		"refresh_expires_at": now.Add(RefreshSessionDuration),
	}
	if upstreamToken != "" {
		updates["upstream_token"] = upstreamToken
	}
	if upstreamRefreshToken != "" {
		updates["upstream_refresh_token"] = upstreamRefreshToken
	}

	if err := db.Model(session).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to rotate session: %w", err)
	}

	var rotated models.Session
	if err := db.First(&rotated, "id = ?", session.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload session: %w", err)
	}
	return &rotated, nil
}

// DeleteSession deletes a session (logout) and returns its ID
func DeleteSession(db *gorm.DB, token string) (string, error) {
	var session models.Session
	err := db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to find session: %w", err)
	}

	if err := db.Delete(&session).Error; err != nil {
		return "", fmt.Errorf("failed to delete session: %w", err)
	}
	return session.ID, nil
}

// CleanupExpiredSessions removes sessions whose refresh window has passed
// and returns their IDs
func CleanupExpiredSessions(db *gorm.DB) ([]string, error) {
	now := time.Now()
	var ids []string
	if err := db.Model(&models.Session{}).
		Where("expires_at < ? AND refresh_expires_at < ?", now, now).
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list expired sessions: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	result := db.Where("id IN ?", ids).Delete(&models.Session{})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to cleanup expired sessions: %w", result.Error)
	}
	logger.L().Info("cleaned up expired sessions", zap.Int64("count", result.RowsAffected))
	return ids, nil
}

// LogSecurityEvent logs security-related events
func LogSecurityEvent(eventType, userID, details string) {
	logger.L().Warn("security event",
		zap.String("event", eventType),
		zap.String("user_id", userID),
		zap.String("details", details))
}

func newTokenPair() (string, string, error) {
	access, err := GenerateSessionToken()
	if err != nil {
		return "", "", err
	}
	refresh, err := GenerateSessionToken()
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
