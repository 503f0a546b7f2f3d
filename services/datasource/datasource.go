// Package datasource is the single data-access capability used by the HTTP
// layer. One implementation is chosen at startup: the in-memory Mock or the
// upstream API client.
package datasource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"legali_app_go/models"
	"legali_app_go/services/pipeline"
	"legali_app_go/services/session"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotCancellable     = errors.New("booking cannot be cancelled")
)

// APIError is a non-2xx response from the upstream API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream API error (%d): %s", e.Status, e.Message)
}

// TokenPair is the access/refresh token pair issued at login
type TokenPair struct {
	AccessToken      string    `json:"access_token"`
	RefreshToken     string    `json:"refresh_token"`
	ExpiresAt        time.Time `json:"expires_at"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

// BookingPage is one page of a user's bookings
type BookingPage struct {
	Bookings   []models.Booking `json:"bookings"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// DataSource is everything the handlers need from the backend
type DataSource interface {
	SearchLawyers(ctx context.Context, params pipeline.SearchParams) (pipeline.LawyerPage, error)
	GetLawyer(ctx context.Context, id string) (*models.Lawyer, error)
	GetLawyerReviews(ctx context.Context, lawyerID string) ([]models.Review, error)
	FeaturedLawyers(ctx context.Context) ([]models.Lawyer, error)

	// ListCases returns the raw listing. Callers apply the approval gate
	// through the case pipeline.
	ListCases(ctx context.Context) ([]models.LitigationCase, error)

	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string, page, limit int) (BookingPage, error)
	CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error)

	CreateInvestment(ctx context.Context, investment models.Investment) (*models.Investment, error)

	Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetProfile(ctx context.Context, sess *session.Session) (*models.User, error)
	UpdateProfile(ctx context.Context, sess *session.Session, update models.ProfileUpdate) (*models.User, error)
}

type tokenKey struct{}

// WithToken attaches the upstream bearer token to ctx
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the upstream bearer token carried by ctx
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
