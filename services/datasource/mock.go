package datasource

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"legali_app_go/logger"
	"legali_app_go/models"
	"legali_app_go/services/pipeline"
	"legali_app_go/services/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Simulated latencies of the mock backend
const (
	searchDelay     = 800 * time.Millisecond
	lawyerDelay     = 500 * time.Millisecond
	reviewsDelay    = 300 * time.Millisecond
	featuredDelay   = 600 * time.Millisecond
	bookingDelay    = 1 * time.Second
	getBookingDelay = 500 * time.Millisecond
	listDelay       = 800 * time.Millisecond
	cancelDelay     = 1 * time.Second
	investDelay     = 3 * time.Second
	loginDelay      = 500 * time.Millisecond
	profileDelay    = 300 * time.Millisecond
)

// Token lifetimes
const (
	AccessTokenTTL  = 7 * 24 * time.Hour
	RefreshTokenTTL = 30 * 24 * time.Hour
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
	tokenIssuer      = "legali"
)

// TokenClaims are the claims carried by mock-issued tokens
type TokenClaims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// MockOptions configures the mock data source
type MockOptions struct {
	// LatencyScale multiplies every simulated delay. 0 disables them.
	LatencyScale float64
	SigningKey   string
	Now          func() time.Time
}

// Mock is an in-memory DataSource seeded with demo data
type Mock struct {
	lawyers    []models.Lawyer
	reviews    []models.Review
	cases      []models.LitigationCase
	users      []seedUser
	scale      float64
	signingKey []byte
	now        func() time.Time

	hashOnce sync.Once
	hashes   map[string][]byte

	mu          sync.RWMutex
	bookings    []*models.Booking
	investments []*models.Investment
}

var _ DataSource = (*Mock)(nil)

// NewMock creates a mock data source with the built-in seed data
func NewMock(opts MockOptions) *Mock {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	key := opts.SigningKey
	if key == "" {
		key = "legali-mock-signing-key"
	}
	return &Mock{
		lawyers:    seedLawyers(),
		reviews:    seedReviews(),
		cases:      seedCases(),
		users:      seedUsers,
		scale:      opts.LatencyScale,
		signingKey: []byte(key),
		now:        opts.Now,
	}
}

// delay waits for the scaled latency or until ctx is done
func (m *Mock) delay(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	scaled := time.Duration(float64(d) * m.scale)
	if scaled <= 0 {
		return nil
	}

	timer := time.NewTimer(scaled)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (m *Mock) SearchLawyers(ctx context.Context, params pipeline.SearchParams) (pipeline.LawyerPage, error) {
	if err := m.delay(ctx, searchDelay); err != nil {
		return pipeline.LawyerPage{}, err
	}
	return pipeline.SearchLawyers(m.lawyers, params), nil
}

func (m *Mock) GetLawyer(ctx context.Context, id string) (*models.Lawyer, error) {
	if err := m.delay(ctx, lawyerDelay); err != nil {
		return nil, err
	}
	for _, l := range m.lawyers {
		if l.ID == id {
			lawyer := l
			return &lawyer, nil
		}
	}
	return nil, fmt.Errorf("lawyer %s: %w", id, ErrNotFound)
}

func (m *Mock) GetLawyerReviews(ctx context.Context, lawyerID string) ([]models.Review, error) {
	if err := m.delay(ctx, reviewsDelay); err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	for _, r := range m.reviews {
		if r.LawyerID == lawyerID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

func (m *Mock) FeaturedLawyers(ctx context.Context) ([]models.Lawyer, error) {
	if err := m.delay(ctx, featuredDelay); err != nil {
		return nil, err
	}
	return pipeline.FeaturedLawyers(m.lawyers), nil
}

func (m *Mock) ListCases(ctx context.Context) ([]models.LitigationCase, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cases := make([]models.LitigationCase, len(m.cases))
	copy(cases, m.cases)
	return cases, nil
}

func (m *Mock) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if err := m.delay(ctx, bookingDelay); err != nil {
		return nil, err
	}

	now := m.now()
	booking.ID = uuid.New().String()
	booking.Status = models.BookingStatusPending
	booking.PaymentStatus = models.PaymentStatusPending
	if booking.Duration == 0 {
		booking.Duration = models.DefaultBookingDuration
	}
	booking.CreatedAt = now
	booking.UpdatedAt = now

	m.mu.Lock()
	m.bookings = append(m.bookings, &booking)
	m.mu.Unlock()

	logger.L().Info("mock booking created",
		zap.String("booking_id", booking.ID),
		zap.String("lawyer_id", booking.LawyerID))

	created := booking
	return &created, nil
}

func (m *Mock) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	if err := m.delay(ctx, getBookingDelay); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.ID == id {
			booking := *b
			return &booking, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
}

func (m *Mock) ListUserBookings(ctx context.Context, userID string, page, limit int) (BookingPage, error) {
	if err := m.delay(ctx, listDelay); err != nil {
		return BookingPage{}, err
	}

	m.mu.RLock()
	owned := []models.Booking{}
	for _, b := range m.bookings {
		if b.ClientID == userID {
			owned = append(owned, *b)
		}
	}
	m.mu.RUnlock()

	// newest first
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	items, page, _, pages := pipeline.Paginate(owned, page, limit)
	return BookingPage{
		Bookings:   items,
		Total:      len(owned),
		Page:       page,
		TotalPages: pages,
	}, nil
}

func (m *Mock) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	if err := m.delay(ctx, cancelDelay); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bookings {
		if b.ID != id {
			continue
		}
		if !b.IsCancellable() {
			return nil, fmt.Errorf("booking %s is %s: %w", id, b.Status, ErrNotCancellable)
		}
		if reason == "" {
			reason = "Cancelled by user"
		}
		b.Status = models.BookingStatusCancelled
		b.PaymentStatus = models.PaymentStatusRefunded
		b.CancelReason = reason
		b.UpdatedAt = m.now()
		booking := *b
		return &booking, nil
	}
	return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
}

func (m *Mock) CreateInvestment(ctx context.Context, investment models.Investment) (*models.Investment, error) {
	if _, ok := pipeline.FindPublicCase(m.cases, investment.CaseID); !ok {
		return nil, fmt.Errorf("case %s: %w", investment.CaseID, ErrNotFound)
	}
	if err := m.delay(ctx, investDelay); err != nil {
		return nil, err
	}

	now := m.now()
	id := uuid.New().String()
	investment.ID = id
	investment.Status = models.InvestmentStatusActive
	investment.ReceiptNumber = receiptNumber(now, id)
	investment.CreatedAt = now

	m.mu.Lock()
	m.investments = append(m.investments, &investment)
	m.mu.Unlock()

	logger.L().Info("mock investment processed",
		zap.String("investment_id", id),
		zap.String("case_id", investment.CaseID),
		zap.Float64("amount", investment.Amount))

	processed := investment
	return &processed, nil
}

func receiptNumber(now time.Time, id string) string {
	return fmt.Sprintf("LGL-%s-%s", now.Format("20060102"), strings.ToUpper(id[:8]))
}

func (m *Mock) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	if err := m.delay(ctx, loginDelay); err != nil {
		return nil, nil, err
	}
	m.hashOnce.Do(m.hashSeedPasswords)

	for _, u := range m.users {
		if !strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			continue
		}
		if err := bcrypt.CompareHashAndPassword(m.hashes[u.ID], []byte(password)); err != nil {
			break
		}
		pair, err := m.issueTokens(u.User)
		if err != nil {
			return nil, nil, err
		}
		user := u.User
		return &user, pair, nil
	}
	return nil, nil, ErrInvalidCredentials
}

// hashSeedPasswords bcrypt-hashes the seed passwords on first login
func (m *Mock) hashSeedPasswords() {
	m.hashes = make(map[string][]byte, len(m.users))
	for _, u := range m.users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			logger.L().Error("failed to hash seed password", zap.String("user_id", u.ID), zap.Error(err))
			continue
		}
		m.hashes[u.ID] = hash
	}
}

func (m *Mock) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	claims, err := m.ParseToken(refreshToken)
	if err != nil || claims.TokenType != tokenTypeRefresh {
		return nil, ErrUnauthorized
	}
	user, ok := m.findUser(claims.Subject)
	if !ok {
		return nil, ErrUnauthorized
	}
	return m.issueTokens(user)
}

func (m *Mock) GetProfile(ctx context.Context, sess *session.Session) (*models.User, error) {
	if err := m.delay(ctx, profileDelay); err != nil {
		return nil, err
	}

	user, ok := m.findUser(sess.UserID)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", sess.UserID, ErrNotFound)
	}
	if overlay, ok := sess.ProfileOverlay(); ok {
		user = overlay.Apply(user)
	}
	return &user, nil
}

// UpdateProfile records the edit in the caller's session overlay. Seed users are never mutated.
func (m *Mock) UpdateProfile(ctx context.Context, sess *session.Session, update models.ProfileUpdate) (*models.User, error) {
	if err := m.delay(ctx, profileDelay); err != nil {
		return nil, err
	}

	user, ok := m.findUser(sess.UserID)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", sess.UserID, ErrNotFound)
	}

	if prev, ok := sess.ProfileOverlay(); ok {
		if update.ProfilePictureURL == nil {
			update.ProfilePictureURL = prev.ProfilePictureURL
		}
		if update.Region == "" {
			update.Region = prev.Region
		}
	}
	sess.SetProfileOverlay(update)

	user = update.Apply(user)
	return &user, nil
}

func (m *Mock) findUser(id string) (models.User, bool) {
	for _, u := range m.users {
		if u.ID == id {
			return u.User, true
		}
	}
	return models.User{}, false
}

func (m *Mock) issueTokens(user models.User) (*TokenPair, error) {
	now := m.now()
	access, err := m.signToken(user, tokenTypeAccess, now, AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.signToken(user, tokenTypeRefresh, now, RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		ExpiresAt:        now.Add(AccessTokenTTL),
		RefreshExpiresAt: now.Add(RefreshTokenTTL),
	}, nil
}

func (m *Mock) signToken(user models.User, tokenType string, now time.Time, ttl time.Duration) (string, error) {
	claims := TokenClaims{
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   user.ID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", tokenType, err)
	}
	return signed, nil
}

// ParseToken validates a token issued by this mock
func (m *Mock) ParseToken(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.signingKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}
