// Package session keeps per-login state in memory: a small query cache, the
// profile overlay and the in-progress wizards.
package session

import (
	"sync"
	"time"

	"legali_app_go/models"
	"legali_app_go/services/wizard"
)

// ProfileCacheKey is the query cache key for the signed-in user's profile
const ProfileCacheKey = "profile"

// ProfileCacheTTL is how long a cached profile stays fresh
const ProfileCacheTTL = 5 * time.Minute

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// Session is the state owned by one signed-in browser session
type Session struct {
	ID        string
	UserID    string
	CreatedAt time.Time

	mu            sync.Mutex
	now           func() time.Time
	upstreamToken string
	cache         map[string]cacheEntry
	overlay       *models.ProfileUpdate
	booking       *wizard.Booking
	investment    *wizard.Investment
	investments   []models.Investment
}

func newSession(id, userID, upstreamToken string, now func() time.Time) *Session {
	return &Session{
		ID:            id,
		UserID:        userID,
		CreatedAt:     now(),
		now:           now,
		upstreamToken: upstreamToken,
		cache:         make(map[string]cacheEntry),
	}
}

// UpstreamToken returns the bearer token for the data source
func (s *Session) UpstreamToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upstreamToken
}

// SetUpstreamToken replaces the bearer token after a refresh
func (s *Session) SetUpstreamToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upstreamToken = token
}

// Cached returns a fresh cache entry
func (s *Session) Cached(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	if s.now().After(entry.expiresAt) {
		delete(s.cache, key)
		return nil, false
	}
	return entry.value, true
}

// Cache stores a value for ttl
func (s *Session) Cache(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[key] = cacheEntry{value: value, expiresAt: s.now().Add(ttl)}
}

// Invalidate drops a cache entry
func (s *Session) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, key)
}

// CachedProfile returns the cached profile, if still fresh
func (s *Session) CachedProfile() (*models.User, bool) {
	v, ok := s.Cached(ProfileCacheKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(models.User)
	if !ok {
		return nil, false
	}
	return &u, true
}

// CacheProfile stores a copy of the profile
func (s *Session) CacheProfile(u models.User) {
	s.Cache(ProfileCacheKey, u, ProfileCacheTTL)
}

// ProfileOverlay returns the session-local profile edits
func (s *Session) ProfileOverlay() (models.ProfileUpdate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay == nil {
		return models.ProfileUpdate{}, false
	}
	return *s.overlay, true
}

// SetProfileOverlay records profile edits for this session only
func (s *Session) SetProfileOverlay(update models.ProfileUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overlay = &update
}

// Booking returns the in-progress booking wizard
func (s *Session) Booking() (*wizard.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.booking, s.booking != nil
}

// SetBooking replaces the booking wizard. Nil clears it.
func (s *Session) SetBooking(b *wizard.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.booking = b
}

// Investment returns the in-progress investment wizard
func (s *Session) Investment() (*wizard.Investment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.investment, s.investment != nil
}

// SetInvestment replaces the investment wizard. Nil clears it.
func (s *Session) SetInvestment(w *wizard.Investment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.investment = w
}

// RecordInvestment appends a completed investment to the session portfolio
func (s *Session) RecordInvestment(inv models.Investment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.investments = append(s.investments, inv)
}

// Investments returns a copy of the session portfolio
func (s *Session) Investments() []models.Investment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Investment, len(s.investments))
	copy(out, s.investments)
	return out
}

// clear drops everything the session holds
func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]cacheEntry)
	s.overlay = nil
	s.booking = nil
	s.investment = nil
	s.investments = nil
}
