package session

import (
	"testing"
	"time"

	"legali_app_go/models"
	"legali_app_go/services/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestSessionProfileCache(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := NewManagerWithClock(clock.Now)
	s := m.Open("sess-1", "user-1", "")

	_, ok := s.CachedProfile()
	assert.False(t, ok)

	s.CacheProfile(models.User{ID: "user-1", FirstName: "Jane"})
	u, ok := s.CachedProfile()
	require.True(t, ok)
	assert.Equal(t, "Jane", u.FirstName)

	clock.Advance(ProfileCacheTTL - time.Second)
	_, ok = s.CachedProfile()
	assert.True(t, ok)

	clock.Advance(2 * time.Second)
	_, ok = s.CachedProfile()
	assert.False(t, ok, "entry should expire after the TTL")

	s.Cache("other", 42, time.Minute)
	s.Invalidate("other")
	_, ok = s.Cached("other")
	assert.False(t, ok)
}

func TestSessionsAreIsolated(t *testing.T) {
	m := NewManager()
	a := m.Open("a", "user-1", "")
	b := m.Open("b", "user-2", "")

	a.SetProfileOverlay(models.ProfileUpdate{FirstName: "Alice"})
	_, ok := b.ProfileOverlay()
	assert.False(t, ok)

	overlay, ok := a.ProfileOverlay()
	require.True(t, ok)
	assert.Equal(t, "Alice", overlay.FirstName)
}

func TestSessionWizardsAndPortfolio(t *testing.T) {
	m := NewManager()
	s := m.Open("sess-1", "user-1", "")

	_, ok := s.Booking()
	assert.False(t, ok)

	s.SetBooking(wizard.NewBooking(models.Lawyer{ID: "l1"}, "user-1"))
	b, ok := s.Booking()
	require.True(t, ok)
	assert.Equal(t, wizard.StepDateTime, b.Step())

	s.SetInvestment(wizard.NewInvestment(models.LitigationCase{ID: "c1"}, "user-1"))
	inv, ok := s.Investment()
	require.True(t, ok)
	assert.Equal(t, "c1", inv.CaseID())

	s.RecordInvestment(models.Investment{ID: "i1", Amount: 1000})
	portfolio := s.Investments()
	require.Len(t, portfolio, 1)
	portfolio[0].Amount = 1
	assert.Equal(t, 1000.0, s.Investments()[0].Amount)

	s.SetBooking(nil)
	_, ok = s.Booking()
	assert.False(t, ok)
}

func TestManagerCloseClearsState(t *testing.T) {
	m := NewManager()
	s := m.Open("sess-1", "user-1", "upstream")
	s.CacheProfile(models.User{ID: "user-1"})
	s.SetProfileOverlay(models.ProfileUpdate{FirstName: "Jane"})
	s.RecordInvestment(models.Investment{ID: "i1"})
	assert.Equal(t, 1, m.Len())

	m.Close("sess-1")
	_, ok := m.Get("sess-1")
	assert.False(t, ok)
	assert.Equal(t, 0, m.Len())

	// a handler still holding the pointer sees nothing
	_, ok = s.CachedProfile()
	assert.False(t, ok)
	_, ok = s.ProfileOverlay()
	assert.False(t, ok)
	assert.Empty(t, s.Investments())

	m.Close("missing")
}

func TestManagerGetOrOpen(t *testing.T) {
	m := NewManager()
	first := m.GetOrOpen("sess-1", "user-1", "tok")
	again := m.GetOrOpen("sess-1", "user-1", "tok")
	assert.Same(t, first, again)

	first.SetProfileOverlay(models.ProfileUpdate{FirstName: "Jane"})
	other := m.GetOrOpen("sess-1", "user-2", "tok")
	assert.NotSame(t, first, other)
	_, ok := first.ProfileOverlay()
	assert.False(t, ok)
	assert.Equal(t, "user-2", other.UserID)
}
