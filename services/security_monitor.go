package services

import (
	"sync"
	"time"

	"legali_app_go/logger"

	"go.uber.org/zap"
)

const (
	// FailedLoginWindow is how long a failed login counts towards the threshold
	FailedLoginWindow = 10 * time.Minute
	// FailedLoginThreshold is the number of failures within the window that raises an alert
	FailedLoginThreshold = 5

	alertCooldown = time.Hour
	maxAlerts     = 100
)

// SecurityAlert represents a triggered security alert
type SecurityAlert struct {
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
	Reason    string    `json:"reason"`
	Level     string    `json:"level"` // WARNING, CRITICAL
}

// SecurityMonitor counts failed logins per client IP and raises alerts on bursts
type SecurityMonitor struct {
	mu           sync.Mutex
	now          func() time.Time
	failedLogins map[string][]time.Time
	alertedIPs   map[string]time.Time
	alerts       []SecurityAlert
}

// Monitor is the process-wide security monitor
var Monitor = NewSecurityMonitor(time.Now)

// NewSecurityMonitor creates an empty monitor using the given clock
func NewSecurityMonitor(now func() time.Time) *SecurityMonitor {
	return &SecurityMonitor{
		now:          now,
		failedLogins: make(map[string][]time.Time),
		alertedIPs:   make(map[string]time.Time),
	}
}

// TrackFailedLogin records a failure for ip and reports whether it raised an alert
func (m *SecurityMonitor) TrackFailedLogin(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	attempts := recentAttempts(m.failedLogins[ip], now)
	attempts = append(attempts, now)
	m.failedLogins[ip] = attempts

	if len(attempts) < FailedLoginThreshold {
		return false
	}
	return m.alertLocked(ip, "Multiple failed logins detected", now)
}

// FailedLogins returns the failures for ip still inside the window
func (m *SecurityMonitor) FailedLogins(ip string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(recentAttempts(m.failedLogins[ip], m.now()))
}

// alertLocked stores and logs an alert, at most once per cooldown per IP
func (m *SecurityMonitor) alertLocked(ip, reason string, now time.Time) bool {
	if last, ok := m.alertedIPs[ip]; ok && now.Sub(last) < alertCooldown {
		return false
	}
	m.alertedIPs[ip] = now

	alert := SecurityAlert{Timestamp: now, IP: ip, Reason: reason, Level: "CRITICAL"}
	// newest first
	m.alerts = append([]SecurityAlert{alert}, m.alerts...)
	if len(m.alerts) > maxAlerts {
		m.alerts = m.alerts[:maxAlerts]
	}

	logger.L().Error("security alert",
		zap.String("reason", reason),
		zap.String("ip", ip),
		zap.String("level", alert.Level))
	return true
}

// RecentAlerts returns a copy of the alert history, newest first
func (m *SecurityMonitor) RecentAlerts() []SecurityAlert {
	m.mu.Lock()
	defer m.mu.Unlock()
	alerts := make([]SecurityAlert, len(m.alerts))
	copy(alerts, m.alerts)
	return alerts
}

// Prune drops IPs with no failures in the window and expired alert cooldowns.
// It returns the number of IPs no longer tracked.
func (m *SecurityMonitor) Prune() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for ip, attempts := range m.failedLogins {
		if recent := recentAttempts(attempts, now); len(recent) == 0 {
			delete(m.failedLogins, ip)
			removed++
		} else {
			m.failedLogins[ip] = recent
		}
	}
	for ip, last := range m.alertedIPs {
		if now.Sub(last) >= alertCooldown {
			delete(m.alertedIPs, ip)
		}
	}
	return removed
}

func recentAttempts(attempts []time.Time, now time.Time) []time.Time {
	windowStart := now.Add(-FailedLoginWindow)
	recent := attempts[:0:0]
	for _, t := range attempts {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}
	return recent
}
