package jobs

import (
	"fmt"

	"legali_app_go/logger"
	"legali_app_go/services"
	"legali_app_go/services/session"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionCleanupSchedule runs the expired-session sweep at minute 0 of every hour
const SessionCleanupSchedule = "0 * * * *"

// MonitorPruneSchedule trims the failed-login tracker
const MonitorPruneSchedule = "*/10 * * * *"

// StartScheduler registers the background jobs and starts the cron runner.
// Callers stop it with the returned cron's Stop on shutdown.
func StartScheduler(database *gorm.DB, sessions *session.Manager) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(SessionCleanupSchedule, func() {
		CleanupSessions(database, sessions)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule session cleanup: %w", err)
	}

	_, err = c.AddFunc(MonitorPruneSchedule, func() {
		if n := services.Monitor.Prune(); n > 0 {
			logger.L().Debug("security monitor pruned", zap.Int("ips", n))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule monitor prune: %w", err)
	}

	c.Start()
	logger.L().Info("scheduler started", zap.String("session_cleanup", SessionCleanupSchedule))
	return c, nil
}

// CleanupSessions deletes sessions past their refresh window and drops their in-memory state
func CleanupSessions(database *gorm.DB, sessions *session.Manager) int {
	ids, err := services.CleanupExpiredSessions(database)
	if err != nil {
		logger.L().Error("session cleanup failed", zap.Error(err))
		return 0
	}

	for _, id := range ids {
		sessions.Close(id)
	}
	return len(ids)
}
