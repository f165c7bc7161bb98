package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authRepo "locallibrary_backend/internals/features/users/auth/repository"
)

// RegisterBlacklistCleanup purges expired blacklisted tokens every hour.
func RegisterBlacklistCleanup(c *cron.Cron, db *gorm.DB) (cron.EntryID, error) {
	return c.AddFunc("@hourly", func() {
		n, err := authRepo.PurgeExpiredTokens(db, time.Now().UTC())
		if err != nil {
			log.Printf("[CLEANUP ERROR] purge token_blacklist: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[CLEANUP] %d expired tokens removed", n)
		}
	})
}
