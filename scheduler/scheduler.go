package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// ResetCodePurger deletes reset codes that expired before now.
type ResetCodePurger interface {
	PurgeExpiredResetCodes(ctx context.Context, now time.Time) (int64, error)
}

// Start registers the reset-code cleanup on the cron schedule and starts the cron runner.
// The caller stops the returned cron on shutdown.
func Start(schedule string, store ResetCodePurger) (*cron.Cron, error) {
	log.Println("[RESET-CLEANUP] Initializing reset code scheduler...")

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() { PurgeExpiredResetCodes(store) }); err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("[RESET-CLEANUP] Scheduler started - runs %s", schedule)
	return c, nil
}

func PurgeExpiredResetCodes(store ResetCodePurger) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := store.PurgeExpiredResetCodes(ctx, time.Now())
	if err != nil {
		log.Printf("[RESET-CLEANUP] Error purging expired reset codes: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("[RESET-CLEANUP] Removed %d expired reset codes", purged)
	}
}
