package scheduler

import (
	"context"

	"github.com/Daniyar457/Legacy_Vault/internal/jobs"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// StartWellBeingCron runs the missed-alert sweep every hour. Counter state
// transitions live in the well-being service; this only triggers them.
func StartWellBeingCron(sweeper *jobs.AlertSweeper) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		if err := sweeper.Run(context.Background()); err != nil {
			logrus.WithError(err).Error("Alert sweep failed")
		}
	})

	c.Start()
	return c
}
