package jobs

import (
	"context"
	"fmt"
	"time"

	"hotelpms/constants"
	"hotelpms/models"
	"hotelpms/services/logger"
	"hotelpms/services/notification"
	"hotelpms/utils"

	"github.com/robfig/cron/v3"
)

// DailyReporter builds the operations report of one day.
type DailyReporter interface {
	Daily(ctx context.Context, date time.Time) (*models.DailyReport, error)
}

type DigestJob struct {
	Reporter DailyReporter
	Notifier notification.Service
	Logger   logger.Logger
	Location *time.Location
	Timeout  time.Duration
}

// Run broadcasts today's arrivals, departures and occupancy to connected desks.
func (j DigestJob) Run() error {
	timeout := j.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	day := utils.Today(j.Location)
	report, err := j.Reporter.Daily(ctx, day)
	if err != nil {
		return fmt.Errorf("build daily report: %w", err)
	}
	msg, err := notification.NewMessageBuilder(constants.EventDailyDigest).Data(report).Build()
	if err != nil {
		return fmt.Errorf("build digest message: %w", err)
	}
	if err := j.Notifier.SendMessage(msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}
	j.Logger.Info("daily digest for %s sent: %d arrivals, %d departures, occupancy %.2f%%",
		report.Date, len(report.Arrivals), len(report.Departures), report.OccupancyRate)
	return nil
}

// InitCronJobs schedules the digest at spec and starts the scheduler.
func InitCronJobs(c *cron.Cron, spec string, job DigestJob) error {
	_, err := c.AddFunc(spec, func() {
		if err := job.Run(); err != nil {
			job.Logger.Error("daily digest: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule daily digest %q: %w", spec, err)
	}

	c.Start()
	job.Logger.Info("Cron jobs initialized successfully")
	return nil
}
