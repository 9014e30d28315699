package cron

import (
	"context"
	"time"

	"scooply/models"
	"scooply/services/billing"
	"scooply/services/reminder"
	"scooply/services/schedule"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Jobs bundles the three periodic entry points and their knobs.
type Jobs struct {
	Generator   *schedule.RouteGenerator
	Billing     *billing.Aggregator
	Reminders   *reminder.Dispatcher
	HorizonDays int
	Location    *time.Location
	Logger      *zap.Logger
}

// StartScheduler registers the daily and monthly triggers and starts the cron
// runner. Daily: expand rules into visits, then dispatch reminders for
// tomorrow's stops. Monthly (1st): bill the month that just ended. The
// returned cron can be stopped on shutdown.
func StartScheduler(jobs Jobs) *cron.Cron {
	c := cron.New(cron.WithLocation(jobs.Location))

	c.AddFunc("0 5 * * *", func() {
		ctx := context.Background()
		now := time.Now()

		gen := jobs.Generator.GenerateUpcoming(ctx, now, jobs.HorizonDays)
		jobs.Logger.Info("daily route generation",
			zap.Int("created", gen.Created),
			zap.Strings("errors", gen.Errors))

		tomorrow := now.In(jobs.Location).AddDate(0, 0, 1).Format(models.DateLayout)
		rem := jobs.Reminders.SendRemindersFor(ctx, tomorrow)
		jobs.Logger.Info("daily reminder dispatch",
			zap.String("date", tomorrow),
			zap.Int("sent", rem.Sent),
			zap.Int("failed", rem.Failed),
			zap.Strings("errors", rem.Errors))
	})

	c.AddFunc("0 2 1 * *", func() {
		ctx := context.Background()
		// Yesterday belongs to the month being billed.
		prev := time.Now().In(jobs.Location).AddDate(0, 0, -1)

		res := jobs.Billing.RunMonthlyBilling(ctx, int(prev.Month()), prev.Year())
		jobs.Logger.Info("monthly billing",
			zap.Int("month", res.Month),
			zap.Int("year", res.Year),
			zap.Int("success", res.Success),
			zap.Int("failed", res.Failed),
			zap.Int("charged", res.Charged),
			zap.Strings("errors", res.Errors))
	})

	c.Start()
	jobs.Logger.Info("cron scheduler started", zap.String("location", jobs.Location.String()))
	return c
}
