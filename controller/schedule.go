package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/sirupsen/logrus"
)

// A scheduled refresh gives up after this long.
const scheduledRefreshTimeout = 5 * time.Minute

func (c *controller) StartScheduledRefreshes(schedule string, shutdown chan bool, wg *sync.WaitGroup) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("error creating scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.CronJob(schedule, false),
		gocron.NewTask(c.scheduledRefresh),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		s.Shutdown()
		return fmt.Errorf("error creating refresh job for %q: %w", schedule, err)
	}

	s.Start()
	c.log.WithField("schedule", schedule).Info("scheduled refreshes started")

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-shutdown
		if err := s.Shutdown(); err != nil {
			c.log.WithError(err).Error("error stopping scheduler")
		}
	}()
	return nil
}

func (c *controller) scheduledRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), scheduledRefreshTimeout)
	defer cancel()

	report, err := c.Refresh(ctx)
	if err != nil {
		if errors.Is(err, ErrRefreshInProgress) {
			c.log.Info("skipping scheduled refresh, one is already running")
			return
		}
		c.log.WithError(err).Error("scheduled refresh failed")
		return
	}

	c.log.WithFields(logrus.Fields{
		"refresh_id": report.ID,
		"failed":     len(report.Failed()),
		"saved":      report.Saved,
	}).Info("scheduled refresh done")
}
