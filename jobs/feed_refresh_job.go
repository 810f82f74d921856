// File: /jobs/feed_refresh_job.go
package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"eventshub-api/services"
)

// FeedRefreshJob periodically re-fetches the calendar feed and rebuilds the
// cached merged event list, so interactive reads rarely pay the fetch cost.
// Runs are single-flight: a tick that fires while the previous run is still
// fetching is skipped, not queued.
type FeedRefreshJob struct {
	events   *services.EventService
	interval time.Duration
	cron     *cron.Cron
}

func NewFeedRefreshJob(events *services.EventService, interval time.Duration) *FeedRefreshJob {
	return &FeedRefreshJob{
		events:   events,
		interval: interval,
	}
}

// Start schedules the refresh loop and runs one refresh immediately so the
// cache is warm before the first request arrives.
func (j *FeedRefreshJob) Start() error {
	j.cron = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	spec := fmt.Sprintf("@every %s", j.interval)
	if _, err := j.cron.AddFunc(spec, j.run); err != nil {
		return fmt.Errorf("scheduling feed refresh: %w", err)
	}

	go j.run()
	j.cron.Start()
	log.Printf("Feed refresh job started (every %s)", j.interval)
	return nil
}

// Stop halts the schedule and waits for an in-flight run to finish.
func (j *FeedRefreshJob) Stop() {
	if j.cron == nil {
		return
	}
	ctx := j.cron.Stop()
	<-ctx.Done()
	log.Println("Feed refresh job stopped")
}

func (j *FeedRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	events := j.events.RefreshEvents(ctx)
	log.Printf("Feed refresh completed: %d upcoming events", len(events))
}
