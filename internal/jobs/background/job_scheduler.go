package background

import (
	"time"

	"signly/internal/caching"
	"signly/internal/logger"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const sweepInterval = time.Hour

// JobScheduler runs periodic maintenance tasks. Today that is only the
// in-memory rate-limit window sweep; Redis expires its own keys.
type JobScheduler struct {
	scheduler gocron.Scheduler
	counters  *caching.MemoryCounterStore
}

func NewJobScheduler(counters *caching.MemoryCounterStore) (*JobScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	js := &JobScheduler{scheduler: scheduler, counters: counters}

	_, err = scheduler.NewJob(
		gocron.DurationJob(sweepInterval),
		gocron.NewTask(js.sweepCounters),
		gocron.WithName("ratelimit-window-sweep"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, err
	}

	return js, nil
}

func (js *JobScheduler) Start() {
	logger.L().Info("starting background job scheduler")
	js.scheduler.Start()
}

func (js *JobScheduler) Stop() error {
	logger.L().Info("stopping background job scheduler")
	return js.scheduler.Shutdown()
}

func (js *JobScheduler) sweepCounters() {
	removed := js.counters.Sweep()
	if removed > 0 {
		logger.L().Debug("swept expired rate-limit windows", zap.Int("removed", removed))
	}
}
