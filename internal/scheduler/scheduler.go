package scheduler

import (
	"time"

	"telegram-health-coach/internal/handlers"

	"github.com/go-co-op/gocron/v2"
)

// Start запускает периодические напоминания о воде. interval <= 0 —
// напоминания выключены, планировщик не создаётся.
func Start(h *handlers.Handler, interval time.Duration) (gocron.Scheduler, error) {
	if interval <= 0 {
		return nil, nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			for _, p := range h.Store.List() {
				h.SendWaterReminder(p)
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}
