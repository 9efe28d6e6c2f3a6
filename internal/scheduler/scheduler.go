// Package scheduler fires the reminder scan at fixed wall-clock times.
package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/revertpixels/CardReminder/internal/services"
)

// Scan firings: morning, afternoon, evening, local time.
var scanTimes = gocron.NewAtTimes(
	gocron.NewAtTime(9, 0, 0),
	gocron.NewAtTime(14, 0, 0),
	gocron.NewAtTime(20, 0, 0),
)

type Scheduler struct {
	scheduler gocron.Scheduler
}

// New builds the scheduler with the reminder scan registered. The scan
// re-evaluates everything on each firing; a firing that fails only
// logs, the next one starts clean.
func New(reminders *services.ReminderService) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	_, err = s.NewJob(
		gocron.DailyJob(1, scanTimes),
		gocron.NewTask(func() {
			if err := reminders.Run(time.Now()); err != nil {
				log.Printf("[scheduler] reminder scan failed: %v", err)
			}
		}),
		gocron.WithName("due-reminder-scan"),
	)
	if err != nil {
		return nil, fmt.Errorf("register reminder scan: %w", err)
	}

	return &Scheduler{scheduler: s}, nil
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
	log.Printf("[scheduler] reminder scan scheduled at 09:00, 14:00 and 20:00")
}

func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}
