package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/archlens/landscape-backend/internal/landscape/service"
)

// Scheduler keeps the upstream snapshot cache warm by refreshing it on a
// fixed cron schedule.
type Scheduler struct {
	svc  *service.LandscapeService
	spec string
	c    *cron.Cron
}

// NewScheduler creates a scheduler with a cron spec such as "0 */15 * * * *".
func NewScheduler(svc *service.LandscapeService, spec string) *Scheduler {
	return &Scheduler{svc: svc, spec: spec}
}

// Start registers the refresh job and begins the cron loop.
func (s *Scheduler) Start() {
	s.c = cron.New(cron.WithSeconds())

	_, err := s.c.AddFunc(s.spec, s.refresh)
	if err != nil {
		log.Printf("Failed to create snapshot refresh job: %v", err)
		return
	}

	log.Printf("Snapshot refresh scheduler started (spec %q)", s.spec)
	s.c.Start()
}

// Stop halts the cron loop.
func (s *Scheduler) Stop() {
	if s.c != nil {
		s.c.Stop()
	}
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.svc.RefreshSnapshots(ctx); err != nil {
		log.Printf("Snapshot refresh failed: %v", err)
		return
	}
	log.Println("Snapshot refresh completed")
}
