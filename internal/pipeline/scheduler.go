package pipeline

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// Scheduler drives the recurring metals refresh. Runs are serialized: a
// slow fetch makes the next tick skip rather than overlap.
type Scheduler struct {
	Cron *cron.Cron
	Orch *Orchestrator
}

// NewScheduler creates a Scheduler around the orchestrator.
func NewScheduler(orch *Orchestrator) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger))),
		Orch: orch,
	}
}

// Register adds the metals refresh task on the given cron expression.
func (s *Scheduler) Register(metalsCron string) error {
	if _, err := s.Cron.AddFunc(metalsCron, s.metalsTask); err != nil {
		return fmt.Errorf("register metals task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunMetalsNow executes the refresh immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunMetalsNow() {
	s.metalsTask()
}

func (s *Scheduler) metalsTask() {
	log.Println("[INFO] running metals refresh")
	res := s.Orch.DisplayMetalsPrices()
	if res.OK() {
		log.Printf("[INFO] metals refresh: %s", res.Message)
		return
	}
	log.Printf("[ERROR] metals refresh: %s", res.Message)
}
