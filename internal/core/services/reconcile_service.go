package services

import (
	"context"
	"log"
	"sync"
	"time"

	"lifeline-blood/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

const reconcileTimeout = time.Minute

// ReconcileService removes donors whose camp no longer exists.
// Camp deletion already cascades, so this only catches rows left behind
// by partial failures or manual edits.
type ReconcileService struct {
	donorRepo repositories.DonorRepository
	schedule  string

	mu   sync.Mutex
	cron *cron.Cron
}

// NewReconcileService creates a reconcile service. An empty schedule disables the cron job.
func NewReconcileService(donorRepo repositories.DonorRepository, schedule string) *ReconcileService {
	return &ReconcileService{
		donorRepo: donorRepo,
		schedule:  schedule,
	}
}

// Run deletes orphaned donors once and returns how many were removed
func (s *ReconcileService) Run(ctx context.Context) (int64, error) {
	removed, err := s.donorRepo.DeleteOrphans(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		log.Printf("🧹 Reconcile removed %d orphaned donors", removed)
	}
	return removed, nil
}

// Start schedules Run on the configured cron expression
func (s *ReconcileService) Start() error {
	if s.schedule == "" {
		log.Println("⏸️ Reconcile job disabled")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		defer cancel()
		if _, err := s.Run(ctx); err != nil {
			log.Printf("❌ Reconcile error: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	s.cron = c
	log.Printf("🚀 Reconcile job started (%s)", s.schedule)
	return nil
}

// Stop stops the cron job and waits for a running pass to finish
func (s *ReconcileService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return
	}

	<-s.cron.Stop().Done()
	s.cron = nil
	log.Println("🛑 Reconcile job stopped")
}
