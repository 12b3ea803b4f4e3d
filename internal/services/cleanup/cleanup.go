package cleanup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Expirer deletes reading sessions idle for longer than ttl
type Expirer interface {
	ExpireIdle(ctx context.Context, ttl time.Duration) (int, error)
}

// Service periodically removes idle documents with their highlights
type Service struct {
	expirer  Expirer
	ttl      time.Duration
	schedule string
	timeout  time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
}

// NewService creates a session sweeper. schedule is a cron expression such as
// "@every 10m".
func NewService(expirer Expirer, ttl time.Duration, schedule string) *Service {
	return &Service{
		expirer:  expirer,
		ttl:      ttl,
		schedule: schedule,
		timeout:  time.Minute,
	}
}

// Start schedules the sweep. A non-positive ttl disables the sweeper.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ttl <= 0 {
		log.Info().Msg("Session sweeper disabled")
		return nil
	}
	if s.cron != nil {
		return nil
	}

	c := cron.New()
	id, err := c.AddFunc(s.schedule, func() { _, _ = s.RunOnce(context.Background()) })
	if err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.schedule, err)
	}
	c.Start()

	s.cron = c
	s.entryID = id
	log.Info().
		Str("schedule", s.schedule).
		Dur("ttl", s.ttl).
		Msg("Session sweeper started")
	return nil
}

// Stop cancels the schedule and waits for a running sweep to finish
func (s *Service) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	log.Info().Msg("Session sweeper stopped")
}

// Next reports when the next sweep is due, or the zero time when stopped
func (s *Service) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// RunOnce performs a single sweep
func (s *Service) RunOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	removed, err := s.expirer.ExpireIdle(ctx, s.ttl)
	if err != nil {
		log.Error().Err(err).Msg("Session sweep failed")
		return 0, err
	}
	if removed > 0 {
		log.Info().Int("documents", removed).Msg("Expired idle reading sessions")
	}
	return removed, nil
}
