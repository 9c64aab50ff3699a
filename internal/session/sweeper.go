package session

import (
	"context"
	"sync"
	"time"

	"github.com/adlt1785/musicjournal-backend/internal/constants"
	"github.com/adlt1785/musicjournal-backend/internal/logger"
	"github.com/adlt1785/musicjournal-backend/internal/store"
)

// Sweeper periodically deletes expired session rows.
type Sweeper struct {
	DB       *store.DB
	Interval time.Duration
	Logger   *logger.Logger
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewSweeper(db *store.DB, log *logger.Logger) *Sweeper {
	ctx, cancel := context.WithCancel(context.Background())
	return &Sweeper{
		DB:       db,
		Interval: constants.SessionSweepInterval,
		Logger:   log.WithComponent("session-sweeper"),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (s *Sweeper) Start() {
	s.Logger.Info("starting session sweeper", "interval", s.Interval)

	s.wg.Add(1)
	go s.run()
}

func (s *Sweeper) Stop() {
	s.Logger.Info("stopping session sweeper")
	s.cancel()
	s.wg.Wait()
}

func (s *Sweeper) run() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	swept, err := s.DB.DeleteExpiredSessions(s.ctx, time.Now())
	if err != nil {
		s.Logger.Error("failed to sweep expired sessions", "error", err)
		return
	}
	if swept > 0 {
		s.Logger.Info("swept expired sessions", "count", swept)
	}
}
