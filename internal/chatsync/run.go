package chatsync

import (
	"context"
	"fmt"
	"time"

	"github.com/adhocore/gronx"
	"golang.org/x/sync/errgroup"
)

// Run loads the room, then follows the change stream until ctx is cancelled. When
// resyncCron is set, the full list is also re-fetched on that schedule.
func (s *Session) Run(ctx context.Context, stream ChangeStream, resyncCron string) error {
	if resyncCron != "" && !gronx.IsValid(resyncCron) {
		return fmt.Errorf("invalid resync cron expression: %s", resyncCron)
	}

	if err := s.Load(ctx); err != nil {
		s.logger.Warn(fmt.Sprintf("initial load failed, following the stream anyway: %v", err))
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return stream.Listen(gctx, s)
	})

	if resyncCron != "" {
		g.Go(func() error {
			return s.resyncOnSchedule(gctx, resyncCron)
		})
	}

	return g.Wait()
}

func (s *Session) resyncOnSchedule(ctx context.Context, cronExpr string) error {
	for {
		next, err := gronx.NextTickAfter(cronExpr, time.Now(), false)
		if err != nil {
			return fmt.Errorf("failed to compute next resync: %w", err)
		}

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
			s.Resync(ctx)
		}
	}
}
