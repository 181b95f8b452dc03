package loader

import (
	"context"
	"time"
)

// Hooks observe a Run. Either may be nil.
type Hooks struct {
	OnTick     func(value int)
	OnComplete func()
}

// Run drives s through one full cycle on the calling goroutine.
//
// Cancelling ctx cancels the sequencer: Run returns ctx.Err() and OnComplete is
// never called. On a normal finish OnComplete is called once and Run returns nil.
func Run(ctx context.Context, s *Sequencer, hooks Hooks) error {
	s.begin()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for s.phase == PhaseRunning {
		select {
		case <-ctx.Done():
			s.Cancel()
			return ctx.Err()
		case <-ticker.C:
			s.Tick()
			if hooks.OnTick != nil {
				hooks.OnTick(s.value)
			}
		}
	}
	// OnTick may have cancelled the sequencer directly.
	if s.phase != PhaseSettling {
		return context.Canceled
	}

	timer := time.NewTimer(s.cfg.Settle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.Cancel()
		return ctx.Err()
	case <-timer.C:
	}
	if err := ctx.Err(); err != nil {
		s.Cancel()
		return err
	}

	if s.Settle() && hooks.OnComplete != nil {
		hooks.OnComplete()
	}
	return nil
}
