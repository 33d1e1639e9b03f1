package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher periodically re-fetches a set of sources and merges the results
// into a store's global catalog. Refreshes never change the active language
// and keep the loader's best-effort semantics: a failed fetch leaves the
// previous tree in place.
type Refresher struct {
	store    *Store
	sources  map[Language]Source
	schedule cron.Schedule
	logger   *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped chan struct{}
}

// NewRefresher creates a Refresher driven by a five-field cron expression
// (minute, hour, day-of-month, month, day-of-week), e.g. "*/15 * * * *" for
// every fifteen minutes.
func NewRefresher(store *Store, spec string, sources map[Language]Source) (*Refresher, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("i18n: invalid refresh schedule %q: %w", spec, err)
	}

	return &Refresher{
		store:    store,
		sources:  sources,
		schedule: schedule,
		logger:   store.logger,
	}, nil
}

// Start launches the refresh loop. It returns immediately; calling Start on
// a running Refresher is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.stopped = make(chan struct{})

	go r.run(ctx)
}

// Stop terminates the refresh loop and waits for the current tick, if any,
// to finish.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, stopped := r.cancel, r.stopped
	r.cancel = nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-stopped
}

func (r *Refresher) run(ctx context.Context) {
	defer close(r.stopped)

	for {
		next := r.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		for lang, src := range r.sources {
			r.store.Refresh(ctx, lang, src)
		}
		r.logger.DebugContext(ctx, "translation refresh tick",
			slog.Int("sources", len(r.sources)),
		)
	}
}
