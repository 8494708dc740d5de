package persistence

import (
	"context"
	"sync"

	"github.com/envelope-zero/questbook/pkg/models"
	"github.com/rs/zerolog"
)

// AutoSaver writes states to a backend in the background.
//
// Only the latest state is written: a state saved while an earlier one is
// still waiting replaces it. Save never blocks on the backend.
type AutoSaver struct {
	backend Backend
	log     zerolog.Logger
	hook    func(error)

	mu      sync.Mutex
	cond    *sync.Cond
	pending []byte
	writing bool
	closed  bool
	done    chan struct{}
}

// NewAutoSaver starts a writer for b. hook, if not nil, is called with the
// result of every write.
func NewAutoSaver(b Backend, logger zerolog.Logger, hook func(error)) *AutoSaver {
	a := &AutoSaver{
		backend: b,
		log:     logger,
		hook:    hook,
		done:    make(chan struct{}),
	}
	a.cond = sync.NewCond(&a.mu)

	go a.run()
	return a
}

// Save schedules s to be written. The state is encoded before Save returns,
// so the caller may keep mutating it.
func (a *AutoSaver) Save(s *models.BudgetState) {
	data, err := Encode(s)
	if err != nil {
		a.log.Error().Err(err).Msg("could not encode state")
		a.report(err)
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		a.log.Warn().Msg("state saved after the auto saver was closed, dropping it")
		return
	}

	a.pending = data
	a.cond.Broadcast()
}

// Flush blocks until every scheduled state has been written.
func (a *AutoSaver) Flush() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for a.pending != nil || a.writing {
		a.cond.Wait()
	}
}

// Close writes the last scheduled state and stops the writer.
func (a *AutoSaver) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		<-a.done
		return
	}
	a.closed = true
	a.cond.Broadcast()
	a.mu.Unlock()

	<-a.done
}

func (a *AutoSaver) run() {
	defer close(a.done)

	for {
		a.mu.Lock()
		for a.pending == nil && !a.closed {
			a.cond.Wait()
		}

		if a.pending == nil {
			a.mu.Unlock()
			return
		}

		data := a.pending
		a.pending = nil
		a.writing = true
		a.mu.Unlock()

		err := a.backend.Write(context.Background(), data)
		if err != nil {
			a.log.Error().Err(err).Msg("could not save state")
		} else {
			a.log.Debug().Int("bytes", len(data)).Msg("state saved")
		}
		a.report(err)

		a.mu.Lock()
		a.writing = false
		a.cond.Broadcast()
		a.mu.Unlock()
	}
}

func (a *AutoSaver) report(err error) {
	if a.hook != nil {
		a.hook(err)
	}
}
