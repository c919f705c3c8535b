package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// StartupTrace tracks start-up milestones from process launch to the first
// visible tab. Safe for use across goroutines. A nil trace is a no-op.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	logger     *zerolog.Logger
	milestones []Milestone
	finished   bool
}

// Milestone is a timing checkpoint.
type Milestone struct {
	Name    string
	Elapsed time.Duration // since t0
	Delta   time.Duration // since previous milestone
}

// NewStartupTrace starts a trace at t0. Milestones are logged at debug level.
func NewStartupTrace(t0 time.Time, logger *zerolog.Logger) *StartupTrace {
	return &StartupTrace{t0: t0, logger: logger}
}

// Mark records a milestone.
func (st *StartupTrace) Mark(name string) {
	if st == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}

	elapsed := time.Since(st.t0)
	m := Milestone{Name: name, Elapsed: elapsed}
	if n := len(st.milestones); n > 0 {
		m.Delta = elapsed - st.milestones[n-1].Elapsed
	}
	st.milestones = append(st.milestones, m)

	if st.logger != nil {
		st.logger.Debug().
			Str("milestone", m.Name).
			Int64("t_ms", m.Elapsed.Milliseconds()).
			Int64("delta_ms", m.Delta.Milliseconds()).
			Msg("startup_trace")
	}
}

// Finish records a final milestone and emits a summary once.
func (st *StartupTrace) Finish(name string) {
	if st == nil {
		return
	}
	st.Mark(name)

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.finished {
		return
	}
	st.finished = true

	if st.logger == nil {
		return
	}
	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	st.logger.Info().
		Int64("total_ms", time.Since(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup_trace: first tab ready")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	if st == nil {
		return nil
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]Milestone, len(st.milestones))
	copy(out, st.milestones)
	return out
}

// Finished reports whether Finish has run.
func (st *StartupTrace) Finished() bool {
	if st == nil {
		return false
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.finished
}
