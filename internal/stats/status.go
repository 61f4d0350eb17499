// Package stats provides Stats, staged logging of long-running conversions
package stats

// spellchecker:words rewritable

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/FAU-CDI/ieograph/pkg/progress"
	"github.com/tkw1536/pkglib/perf"
)

// Stage names a step of a conversion.
type Stage string

const (
	StageInitial     Stage = ""
	StageRead        Stage = "read"
	StageResolve     Stage = "resolve"
	StageBootstrap   Stage = "bootstrap"
	StageMap         Stage = "map"
	StageSerialize   Stage = "serialize"
	StageExportSQL   Stage = "export/sql"
	StageExportGraph Stage = "export/graph"
)

// StageStats records a single stage.
type StageStats struct {
	Stage Stage

	Start perf.Snapshot
	End   perf.Snapshot

	Current int // number of items processed
	Total   int // number of items expected, 0 if unknown
}

// Diff returns the resources used by the stage.
func (ss StageStats) Diff() perf.Diff {
	return ss.End.Sub(ss.Start)
}

// String returns the stage name followed by its duration.
func (ss StageStats) String() string {
	return fmt.Sprintf("%s (%s)", ss.Stage, ss.Diff().Time)
}

// Progress formats the item counts of the stage, or returns "" if nothing was counted.
func (ss StageStats) Progress() string {
	switch {
	case ss.Total == 0:
		return ""
	case ss.Current < ss.Total:
		return fmt.Sprintf("%s: %d/%d", ss.Stage, ss.Current, ss.Total)
	default:
		return fmt.Sprintf("%s: %d", ss.Stage, ss.Current)
	}
}

// Stats logs the stages of a conversion, one at a time, and keeps their timings.
//
// A nil *Stats is valid and discards everything.
type Stats struct {
	logger     *slog.Logger
	rewritable *progress.Rewritable

	m        sync.Mutex // protects current and finished
	current  StageStats
	finished []StageStats
}

// NewStats creates a new Stats logging to w.
// When w is nil, timings are kept but nothing is written.
func NewStats(w io.Writer) *Stats {
	if w == nil {
		return &Stats{}
	}
	return &Stats{
		logger:     slog.New(slog.NewTextHandler(w, nil)),
		rewritable: &progress.Rewritable{Writer: w, FlushInterval: progress.DefaultFlushInterval},
	}
}

// Rewritable returns the status line of the current stage, or nil.
// It is reset whenever a stage ends.
func (st *Stats) Rewritable() *progress.Rewritable {
	if st == nil {
		return nil
	}
	return st.rewritable
}

// Log logs an informational message with key, value pairs.
func (st *Stats) Log(message string, fields ...any) {
	if st == nil || st.logger == nil {
		return
	}
	st.logger.Info(message, fields...)
}

// LogError logs message as a failure caused by err.
func (st *Stats) LogError(message string, err error, fields ...any) {
	if st == nil || st.logger == nil {
		return
	}
	st.logger.Error("FAILED "+message, append([]any{"err", err}, fields...)...)
}

// LogFatal calls LogError and exits the process with code 1.
func (st *Stats) LogFatal(message string, err error) {
	st.LogError(message, err)
	os.Exit(1)
}

// All returns the finished stages followed by the current one, if any.
func (st *Stats) All() []StageStats {
	if st == nil {
		return nil
	}

	st.m.Lock()
	defer st.m.Unlock()

	all := make([]StageStats, len(st.finished), len(st.finished)+1)
	copy(all, st.finished)
	if st.current.Stage != StageInitial {
		all = append(all, st.current)
	}
	return all
}

// Diff returns the resources used from the start of the first stage to the end of the last finished one.
func (st *Stats) Diff() perf.Diff {
	if st == nil {
		return perf.Diff{}
	}

	st.m.Lock()
	defer st.m.Unlock()

	if len(st.finished) == 0 {
		return perf.Diff{}
	}

	first, last := st.finished[0].Start, st.finished[0].End
	for _, ss := range st.finished[1:] {
		if ss.Start.Time.Before(first.Time) {
			first = ss.Start
		}
		if ss.End.Time.After(last.Time) {
			last = ss.End
		}
	}
	return last.Sub(first)
}

// Start ends the current stage, if any, and begins stage.
func (st *Stats) Start(stage Stage) {
	if st == nil {
		return
	}

	st.m.Lock()
	defer st.m.Unlock()

	st.finish()
	st.current = StageStats{Stage: stage, Start: perf.Now()}
	st.Log("start", "stage", stage)
}

// End ends the current stage and returns it.
// If no stage is running, the zero StageStats is returned.
func (st *Stats) End() StageStats {
	if st == nil {
		return StageStats{}
	}

	st.m.Lock()
	defer st.m.Unlock()

	return st.finish()
}

// finish moves the current stage into finished and logs it.
// st.m must be held.
func (st *Stats) finish() (ended StageStats) {
	if st.current.Stage == StageInitial {
		return
	}

	ended = st.current
	ended.End = perf.Now()
	st.finished = append(st.finished, ended)
	st.current = StageStats{}

	if st.rewritable != nil {
		st.rewritable.Flush(true)
		st.rewritable.Close()
	}

	fields := []any{"stage", ended.Stage, "took", ended.Diff()}
	if ended.Current != 0 || ended.Total != 0 {
		fields = append(fields, "current", ended.Current, "total", ended.Total)
	}
	st.Log("end", fields...)
	return
}

// DoStage runs f as stage.
// A non-nil error of f is logged and returned.
func (st *Stats) DoStage(stage Stage, f func() error) error {
	st.Start(stage)
	err := f()
	st.End()

	if err != nil {
		st.LogError("stage", err, "stage", stage)
	}
	return err
}

// SetCT updates the item counts of the current stage and the status line.
func (st *Stats) SetCT(current, total int) {
	if st == nil {
		return
	}

	st.m.Lock()
	st.current.Current = current
	st.current.Total = total
	line := st.current.Progress()
	st.m.Unlock()

	if st.rewritable != nil {
		st.rewritable.Write(line)
	}
}
