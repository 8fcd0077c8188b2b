// Package search implements the breadth-first state-space search shared by
// the solitaire solvers.
//
// The engine is deliberately single threaded: it is bound by the size of the
// predecessor map, not by CPU, and a shared map would cost more in
// synchronization than the extra cores would buy. Worst-case decks grow the
// map to hundreds of millions of entries, so states must be compact
// comparable values - ideally a single machine word.
package search

import (
	"time"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"go.uber.org/zap"
)

// Problem is a puzzle whose state space can be explored breadth-first.
// States are value types used as map keys, so they must be comparable, and
// two values must be equal exactly when they represent the same position.
type Problem[S comparable] interface {
	// Initial returns the starting state.
	Initial() S

	// Terminal reports whether the state is a goal state.
	Terminal(s S) bool

	// Successors appends every state reachable from s by one legal move to
	// buf and returns it. Emitting the same successor more than once is
	// allowed; the search de-duplicates.
	Successors(s S, buf []S) []S
}

// Config controls search diagnostics. The zero value runs silently.
type Config struct {
	// Logger receives progress and completion reports. Nil means no logging.
	Logger *zap.Logger

	// LogEvery is the number of expanded states between progress reports.
	// Zero disables progress reports.
	LogEvery uint64
}

func (c Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Result holds the outcome of a search.
type Result[S comparable] struct {
	// Path is the state sequence from the initial state to the first
	// terminal state found, both inclusive. Nil when no terminal state is
	// reachable. Its length is minimal over all terminal states.
	Path []S

	// Expanded counts states popped from the frontier and expanded. The
	// terminal state that ends the search is popped but not counted.
	Expanded uint64

	// Enqueued counts distinct non-initial states discovered.
	Enqueued uint64

	// Elapsed is the wall time the search took.
	Elapsed time.Duration

	stateSize uintptr
}

// Solved reports whether a terminal state was reached.
func (r *Result[S]) Solved() bool { return r.Path != nil }

// WorkingSet estimates the memory held by the predecessor map: two states
// per entry, ignoring map bucket overhead. It is a lower bound meant for
// progress reporting, not accounting.
func (r *Result[S]) WorkingSet() datasize.ByteSize {
	return datasize.ByteSize(r.Enqueued * 2 * uint64(r.stateSize))
}

// Run explores the problem breadth-first and returns the first terminal
// state's path. Every move is a unit-cost edge, so the returned path has the
// minimum possible number of moves.
func Run[S comparable](p Problem[S], conf Config) *Result[S] {
	var zero S
	log := conf.logger()
	result := &Result[S]{stateSize: unsafe.Sizeof(zero)}
	start := time.Now()

	initial := p.Initial()
	fringe := []S{initial}
	seen := make(map[S]S)
	buf := make([]S, 0, 64)

	for len(fringe) > 0 {
		s := fringe[0]
		fringe = fringe[1:]
		if p.Terminal(s) {
			result.Path = reconstruct(s, seen)
			break
		}
		result.Expanded++
		if conf.LogEvery > 0 && result.Expanded%conf.LogEvery == 0 {
			log.Info("searching",
				zap.Uint64("expanded", result.Expanded),
				zap.Uint64("enqueued", result.Enqueued),
				zap.Int("frontier", len(fringe)),
				zap.String("working_set", result.WorkingSet().HumanReadable()))
		}
		buf = p.Successors(s, buf[:0])
		for _, n := range buf {
			if n == initial {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = s
			fringe = append(fringe, n)
			result.Enqueued++
		}
	}

	result.Elapsed = time.Since(start)
	log.Info("search finished",
		zap.Bool("solved", result.Solved()),
		zap.Uint64("expanded", result.Expanded),
		zap.Uint64("enqueued", result.Enqueued),
		zap.Duration("elapsed", result.Elapsed))
	return result
}

// reconstruct walks the predecessor map back from the terminal state. The
// initial state is never a key in the map, so the walk stops there.
func reconstruct[S comparable](terminal S, seen map[S]S) []S {
	path := []S{terminal}
	s := terminal
	for {
		prev, ok := seen[s]
		if !ok {
			break
		}
		path = append(path, prev)
		s = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
