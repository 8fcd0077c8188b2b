package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// hopProblem counts from start to goal in steps of 1 or 2, capped at limit.
// The shortest path length is known in closed form, which makes it a handy
// harness for the driver itself.
type hopProblem struct {
	start, goal, limit int
}

func (p hopProblem) Initial() int        { return p.start }
func (p hopProblem) Terminal(s int) bool { return s == p.goal }

func (p hopProblem) Successors(s int, buf []int) []int {
	// a self-loop plus a duplicate emission, to exercise de-duplication
	buf = append(buf, s)
	for _, n := range []int{s + 1, s + 2, s + 2} {
		if n <= p.limit {
			buf = append(buf, n)
		}
	}
	return buf
}

func TestRunFindsShortestPath(t *testing.T) {
	result := Run[int](hopProblem{start: 0, goal: 7, limit: 10}, Config{})
	require.True(t, result.Solved())
	// 7 = 2+2+2+1, so 4 moves and a 5-state path
	assert.Len(t, result.Path, 5)
	assert.Equal(t, 0, result.Path[0])
	assert.Equal(t, 7, result.Path[len(result.Path)-1])
	for i := 1; i < len(result.Path); i++ {
		step := result.Path[i] - result.Path[i-1]
		assert.Contains(t, []int{1, 2}, step)
	}
	assert.NotZero(t, result.Expanded)
	assert.NotZero(t, result.Enqueued)
}

func TestRunUnsolvable(t *testing.T) {
	result := Run[int](hopProblem{start: 0, goal: 50, limit: 10}, Config{})
	assert.False(t, result.Solved())
	assert.Nil(t, result.Path)
}

func TestRunInitialIsTerminal(t *testing.T) {
	result := Run[int](hopProblem{start: 3, goal: 3, limit: 10}, Config{})
	require.True(t, result.Solved())
	assert.Equal(t, []int{3}, result.Path)
	assert.Zero(t, result.Expanded)
}

func TestRunDeduplicates(t *testing.T) {
	result := Run[int](hopProblem{start: 0, goal: 50, limit: 10}, Config{})
	// states 1..10 each discovered once despite duplicate emissions
	assert.Equal(t, uint64(10), result.Enqueued)
	assert.Equal(t, uint64(11), result.Expanded)
}

func TestRunWithLogger(t *testing.T) {
	conf := Config{Logger: zaptest.NewLogger(t), LogEvery: 2}
	result := Run[int](hopProblem{start: 0, goal: 10, limit: 10}, conf)
	assert.True(t, result.Solved())
}

func TestWorkingSet(t *testing.T) {
	result := Run[int](hopProblem{start: 0, goal: 50, limit: 10}, Config{})
	assert.NotZero(t, result.WorkingSet())
}
