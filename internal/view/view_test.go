package view

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ltask/internal/task"
)

func sample() task.Collection {
	return task.Collection{
		{Text: "a", Completed: true},
		{Text: "b"},
		{Text: "c", Completed: true},
		{Text: "d"},
	}
}

func positions(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Position
	}
	return out
}

func TestProject_UsesFullPositions(t *testing.T) {
	c := sample()

	assert.Equal(t, []int{0, 1, 2, 3}, positions(Project(c, FilterAll)))
	assert.Equal(t, []int{1, 3}, positions(Project(c, FilterActive)))
	assert.Equal(t, []int{0, 2}, positions(Project(c, FilterCompleted)))

	for _, e := range Project(c, FilterActive) {
		assert.Equal(t, c[e.Position], e.Task)
	}
}

func TestProject_EmptyCollection(t *testing.T) {
	for _, f := range Filters() {
		got := Project(nil, f)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestProject_PartitionProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 0; n < 50; n++ {
		c := make(task.Collection, rng.Intn(12))
		for i := range c {
			c[i] = task.Task{Text: fmt.Sprint(i), Completed: rng.Intn(2) == 0}
		}

		active := positions(Project(c, FilterActive))
		completed := positions(Project(c, FilterCompleted))
		all := positions(Project(c, FilterAll))

		seen := make(map[int]bool)
		for _, p := range append(active, completed...) {
			require.False(t, seen[p], "position %d appears twice", p)
			seen[p] = true
		}
		require.Len(t, seen, len(all))
		for _, p := range all {
			require.True(t, seen[p])
		}
	}
}

func TestResolve(t *testing.T) {
	entries := Project(sample(), FilterActive)

	pos, ok := Resolve(entries, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, pos)

	pos, ok = Resolve(entries, 2)
	assert.True(t, ok)
	assert.Equal(t, 3, pos)

	for _, num := range []int{0, -1, 3} {
		_, ok = Resolve(entries, num)
		assert.False(t, ok, "row %d", num)
	}
}

func TestResolve_AlwaysMatchesFilter(t *testing.T) {
	c := sample()
	for _, f := range Filters() {
		entries := Project(c, f)
		for num := 1; num <= len(entries); num++ {
			pos, ok := Resolve(entries, num)
			require.True(t, ok)
			assert.True(t, f.Match(c[pos]))
		}
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{Active: 2, Total: 4, Completed: 2}, Summarize(sample()))
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestParseFilter(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Filter
	}{
		{"all", FilterAll},
		{"Active", FilterActive},
		{" completed ", FilterCompleted},
	} {
		got, err := ParseFilter(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}

	_, err := ParseFilter("done")
	assert.EqualError(t, err, "invalid filter: done (want all|active|completed)")
}

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, "no tasks yet", FilterAll.EmptyMessage())
	assert.Equal(t, "no active tasks", FilterActive.EmptyMessage())
	assert.Equal(t, "no completed tasks", FilterCompleted.EmptyMessage())
}

func TestBuild(t *testing.T) {
	v := Build(sample(), FilterCompleted)

	assert.Equal(t, FilterCompleted, v.Filter)
	assert.Equal(t, []int{0, 2}, positions(v.Entries))
	assert.Equal(t, 4, v.Summary.Total)
}
