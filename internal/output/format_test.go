package output

import (
	"bytes"
	"testing"

	"ltask/internal/store"
	"ltask/internal/task"
	"ltask/internal/view"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task task.Task
		want string
	}{
		{"open", 1, task.Task{Text: "Buy milk", Priority: "medium"}, "   1  [ ] Buy milk (medium)\n"},
		{"completed", 12, task.Task{Text: "Walk dog", Completed: true, Priority: "low"}, "  12  [x] Walk dog (low)\n"},
		{"newlines", 3, task.Task{Text: "a\r\nb", Priority: "high"}, "   3  [ ] a  b (high)\n"},
		{"blank", 4, task.Task{Text: "  ", Priority: "low"}, "   4  [ ] (untitled) (low)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatTask(&buf, tt.num, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatTaskVerbose(t *testing.T) {
	var buf bytes.Buffer
	FormatTaskVerbose(&buf, 1, task.Task{ID: "abc", Text: "x", Priority: "low"})

	want := "   1  [ ] x (low)  abc\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteView_NumbersRowsFromOne(t *testing.T) {
	c := task.Collection{
		{Text: "a", Completed: true, Priority: "low"},
		{Text: "b", Priority: "high"},
	}

	var buf bytes.Buffer
	WriteView(&buf, view.Build(c, view.FilterActive), Options{})

	want := "   1  [ ] b (high)\n1 active of 2 tasks, 1 completed\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWriteView_EmptyMessages(t *testing.T) {
	tests := []struct {
		filter view.Filter
		want   string
	}{
		{view.FilterAll, "no tasks yet\n0 active of 0 tasks, 0 completed\n"},
		{view.FilterActive, "no active tasks\n0 active of 0 tasks, 0 completed\n"},
		{view.FilterCompleted, "no completed tasks\n0 active of 0 tasks, 0 completed\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		WriteView(&buf, view.Build(nil, tt.filter), Options{})
		if buf.String() != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.filter, tt.want, buf.String())
		}
	}
}

func TestWriteView_Quiet(t *testing.T) {
	var buf bytes.Buffer
	WriteView(&buf, view.Build(nil, view.FilterAll), Options{Quiet: true})
	if buf.String() != "" {
		t.Errorf("expected empty output, got %q", buf.String())
	}

	buf.Reset()
	WriteView(&buf, view.Build(task.Collection{{Text: "a", Priority: "low"}}, view.FilterAll), Options{Quiet: true})
	if buf.String() != "   1  [ ] a (low)\n" {
		t.Errorf("expected rows only, got %q", buf.String())
	}
}

func TestRenderer_QuietWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, Options{Quiet: true}).Render(view.Build(task.Collection{{Text: "a"}}, view.FilterAll))
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestCelebrator(t *testing.T) {
	var buf bytes.Buffer
	NewCelebrator(&buf, false)(store.CompletionEvent{Task: task.Task{Text: "Buy milk"}})
	if buf.String() != "nice! completed: Buy milk\n" {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	NewCelebrator(&buf, true)(store.CompletionEvent{Task: task.Task{Text: "Buy milk"}})
	if buf.Len() != 0 {
		t.Errorf("expected quiet celebrator to print nothing, got %q", buf.String())
	}
}
