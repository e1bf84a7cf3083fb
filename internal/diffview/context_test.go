package diffview

import (
	"reflect"
	"testing"

	"github.com/maxbolgarin/gerrev/internal/model"
)

func TestExtractContext_TargetInAddedHunk(t *testing.T) {
	hunks := []model.DiffHunk{
		{Unchanged: []string{"l1", "l2"}},
		{Added: []string{"l3", "l4"}},
		{Unchanged: []string{"l5"}},
	}

	got := ExtractContext(hunks, 4, 1)

	if !got.Found || got.Target != "l4" {
		t.Fatalf("target = %q (found=%v), want l4", got.Target, got.Found)
	}
	if !reflect.DeepEqual(got.Before, []string{"l3"}) {
		t.Errorf("before = %v, want [l3]", got.Before)
	}
	if !reflect.DeepEqual(got.After, []string{"l5"}) {
		t.Errorf("after = %v, want [l5]", got.After)
	}
}

func TestExtractContext_RemovedLinesInvisible(t *testing.T) {
	hunks := []model.DiffHunk{
		{Unchanged: []string{"keep1"}},
		{Removed: []string{"gone1", "gone2"}},
		{Added: []string{"new1"}},
		{Unchanged: []string{"keep2"}},
	}

	// Post-change file is keep1, new1, keep2: removed lines must neither
	// shift numbering nor appear in any context.
	tests := []struct {
		line   int
		target string
		before []string
		after  []string
	}{
		{1, "keep1", nil, []string{"new1", "keep2"}},
		{2, "new1", []string{"keep1"}, []string{"keep2"}},
		{3, "keep2", []string{"keep1", "new1"}, nil},
	}

	for _, tt := range tests {
		got := ExtractContext(hunks, tt.line, 2)
		if !got.Found || got.Target != tt.target {
			t.Errorf("line %d: target = %q (found=%v), want %q", tt.line, got.Target, got.Found, tt.target)
		}
		if !reflect.DeepEqual(got.Before, tt.before) {
			t.Errorf("line %d: before = %v, want %v", tt.line, got.Before, tt.before)
		}
		if !reflect.DeepEqual(got.After, tt.after) {
			t.Errorf("line %d: after = %v, want %v", tt.line, got.After, tt.after)
		}
		for _, text := range append(append([]string{got.Target}, got.Before...), got.After...) {
			if text == "gone1" || text == "gone2" {
				t.Errorf("line %d: context leaked a removed line", tt.line)
			}
		}
	}
}

func TestExtractContext_SkippedRegionIsEmpty(t *testing.T) {
	hunks := []model.DiffHunk{
		{Unchanged: []string{"l1"}},
		{Skip: 100},
		{Added: []string{"l102"}},
	}

	// Every line inside the skipped range yields an all-empty context.
	for _, line := range []int{2, 50, 101} {
		got := ExtractContext(hunks, line, 2)
		if !got.IsEmpty() {
			t.Errorf("line %d inside skip: context = %+v, want empty", line, got)
		}
	}

	// The counter still advances over the skip.
	got := ExtractContext(hunks, 102, 2)
	if !got.Found || got.Target != "l102" {
		t.Errorf("line 102: target = %q (found=%v), want l102", got.Target, got.Found)
	}
}

func TestExtractContext_WindowBounds(t *testing.T) {
	hunks := []model.DiffHunk{
		{Unchanged: []string{"a", "b", "c", "d", "e"}},
	}

	tests := []struct {
		name         string
		line, window int
		before       []string
		after        []string
	}{
		{"start of file", 1, 2, nil, []string{"b", "c"}},
		{"end of file", 5, 2, []string{"c", "d"}, nil},
		{"window wider than file", 3, 10, []string{"a", "b"}, []string{"d", "e"}},
		{"zero window", 3, 0, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractContext(hunks, tt.line, tt.window)
			if !got.Found {
				t.Fatal("target not found")
			}
			if len(got.Before) > tt.window || len(got.After) > tt.window {
				t.Errorf("window exceeded: before=%d after=%d window=%d",
					len(got.Before), len(got.After), tt.window)
			}
			if !reflect.DeepEqual(got.Before, tt.before) {
				t.Errorf("before = %v, want %v", got.Before, tt.before)
			}
			if !reflect.DeepEqual(got.After, tt.after) {
				t.Errorf("after = %v, want %v", got.After, tt.after)
			}
		})
	}
}

func TestExtractContext_AbsentTarget(t *testing.T) {
	hunks := []model.DiffHunk{
		{Unchanged: []string{"only"}},
	}

	for _, line := range []int{0, -1, 2, 1000} {
		if got := ExtractContext(hunks, line, 2); !got.IsEmpty() {
			t.Errorf("line %d: context = %+v, want empty", line, got)
		}
	}

	if got := ExtractContext(nil, 1, 2); !got.IsEmpty() {
		t.Errorf("nil hunks: context = %+v, want empty", got)
	}
}
