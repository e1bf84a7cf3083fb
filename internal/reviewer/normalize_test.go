package reviewer

import (
	"testing"

	"github.com/maxbolgarin/gerrev/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestBuildPayload_RangeTakesPrecedence(t *testing.T) {
	drafts := []model.CommentDraft{
		{
			File:    "a.go",
			Message: "both set",
			Line:    10,
			Range:   &model.CommentRange{StartLine: 10, EndLine: 12},
		},
	}

	payload := buildPayload(drafts)

	comments := payload["a.go"]
	if len(comments) != 1 {
		t.Fatalf("got %d comments", len(comments))
	}
	if comments[0].Range == nil {
		t.Fatal("range missing")
	}
	if comments[0].Line != 0 {
		t.Errorf("line = %d, must be omitted when range is set", comments[0].Line)
	}
}

func TestBuildPayload_GroupingAndOrder(t *testing.T) {
	drafts := []model.CommentDraft{
		{File: "a.go", Message: "first", Line: 1},
		{File: "b.go", Message: "other file", Line: 2},
		{File: "a.go", Message: "second", Line: 3},
	}

	payload := buildPayload(drafts)

	if len(payload) != 2 {
		t.Fatalf("got %d files, want 2", len(payload))
	}
	a := payload["a.go"]
	if len(a) != 2 || a[0].Message != "first" || a[1].Message != "second" {
		t.Errorf("a.go comments out of order: %+v", a)
	}
	if countComments(payload) != 3 {
		t.Errorf("countComments = %d, want 3", countComments(payload))
	}
}

func TestBuildPayload_SideAndUnresolved(t *testing.T) {
	drafts := []model.CommentDraft{
		{File: "a.go", Message: "parent side", Line: 1, Side: model.SideParent},
		{File: "a.go", Message: "bogus side", Line: 2, Side: "LEFT"},
		{File: "a.go", Message: "unresolved", Line: 3, Unresolved: boolPtr(true)},
		{File: "a.go", Message: "resolved", Line: 4, Unresolved: boolPtr(false)},
	}

	comments := buildPayload(drafts)["a.go"]

	if comments[0].Side != model.SideParent {
		t.Errorf("side = %q, want PARENT", comments[0].Side)
	}
	if comments[1].Side != "" {
		t.Errorf("unrecognized side passed through: %q", comments[1].Side)
	}
	if comments[2].Unresolved == nil || !*comments[2].Unresolved {
		t.Error("unresolved=true not emitted")
	}
	if comments[3].Unresolved != nil {
		t.Error("unresolved=false must be omitted")
	}
}

func TestBuildPayload_Empty(t *testing.T) {
	if payload := buildPayload(nil); payload != nil {
		t.Errorf("payload = %v, want nil", payload)
	}
}
