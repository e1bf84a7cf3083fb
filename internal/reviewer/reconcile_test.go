package reviewer

import (
	"testing"

	"github.com/maxbolgarin/gerrev/internal/model"
	"github.com/maxbolgarin/logze/v2"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		known     []string
		want      string
		ok        bool
	}{
		{
			name:      "exact match",
			candidate: "a/b/File.java",
			known:     []string{"a/b/File.java"},
			want:      "a/b/File.java", ok: true,
		},
		{
			name:      "single suffix match",
			candidate: "File.java",
			known:     []string{"a/b/File.java", "a/b/Other.java"},
			want:      "a/b/File.java", ok: true,
		},
		{
			name:      "segment boundary required",
			candidate: "File.java",
			known:     []string{"a/b/NotFile.java"},
			ok:        false,
		},
		{
			name:      "ambiguous suffix dropped",
			candidate: "File.java",
			known:     []string{"x/File.java", "y/File.java"},
			ok:        false,
		},
		{
			name:      "backslashes normalized",
			candidate: `b\File.java`,
			known:     []string{"a/b/File.java"},
			want:      "a/b/File.java", ok: true,
		},
		{
			name:      "no match",
			candidate: "Missing.java",
			known:     []string{"a/b/File.java"},
			ok:        false,
		},
		{
			name:      "deep suffix",
			candidate: "b/File.java",
			known:     []string{"a/b/File.java", "c/File.java"},
			want:      "a/b/File.java", ok: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolvePath(tt.candidate, tt.known)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReconcileDrafts(t *testing.T) {
	log := logze.Default()
	files := []string{"src/main/App.java", "docs/README.md"}

	drafts := []model.CommentDraft{
		{File: "src/main/App.java", Message: "ok as is", Line: 1},
		{File: "App.java", Message: "path repaired", Line: 2},
		{File: "", Message: "no file", Line: 3},
		{File: "src/main/App.java", Message: "", Line: 4},
		{File: "src/main/App.java", Message: "no anchor"},
		{File: "Unknown.java", Message: "unknown path", Line: 5},
		{File: "README.md", Message: "range only", Range: &model.CommentRange{StartLine: 1, EndLine: 2}},
	}

	got, dropped := reconcileDrafts(drafts, files, log)

	if dropped != 4 {
		t.Errorf("dropped = %d, want 4", dropped)
	}
	if len(got) != 3 {
		t.Fatalf("kept = %d, want 3", len(got))
	}
	if got[1].File != "src/main/App.java" {
		t.Errorf("repaired path = %q, want src/main/App.java", got[1].File)
	}
	if got[2].File != "docs/README.md" {
		t.Errorf("repaired path = %q, want docs/README.md", got[2].File)
	}
}
