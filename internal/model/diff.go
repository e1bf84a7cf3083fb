package model

// DiffHunk is one segment of Gerrit's structured file diff. Exactly one of
// the fields is set: Unchanged holds lines common to both sides, Added holds
// lines present only after the change, Removed holds lines present only
// before it, and Skip counts unchanged lines the server omitted for brevity.
//
// Line numbering in the post-change file advances for Unchanged, Added and
// Skip; Removed lines do not exist there and never advance it.
type DiffHunk struct {
	Unchanged []string `json:"ab,omitempty"`
	Added     []string `json:"b,omitempty"`
	Removed   []string `json:"a,omitempty"`
	Skip      int      `json:"skip,omitempty"`
}

// IsSkip reports whether the hunk is a skipped run of unchanged lines.
// A zero-line skip hunk is treated as empty, not skipped.
func (h DiffHunk) IsSkip() bool {
	return h.Skip > 0 && len(h.Unchanged) == 0 && len(h.Added) == 0 && len(h.Removed) == 0
}

// LineContext is the reconstructed surrounding of one line in the
// post-change version of a file. The zero value means the line could not be
// located; that is an expected outcome, not an error.
type LineContext struct {
	Before []string // preceding lines, most recent last
	Target string
	Found  bool
	After  []string
}

// IsEmpty reports whether no context could be reconstructed.
func (c LineContext) IsEmpty() bool {
	return !c.Found && len(c.Before) == 0 && len(c.After) == 0
}
