package model

// Comment sides recognized by Gerrit.
const (
	SideParent   = "PARENT"
	SideRevision = "REVISION"
)

// CommentRange is a multi-line (optionally multi-character) comment anchor.
type CommentRange struct {
	StartLine      int `json:"start_line"`
	StartCharacter int `json:"start_character,omitempty"`
	EndLine        int `json:"end_line"`
	EndCharacter   int `json:"end_character,omitempty"`
}

// CommentDraft is a tool-produced candidate inline comment. It is untrusted
// input until it passes reconciliation against the change's real file list.
type CommentDraft struct {
	File       string        `json:"file"`
	Message    string        `json:"message"`
	Line       int           `json:"line,omitempty"`
	Range      *CommentRange `json:"range,omitempty"`
	Side       string        `json:"side,omitempty"`
	Unresolved *bool         `json:"unresolved,omitempty"`
}

// CommentInput is the wire shape of one inline comment in a review request.
// Line and Range are mutually exclusive: when Range is set, Line is omitted.
type CommentInput struct {
	Line       int           `json:"line,omitempty"`
	Range      *CommentRange `json:"range,omitempty"`
	Message    string        `json:"message"`
	Side       string        `json:"side,omitempty"`
	Unresolved *bool         `json:"unresolved,omitempty"`
}

// ReviewInput is the payload of a single review submission: an optional
// top-level message plus inline comments grouped by file path.
type ReviewInput struct {
	Message  string                    `json:"message,omitempty"`
	Comments map[string][]CommentInput `json:"comments,omitempty"`
}
