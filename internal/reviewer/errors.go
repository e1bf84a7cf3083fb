package reviewer

import "fmt"

// SubmissionError wraps a failed posting call with enough of the attempted
// payload summarized for diagnosis.
type SubmissionError struct {
	ChangeID string
	Files    int
	Comments int
	Err      error
}

func (e *SubmissionError) Error() string {
	if e.Comments > 0 {
		return fmt.Sprintf("cannot post review to %s (%d comments in %d files): %v",
			e.ChangeID, e.Comments, e.Files, e.Err)
	}
	return fmt.Sprintf("cannot post review to %s: %v", e.ChangeID, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
