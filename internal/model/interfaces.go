package model

import "context"

// ChangeSource defines the read and write surface of the code-review server
// that the review pipeline depends on.
type ChangeSource interface {
	// Change data
	GetChange(ctx context.Context, changeID string) (*Change, error)
	GetDiff(ctx context.Context, changeID string) (string, error)
	GetFileDiff(ctx context.Context, changeID, path string) ([]DiffHunk, error)
	GetComments(ctx context.Context, changeID string) (map[string][]ChangeComment, error)
	GetMessages(ctx context.Context, changeID string) ([]ChangeMessage, error)
	GetFiles(ctx context.Context, changeID string) (map[string]FileInfo, error)

	// Comment submission, one request per posting stage
	SetReview(ctx context.Context, changeID string, review ReviewInput) error
}
