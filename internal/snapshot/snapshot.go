// Package snapshot assembles an immutable read of one change and renders it
// into the two views consumed by the prompt stage: a structured view for
// machine consumption and a narrative view for a holistic read.
package snapshot

import (
	"context"
	"sort"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gerrev/internal/model"
)

// Gerrit's magic paths for comments attached to the commit itself.
const (
	commitMessagePath = "/COMMIT_MSG"
	mergeListPath     = "/MERGE_LIST"

	commitMessageLabel = "Commit message"
)

// Snapshot is one change read at a point in time. It is built fresh per
// review run and never mutated afterwards.
type Snapshot struct {
	Change   model.Change
	Files    []string
	Diff     string
	Comments []model.ChangeComment
	Messages []model.ChangeMessage
}

// Fetch reads everything the views need in one pass. Both views are pure
// functions of the result; no network access happens after Fetch returns.
func Fetch(ctx context.Context, src model.ChangeSource, changeID string) (*Snapshot, error) {
	change, err := src.GetChange(ctx, changeID)
	if err != nil {
		return nil, errm.Wrap(err, "get change")
	}

	diff, err := src.GetDiff(ctx, changeID)
	if err != nil {
		return nil, errm.Wrap(err, "get diff")
	}

	files, err := src.GetFiles(ctx, changeID)
	if err != nil {
		return nil, errm.Wrap(err, "get files")
	}

	comments, err := src.GetComments(ctx, changeID)
	if err != nil {
		return nil, errm.Wrap(err, "get comments")
	}

	messages, err := src.GetMessages(ctx, changeID)
	if err != nil {
		return nil, errm.Wrap(err, "get messages")
	}

	return &Snapshot{
		Change:   *change,
		Files:    sortedPaths(files),
		Diff:     diff,
		Comments: flattenComments(comments),
		Messages: messages,
	}, nil
}

func sortedPaths(files map[string]model.FileInfo) []string {
	paths := make([]string, 0, len(files))
	for path := range files {
		if path == commitMessagePath || path == mergeListPath {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// flattenComments merges the per-file comment lists into one slice,
// relabeling comments on the commit message so readers do not see Gerrit's
// magic path.
func flattenComments(byPath map[string][]model.ChangeComment) []model.ChangeComment {
	paths := make([]string, 0, len(byPath))
	for path := range byPath {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var out []model.ChangeComment
	for _, path := range paths {
		for _, comment := range byPath[path] {
			comment.Path = path
			if path == commitMessagePath {
				comment.Path = commitMessageLabel
			}
			out = append(out, comment)
		}
	}
	return out
}
