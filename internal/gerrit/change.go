package gerrit

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/maxbolgarin/errm"
	"github.com/maxbolgarin/gerrev/internal/model"
	"github.com/maxbolgarin/lang"
)

// GetChange retrieves the metadata of one change.
func (c *Client) GetChange(ctx context.Context, changeID string) (*model.Change, error) {
	var info changeInfo
	apiURL := fmt.Sprintf("changes/%s?o=CURRENT_REVISION&o=DETAILED_ACCOUNTS", url.PathEscape(changeID))
	if err := c.get(ctx, apiURL, &info); err != nil {
		return nil, errm.Wrap(err, "get change")
	}

	return &model.Change{
		ID:              info.ID,
		ChangeID:        info.ChangeID,
		Number:          info.Number,
		Project:         info.Project,
		Branch:          info.Branch,
		Subject:         info.Subject,
		Status:          info.Status,
		Owner:           info.Owner.toUser(),
		CurrentRevision: info.CurrentRevision,
		CreatedAt:       parseTimestamp(info.Created),
		UpdatedAt:       parseTimestamp(info.Updated),
	}, nil
}

// GetDiff retrieves the full unified patch of the current revision.
func (c *Client) GetDiff(ctx context.Context, changeID string) (string, error) {
	apiURL := fmt.Sprintf("changes/%s/revisions/current/patch", url.PathEscape(changeID))
	resp, err := c.http.Get(ctx, apiURL)
	if err != nil {
		return "", errm.Wrap(err, "get patch")
	}

	// The patch endpoint returns the git patch base64-encoded.
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(resp.Body())))
	if err != nil {
		return "", errm.Wrap(err, "decode patch")
	}
	return string(decoded), nil
}

// GetFileDiff retrieves the structured hunk diff of one file in the current
// revision.
func (c *Client) GetFileDiff(ctx context.Context, changeID, path string) ([]model.DiffHunk, error) {
	var info diffInfo
	apiURL := fmt.Sprintf("changes/%s/revisions/current/files/%s/diff?intraline=false",
		url.PathEscape(changeID), url.PathEscape(path))
	if err := c.get(ctx, apiURL, &info); err != nil {
		return nil, errm.Wrap(err, "get file diff")
	}
	return info.Content, nil
}

// GetComments retrieves all published inline comments, keyed by file path.
func (c *Client) GetComments(ctx context.Context, changeID string) (map[string][]model.ChangeComment, error) {
	var byPath map[string][]commentInfo
	apiURL := fmt.Sprintf("changes/%s/comments", url.PathEscape(changeID))
	if err := c.get(ctx, apiURL, &byPath); err != nil {
		return nil, errm.Wrap(err, "get comments")
	}

	out := make(map[string][]model.ChangeComment, len(byPath))
	for path, comments := range byPath {
		for _, info := range comments {
			out[path] = append(out[path], model.ChangeComment{
				ID:         info.ID,
				Path:       path,
				Line:       info.Line,
				Message:    info.Message,
				Author:     info.Author.toUser(),
				Unresolved: info.Unresolved,
				UpdatedAt:  parseTimestamp(info.Updated),
			})
		}
	}
	return out, nil
}

// GetMessages retrieves the activity log of a change.
func (c *Client) GetMessages(ctx context.Context, changeID string) ([]model.ChangeMessage, error) {
	var infos []changeMessageInfo
	apiURL := fmt.Sprintf("changes/%s/messages", url.PathEscape(changeID))
	if err := c.get(ctx, apiURL, &infos); err != nil {
		return nil, errm.Wrap(err, "get messages")
	}

	out := make([]model.ChangeMessage, 0, len(infos))
	for _, info := range infos {
		out = append(out, model.ChangeMessage{
			Author:  info.Author.toUser(),
			Date:    parseTimestamp(info.Date),
			Message: info.Message,
		})
	}
	return out, nil
}

// GetFiles retrieves the files touched by the current revision.
func (c *Client) GetFiles(ctx context.Context, changeID string) (map[string]model.FileInfo, error) {
	var byPath map[string]fileInfo
	apiURL := fmt.Sprintf("changes/%s/revisions/current/files", url.PathEscape(changeID))
	if err := c.get(ctx, apiURL, &byPath); err != nil {
		return nil, errm.Wrap(err, "get files")
	}

	out := make(map[string]model.FileInfo, len(byPath))
	for path, info := range byPath {
		out[path] = model.FileInfo{
			// Gerrit omits status for plain modifications.
			Status:        strings.ToUpper(lang.Check(info.Status, "M")),
			LinesInserted: info.LinesInserted,
			LinesDeleted:  info.LinesDeleted,
		}
	}
	return out, nil
}

// SetReview posts a review to the current revision: an optional top-level
// message plus inline comments grouped by file, in a single request.
func (c *Client) SetReview(ctx context.Context, changeID string, review model.ReviewInput) error {
	apiURL := fmt.Sprintf("changes/%s/revisions/current/review", url.PathEscape(changeID))
	if _, err := c.http.Post(ctx, apiURL, review); err != nil {
		return errm.Wrap(err, "post review")
	}
	return nil
}
