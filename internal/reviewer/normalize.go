package reviewer

import "github.com/maxbolgarin/gerrev/internal/model"

// buildPayload turns validated drafts into the grouped-by-file wire payload.
// Input order is preserved within each file. A range takes precedence over a
// line even when a draft carries both; side passes through only when it is
// one of the recognized values; unresolved is emitted only when true.
func buildPayload(drafts []model.CommentDraft) map[string][]model.CommentInput {
	if len(drafts) == 0 {
		return nil
	}

	payload := make(map[string][]model.CommentInput)
	for _, draft := range drafts {
		input := model.CommentInput{
			Message: draft.Message,
		}
		if draft.Range != nil {
			input.Range = draft.Range
		} else {
			input.Line = draft.Line
		}
		if draft.Side == model.SideParent || draft.Side == model.SideRevision {
			input.Side = draft.Side
		}
		if draft.Unresolved != nil && *draft.Unresolved {
			input.Unresolved = draft.Unresolved
		}

		payload[draft.File] = append(payload[draft.File], input)
	}
	return payload
}

func countComments(payload map[string][]model.CommentInput) int {
	var n int
	for _, comments := range payload {
		n += len(comments)
	}
	return n
}
