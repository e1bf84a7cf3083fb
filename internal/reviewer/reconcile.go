package reviewer

import (
	"strings"

	"github.com/maxbolgarin/gerrev/internal/model"
	"github.com/maxbolgarin/logze/v2"
)

// reconcileDrafts validates untrusted tool-produced drafts against the
// change's real file list. Invalid drafts are dropped with a warning, never
// failing the run; the drop count is returned for diagnostic reporting.
func reconcileDrafts(drafts []model.CommentDraft, files []string, log logze.Logger) ([]model.CommentDraft, int) {
	var (
		out     []model.CommentDraft
		dropped int
	)

	for _, draft := range drafts {
		if draft.File == "" || draft.Message == "" {
			log.Warn("dropping draft without file or message")
			dropped++
			continue
		}
		if draft.Line <= 0 && draft.Range == nil {
			log.Warn("dropping draft without line or range", "file", draft.File)
			dropped++
			continue
		}

		resolved, ok := resolvePath(draft.File, files)
		if !ok {
			log.Warn("dropping draft with unresolvable path", "file", draft.File)
			dropped++
			continue
		}
		if resolved != draft.File {
			log.Info("corrected draft path", "from", draft.File, "to", resolved)
			draft.File = resolved
		}

		out = append(out, draft)
	}

	return out, dropped
}

// resolvePath maps a tool-reported path onto the known file list. An exact
// match wins immediately. Otherwise the candidate must match a known path as
// a full trailing path segment; a plain substring match would spuriously hit
// unrelated files. With several segment matches, a known path whose raw form
// ends in "/"+candidate is preferred; an unresolved tie drops the draft.
func resolvePath(candidate string, known []string) (string, bool) {
	for _, path := range known {
		if path == candidate {
			return path, true
		}
	}

	normalized := strings.ReplaceAll(candidate, "\\", "/")

	var matches []string
	for _, path := range known {
		normPath := strings.ReplaceAll(path, "\\", "/")
		if normPath == normalized || strings.HasSuffix(normPath, "/"+normalized) {
			matches = append(matches, path)
		}
	}

	switch len(matches) {
	case 0:
		return "", false
	case 1:
		return matches[0], true
	}

	var exact []string
	for _, path := range matches {
		if strings.HasSuffix(path, "/"+candidate) {
			exact = append(exact, path)
		}
	}
	if len(exact) == 1 {
		return exact[0], true
	}
	return "", false
}
