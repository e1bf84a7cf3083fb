// Package diffview reconstructs line context from Gerrit's hunk-based file
// diffs, which never carry line numbers directly.
package diffview

import "github.com/maxbolgarin/gerrev/internal/model"

// DefaultWindow is the number of context lines shown on each side of a
// target line.
const DefaultWindow = 2

type numberedLine struct {
	number int
	text   string
}

// ExtractContext walks the hunks of one file diff and returns up to window
// lines before and after targetLine in the post-change version of the file,
// together with the target line itself.
//
// The walk counts post-change lines only: unchanged and added hunks emit
// lines, removed hunks are invisible, and a skipped hunk advances the
// counter without materializing anything. A target that falls inside a
// skipped region, or past the end of the diff, yields an empty context.
// The function is total: it never fails, absence is an empty result.
func ExtractContext(hunks []model.DiffHunk, targetLine, window int) model.LineContext {
	if targetLine < 1 || window < 0 {
		return model.LineContext{}
	}

	var recorded []numberedLine
	counter := 1

	for _, hunk := range hunks {
		if hunk.IsSkip() {
			if targetLine >= counter && targetLine < counter+hunk.Skip {
				// The region was never materialized, nothing to show.
				return model.LineContext{}
			}
			counter += hunk.Skip
			continue
		}
		for _, line := range hunk.Unchanged {
			recorded = append(recorded, numberedLine{counter, line})
			counter++
		}
		for _, line := range hunk.Added {
			recorded = append(recorded, numberedLine{counter, line})
			counter++
		}
		// Removed lines do not exist in the post-change file.
	}

	idx := -1
	for i, line := range recorded {
		if line.number == targetLine {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.LineContext{}
	}

	out := model.LineContext{
		Target: recorded[idx].text,
		Found:  true,
	}
	for i := max(0, idx-window); i < idx; i++ {
		out.Before = append(out.Before, recorded[i].text)
	}
	for i := idx + 1; i <= idx+window && i < len(recorded); i++ {
		out.After = append(out.After, recorded[i].text)
	}

	return out
}
