package snapshot

import (
	"fmt"
	"strings"
)

// Short automated messages from CI bots carry no review signal.
const botNoiseMaxLen = 10

// NarrativeView renders the snapshot as a human-readable report: header,
// metadata, diff, inline comments and activity, with build-bot noise
// filtered out of the activity section.
func (s *Snapshot) NarrativeView() string {
	var b strings.Builder
	b.Grow(len(s.Diff) + 4096)

	fmt.Fprintf(&b, "=== Change %d: %s ===\n\n", s.Change.Number, s.Change.Subject)
	fmt.Fprintf(&b, "Project: %s\n", s.Change.Project)
	fmt.Fprintf(&b, "Branch:  %s\n", s.Change.Branch)
	fmt.Fprintf(&b, "Status:  %s\n", s.Change.Status)
	fmt.Fprintf(&b, "Owner:   %s\n", s.Change.Owner.String())
	if !s.Change.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "Created: %s\n", formatTime(s.Change.CreatedAt))
	}
	if !s.Change.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "Updated: %s\n", formatTime(s.Change.UpdatedAt))
	}

	b.WriteString("\n--- Diff ---\n\n")
	b.WriteString(strings.TrimRight(s.Diff, "\n"))
	b.WriteString("\n")

	if len(s.Comments) > 0 {
		b.WriteString("\n--- Inline comments ---\n\n")
		for _, comment := range s.Comments {
			location := comment.Path
			if comment.Line > 0 {
				location = fmt.Sprintf("%s:%d", comment.Path, comment.Line)
			}
			fmt.Fprintf(&b, "[%s] %s: %s\n", location, comment.Author.String(), comment.Message)
		}
	}

	var activity []string
	for _, message := range s.Messages {
		if isBotNoise(message.Message) {
			continue
		}
		activity = append(activity, fmt.Sprintf("[%s] %s: %s",
			formatTime(message.Date), message.Author.String(), strings.TrimSpace(message.Message)))
	}
	if len(activity) > 0 {
		b.WriteString("\n--- Activity ---\n\n")
		for _, line := range activity {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}

func isBotNoise(message string) bool {
	trimmed := strings.TrimSpace(message)
	if len(trimmed) >= botNoiseMaxLen {
		return false
	}
	return strings.Contains(trimmed, "Build") || strings.Contains(trimmed, "Patch")
}
