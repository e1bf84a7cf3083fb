package snapshot

import (
	"strconv"
	"strings"
	"time"
)

// StructuredView renders the snapshot as a machine-oriented XML-like
// document. Attribute values go through character escaping and free-form
// content goes into CDATA blocks, so embedded markup can never be confused
// with structural markers.
func (s *Snapshot) StructuredView() string {
	var b strings.Builder
	b.Grow(len(s.Diff) + 4096)

	b.WriteString(`<change number="` + strconv.Itoa(s.Change.Number) + `"`)
	writeAttr(&b, "subject", s.Change.Subject)
	writeAttr(&b, "project", s.Change.Project)
	writeAttr(&b, "branch", s.Change.Branch)
	writeAttr(&b, "status", s.Change.Status)
	writeAttr(&b, "owner", s.Change.Owner.String())
	writeAttr(&b, "created", formatTime(s.Change.CreatedAt))
	writeAttr(&b, "updated", formatTime(s.Change.UpdatedAt))
	b.WriteString(">\n")

	b.WriteString("<files>\n")
	for _, path := range s.Files {
		b.WriteString(`<file path="` + escapeAttr(path) + "\"/>\n")
	}
	b.WriteString("</files>\n")

	b.WriteString("<diff>")
	b.WriteString(literalBlock(s.Diff))
	b.WriteString("</diff>\n")

	b.WriteString("<comments>\n")
	for _, comment := range s.Comments {
		b.WriteString(`<comment file="` + escapeAttr(comment.Path) + `"`)
		if comment.Line > 0 {
			b.WriteString(` line="` + strconv.Itoa(comment.Line) + `"`)
		}
		writeAttr(&b, "author", comment.Author.String())
		if comment.Unresolved {
			b.WriteString(` unresolved="true"`)
		}
		b.WriteString(">")
		b.WriteString(literalBlock(comment.Message))
		b.WriteString("</comment>\n")
	}
	b.WriteString("</comments>\n")

	b.WriteString("<messages>\n")
	for _, message := range s.Messages {
		b.WriteString(`<message`)
		writeAttr(&b, "author", message.Author.String())
		writeAttr(&b, "date", formatTime(message.Date))
		b.WriteString(">")
		b.WriteString(literalBlock(message.Message))
		b.WriteString("</message>\n")
	}
	b.WriteString("</messages>\n")

	b.WriteString("</change>\n")
	return b.String()
}

func writeAttr(b *strings.Builder, name, value string) {
	b.WriteString(" " + name + `="` + escapeAttr(value) + `"`)
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// literalBlock wraps content in a CDATA section. A literal "]]>" inside the
// content would terminate the section early, so it is split across two
// adjacent sections.
func literalBlock(s string) string {
	s = strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>")
	return "<![CDATA[" + s + "]]>"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
