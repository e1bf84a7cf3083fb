package agent

import (
	"regexp"
	"strings"
)

// Tools are instructed to wrap their reply in a single response block so
// the payload survives any preamble or trailing chatter they emit.
var responseBlockRe = regexp.MustCompile(`(?is)<response>(.*?)</response>`)

// ExtractResponse returns the trimmed content of the delimited response
// block in raw tool output. The tag pair is matched case-insensitively and
// the content may span lines. When no block exists the whole raw output is
// preserved in the returned ResponseParseError for diagnostics.
func ExtractResponse(raw string) (string, error) {
	match := responseBlockRe.FindStringSubmatch(raw)
	if match == nil {
		return "", &ResponseParseError{Raw: raw}
	}
	return strings.TrimSpace(match[1]), nil
}
