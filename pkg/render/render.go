// Package render splits message content into display segments.
//
// Segmentation is a pure transformation: stored message content is never
// modified, and segments preserve the original order of the text.
package render

import (
	"regexp"
	"strings"
)

// Segment types
const (
	SegmentText = "text"
	SegmentCode = "code"
)

// Segment is a contiguous run of a message's content classified as plain
// text or fenced code.
type Segment struct {
	Type     string `json:"type"`
	Content  string `json:"content"`
	Language string `json:"language,omitempty"` // code segments only
}

// DefaultLanguage is used for fenced code blocks without a language tag.
const DefaultLanguage = "plaintext"

// codeBlockRe matches a triple-backtick fence: an optional language tag up
// to the first newline, then everything (non-greedy) up to the closing fence.
var codeBlockRe = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")

// SplitSegments splits content into text and code segments. Fences are not
// included in segment content, code content is not trimmed, and an
// unterminated fence is treated as plain text.
func SplitSegments(content string) []Segment {
	var segments []Segment
	lastIndex := 0

	for _, m := range codeBlockRe.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[0], m[1]
		if start > lastIndex {
			segments = append(segments, Segment{
				Type:    SegmentText,
				Content: content[lastIndex:start],
			})
		}

		language := content[m[2]:m[3]]
		if language == "" {
			language = DefaultLanguage
		}
		segments = append(segments, Segment{
			Type:     SegmentCode,
			Content:  content[m[4]:m[5]],
			Language: language,
		})

		lastIndex = end
	}

	if lastIndex < len(content) {
		segments = append(segments, Segment{
			Type:    SegmentText,
			Content: content[lastIndex:],
		})
	}

	// No fences at all: the whole content is a single text segment. This
	// also covers the empty string.
	if len(segments) == 0 {
		segments = append(segments, Segment{Type: SegmentText, Content: content})
	}

	return segments
}

// RenderInline applies the light presentation-only transformation for text
// segments: leading #/##/### lines become heading tags and newlines become
// break tags. The input is never mutated; headings deeper than three levels
// are left alone.
func RenderInline(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "### "):
			lines[i] = "<h3>" + strings.TrimPrefix(line, "### ") + "</h3>"
		case strings.HasPrefix(line, "## "):
			lines[i] = "<h2>" + strings.TrimPrefix(line, "## ") + "</h2>"
		case strings.HasPrefix(line, "# "):
			lines[i] = "<h1>" + strings.TrimPrefix(line, "# ") + "</h1>"
		}
	}
	return strings.Join(lines, "<br />")
}
