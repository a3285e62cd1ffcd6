package wikitext

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/custodia-labs/wikiplain/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor strips wikitext markup. It holds no per-call state and is
// safe for concurrent use.
type Extractor struct {
	policy *bluemonday.Policy
}

// New creates a new wikitext extractor.
func New() *Extractor {
	return &Extractor{policy: bluemonday.StrictPolicy()}
}

// Pre-compiled regular expressions for markup removal.
var (
	comments      = regexp.MustCompile(`(?s)<!--.*?-->`)
	selfClosedRef = regexp.MustCompile(`(?i)<ref[^>]*/>`)
	refBlocks     = regexp.MustCompile(`(?is)<ref[^>]*>.*?</ref>`)
	dropBlocks    = regexp.MustCompile(`(?is)<(math|gallery|nowiki|syntaxhighlight|source|timeline)[^>]*>.*?</(math|gallery|nowiki|syntaxhighlight|source|timeline)>`)
	mediaLink     = regexp.MustCompile(`(?i)\[\[\s*(file|image|category|media)\s*:`)
	pipedLink     = regexp.MustCompile(`\[\[[^\[\]|]*\|([^\[\]]*)\]\]`)
	plainLink     = regexp.MustCompile(`\[\[([^\[\]|]*)\]\]`)
	labelledURL   = regexp.MustCompile(`\[(?:https?:)?//[^\s\]]+\s+([^\]]*)\]`)
	bareURL       = regexp.MustCompile(`\[(?:https?:)?//[^\s\]]+\]`)
	quotes        = regexp.MustCompile(`'{2,}`)
	headings      = regexp.MustCompile(`(?m)^=+\s*(.*?)\s*=+\s*$`)
	magicWords    = regexp.MustCompile(`__[A-Z]+__`)
	brTags        = regexp.MustCompile(`(?i)<br\s*/?>`)
	multiSpaces   = regexp.MustCompile(`[ \t]+`)
)

// PlainText returns the readable text of raw.
func (e *Extractor) PlainText(ctx context.Context, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text := comments.ReplaceAllString(raw, "")
	text = selfClosedRef.ReplaceAllString(text, "")
	text = refBlocks.ReplaceAllString(text, "")
	text = dropBlocks.ReplaceAllString(text, "")

	text = stripNested(text, "{{", "}}")
	text = stripNested(text, "{|", "|}")
	text = stripMediaLinks(text)

	text = pipedLink.ReplaceAllString(text, "$1")
	text = plainLink.ReplaceAllString(text, "$1")
	text = labelledURL.ReplaceAllString(text, "$1")
	text = bareURL.ReplaceAllString(text, "")

	text = quotes.ReplaceAllString(text, "")
	text = headings.ReplaceAllString(text, "$1")
	text = magicWords.ReplaceAllString(text, "")

	text = brTags.ReplaceAllString(text, "\n")

	// The strict policy drops every tag and escapes the text it keeps.
	text = e.policy.Sanitize(text)
	text = html.UnescapeString(text)

	return tidy(text), nil
}

// stripNested removes every balanced open...close span, nesting included.
// An unterminated span runs to the end of the text.
func stripNested(s, open, close string) string {
	if !strings.Contains(s, open) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], open):
			depth++
			i += len(open)
		case depth > 0 && strings.HasPrefix(s[i:], close):
			depth--
			i += len(close)
		default:
			if depth == 0 {
				b.WriteByte(s[i])
			}
			i++
		}
	}
	return b.String()
}

// stripMediaLinks removes file, image and category links. Their captions
// may hold nested links, so the closing brackets are matched by depth.
func stripMediaLinks(s string) string {
	for {
		loc := mediaLink.FindStringIndex(s)
		if loc == nil {
			return s
		}
		end := matchBrackets(s, loc[0])
		s = s[:loc[0]] + s[end:]
	}
}

// matchBrackets returns the index just past the "]]" closing the "[["
// at start, or len(s) if it is never closed.
func matchBrackets(s string, start int) int {
	depth := 0
	for i := start; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "[["):
			depth++
			i += 2
		case strings.HasPrefix(s[i:], "]]"):
			depth--
			i += 2
			if depth == 0 {
				return i
			}
		default:
			i++
		}
	}
	return len(s)
}

// tidy collapses runs of spaces, trims each line and drops blank lines.
func tidy(s string) string {
	s = multiSpaces.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	result := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
