package pdfdoc

import (
	"net/url"
	"regexp"
)

// urlPattern matches a scheme prefix through the next whitespace.
var urlPattern = regexp.MustCompile(`https?://\S+`)

// localPathPattern matches a ./ relative path through the end of the line.
var localPathPattern = regexp.MustCompile(`\./[^\r\n]+`)

// Segment is a run of value text, optionally carrying a link target.
type Segment struct {
	Text string
	Link string
}

// Linkify splits value into plain text and link segments. URLs link to
// themselves and ./ paths link to file://<path>. Line breaks stay in the text
// segments. A match whose target does not parse as a URL stays literal text.
func Linkify(value string) []Segment {
	var segments []Segment
	appendText := func(s string) {
		if s == "" {
			return
		}
		if n := len(segments); n > 0 && segments[n-1].Link == "" {
			segments[n-1].Text += s
			return
		}
		segments = append(segments, Segment{Text: s})
	}

	rest := value
	for rest != "" {
		start, end, target := nextLink(rest)
		if start < 0 {
			appendText(rest)
			break
		}
		appendText(rest[:start])
		text := rest[start:end]
		if _, err := url.Parse(target); err != nil {
			appendText(text)
		} else {
			segments = append(segments, Segment{Text: text, Link: target})
		}
		rest = rest[end:]
	}

	return segments
}

// nextLink finds the leftmost URL or local path in s. It returns the match
// bounds and its link target, or start -1 when there is none. A URL wins a
// tie with a local path.
func nextLink(s string) (start, end int, target string) {
	start = -1

	if loc := urlPattern.FindStringIndex(s); loc != nil {
		start, end = loc[0], loc[1]
		target = s[start:end]
	}
	if loc := localPathPattern.FindStringIndex(s); loc != nil && (start < 0 || loc[0] < start) {
		start, end = loc[0], loc[1]
		target = "file://" + s[start:end]
	}

	return start, end, target
}
