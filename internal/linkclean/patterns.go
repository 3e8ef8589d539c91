// Package linkclean detects links to supported media services in message text
// and strips tracking parameters from them.
package linkclean

import (
	"fmt"
	"regexp"
)

// PatternSpec describes one supported link family before compilation.
type PatternSpec struct {
	Name string
	Expr string
}

// LinkPattern is a compiled PatternSpec.
type LinkPattern struct {
	Name string
	re   *regexp.Regexp
}

// linkTail matches the rest of a link up to the next Unicode whitespace.
// RE2's \S excludes ASCII whitespace only; the Unicode separators are listed
// explicitly.
const linkTail = `[^\s\v\x{85}\p{Z}]+`

// DefaultPatternSpecs lists the supported link families in priority order.
// Only the www. prefix is matched case-insensitively.
var DefaultPatternSpecs = []PatternSpec{
	{Name: "youtube", Expr: `https?://(?:(?i:www)\.)?youtu(?:\.be|be\.com)/` + linkTail},
	{Name: "youtube_music", Expr: `https?://(?:(?i:www)\.)?music\.youtube\.com/` + linkTail},
	{Name: "spotify", Expr: `https?://(?:(?i:www)\.)?open\.spotify\.com/` + linkTail},
}

// Span is a half-open byte range [Start, End) of a candidate link inside a text.
type Span struct {
	Pattern string
	Start   int
	End     int
	Text    string
}

// Matcher finds candidate links. It is immutable and safe for concurrent use.
type Matcher struct {
	patterns []LinkPattern
}

// NewMatcher compiles specs in the given order. Any invalid expression is an error.
func NewMatcher(specs []PatternSpec) (*Matcher, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("no link patterns configured")
	}
	patterns := make([]LinkPattern, 0, len(specs))
	for _, spec := range specs {
		re, err := regexp.Compile(spec.Expr)
		if err != nil {
			return nil, fmt.Errorf("invalid link pattern %q: %w", spec.Name, err)
		}
		patterns = append(patterns, LinkPattern{Name: spec.Name, re: re})
	}
	return &Matcher{patterns: patterns}, nil
}

// DefaultMatcher returns a Matcher over DefaultPatternSpecs.
func DefaultMatcher() (*Matcher, error) {
	return NewMatcher(DefaultPatternSpecs)
}

// Patterns returns the compiled pattern names in priority order.
func (m *Matcher) Patterns() []string {
	names := make([]string, len(m.patterns))
	for i, p := range m.patterns {
		names[i] = p.Name
	}
	return names
}

// Detect reports whether text contains at least one supported link.
func (m *Matcher) Detect(text string) bool {
	for _, p := range m.patterns {
		if p.re.MatchString(text) {
			return true
		}
	}
	return false
}

// FindAll returns every match of every pattern. Patterns are scanned
// independently over the whole text in priority order, and matches of one
// pattern are returned left to right.
func (m *Matcher) FindAll(text string) []Span {
	var spans []Span
	for _, p := range m.patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			spans = append(spans, Span{
				Pattern: p.Name,
				Start:   loc[0],
				End:     loc[1],
				Text:    text[loc[0]:loc[1]],
			})
		}
	}
	return spans
}
