package linkclean

import (
	"sort"
	"strings"
)

// ExtractedLink pairs a candidate link with its cleaned form. Original and
// Cleaned always differ.
type ExtractedLink struct {
	Original string
	Cleaned  string
}

// Extractor composes a Matcher and a Normalizer over message text.
type Extractor struct {
	matcher    *Matcher
	normalizer *Normalizer
}

// NewExtractor returns an Extractor using m and n.
func NewExtractor(m *Matcher, n *Normalizer) *Extractor {
	return &Extractor{matcher: m, normalizer: n}
}

// NewDefaultExtractor builds an Extractor from the built-in patterns and
// tracking configuration.
func NewDefaultExtractor() (*Extractor, error) {
	m, err := DefaultMatcher()
	if err != nil {
		return nil, err
	}
	return NewExtractor(m, DefaultNormalizer()), nil
}

// Detect reports whether text contains any supported link.
func (e *Extractor) Detect(text string) bool {
	return e.matcher.Detect(text)
}

// Clean normalizes a single URL.
func (e *Extractor) Clean(rawURL string) string {
	return e.normalizer.Clean(rawURL)
}

// Extract returns the candidate links of text whose cleaned form differs from
// the original, in the order the Matcher produced them.
func (e *Extractor) Extract(text string) []ExtractedLink {
	var links []ExtractedLink
	for _, span := range e.matcher.FindAll(text) {
		cleaned := e.normalizer.Clean(span.Text)
		if cleaned == span.Text {
			continue
		}
		links = append(links, ExtractedLink{Original: span.Text, Cleaned: cleaned})
	}
	return links
}

// Rewrite replaces every occurrence of each original link in text with its
// cleaned form. The replacement is a single pass over text, so inserted text is
// never matched again, and a longer original wins over any original that is
// its prefix.
func Rewrite(text string, links []ExtractedLink) string {
	if len(links) == 0 {
		return text
	}
	ordered := make([]ExtractedLink, len(links))
	copy(ordered, links)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Original) > len(ordered[j].Original)
	})

	oldnew := make([]string, 0, 2*len(ordered))
	for _, l := range ordered {
		oldnew = append(oldnew, l.Original, l.Cleaned)
	}
	return strings.NewReplacer(oldnew...).Replace(text)
}
