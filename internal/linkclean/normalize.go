package linkclean

import (
	"net/url"
	"strings"
)

// Default tracking configuration shared by all supported services.
var (
	DefaultTrackingParams = []string{"si"}
	DefaultShortLinkHosts = []string{"youtu.be"}
)

// Normalizer removes tracking parameters from URLs.
type Normalizer struct {
	params     map[string]struct{}
	shortHosts map[string]struct{}
	pathTokens []string
}

// NewNormalizer builds a Normalizer that drops the given query keys everywhere
// and, on the given short-link hosts, also truncates the path at an embedded
// "<key>=" token.
func NewNormalizer(params, shortLinkHosts []string) *Normalizer {
	n := &Normalizer{
		params:     make(map[string]struct{}, len(params)),
		shortHosts: make(map[string]struct{}, len(shortLinkHosts)),
	}
	for _, p := range params {
		n.params[p] = struct{}{}
		n.pathTokens = append(n.pathTokens, p+"=")
	}
	for _, h := range shortLinkHosts {
		n.shortHosts[h] = struct{}{}
	}
	return n
}

// DefaultNormalizer returns a Normalizer for the built-in tracking configuration.
func DefaultNormalizer() *Normalizer {
	return NewNormalizer(DefaultTrackingParams, DefaultShortLinkHosts)
}

var defaultNormalizer = DefaultNormalizer()

// Clean is DefaultNormalizer().Clean.
func Clean(rawURL string) string {
	return defaultNormalizer.Clean(rawURL)
}

// Clean returns rawURL without tracking parameters. Input that does not parse
// as an absolute URL, or that carries nothing to remove, is returned verbatim.
func (n *Normalizer) Clean(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() {
		return rawURL
	}

	changed := false

	if u.RawQuery != "" {
		if query, dropped := n.stripQuery(u.RawQuery); dropped {
			u.RawQuery = query
			u.ForceQuery = false
			changed = true
		}
	}

	if _, ok := n.shortHosts[u.Hostname()]; ok {
		if path, cut := n.truncatePath(u.Path); cut {
			u.Path = path
			u.RawPath = ""
			changed = true
		}
	}

	if !changed {
		return rawURL
	}
	return u.String()
}

// stripQuery drops tracking pairs from a raw query string, keeping the other
// pairs byte-for-byte in their original order.
func (n *Normalizer) stripQuery(rawQuery string) (string, bool) {
	segments := strings.Split(rawQuery, "&")
	kept := make([]string, 0, len(segments))
	dropped := false
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if _, ok := n.params[queryKey(seg)]; ok {
			dropped = true
			continue
		}
		kept = append(kept, seg)
	}
	if !dropped {
		return rawQuery, false
	}
	return strings.Join(kept, "&"), true
}

func (n *Normalizer) truncatePath(path string) (string, bool) {
	cut := -1
	for _, token := range n.pathTokens {
		if i := strings.Index(path, token); i >= 0 && (cut < 0 || i < cut) {
			cut = i
		}
	}
	if cut < 0 {
		return path, false
	}
	return strings.TrimRight(path[:cut], "?"), true
}

func queryKey(segment string) string {
	key, _, _ := strings.Cut(segment, "=")
	if decoded, err := url.QueryUnescape(key); err == nil {
		return decoded
	}
	return key
}
