package security

import (
	"net/url"
	"strings"
)

// DefaultRedirectPath is used whenever a caller has no better fallback.
const DefaultRedirectPath = "/dashboard"

// OriginFunc returns the trusted origin of the running application as
// "scheme://host[:port]". It must be cheap and side-effect free; the
// resolver calls it on every resolution.
type OriginFunc func() string

// RedirectResolver decides whether an untrusted destination string is safe
// to navigate to. Unsafe, unparseable, and empty candidates all collapse
// into the same fallback outcome so that callers cannot distinguish the
// rejection cause.
type RedirectResolver struct {
	origin OriginFunc
}

func NewRedirectResolver(origin OriginFunc) *RedirectResolver {
	return &RedirectResolver{origin: origin}
}

// Resolve is ResolveTo with DefaultRedirectPath as the fallback.
func (resolver *RedirectResolver) Resolve(candidate string) string {
	return resolver.ResolveTo(candidate, DefaultRedirectPath)
}

// ResolveTo returns a root-relative destination for any candidate string.
// A candidate is accepted only if it is already root-relative, or if it is
// an absolute http(s) URL whose origin equals the trusted origin exactly
// (no subdomain or scheme relaxation); everything else returns fallback.
// The fallback must itself be a safe relative path; it is not re-validated.
func (resolver *RedirectResolver) ResolveTo(candidate string, fallback string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return fallback
	}

	// Browsers read "//host/..." as currentScheme://host, an absolute
	// cross-origin reference.
	if strings.HasPrefix(trimmed, "//") {
		return fallback
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return fallback
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fallback
	}
	if candidateOrigin(parsed) != NormalizeOrigin(resolver.origin()) {
		return fallback
	}

	return relativeReference(parsed, fallback)
}

// NormalizeOrigin canonicalizes "scheme://host[:port]" for comparison:
// scheme and host lowercased, explicit default ports dropped.
func NormalizeOrigin(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return strings.ToLower(strings.TrimSuffix(trimmed, "/"))
	}
	return candidateOrigin(parsed)
}

func candidateOrigin(parsed *url.URL) string {
	scheme := strings.ToLower(parsed.Scheme)
	host := strings.ToLower(parsed.Host)
	switch {
	case scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}
	return scheme + "://" + host
}

// relativeReference rebuilds path+query+fragment with the origin stripped,
// preserving the original encoding of each component.
func relativeReference(parsed *url.URL, fallback string) string {
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	// A stripped path like "//evil.com" would read as protocol-relative,
	// same as the raw "//" case above.
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		return fallback
	}

	var builder strings.Builder
	builder.WriteString(path)
	if parsed.ForceQuery || parsed.RawQuery != "" {
		builder.WriteByte('?')
		builder.WriteString(parsed.RawQuery)
	}
	if parsed.Fragment != "" {
		builder.WriteByte('#')
		builder.WriteString(parsed.EscapedFragment())
	}
	return builder.String()
}
