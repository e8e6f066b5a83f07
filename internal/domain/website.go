package domain

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

// PatternType selects how a WebsitePattern is matched against a host
type PatternType string

const (
	PatternDomain   PatternType = "domain"
	PatternWildcard PatternType = "wildcard"
	PatternContains PatternType = "contains"
)

// WebsitePattern matches hosts a session blocks
type WebsitePattern struct {
	Pattern string      `json:"pattern"`
	Type    PatternType `json:"type"`
}

// ParseWebsitePattern builds a pattern from its raw form.
// "contains:news" matches any host containing "news", a value with "*" is a
// glob over the host, anything else must equal the host exactly.
func ParseWebsitePattern(raw string) (WebsitePattern, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return WebsitePattern{}, fmt.Errorf("%w: empty", ErrInvalidWebsitePattern)
	}

	if rest, ok := strings.CutPrefix(raw, "contains:"); ok {
		if rest == "" {
			return WebsitePattern{}, fmt.Errorf("%w: %q", ErrInvalidWebsitePattern, raw)
		}
		return WebsitePattern{Pattern: rest, Type: PatternContains}, nil
	}

	if strings.Contains(raw, "*") {
		if _, err := path.Match(raw, ""); err != nil {
			return WebsitePattern{}, fmt.Errorf("%w: %q", ErrInvalidWebsitePattern, raw)
		}
		return WebsitePattern{Pattern: raw, Type: PatternWildcard}, nil
	}

	if strings.ContainsAny(raw, "/ ") {
		return WebsitePattern{}, fmt.Errorf("%w: %q is not a host", ErrInvalidWebsitePattern, raw)
	}
	return WebsitePattern{Pattern: raw, Type: PatternDomain}, nil
}

// Matches reports whether host (or a URL) is covered by the pattern
func (p WebsitePattern) Matches(host string) bool {
	host = normalizeHost(host)
	if host == "" {
		return false
	}

	switch p.Type {
	case PatternDomain:
		return host == p.Pattern
	case PatternWildcard:
		ok, _ := path.Match(p.Pattern, host)
		return ok
	case PatternContains:
		return strings.Contains(host, p.Pattern)
	}
	return false
}

func (p WebsitePattern) String() string {
	if p.Type == PatternContains {
		return "contains:" + p.Pattern
	}
	return p.Pattern
}

func normalizeHost(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.Contains(s, "://") {
		if u, err := url.Parse(s); err == nil {
			return u.Hostname()
		}
	}
	return s
}
