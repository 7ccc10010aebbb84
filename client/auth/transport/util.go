package transport

import (
	"net/url"
	"strings"
)

const (
	// APIPrefix marks API paths.
	APIPrefix = "/api"
	// LegacyPrefix is the unversioned API prefix.
	LegacyPrefix = "/api/"
	// VersionedPrefix is the current API prefix.
	VersionedPrefix = "/api/v1/"
)

// IsAPIPath reports whether path addresses the API.
func IsAPIPath(path string) bool {
	return path == APIPrefix || strings.HasPrefix(path, LegacyPrefix)
}

// Normalize rewrites a legacy /api/ path to /api/v1/. Versioned and non-API
// paths are returned unchanged, so Normalize(Normalize(p)) == Normalize(p).
func Normalize(path string) string {
	if !strings.HasPrefix(path, LegacyPrefix) {
		return path
	}
	if path == strings.TrimSuffix(VersionedPrefix, "/") || strings.HasPrefix(path, VersionedPrefix) {
		return path
	}
	return VersionedPrefix + strings.TrimPrefix(path, LegacyPrefix)
}

// normalizeURL applies Normalize to both the decoded and raw path.
func normalizeURL(u *url.URL) {
	u.Path = Normalize(u.Path)
	if u.RawPath != "" {
		u.RawPath = Normalize(u.RawPath)
	}
}

func sameOrigin(origin, target *url.URL) bool {
	if origin == nil {
		return true
	}
	if target.Host == "" {
		return true
	}
	return strings.EqualFold(origin.Scheme, target.Scheme) && strings.EqualFold(origin.Host, target.Host)
}
