// Package videoid resolves hosts and providers to canonical domains and
// derives deterministic identifiers from them.
package videoid

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// Well-known host aliases. Key: input host. Value: canonical domain.
var canonicalDomainByHost = map[string]string{
	"youtube.com":     "youtube.com",
	"www.youtube.com": "youtube.com",
	"m.youtube.com":   "youtube.com",
	"youtu.be":        "youtube.com",

	"pexels.com":        "pexels.com",
	"www.pexels.com":    "pexels.com",
	"images.pexels.com": "pexels.com",
	"videos.pexels.com": "pexels.com",

	"pixabay.com":     "pixabay.com",
	"www.pixabay.com": "pixabay.com",
	"cdn.pixabay.com": "pixabay.com",

	"upload.wikimedia.org":  "wikimedia.org",
	"commons.wikimedia.org": "wikimedia.org",
}

// domainByProvider maps a media provider name to its canonical domain.
var domainByProvider = map[string]string{
	"pexels":    "pexels.com",
	"pixabay":   "pixabay.com",
	"openverse": "openverse.org",
	"wikimedia": "wikimedia.org",
	"youtube":   "youtube.com",
}

// safeDownloadDomains are hosts whose files may be fetched for reuse. A host
// matches a domain when it equals it or is a subdomain of it.
var safeDownloadDomains = []string{
	"pexels.com",
	"pixabay.com",
	"wikimedia.org",
	"openverse.org",
	"staticflickr.com",
	"flickr.com",
}

// ResolveCanonicalDomain returns the canonical domain for host.
//
// host should be a hostname without port.
func ResolveCanonicalDomain(host string) string {
	h := normalizeHost(host)
	if h == "" {
		return ""
	}
	if c, ok := canonicalDomainByHost[h]; ok {
		return c
	}
	return h
}

// ProviderDomain returns the canonical domain of a provider name, or the
// lower-cased name itself when unknown.
func ProviderDomain(provider string) string {
	p := strings.TrimSpace(strings.ToLower(provider))
	if d, ok := domainByProvider[p]; ok {
		return d
	}
	return p
}

// NamespaceUUIDForDomain returns a deterministic UUIDv5 namespace for a domain.
// Example: uuid.NewSHA1(uuid.NameSpaceDNS, []byte("youtube.com")).
func NamespaceUUIDForDomain(domain string) uuid.UUID {
	d := strings.TrimSpace(strings.ToLower(domain))
	d = strings.TrimSuffix(d, ".")
	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(d))
}

// ItemUUID returns a deterministic UUIDv5 for a (provider, identity) pair.
//
// The name string is exactly the identity; the provider is scoped by the
// namespace of its domain.
func ItemUUID(provider, identity string) uuid.UUID {
	ns := NamespaceUUIDForDomain(ProviderDomain(provider))
	return uuid.NewSHA1(ns, []byte(strings.TrimSpace(identity)))
}

// VideoUUID returns the ItemUUID of a YouTube video id.
func VideoUUID(videoID string) uuid.UUID {
	return ItemUUID("youtube", videoID)
}

// WatchURL returns the YouTube watch page of a video id.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// IsSafeDownload reports whether raw points at a host whose files may be
// downloaded. Only http(s) URLs qualify.
func IsSafeDownload(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	h := normalizeHost(u.Host)
	if h == "" {
		return false
	}
	for _, d := range safeDownloadDomains {
		if h == d || strings.HasSuffix(h, "."+d) {
			return true
		}
	}
	return false
}

// ExtractYouTubeVideoID extracts the YouTube video ID from a watch, share,
// embed or shorts URL. It returns "" when none is found.
func ExtractYouTubeVideoID(urlStr string) string {
	u, err := url.Parse(strings.TrimSpace(urlStr))
	if err != nil {
		return ""
	}

	host := normalizeHost(u.Host)
	if host == "youtu.be" {
		return firstPathSegment(u.Path)
	}
	if ResolveCanonicalDomain(host) != "youtube.com" {
		return ""
	}
	if q := strings.TrimSpace(u.Query().Get("v")); q != "" {
		return q
	}
	for _, prefix := range []string{"/embed/", "/v/", "/shorts/", "/live/"} {
		if strings.HasPrefix(u.Path, prefix) {
			return firstPathSegment(strings.TrimPrefix(u.Path, prefix))
		}
	}
	return ""
}

func normalizeHost(hostport string) string {
	h := strings.TrimSpace(strings.ToLower(hostport))
	if h == "" {
		return ""
	}
	// url.URL.Host may include port.
	if strings.Contains(h, ":") {
		if parsed, err := url.Parse("//" + h); err == nil {
			if parsed.Hostname() != "" {
				h = parsed.Hostname()
			}
		}
	}
	h = strings.TrimSuffix(h, ".")
	return h
}

func firstPathSegment(p string) string {
	p = strings.TrimSpace(p)
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return ""
	}
	seg, _, _ := strings.Cut(p, "/")
	return strings.TrimSpace(seg)
}
