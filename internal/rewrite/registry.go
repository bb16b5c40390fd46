package rewrite

import (
	"github.com/julien-sobczak/the-fieldwriter/internal/refs"
	"github.com/julien-sobczak/the-fieldwriter/pkg/text"
	"golang.org/x/exp/slices"
)

// Domain distinguishes the logical owner of a base URL.
type Domain int

const (
	DomainSite Domain = iota
	DomainVolume
)

// Entry associates a base URL with the site or volume owning it.
type Entry struct {
	BaseURL string // always slash-terminated
	Domain  Domain
	ID      int // site id or volume id, depending on Domain
}

// BuildEntries collects every known base URL from the registry, skipping
// sites and volumes without one, and orders them by URL length descending so
// that the longest prefix always wins: a shorter site URL must never match
// content belonging to a more specific nested URL.
func BuildEntries(registry refs.Registry) []Entry {
	var entries []Entry
	for _, site := range registry.SiteBaseURLs() {
		if site.BaseURL == "" {
			continue
		}
		entries = append(entries, Entry{
			BaseURL: text.EnsureTrailingSlash(site.BaseURL),
			Domain:  DomainSite,
			ID:      site.SiteID,
		})
	}
	for _, volume := range registry.VolumeBaseURLs() {
		if volume.BaseURL == "" {
			continue
		}
		entries = append(entries, Entry{
			BaseURL: text.EnsureTrailingSlash(volume.BaseURL),
			Domain:  DomainVolume,
			ID:      volume.VolumeID,
		})
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return len(b.BaseURL) - len(a.BaseURL)
	})

	return entries
}
