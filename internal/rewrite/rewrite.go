// Package rewrite implements the persistence-time stage: URLs pointing at
// known sites and file-storage volumes are rewritten into reference tags,
// keeping the original URL as an embedded fallback.
package rewrite

import (
	"html"
	"path"
	"regexp"
	"strings"

	"github.com/julien-sobczak/the-fieldwriter/internal/refs"
)

// DefaultPageTrigger is the conventional URL segment marking paginated pages.
const DefaultPageTrigger = "p"

// Regexes matching quoted href/src attribute values. RE2 supports no
// backreferences, so every pattern is instantiated per quote character.
var (
	regexURLAttrs = []*regexp.Regexp{
		urlAttrPattern(`"`),
		urlAttrPattern(`'`),
	}
	regexLocatorAttrs = []*regexp.Regexp{
		locatorAttrPattern(`"`),
		locatorAttrPattern(`'`),
	}
)

func urlAttrPattern(q string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(href=|src=)` + q + `((?:/|http)[^` + q + `]*)` + q)
}

// A fragment locator is a URL carrying a raw type:id[@site][:transform]
// fragment (ex: /blog/hello#entry:5:url), as produced by the display stage.
func locatorAttrPattern(q string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)(href=|src=)` + q +
			`([^` + q + `?#]*)(\?[^` + q + `?#]+)?(#[^` + q + `?#]+)?` +
			`(?:#|%23)(` + refs.Handle + `(?:\\` + refs.Handle + `)*):(\d+)(?:@(\d+))?(:(?:transform:)?` + refs.Handle + `(?:-\w+)*)?` + q)
}

// Rewriter turns resolvable URLs into reference tags. All collaborators are
// explicit: the rewriter never reaches for ambient state.
type Rewriter struct {
	Resolver refs.Resolver
	Registry refs.Registry
	// PageTrigger is the URL segment convention for paginated pages
	// (the marker followed by digits). Empty means DefaultPageTrigger.
	// A query-based trigger (leading "?") disables stripping: URLs with a
	// query string are never rewritten anyway.
	PageTrigger string
}

// Rewrite scans sanitized HTML and replaces every href/src URL that belongs
// to a known site or volume with a reference tag embedding the original URL
// as fallback. URLs that match nothing are left unchanged.
func (rw *Rewriter) Rewrite(content string) string {
	content = rw.rewriteLocators(content)
	content = rw.rewriteURLs(content)
	return content
}

// rewriteLocators converts URLs already carrying a raw reference fragment
// locator into the canonical {tag||url} form.
func (rw *Rewriter) rewriteLocators(content string) string {
	for _, re := range regexLocatorAttrs {
		content = re.ReplaceAllStringFunc(content, func(match string) string {
			submatch := re.FindStringSubmatch(match)
			attr, url, query, hash := submatch[1], submatch[2], submatch[3], submatch[4]
			refType, id, siteID, transform := submatch[5], submatch[6], submatch[7], submatch[8]
			quote := match[len(match)-1:]

			ref := refType + ":" + id
			if siteID != "" {
				ref += "@" + siteID
			}
			if transform != "" {
				ref += transform
			} else {
				ref += ":url"
			}

			if query != "" || hash != "" {
				// An intervening query/hash may be part of the target itself
				// (an URL format can encode "?slug=..." or "#..."): keep it
				// inside the fallback URL only when the tag's own resolution
				// already contains it.
				resolved := rw.Resolver.ResolveTag("{"+ref+"}", 0)
				if query != "" && strings.Contains(resolved, html.UnescapeString(query)) {
					url += query
					query = ""
				}
				if hash != "" && strings.Contains(resolved, html.UnescapeString(hash)) {
					url += hash
					hash = ""
				}
			}

			return attr + quote + "{" + ref + "||" + url + "}" + query + hash + quote
		})
	}
	return content
}

// rewriteURLs matches every candidate URL against the base-URL entries.
func (rw *Rewriter) rewriteURLs(content string) string {
	entries := BuildEntries(rw.Registry)

	for _, re := range regexURLAttrs {
		content = re.ReplaceAllStringFunc(content, func(match string) string {
			submatch := re.FindStringSubmatch(match)
			attr, url := submatch[1], submatch[2]
			quote := match[len(match)-1:]

			for _, entry := range entries {
				if !strings.HasPrefix(url, entry.BaseURL) {
					continue
				}
				if strings.Contains(url, "?") {
					// A query string makes the match ambiguous: leave the URL
					// as-is and try no further entries.
					return match
				}

				uri := strings.TrimPrefix(url, entry.BaseURL)
				uri = rw.stripPageTrigger(uri)

				ref, ok := rw.lookup(entry, uri, url)
				if !ok {
					return match
				}
				return attr + quote + ref.Tag() + quote
			}

			return match
		})
	}
	return content
}

// lookup asks the resolver for the content item or file behind a
// registry-relative URI.
func (rw *Rewriter) lookup(entry Entry, uri string, url string) (refs.Ref, bool) {
	switch entry.Domain {
	case DomainSite:
		content, ok := rw.Resolver.FindContentByURI(uri, entry.ID)
		if !ok || content.Handle == "" {
			return refs.Ref{}, false
		}
		return refs.Ref{
			Type:        content.Handle,
			ID:          content.ID,
			SiteID:      entry.ID,
			Transform:   "url",
			FallbackURL: url,
		}, true

	case DomainVolume:
		filename := path.Base(uri)
		folderPath := path.Dir(uri)
		if folderPath == "." || folderPath == "/" {
			folderPath = ""
		} else {
			folderPath += "/"
		}
		file, ok := rw.Resolver.FindFileByLocation(entry.ID, filename, folderPath)
		if !ok {
			return refs.Ref{}, false
		}
		return refs.Ref{
			Type:        "asset",
			ID:          file.ID,
			Transform:   "url",
			FallbackURL: url,
		}, true
	}

	return refs.Ref{}, false
}

// stripPageTrigger removes a trailing pagination segment (trigger marker
// followed by digits) from a registry-relative URI.
func (rw *Rewriter) stripPageTrigger(uri string) string {
	trigger := rw.PageTrigger
	if trigger == "" {
		trigger = DefaultPageTrigger
	}
	if strings.HasPrefix(trigger, "?") {
		return uri
	}
	re := regexp.MustCompile(`^(?:(.*)/)?` + regexp.QuoteMeta(trigger) + `(\d+)$`)
	return re.ReplaceAllString(uri, "$1")
}
