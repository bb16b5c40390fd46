// Package fixture provides a file-backed Resolver and Registry.
// It lets the CLI and the tests run the full pipeline against a small
// YAML description of sites, volumes, entries, and assets instead of a
// live platform.
package fixture

import (
	"fmt"
	"os"

	"github.com/julien-sobczak/the-fieldwriter/internal/refs"
	"gopkg.in/yaml.v3"
)

type Site struct {
	ID      int    `yaml:"id"`
	BaseURL string `yaml:"base_url"`
}

type Volume struct {
	ID      int    `yaml:"id"`
	BaseURL string `yaml:"base_url"`
}

type Entry struct {
	ID     int    `yaml:"id"`
	Handle string `yaml:"handle"` // reference handle of the entry type
	SiteID int    `yaml:"site_id"`
	URI    string `yaml:"uri"` // site-relative, without leading slash
	URL    string `yaml:"url"` // resolved display URL
}

type Asset struct {
	ID         int               `yaml:"id"`
	VolumeID   int               `yaml:"volume_id"`
	Filename   string            `yaml:"filename"`
	FolderPath string            `yaml:"folder_path"` // slash-terminated, "" for the root
	URL        string            `yaml:"url"`
	Transforms map[string]string `yaml:"transforms"` // transform handle -> URL
}

// File is the YAML document describing a content universe.
type File struct {
	Sites   []Site   `yaml:"sites"`
	Volumes []Volume `yaml:"volumes"`
	Entries []Entry  `yaml:"entries"`
	Assets  []Asset  `yaml:"assets"`
}

// Store implements refs.Resolver and refs.Registry over a File.
type Store struct {
	file File
}

func New(file File) *Store {
	return &Store{file: file}
}

// Load reads a fixture file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read fixture file %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid fixture file %s: %w", path, err)
	}
	return New(file), nil
}

/* refs.Registry */

func (s *Store) SiteBaseURLs() []refs.SiteBaseURL {
	var urls []refs.SiteBaseURL
	for _, site := range s.file.Sites {
		urls = append(urls, refs.SiteBaseURL{SiteID: site.ID, BaseURL: site.BaseURL})
	}
	return urls
}

func (s *Store) VolumeBaseURLs() []refs.VolumeBaseURL {
	var urls []refs.VolumeBaseURL
	for _, volume := range s.file.Volumes {
		urls = append(urls, refs.VolumeBaseURL{VolumeID: volume.ID, BaseURL: volume.BaseURL})
	}
	return urls
}

/* refs.Resolver */

// ResolveTag resolves an embedded reference tag to its display value.
// An unresolvable tag falls back to its embedded fallback URL when present,
// and to the input unchanged otherwise.
func (s *Store) ResolveTag(tag string, siteID int) string {
	ref, err := refs.ParseTag(tag)
	if err != nil {
		return tag
	}

	if url, ok := s.resolveRef(ref, siteID); ok {
		return url
	}
	if ref.FallbackURL != "" {
		return ref.FallbackURL
	}
	return tag
}

func (s *Store) resolveRef(ref refs.Ref, siteID int) (string, bool) {
	if ref.SiteID > 0 {
		siteID = ref.SiteID
	}

	if ref.Type == "asset" {
		for _, asset := range s.file.Assets {
			if asset.ID != ref.ID {
				continue
			}
			if ref.Transform != "" && ref.Transform != "url" {
				if url, ok := asset.Transforms[ref.Transform]; ok {
					return url, true
				}
			}
			return asset.URL, true
		}
		return "", false
	}

	for _, entry := range s.file.Entries {
		if entry.ID != ref.ID || entry.Handle != ref.Type {
			continue
		}
		if siteID > 0 && entry.SiteID != siteID {
			continue
		}
		return entry.URL, true
	}
	return "", false
}

func (s *Store) FindContentByURI(uri string, siteID int) (refs.ContentRef, bool) {
	for _, entry := range s.file.Entries {
		if entry.URI == uri && entry.SiteID == siteID {
			return refs.ContentRef{ID: entry.ID, Handle: entry.Handle}, true
		}
	}
	return refs.ContentRef{}, false
}

func (s *Store) FindFileByLocation(volumeID int, filename, folderPath string) (refs.FileRef, bool) {
	for _, asset := range s.file.Assets {
		if asset.VolumeID == volumeID && asset.Filename == filename && asset.FolderPath == folderPath {
			return refs.FileRef{ID: asset.ID}, true
		}
	}
	return refs.FileRef{}, false
}
