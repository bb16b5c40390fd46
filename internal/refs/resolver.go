package refs

// ContentRef identifies a content item owned by a site.
type ContentRef struct {
	ID int
	// Handle is the reference handle of the item's type (ex: "entry").
	// Items whose type exposes no handle cannot be referenced.
	Handle string
}

// FileRef identifies a file stored in a volume.
type FileRef struct {
	ID int
}

// Resolver resolves reference tags and locates the content behind URLs.
// Implementations are supplied by the host platform; the transformation
// engine never reaches for ambient state.
type Resolver interface {
	// ResolveTag returns the resolved display value for an embedded reference
	// tag (ex: "{entry:5:url}" or "{asset:42:url||/files/a.png}").
	// It returns the input unchanged when the tag cannot be resolved.
	// siteID gives the site context; 0 means no specific site.
	ResolveTag(tag string, siteID int) string

	// FindContentByURI returns the content item addressed by a site-relative URI.
	FindContentByURI(uri string, siteID int) (ContentRef, bool)

	// FindFileByLocation returns the file matching a filename and folder path
	// inside a volume. folderPath is slash-terminated, or empty for the root.
	FindFileByLocation(volumeID int, filename, folderPath string) (FileRef, bool)
}

// SiteBaseURL maps a site to its base URL.
type SiteBaseURL struct {
	SiteID  int
	BaseURL string
}

// VolumeBaseURL maps a file-storage volume to its root URL.
type VolumeBaseURL struct {
	VolumeID int
	BaseURL  string
}

// Registry lists the base URLs of every known content domain.
type Registry interface {
	SiteBaseURLs() []SiteBaseURL
	VolumeBaseURLs() []VolumeBaseURL
}
