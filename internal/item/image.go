package item

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// PlaceholderImageURL is shown for items without a picture.
	PlaceholderImageURL = "https://via.placeholder.com/400x300/000000/FFFFFF?text=No+Image"
	// ErrorImageURL is the fallback a renderer shows when an image fails to load.
	ErrorImageURL = "https://via.placeholder.com/400x300/000000/FFFFFF?text=Image+Error"

	driveHost         = "drive.google.com"
	thumbnailTemplate = "https://lh3.googleusercontent.com/d/%s=w1000"
)

var driveFileID = regexp.MustCompile(`id=([a-zA-Z0-9_-]+)`)

// ImageURL resolves an image reference from the sheet into a URL a browser
// can load directly. Drive share links are rewritten to a 1000px-wide
// thumbnail; other references pass through unchanged.
func ImageURL(ref string) string {
	if ref == "" {
		return PlaceholderImageURL
	}
	if !strings.Contains(ref, driveHost) {
		return ref
	}
	m := driveFileID.FindStringSubmatch(ref)
	if m == nil {
		return PlaceholderImageURL
	}
	return fmt.Sprintf(thumbnailTemplate, m[1])
}

// View is a Record as handed to a renderer, with its image URL resolved.
type View struct {
	Record
	ImageURL string `json:"image_url"`
}

// NewView resolves the presentation fields of r.
func NewView(r Record) View {
	return View{
		Record:   r,
		ImageURL: ImageURL(r.ImageRef),
	}
}

// Views converts records in order.
func Views(records []Record) []View {
	views := make([]View, len(records))
	for i, r := range records {
		views[i] = NewView(r)
	}
	return views
}
