package gallery

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
)

const (
	cardIconSize  = 160
	cardCellWidth = cardIconSize * 1.25

	slideshowIntervalKey = "xgallery:slideshowInterval"
	showSidebarKey       = "xgallery:showSidebar"
)

// Host is the surface the grid cards and the sidebar use to drive the
// application.
type Host interface {
	SetLocation(dir fyne.ListableURI)
	OpenViewer(id int)
}

// DiscoveredImage is one image file found by a directory scan, before its
// content has been loaded.
type DiscoveredImage struct {
	Name   string
	Source fyne.URI
}

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
	".bmp":  {},
}

// supportedImage reports whether name carries one of the gallery's image
// extensions. The extension is everything after the final dot, compared
// case-insensitively.
func supportedImage(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := imageExtensions[ext]
	return ok
}

type favoriteItem struct {
	locName string
	locIcon fyne.Resource
	loc     fyne.ListableURI
}
