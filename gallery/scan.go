package gallery

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
)

// ErrCancelled marks a load cycle the user backed out of (declined the
// folder prompt). Callers treat it as a silent no-op.
var ErrCancelled = errors.New("folder selection cancelled")

// Scan walks the directory tree rooted at root depth-first and returns every
// file whose extension is in the gallery allow-list, in traversal order. The
// order follows whatever the underlying lister yields; it is not sorted and
// not guaranteed stable across platforms. The full tree is walked before
// anything is returned.
func Scan(root fyne.ListableURI) ([]DiscoveredImage, error) {
	return scanWith(root, storageLister)
}

// listerFor resolves a child URI to a listable directory handle, or reports
// that the child is not a directory.
type listerFor func(fyne.URI) (fyne.ListableURI, bool)

func storageLister(u fyne.URI) (fyne.ListableURI, bool) {
	if isDir, err := storage.CanList(u); err != nil || !isDir {
		return nil, false
	}
	l, err := storage.ListerForURI(u)
	if err != nil {
		return nil, false
	}
	return l, true
}

func scanWith(root fyne.ListableURI, lister listerFor) ([]DiscoveredImage, error) {
	var out []DiscoveredImage
	if err := walkDir(root, lister, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func walkDir(dir fyne.ListableURI, lister listerFor, out *[]DiscoveredImage) error {
	entries, err := dir.List()
	if err != nil {
		return fmt.Errorf("list %s: %w", dir.Name(), err)
	}

	for _, entry := range entries {
		if sub, ok := lister(entry); ok {
			if err := walkDir(sub, lister, out); err != nil {
				return err
			}
			continue
		}
		if supportedImage(entry.Name()) {
			*out = append(*out, DiscoveredImage{Name: entry.Name(), Source: entry})
		}
	}
	return nil
}
