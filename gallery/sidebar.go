package gallery

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/FyshOS/fancyfs"
)

// sidebar lists the well-known folders a gallery is likely to live in.
// Selecting an entry loads it as the gallery root.
type sidebar struct {
	host  Host
	list  *widget.List
	items []favoriteItem
}

func newSidebar(host Host) *sidebar {
	s := &sidebar{
		host:  host,
		items: []favoriteItem{},
	}
	s.loadFavorites()

	s.list = widget.NewList(
		func() int { return len(s.items) },
		func() fyne.CanvasObject {
			return container.NewHBox(
				widget.NewIcon(theme.FolderIcon()),
				widget.NewLabel(lang.L("Template")),
			)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id >= len(s.items) {
				return
			}
			item := s.items[id]
			box := o.(*fyne.Container)
			box.Objects[0].(*widget.Icon).SetResource(item.locIcon)
			box.Objects[1].(*widget.Label).SetText(lang.L(item.locName))
		},
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		if id < len(s.items) {
			s.host.SetLocation(s.items[id].loc)
		}
	}

	return s
}

func (s *sidebar) loadFavorites() {
	s.items = []favoriteItem{}

	homeDir, _ := os.UserHomeDir()
	homeURI := storage.NewFileURI(homeDir)
	if l, err := storage.ListerForURI(homeURI); err == nil {
		s.items = append(s.items, favoriteItem{
			locName: "Home",
			locIcon: folderIcon(homeURI, theme.HomeIcon()),
			loc:     l,
		})
	}

	// Pictures first, image-bearing folders only.
	order := []string{"Pictures", "Desktop", "Documents", "Downloads"}
	for _, name := range order {
		uri, err := wellKnownFolder(homeURI, name)
		if err != nil {
			continue
		}
		if l, err := storage.ListerForURI(uri); err == nil {
			s.items = append(s.items, favoriteItem{
				locName: name,
				locIcon: folderIcon(uri, theme.FolderIcon()),
				loc:     l,
			})
		}
	}

	s.items = append(s.items, s.getPlaces()...)
}

// folderIcon returns the desktop environment's folder art when fancyfs can
// resolve it, otherwise fallback.
func folderIcon(uri fyne.URI, fallback fyne.Resource) fyne.Resource {
	details, err := fancyfs.DetailsForFolder(uri)
	if err == nil && details != nil && details.BackgroundResource != nil {
		return details.BackgroundResource
	}
	return fallback
}

// wellKnownFolder resolves a user folder by name, honoring xdg-user-dir on
// platforms that ship it.
func wellKnownFolder(homeURI fyne.URI, name string) (fyne.URI, error) {
	switch runtime.GOOS {
	case "linux", "openbsd", "freebsd", "netbsd":
	default:
		return storage.Child(homeURI, name)
	}

	const cmdName = "xdg-user-dir"
	if _, err := exec.LookPath(cmdName); err != nil {
		return storage.Child(homeURI, name)
	}

	out, err := exec.Command(cmdName, strings.ToUpper(name)).Output()
	if err != nil {
		return storage.Child(homeURI, name)
	}

	cleanPath := filepath.Clean(strings.TrimSpace(string(out)))
	locURI := storage.NewFileURI(cleanPath)

	// xdg-user-dir answers with $HOME for unset entries.
	if locURI.String() == homeURI.String() {
		childPath := filepath.Join(homeURI.Path(), name)
		if resolved, err := filepath.EvalSymlinks(childPath); err == nil {
			return storage.NewFileURI(resolved), nil
		}
		return storage.NewFileURI(childPath), nil
	}

	return locURI, nil
}
