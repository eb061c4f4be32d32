//go:build !windows && !android && !ios && !wasm && !js

package gallery

import (
	"os"
	"path/filepath"

	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
)

// getPlaces returns the filesystem root plus any mounted removable media,
// where camera imports usually land.
func (s *sidebar) getPlaces() []favoriteItem {
	var places []favoriteItem

	if l, err := storage.ListerForURI(storage.NewFileURI("/")); err == nil {
		places = append(places, favoriteItem{
			locName: "Computer",
			locIcon: theme.ComputerIcon(),
			loc:     l,
		})
	}

	user := os.Getenv("USER")
	for _, base := range []string{"/run/media", "/media"} {
		dir := base
		if user != "" {
			dir = filepath.Join(base, user)
		}
		mounts, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, m := range mounts {
			if !m.IsDir() {
				continue
			}
			l, err := storage.ListerForURI(storage.NewFileURI(filepath.Join(dir, m.Name())))
			if err != nil {
				continue
			}
			places = append(places, favoriteItem{
				locName: m.Name(),
				locIcon: theme.StorageIcon(),
				loc:     l,
			})
		}
	}

	return places
}
