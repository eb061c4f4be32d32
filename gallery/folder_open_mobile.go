//go:build android || ios

package gallery

import (
	"fyne.io/fyne/v2"
	fynedialog "fyne.io/fyne/v2/dialog"
)

func folderOpenOSOverride(g *GalleryWindow) bool {
	d := fynedialog.NewFolderOpen(func(dir fyne.ListableURI, err error) {
		fyne.Do(func() {
			g.folderChosen(dir, err)
		})
	}, g.win)
	d.Show()
	return true
}
