package gallery

import (
	"fyne.io/fyne/v2/dialog"
)

// showFolderOpen prompts for a gallery root. Sandboxed and mobile builds get
// an OS-native chooser through folderOpenOSOverride; everything else uses the
// in-window folder dialog.
func (g *GalleryWindow) showFolderOpen() {
	if g.scanning {
		return
	}
	if folderOpenOSOverride(g) {
		return
	}

	d := dialog.NewFolderOpen(g.folderChosen, g.win)
	if g.currentDir != nil {
		d.SetLocation(g.currentDir)
	}
	d.Show()
}
