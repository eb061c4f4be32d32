//go:build flatpak && !windows && !android && !ios && !wasm && !js

package gallery

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/storage"

	"github.com/rymdport/portal"
	"github.com/rymdport/portal/filechooser"
)

// folderOpenOSOverride routes the folder prompt through the XDG desktop
// portal so sandboxed builds get real filesystem access.
func folderOpenOSOverride(g *GalleryWindow) bool {
	options := &filechooser.OpenFileOptions{
		AcceptLabel: lang.L("Open"),
		Directory:   true,
	}
	if g.currentDir != nil {
		options.CurrentFolder = g.currentDir.Path()
	}

	windowHandle := windowHandleForPortal(g.win)

	go func() {
		title := lang.L("Open") + " " + lang.L("Folder")
		uris, err := filechooser.OpenFile(windowHandle, title, options)
		if err != nil {
			fyne.Do(func() {
				g.folderChosen(nil, err)
			})
			return
		}
		if len(uris) == 0 {
			// User dismissed the portal dialog.
			fyne.Do(func() {
				g.folderChosen(nil, ErrCancelled)
			})
			return
		}

		uri, err := storage.ParseURI(uris[0])
		var dir fyne.ListableURI
		if err == nil {
			dir, err = storage.ListerForURI(uri)
		}
		fyne.Do(func() {
			g.folderChosen(dir, err)
		})
	}()

	return true
}

func windowHandleForPortal(window fyne.Window) string {
	native, ok := window.(driver.NativeWindow)
	if !ok {
		return ""
	}

	windowHandle := ""
	native.RunNative(func(context any) {
		if x11, ok := context.(driver.X11WindowContext); ok {
			windowHandle = portal.FormatX11WindowHandle(x11.WindowHandle)
		}
	})
	return windowHandle
}
