//go:build !android && !ios && (!flatpak || windows || wasm || js)

package gallery

func folderOpenOSOverride(*GalleryWindow) bool {
	return false
}
