//go:build windows

package gallery

import (
	"os"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
)

// driveMask returns the GetLogicalDrives bitmask, bit 0 = A:.
func driveMask() uint32 {
	dll, err := syscall.LoadLibrary("kernel32.dll")
	if err != nil {
		fyne.LogError("Error loading kernel32.dll", err)
		return 0
	}
	handle, err := syscall.GetProcAddress(dll, "GetLogicalDrives")
	if err != nil {
		fyne.LogError("Could not find GetLogicalDrives call", err)
		return 0
	}

	ret, _, err := syscall.SyscallN(uintptr(handle))
	if err != syscall.Errno(0) {
		fyne.LogError("Error calling GetLogicalDrives", err)
		return 0
	}

	return uint32(ret)
}

// getPlaces lists every mounted drive letter that can actually be browsed.
// Unreadable drives (empty card readers, disconnected network shares) are
// skipped rather than shown as dead entries.
func (s *sidebar) getPlaces() []favoriteItem {
	var places []favoriteItem

	mask := driveMask()
	for i := 0; i < 26; i++ {
		if mask&(1<<i) == 0 {
			continue
		}
		letter := string(rune('A'+i)) + ":"
		l, err := storage.ListerForURI(storage.NewFileURI(letter + string(os.PathSeparator)))
		if err != nil {
			continue
		}
		places = append(places, favoriteItem{
			locName: letter,
			locIcon: theme.StorageIcon(),
			loc:     l,
		})
	}

	return places
}
