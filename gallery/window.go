package gallery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// GalleryWindow wires the scanner, store, grid and viewer into one window.
// All state mutation happens on the UI thread; background work hands its
// results over through fyne.Do.
type GalleryWindow struct {
	win   fyne.Window
	store *Store

	grid    *assetGrid
	sidebar *sidebar
	viewer  *imageViewer

	openBtn     *widget.Button
	searchEntry *widget.Entry
	busy        *widget.Activity
	status      *widget.Label

	scanning   bool
	currentDir fyne.ListableURI
	watcher    *DirWatcher

	originalOnTypedKey func(*fyne.KeyEvent)
	viewerOpen         bool
}

// New builds the gallery UI inside win and sets its content.
func New(win fyne.Window) *GalleryWindow {
	g := &GalleryWindow{
		win:   win,
		store: NewStore(),
	}

	g.grid = newAssetGrid(g, g.store)
	g.sidebar = newSidebar(g)
	g.viewer = newImageViewer(g)

	win.SetContent(g.makeUI())
	win.SetCloseIntercept(func() {
		g.teardown()
		win.Close()
	})
	return g
}

func (g *GalleryWindow) makeUI() fyne.CanvasObject {
	g.openBtn = widget.NewButtonWithIcon("Open Folder", theme.FolderOpenIcon(), g.showFolderOpen)
	g.openBtn.Importance = widget.HighImportance

	g.searchEntry = widget.NewEntry()
	g.searchEntry.SetPlaceHolder("Filter by name...")
	g.searchEntry.OnChanged = func(s string) {
		g.grid.setFilter(s)
	}

	g.busy = widget.NewActivity()
	g.busy.Hide()

	g.status = widget.NewLabel("No folder loaded")
	g.status.Truncation = fyne.TextTruncateEllipsis

	sidePane := container.NewPadded(g.sidebar.list)
	prefs := fyne.CurrentApp().Preferences()
	if !prefs.BoolWithFallback(showSidebarKey, true) {
		sidePane.Hide()
	}
	sidebarBtn := widget.NewButtonWithIcon("", theme.MenuIcon(), func() {
		if sidePane.Visible() {
			sidePane.Hide()
		} else {
			sidePane.Show()
		}
		prefs.SetBool(showSidebarKey, sidePane.Visible())
	})

	searchWrapper := container.NewGridWrap(fyne.NewSize(220, 36), g.searchEntry)
	left := container.NewHBox(sidebarBtn, g.openBtn)
	topBar := container.NewBorder(nil, nil, left, container.NewHBox(searchWrapper, g.busy), nil)
	header := container.NewVBox(topBar, widget.NewSeparator())

	footer := container.NewVBox(widget.NewSeparator(), g.status)
	body := container.NewBorder(nil, nil, sidePane, nil, g.grid.content)
	return container.NewBorder(header, footer, nil, nil, body)
}

// SetLocation starts a full load cycle for dir: recursive scan, concurrent
// materialization, then an atomic swap of the asset list. The grid only ever
// observes the fully joined result. A cycle already in flight wins; there is
// no concurrent-scan path.
func (g *GalleryWindow) SetLocation(dir fyne.ListableURI) {
	if g.scanning || dir == nil {
		return
	}
	g.setBusy(true)

	go func() {
		discovered, err := Scan(dir)
		var assets []*Asset
		if err == nil {
			assets, err = Materialize(context.Background(), discovered)
		}

		fyne.Do(func() {
			g.finishLoad(dir, assets, err)
		})
	}()
}

// finishLoad applies a completed load cycle on the UI thread. An open viewer
// is dismissed before the swap: its asset is about to be released and the
// selection reset, so leaving the overlay up would strand it over dead
// pixels with no live selection to close it through.
func (g *GalleryWindow) finishLoad(dir fyne.ListableURI, assets []*Asset, err error) {
	g.setBusy(false)
	if err != nil {
		// Previous gallery state stays untouched on failure.
		g.showLoadError(err)
		return
	}
	g.dismissViewer()
	g.currentDir = dir
	g.store.Replace(assets)
	g.grid.reload()
	g.searchEntry.SetText("")
	g.status.SetText(fmt.Sprintf("%d images in %s", g.store.Len(), dir.Name()))
	g.restartWatcher(dir)
}

func (g *GalleryWindow) setBusy(busy bool) {
	g.scanning = busy
	if busy {
		g.openBtn.Disable()
		g.busy.Show()
		g.busy.Start()
		return
	}
	g.busy.Stop()
	g.busy.Hide()
	g.openBtn.Enable()
}

func (g *GalleryWindow) showLoadError(err error) {
	fyne.LogError("folder load failed", err)
	dialog.ShowError(fmt.Errorf("local file access failed: %w", err), g.win)
}

// folderChosen handles the result of the folder prompt. Cancellation is
// normalized to ErrCancelled: fyne's dialog reports it as (nil, nil), the
// portal path already passes the sentinel. Either way it is a silent no-op.
func (g *GalleryWindow) folderChosen(dir fyne.ListableURI, err error) {
	if err == nil && dir == nil {
		err = ErrCancelled
	}
	if errors.Is(err, ErrCancelled) {
		return
	}
	if err != nil {
		g.showLoadError(err)
		return
	}
	g.SetLocation(dir)
}

// Viewer navigation

// OpenViewer opens the full-screen viewer at the grid card's store index.
func (g *GalleryWindow) OpenViewer(id int) {
	if !g.store.Open(id) {
		return
	}
	g.viewer.showCurrent()
	if !g.viewerOpen {
		g.viewerOpen = true
		g.win.Canvas().Overlays().Add(g.viewer.root)
		g.viewer.root.Resize(g.win.Canvas().Size())

		// Capture arrows and escape only while a selection exists.
		g.originalOnTypedKey = g.win.Canvas().OnTypedKey()
		g.win.Canvas().SetOnTypedKey(g.typedKeyHook)
	}
}

func (g *GalleryWindow) nextImage() {
	if g.store.Selected() < 0 {
		return
	}
	g.store.Next(g.viewer.pz.State())
	g.viewer.showCurrent()
}

func (g *GalleryWindow) prevImage() {
	if g.store.Selected() < 0 {
		return
	}
	g.store.Prev(g.viewer.pz.State())
	g.viewer.showCurrent()
}

func (g *GalleryWindow) closeViewer() {
	if g.store.Selected() >= 0 {
		g.store.CloseViewer(g.viewer.pz.State())
	}
	g.dismissViewer()
}

// dismissViewer tears the overlay down without recording viewer state. It is
// not gated on a live selection so the overlay can never outlive the asset
// list it was showing.
func (g *GalleryWindow) dismissViewer() {
	g.viewer.stopSlideshow()
	if !g.viewerOpen {
		return
	}
	g.viewerOpen = false
	g.win.Canvas().Overlays().Remove(g.viewer.root)
	g.win.Canvas().SetOnTypedKey(g.originalOnTypedKey)
	g.originalOnTypedKey = nil
}

func (g *GalleryWindow) typedKeyHook(ev *fyne.KeyEvent) {
	if g.store.Selected() < 0 {
		if g.originalOnTypedKey != nil {
			g.originalOnTypedKey(ev)
		}
		return
	}

	switch ev.Name {
	case fyne.KeyRight:
		g.nextImage()
	case fyne.KeyLeft:
		g.prevImage()
	case fyne.KeyEscape:
		g.closeViewer()
	case fyne.KeySpace:
		g.viewer.toggleSlideshow()
	}
}

// Watching and teardown

func (g *GalleryWindow) restartWatcher(dir fyne.ListableURI) {
	if g.watcher != nil {
		g.watcher.Stop()
		g.watcher = nil
	}

	w, err := NewDirWatcher(dir, func() {
		fyne.Do(func() {
			if g.scanning || g.currentDir == nil {
				return
			}
			g.SetLocation(g.currentDir)
		})
	})
	if err != nil {
		// Non-file locations and exotic platforms simply go unwatched.
		return
	}
	g.watcher = w
}

// SetSlideshowInterval persists the slideshow interval in whole seconds.
// Values below one second are ignored.
func (g *GalleryWindow) SetSlideshowInterval(secs int) {
	if secs < 1 {
		return
	}
	fyne.CurrentApp().Preferences().SetInt(slideshowIntervalKey, secs)
}

func (g *GalleryWindow) slideshowInterval() time.Duration {
	fallback := int(defaultSlideshowInterval / time.Second)
	secs := fyne.CurrentApp().Preferences().IntWithFallback(slideshowIntervalKey, fallback)
	if secs < 1 {
		secs = 1
	}
	return time.Duration(secs) * time.Second
}

func (g *GalleryWindow) teardown() {
	g.viewer.stopSlideshow()
	if g.watcher != nil {
		g.watcher.Stop()
		g.watcher = nil
	}
	g.store.Close()
}
