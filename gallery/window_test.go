package gallery

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func newTestGallery(t *testing.T, n int) (*GalleryWindow, func()) {
	t.Helper()
	a := test.NewApp()
	w := a.NewWindow("test")
	g := New(w)
	g.store.Replace(makeAssets(n))
	g.grid.reload()
	return g, func() { a.Quit() }
}

func TestKeyboardNavigationClampsAtEnds(t *testing.T) {
	g, cleanup := newTestGallery(t, 3)
	defer cleanup()

	g.OpenViewer(0)
	if got := g.store.Selected(); got != 0 {
		t.Fatalf("expected selection 0, got %d", got)
	}

	right := &fyne.KeyEvent{Name: fyne.KeyRight}
	g.typedKeyHook(right)
	g.typedKeyHook(right)
	g.typedKeyHook(right)
	if got := g.store.Selected(); got != 2 {
		t.Fatalf("expected selection clamped at 2, got %d", got)
	}

	left := &fyne.KeyEvent{Name: fyne.KeyLeft}
	g.typedKeyHook(left)
	g.typedKeyHook(left)
	g.typedKeyHook(left)
	if got := g.store.Selected(); got != 0 {
		t.Fatalf("expected selection clamped at 0, got %d", got)
	}
}

func TestEscapeClosesViewerAndRestoresKeyHandler(t *testing.T) {
	g, cleanup := newTestGallery(t, 2)
	defer cleanup()

	previousHookCalls := 0
	g.win.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) { previousHookCalls++ })

	g.OpenViewer(1)
	if !g.viewerOpen {
		t.Fatal("expected viewer open")
	}
	if got := len(g.win.Canvas().Overlays().List()); got != 1 {
		t.Fatalf("expected one overlay, got %d", got)
	}

	g.typedKeyHook(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if g.viewerOpen {
		t.Fatal("expected viewer closed after escape")
	}
	if got := g.store.Selected(); got != -1 {
		t.Fatalf("expected no selection after escape, got %d", got)
	}
	if got := len(g.win.Canvas().Overlays().List()); got != 0 {
		t.Fatalf("expected overlays removed, got %d", got)
	}

	// The previous handler is back in charge.
	g.win.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyDown})
	if previousHookCalls != 1 {
		t.Fatalf("expected original key handler restored, calls = %d", previousHookCalls)
	}
}

func TestViewerRestoresZoomMemoryOnRevisit(t *testing.T) {
	g, cleanup := newTestGallery(t, 3)
	defer cleanup()

	g.OpenViewer(1)
	g.viewer.pz.SetState(ZoomState{Scale: 3, OffsetX: 11, OffsetY: -4})
	g.nextImage()

	// Back to index 1: the remembered parameters come back verbatim.
	g.prevImage()
	got := g.viewer.pz.State()
	if got.Scale != 3 || got.OffsetX != 11 || got.OffsetY != -4 {
		t.Fatalf("expected restored zoom state, got %+v", got)
	}
}

func TestOpenViewerRejectsOutOfBounds(t *testing.T) {
	g, cleanup := newTestGallery(t, 2)
	defer cleanup()

	g.OpenViewer(5)
	if g.viewerOpen {
		t.Fatal("expected viewer to stay closed for invalid index")
	}
	if got := g.store.Selected(); got != -1 {
		t.Fatalf("expected no selection, got %d", got)
	}
}

func TestArrowKeysIgnoredWithoutSelection(t *testing.T) {
	g, cleanup := newTestGallery(t, 2)
	defer cleanup()

	g.typedKeyHook(&fyne.KeyEvent{Name: fyne.KeyRight})
	if got := g.store.Selected(); got != -1 {
		t.Fatalf("expected keys ignored while grid is shown, got selection %d", got)
	}
}

func TestSlideshowIntervalPreference(t *testing.T) {
	g, cleanup := newTestGallery(t, 1)
	defer cleanup()

	if got := g.slideshowInterval(); got != 3*time.Second {
		t.Fatalf("expected default interval 3s, got %v", got)
	}

	g.SetSlideshowInterval(7)
	if got := g.slideshowInterval(); got != 7*time.Second {
		t.Fatalf("expected interval 7s, got %v", got)
	}

	// Sub-second values are rejected, the stored value stays.
	g.SetSlideshowInterval(0)
	if got := g.slideshowInterval(); got != 7*time.Second {
		t.Fatalf("expected interval unchanged, got %v", got)
	}
}

func TestLoadCompletionDismissesOpenViewer(t *testing.T) {
	g, cleanup := newTestGallery(t, 3)
	defer cleanup()

	previousHookCalls := 0
	g.win.Canvas().SetOnTypedKey(func(*fyne.KeyEvent) { previousHookCalls++ })

	g.OpenViewer(1)
	if got := len(g.win.Canvas().Overlays().List()); got != 1 {
		t.Fatalf("expected one overlay, got %d", got)
	}

	// A reload (folder change or watcher rescan) finishing mid-view must not
	// leave the overlay up over released assets.
	g.setBusy(true)
	g.finishLoad(newFakeDir("album"), makeAssets(2), nil)

	if g.viewerOpen {
		t.Fatal("expected viewer dismissed by the reload")
	}
	if got := len(g.win.Canvas().Overlays().List()); got != 0 {
		t.Fatalf("expected overlays removed, got %d", got)
	}
	if got := g.store.Selected(); got != -1 {
		t.Fatalf("expected no selection after reload, got %d", got)
	}
	if g.scanning {
		t.Fatal("expected busy cleared")
	}

	// Key handling is back with the previous owner and the viewer still works.
	g.win.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyDown})
	if previousHookCalls != 1 {
		t.Fatalf("expected original key handler restored, calls = %d", previousHookCalls)
	}
	g.OpenViewer(0)
	if !g.viewerOpen {
		t.Fatal("expected viewer to open after reload")
	}
	g.typedKeyHook(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if g.viewerOpen {
		t.Fatal("expected escape to close the reopened viewer")
	}
}

func TestFolderChosenCancelIsSilent(t *testing.T) {
	g, cleanup := newTestGallery(t, 2)
	defer cleanup()

	before := g.store.Len()
	g.folderChosen(nil, nil)
	g.folderChosen(nil, ErrCancelled)

	if got := g.store.Len(); got != before {
		t.Fatalf("expected gallery untouched on cancel, got %d assets", got)
	}
	if g.scanning {
		t.Fatal("expected no load cycle on cancel")
	}
}
