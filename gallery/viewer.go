package gallery

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const defaultSlideshowInterval = 3 * time.Second

// imageViewer is the full-screen overlay shown while an image is selected.
// It seeds the pan/zoom widget from the store's zoom memory and writes the
// current parameters back on every navigation away.
type imageViewer struct {
	g *GalleryWindow

	root fyne.CanvasObject
	pz   *panZoomViewer

	name    *widget.Label
	counter *widget.Label

	slideBtn *widget.Button

	slideshowTicker *time.Ticker
	slideshowStop   chan struct{}
}

func newImageViewer(g *GalleryWindow) *imageViewer {
	v := &imageViewer{
		g:  g,
		pz: newPanZoomViewer(),
	}

	v.name = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	v.name.Truncation = fyne.TextTruncateEllipsis
	v.counter = widget.NewLabel("")

	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), g.closeViewer)
	prevBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), g.prevImage)
	nextBtn := widget.NewButtonWithIcon("", theme.NavigateNextIcon(), g.nextImage)
	fitBtn := widget.NewButtonWithIcon("", theme.ViewRestoreIcon(), func() {
		v.pz.CenterFit()
	})
	v.slideBtn = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), v.toggleSlideshow)

	controls := container.NewHBox(prevBtn, nextBtn, fitBtn, v.slideBtn, closeBtn)
	topBar := container.NewBorder(nil, nil, nil, container.NewHBox(v.counter, controls), v.name)

	v.root = container.NewStack(v.pz, container.NewBorder(topBar, nil, nil, nil))
	return v
}

// showCurrent points the viewer at the store's selected index. Remembered
// parameters win over the default fit; the one-time center/fit runs only
// when the index has never been viewed.
func (v *imageViewer) showCurrent() {
	idx := v.g.store.Selected()
	asset := v.g.store.Asset(idx)
	if asset == nil {
		return
	}

	if z, ok := v.g.store.ZoomFor(idx); ok {
		v.pz.SetImage(asset.Image(), false)
		v.pz.SetState(z)
	} else {
		v.pz.SetState(defaultZoomState())
		v.pz.SetImage(asset.Image(), true)
	}

	v.name.SetText(asset.Name)
	v.counter.SetText(fmt.Sprintf("%d / %d", idx+1, v.g.store.Len()))
}

func (v *imageViewer) toggleSlideshow() {
	if v.slideshowTicker != nil {
		v.stopSlideshow()
		return
	}
	v.startSlideshow()
}

func (v *imageViewer) startSlideshow() {
	if v.slideshowTicker != nil {
		return
	}
	v.slideshowTicker = time.NewTicker(v.g.slideshowInterval())
	v.slideshowStop = make(chan struct{})
	v.slideBtn.SetIcon(theme.MediaPauseIcon())

	ticker := v.slideshowTicker
	stop := v.slideshowStop
	go func() {
		for {
			select {
			case <-ticker.C:
				fyne.Do(v.slideshowTick)
			case <-stop:
				return
			}
		}
	}()
}

func (v *imageViewer) slideshowTick() {
	before := v.g.store.Selected()
	if before < 0 {
		v.stopSlideshow()
		return
	}
	v.g.nextImage()
	// Navigation clamps at the last index; stop instead of spinning there.
	if v.g.store.Selected() == before {
		v.stopSlideshow()
	}
}

func (v *imageViewer) stopSlideshow() {
	if v.slideshowTicker == nil {
		return
	}
	v.slideshowTicker.Stop()
	v.slideshowTicker = nil
	close(v.slideshowStop)
	v.slideshowStop = nil
	v.slideBtn.SetIcon(theme.MediaPlayIcon())
}
