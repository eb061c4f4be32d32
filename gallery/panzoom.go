package gallery

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// panZoomViewer shows a single image at an adjustable scale and offset.
// Dragging pans, the wheel zooms in wheelStep increments between minScale
// and maxScale. A pending center/fit request is applied on the next layout,
// once the widget knows both its own size and the image dimensions.
type panZoomViewer struct {
	widget.BaseWidget

	bg  *canvas.Rectangle
	img *canvas.Image

	state      ZoomState
	pendingFit bool
	accDY      float32

	naturalW float32
	naturalH float32
}

func newPanZoomViewer() *panZoomViewer {
	v := &panZoomViewer{
		bg:    canvas.NewRectangle(color.Black),
		img:   canvas.NewImageFromImage(nil),
		state: defaultZoomState(),
	}
	v.img.FillMode = canvas.ImageFillStretch
	v.img.ScaleMode = canvas.ImageScaleFastest
	v.ExtendBaseWidget(v)
	return v
}

// SetImage replaces the displayed image. When fit is true a center/fit is
// performed after the next layout; callers pass fit only on the first view
// of an index, never when restoring remembered parameters.
func (v *panZoomViewer) SetImage(img image.Image, fit bool) {
	v.img.Image = img
	v.naturalW, v.naturalH = 0, 0
	if img != nil {
		b := img.Bounds()
		v.naturalW = float32(b.Dx())
		v.naturalH = float32(b.Dy())
	}
	v.pendingFit = fit
	v.accDY = 0
	v.Refresh()
}

func (v *panZoomViewer) SetState(z ZoomState) {
	z.Scale = clampScale(z.Scale)
	v.state = z
	v.pendingFit = false
	v.Refresh()
}

func (v *panZoomViewer) State() ZoomState {
	return v.state
}

// CenterFit scales the image to fit the current widget size and centers it.
func (v *panZoomViewer) CenterFit() {
	v.applyFit(v.Size())
	v.Refresh()
}

func (v *panZoomViewer) applyFit(size fyne.Size) {
	v.pendingFit = false
	if v.naturalW <= 0 || v.naturalH <= 0 || size.Width <= 0 || size.Height <= 0 {
		return
	}
	scale := size.Width / v.naturalW
	if s := size.Height / v.naturalH; s < scale {
		scale = s
	}
	v.state = ZoomState{Scale: clampScale(scale)}
}

func (v *panZoomViewer) Dragged(e *fyne.DragEvent) {
	v.state.OffsetX += e.Dragged.DX
	v.state.OffsetY += e.Dragged.DY
	v.Refresh()
}

func (v *panZoomViewer) DragEnd() {}

func (v *panZoomViewer) Scrolled(e *fyne.ScrollEvent) {
	// Wheel deltas are scaled; ~40 per notch on typical mice. Accumulate so
	// touchpads don't zoom too quickly.
	const notch = float32(40)

	if math.IsNaN(float64(e.Scrolled.DY)) || math.IsInf(float64(e.Scrolled.DY), 0) {
		return
	}

	v.accDY += e.Scrolled.DY

	var steps int
	for v.accDY >= notch {
		steps++
		v.accDY -= notch
	}
	for v.accDY <= -notch {
		steps--
		v.accDY += notch
	}

	if steps == 0 {
		return
	}
	v.state.Scale = clampScale(v.state.Scale + float32(steps)*wheelStep)
	v.Refresh()
}

func (v *panZoomViewer) CreateRenderer() fyne.WidgetRenderer {
	return &panZoomRenderer{v: v}
}

var (
	_ fyne.Draggable  = (*panZoomViewer)(nil)
	_ fyne.Scrollable = (*panZoomViewer)(nil)
)

type panZoomRenderer struct {
	v *panZoomViewer
}

func (r *panZoomRenderer) Layout(size fyne.Size) {
	v := r.v
	v.bg.Resize(size)
	v.bg.Move(fyne.NewPos(0, 0))

	if v.pendingFit {
		v.applyFit(size)
	}

	if v.naturalW <= 0 || v.naturalH <= 0 {
		v.img.Resize(fyne.NewSize(0, 0))
		return
	}

	scaledW := v.naturalW * v.state.Scale
	scaledH := v.naturalH * v.state.Scale
	x := size.Width/2 - scaledW/2 + v.state.OffsetX
	y := size.Height/2 - scaledH/2 + v.state.OffsetY

	v.img.Resize(fyne.NewSize(scaledW, scaledH))
	v.img.Move(fyne.NewPos(x, y))
}

func (r *panZoomRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *panZoomRenderer) Refresh() {
	r.Layout(r.v.Size())
	r.v.bg.Refresh()
	r.v.img.Refresh()
}

func (r *panZoomRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.v.bg, r.v.img}
}

func (r *panZoomRenderer) Destroy() {}
