package gallery

// ZoomState carries the pan/zoom parameters of the full-screen viewer for a
// single image.
type ZoomState struct {
	Scale   float32
	OffsetX float32
	OffsetY float32
}

const (
	minScale  = 0.5
	maxScale  = 10.0
	wheelStep = 0.1
)

func defaultZoomState() ZoomState {
	return ZoomState{Scale: 1}
}

func clampScale(s float32) float32 {
	if s < minScale {
		return minScale
	}
	if s > maxScale {
		return maxScale
	}
	return s
}
