package gallery

import "testing"

func makeAssets(n int) []*Asset {
	assets := make([]*Asset, n)
	for i := range assets {
		assets[i] = &Asset{Name: "img", img: testImage(2, 2)}
	}
	return assets
}

func TestStoreNavigationClampsAtEnds(t *testing.T) {
	s := NewStore()
	s.Replace(makeAssets(3))

	if !s.Open(0) {
		t.Fatal("expected Open(0) to succeed")
	}

	z := defaultZoomState()
	s.Next(z)
	s.Next(z)
	s.Next(z)
	if got := s.Selected(); got != 2 {
		t.Fatalf("expected selection clamped at 2, got %d", got)
	}

	s.Prev(z)
	s.Prev(z)
	s.Prev(z)
	if got := s.Selected(); got != 0 {
		t.Fatalf("expected selection clamped at 0, got %d", got)
	}
}

func TestStoreOpenRejectsOutOfBounds(t *testing.T) {
	s := NewStore()
	s.Replace(makeAssets(2))

	if s.Open(-1) {
		t.Fatal("expected Open(-1) to fail")
	}
	if s.Open(2) {
		t.Fatal("expected Open(2) to fail")
	}
	if got := s.Selected(); got != -1 {
		t.Fatalf("expected no selection, got %d", got)
	}
}

func TestStoreNavigationIgnoredWithoutSelection(t *testing.T) {
	s := NewStore()
	s.Replace(makeAssets(2))

	if got := s.Next(defaultZoomState()); got != -1 {
		t.Fatalf("expected Next without selection to stay at -1, got %d", got)
	}
	if got := s.Prev(defaultZoomState()); got != -1 {
		t.Fatalf("expected Prev without selection to stay at -1, got %d", got)
	}
	if len(s.zoomMemory) != 0 {
		t.Fatal("navigation without selection must not record zoom state")
	}
}

func TestStoreZoomMemorySaveRestore(t *testing.T) {
	s := NewStore()
	s.Replace(makeAssets(3))

	s.Open(1)
	s.Next(ZoomState{Scale: 3, OffsetX: 10, OffsetY: -5})

	z, ok := s.ZoomFor(1)
	if !ok {
		t.Fatal("expected zoom state remembered for index 1")
	}
	if z.Scale != 3 || z.OffsetX != 10 || z.OffsetY != -5 {
		t.Fatalf("unexpected remembered state: %+v", z)
	}

	// Index 2 has never been navigated away from.
	if _, ok := s.ZoomFor(2); ok {
		t.Fatal("expected no zoom state for unvisited index")
	}

	s.Prev(ZoomState{Scale: 2})
	z2, ok := s.ZoomFor(2)
	if !ok || z2.Scale != 2 {
		t.Fatalf("expected scale 2 remembered for index 2, got %+v ok=%v", z2, ok)
	}
}

func TestStoreCloseViewerSavesState(t *testing.T) {
	s := NewStore()
	s.Replace(makeAssets(2))

	s.Open(0)
	s.CloseViewer(ZoomState{Scale: 4})

	if got := s.Selected(); got != -1 {
		t.Fatalf("expected no selection after close, got %d", got)
	}
	z, ok := s.ZoomFor(0)
	if !ok || z.Scale != 4 {
		t.Fatalf("expected scale 4 remembered on close, got %+v ok=%v", z, ok)
	}
}

func TestStoreReplaceReleasesAndClears(t *testing.T) {
	s := NewStore()
	old := makeAssets(3)
	s.Replace(old)
	s.Open(1)
	s.Next(ZoomState{Scale: 5})

	if got := s.LiveRefs(); got != 3 {
		t.Fatalf("expected 3 live refs, got %d", got)
	}

	s.Replace(makeAssets(2))

	for i, a := range old {
		if !a.Released() {
			t.Fatalf("expected old asset %d released", i)
		}
	}
	if got := s.LiveRefs(); got != 2 {
		t.Fatalf("expected 2 live refs after replace, got %d", got)
	}
	if got := s.Selected(); got != -1 {
		t.Fatalf("expected selection reset, got %d", got)
	}
	if _, ok := s.ZoomFor(1); ok {
		t.Fatal("expected zoom memory cleared on replace")
	}
}

func TestStoreClose(t *testing.T) {
	s := NewStore()
	assets := makeAssets(2)
	s.Replace(assets)
	s.Close()

	for i, a := range assets {
		if !a.Released() {
			t.Fatalf("expected asset %d released on close", i)
		}
	}
	if got := s.Len(); got != 0 {
		t.Fatalf("expected empty store after close, got %d", got)
	}
}
