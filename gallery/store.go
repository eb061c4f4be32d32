package gallery

// Store owns the state of one gallery session: the ordered asset list, the
// viewer selection and the per-index zoom memory. It is mutated only on the
// UI thread between event-loop turns, so it carries no locking of its own.
type Store struct {
	assets     []*Asset
	selected   int // -1 when no image is open
	zoomMemory map[int]ZoomState
}

func NewStore() *Store {
	return &Store{
		selected:   -1,
		zoomMemory: make(map[int]ZoomState),
	}
}

// Assets returns the current asset list in discovery order.
func (s *Store) Assets() []*Asset {
	return s.assets
}

func (s *Store) Len() int {
	return len(s.assets)
}

// Asset returns the asset at index i, or nil when i is out of bounds.
func (s *Store) Asset(i int) *Asset {
	if i < 0 || i >= len(s.assets) {
		return nil
	}
	return s.assets[i]
}

// Selected returns the index of the open image, or -1 when the grid is shown.
func (s *Store) Selected() int {
	return s.selected
}

// Replace swaps in a freshly loaded asset list. Every previously held asset
// is released, the zoom memory is cleared and the selection reset. This is
// the only place besides Close where assets are released; per-item release
// never happens while an image is displayed elsewhere.
func (s *Store) Replace(assets []*Asset) {
	s.releaseAll()
	s.assets = assets
	s.selected = -1
	s.zoomMemory = make(map[int]ZoomState)
}

// Close releases every held asset. Called on session teardown.
func (s *Store) Close() {
	s.releaseAll()
	s.assets = nil
	s.selected = -1
	s.zoomMemory = make(map[int]ZoomState)
}

func (s *Store) releaseAll() {
	for _, a := range s.assets {
		a.Release()
	}
}

// LiveRefs counts assets whose display reference has not been released.
func (s *Store) LiveRefs() int {
	n := 0
	for _, a := range s.assets {
		if !a.Released() {
			n++
		}
	}
	return n
}

// Open selects index i for the full-screen viewer. Out-of-bounds indices are
// rejected.
func (s *Store) Open(i int) bool {
	if i < 0 || i >= len(s.assets) {
		return false
	}
	s.selected = i
	return true
}

// Next advances the selection, clamped to the last index. The viewer
// parameters of the image being navigated away from are stored first, so a
// later Open of that index restores them.
func (s *Store) Next(current ZoomState) int {
	if s.selected < 0 {
		return s.selected
	}
	s.zoomMemory[s.selected] = current
	if s.selected < len(s.assets)-1 {
		s.selected++
	}
	return s.selected
}

// Prev retreats the selection, clamped to index 0. Same pre-transition save
// as Next.
func (s *Store) Prev(current ZoomState) int {
	if s.selected < 0 {
		return s.selected
	}
	s.zoomMemory[s.selected] = current
	if s.selected > 0 {
		s.selected--
	}
	return s.selected
}

// CloseViewer saves the parameters of the open image and returns to the grid.
func (s *Store) CloseViewer(current ZoomState) {
	if s.selected < 0 {
		return
	}
	s.zoomMemory[s.selected] = current
	s.selected = -1
}

// ZoomFor returns the remembered viewer parameters for index i. The second
// return distinguishes "never viewed" from a remembered default; callers must
// not conflate the two.
func (s *Store) ZoomFor(i int) (ZoomState, bool) {
	z, ok := s.zoomMemory[i]
	return z, ok
}
