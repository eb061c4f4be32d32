package gallery

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// assetGrid presents every loaded asset as a card. A name filter narrows the
// visible cards without touching the store: filtering is presentation only,
// card ids always map back to store indices.
type assetGrid struct {
	host  Host
	store *Store

	content *container.Scroll
	grid    *widget.GridWrap

	filtered     []int
	activeFilter string
}

func newAssetGrid(host Host, store *Store) *assetGrid {
	g := &assetGrid{
		host:  host,
		store: store,
	}

	g.grid = widget.NewGridWrap(
		func() int { return len(g.filtered) },
		func() fyne.CanvasObject { return newAssetCard(g.host) },
		func(id widget.GridWrapItemID, o fyne.CanvasObject) {
			card := o.(*assetCard)
			if int(id) >= len(g.filtered) {
				return
			}
			idx := g.filtered[int(id)]
			card.setAsset(idx, g.store.Asset(idx))
		},
	)

	g.content = container.NewScroll(g.grid)
	return g
}

// reload recomputes the visible cards after the store's asset list changed.
func (g *assetGrid) reload() {
	g.applyFilter()
	g.refresh()
}

func (g *assetGrid) setFilter(filter string) {
	g.activeFilter = filter
	g.applyFilter()
	g.refresh()
}

func (g *assetGrid) applyFilter() {
	names := make([]string, g.store.Len())
	for i, a := range g.store.Assets() {
		names[i] = a.Name
	}
	g.filtered = filterIndices(names, g.activeFilter)
}

func (g *assetGrid) refresh() {
	g.grid.Refresh()
	g.content.Refresh()
}

// filterIndices returns the indices of names matching query, preserving the
// original order. Empty queries match everything. Fuzzy ranking comes first;
// a plain substring pass catches anything the ranker rejects.
func filterIndices(names []string, query string) []int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		all := make([]int, len(names))
		for i := range names {
			all[i] = i
		}
		return all
	}

	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		out := make([]int, 0, len(matches))
		for i := range names {
			if _, ok := matches[i]; ok {
				out = append(out, i)
			}
		}
		return out
	}

	lower := strings.ToLower(trimmed)
	var out []int
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), lower) {
			out = append(out, i)
		}
	}
	return out
}

// Card implementation

type assetCard struct {
	widget.BaseWidget
	host Host

	index int
	image *canvas.Image
	label *widget.Label
}

func newAssetCard(host Host) *assetCard {
	c := &assetCard{
		host:  host,
		index: -1,
		image: canvas.NewImageFromImage(nil),
		label: widget.NewLabel(""),
	}
	c.image.FillMode = canvas.ImageFillContain
	c.image.ScaleMode = canvas.ImageScaleFastest
	c.label.Alignment = fyne.TextAlignCenter
	c.label.Truncation = fyne.TextTruncateEllipsis
	c.ExtendBaseWidget(c)
	return c
}

func (c *assetCard) setAsset(index int, asset *Asset) {
	if asset == nil {
		return
	}
	c.index = index
	c.label.SetText(asset.Name)
	c.image.Image = asset.Image()
	c.image.Refresh()
}

func (c *assetCard) Tapped(*fyne.PointEvent) {
	if c.index < 0 {
		return
	}
	c.host.OpenViewer(c.index)
}

func (c *assetCard) CreateRenderer() fyne.WidgetRenderer {
	return &assetCardRenderer{card: c}
}

var _ fyne.Tappable = (*assetCard)(nil)

type assetCardRenderer struct {
	card *assetCard
}

func (r *assetCardRenderer) Layout(size fyne.Size) {
	iconSize := fyne.NewSquareSize(cardIconSize)
	r.card.image.Resize(iconSize)
	r.card.image.Move(fyne.NewPos((size.Width-iconSize.Width)/2, theme.Padding()))

	labelHeight := r.card.label.MinSize().Height
	r.card.label.Resize(fyne.NewSize(size.Width, labelHeight))
	r.card.label.Move(fyne.NewPos(0, iconSize.Height+theme.Padding()*1.5))
}

func (r *assetCardRenderer) MinSize() fyne.Size {
	labelHeight := r.card.label.MinSize().Height
	return fyne.NewSize(cardCellWidth, cardIconSize+labelHeight+theme.Padding()*3)
}

func (r *assetCardRenderer) Refresh() {
	r.card.image.Refresh()
	r.card.label.Refresh()
}

func (r *assetCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.card.image, r.card.label}
}

func (r *assetCardRenderer) Destroy() {}
