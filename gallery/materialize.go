package gallery

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	// The allow-list includes webp and bmp, which the stdlib cannot decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"golang.org/x/sync/errgroup"
)

// Asset is one loaded gallery image. The decoded pixels act as the display
// reference: they are created once by Materialize and released exactly once
// by the store, on list replacement or teardown.
type Asset struct {
	Name   string
	Source fyne.URI

	mu       sync.Mutex
	img      image.Image
	released bool
}

// Image returns the decoded pixels, or nil once the asset has been released.
func (a *Asset) Image() image.Image {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.released {
		return nil
	}
	return a.img
}

// Release drops the decoded pixels. Releasing twice is a no-op.
func (a *Asset) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.released = true
	a.img = nil
}

// Released reports whether Release has been called.
func (a *Asset) Released() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.released
}

// Materialize decodes every discovered file concurrently and returns the
// loaded assets in discovery order. The batch is all-or-nothing: if any
// single file fails to open or decode, the whole load fails and no assets
// are returned.
func Materialize(ctx context.Context, discovered []DiscoveredImage) ([]*Asset, error) {
	return materializeWith(ctx, discovered, storageOpener)
}

type contentOpener func(fyne.URI) (io.ReadCloser, error)

func storageOpener(u fyne.URI) (io.ReadCloser, error) {
	return storage.Reader(u)
}

func materializeWith(ctx context.Context, discovered []DiscoveredImage, open contentOpener) ([]*Asset, error) {
	assets := make([]*Asset, len(discovered))

	g, ctx := errgroup.WithContext(ctx)
	for i, d := range discovered {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r, err := open(d.Source)
			if err != nil {
				return fmt.Errorf("open %s: %w", d.Name, err)
			}
			defer r.Close()

			img, _, err := image.Decode(r)
			if err != nil {
				return fmt.Errorf("decode %s: %w", d.Name, err)
			}

			assets[i] = &Asset{Name: d.Name, Source: d.Source, img: img}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}
