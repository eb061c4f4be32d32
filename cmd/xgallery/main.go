package main

import (
	"flag"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/storage"

	"github.com/alexballas/xgallery/gallery"
)

func main() {
	dir := flag.String("dir", "", "folder to open at startup")
	slideshowSecs := flag.Int("slideshow-interval", 0, "slideshow interval in seconds")
	flag.Parse()

	a := app.NewWithID("com.alexballas.xgallery")
	w := a.NewWindow("xgallery")
	w.Resize(fyne.NewSize(1000, 700))

	g := gallery.New(w)
	if *slideshowSecs > 0 {
		g.SetSlideshowInterval(*slideshowSecs)
	}

	if *dir != "" {
		if abs, err := filepath.Abs(*dir); err == nil {
			if lister, err := storage.ListerForURI(storage.NewFileURI(abs)); err == nil {
				g.SetLocation(lister)
			} else {
				fyne.LogError("could not open "+abs, err)
			}
		}
	}

	w.ShowAndRun()
}
