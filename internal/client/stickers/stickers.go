// Package stickers holds the static catalog of decorative QR backgrounds and
// the pure composition step that places a generated QR image inside one.
//
// The overlay geometry is authored data, not code: top/left/width are
// percentages of the background's rendered box, and AspectRatio fixes the
// background container's width/height ratio.
package stickers

// Position places the QR overlay inside the sticker background.
type Position struct {
	Top   float64
	Left  float64
	Width float64
}

// Config is one catalog entry. Entries are immutable; the catalog is fixed
// at build time and never mutated at runtime.
type Config struct {
	ID          string
	Name        string
	Description string
	Preview     string
	Popular     bool
	QRPos       Position
	AspectRatio float64
}

// Catalog lists the available stickers in display order.
var Catalog = []Config{
	{
		ID:          "grid",
		Name:        "Grid",
		Description: "Modern grid pattern",
		Preview:     "/stickers/grid.svg",
		Popular:     true,
		QRPos:       Position{Top: 17, Left: 14, Width: 72},
		AspectRatio: 600.0 / 700.0,
	},
	{
		ID:          "bubble",
		Name:        "Bubble",
		Description: "Chat message style",
		Preview:     "/stickers/bubble.svg",
		Popular:     true,
		QRPos:       Position{Top: 17, Left: 14, Width: 72},
		AspectRatio: 600.0 / 700.0,
	},
	{
		ID:          "film",
		Name:        "Film",
		Description: "Movie clapperboard",
		Preview:     "/stickers/film.svg",
		QRPos:       Position{Top: 20, Left: 14, Width: 72},
		AspectRatio: 600.0 / 700.0,
	},
	{
		ID:          "book",
		Name:        "Book",
		Description: "Open book",
		Preview:     "/stickers/book.svg",
		QRPos:       Position{Top: 17, Left: 55, Width: 35},
		AspectRatio: 1.4,
	},
	{
		ID:          "beer",
		Name:        "Beer",
		Description: "Pint of beer",
		Preview:     "/stickers/beer.svg",
		QRPos:       Position{Top: 44, Left: 33, Width: 34},
		AspectRatio: 0.8,
	},
}

// Find returns the catalog entry with the given id.
func Find(id string) (Config, bool) {
	for _, c := range Catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Config{}, false
}

// Layout is the result of composing a QR image with a sticker background.
// With no background set, the QR is rendered alone and unstyled.
type Layout struct {
	Background  string
	QRImage     string
	QRPos       Position
	AspectRatio float64
	HasSticker  bool
}

// Compose computes the overlay layout for the given sticker id and QR image
// reference. An id missing from the catalog falls back silently to a
// QR-only layout; the id always originates from the catalog, so a miss is a
// defensive default rather than a reportable error.
func Compose(id, qrImage string) Layout {
	cfg, ok := Find(id)
	if !ok {
		return Layout{QRImage: qrImage}
	}
	return Layout{
		Background:  cfg.Preview,
		QRImage:     qrImage,
		QRPos:       cfg.QRPos,
		AspectRatio: cfg.AspectRatio,
		HasSticker:  true,
	}
}
