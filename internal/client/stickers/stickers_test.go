package stickers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_GeometryStaysInsideBackground(t *testing.T) {
	require.NotEmpty(t, Catalog)

	for _, c := range Catalog {
		t.Run(c.ID, func(t *testing.T) {
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Preview)
			assert.Greater(t, c.AspectRatio, 0.0)

			// authored percentages must keep the overlay inside the box
			assert.GreaterOrEqual(t, c.QRPos.Top, 0.0)
			assert.GreaterOrEqual(t, c.QRPos.Left, 0.0)
			assert.Greater(t, c.QRPos.Width, 0.0)
			assert.LessOrEqual(t, c.QRPos.Left+c.QRPos.Width, 100.0)
			assert.LessOrEqual(t, c.QRPos.Top, 100.0)
		})
	}
}

func TestFind(t *testing.T) {
	c, ok := Find("grid")
	require.True(t, ok)
	assert.Equal(t, Position{Top: 17, Left: 14, Width: 72}, c.QRPos)

	_, ok = Find("no-such-sticker")
	assert.False(t, ok)
}

func TestCompose_KnownSticker(t *testing.T) {
	l := Compose("beer", "/tmp/preview.png")

	assert.True(t, l.HasSticker)
	assert.Equal(t, "/stickers/beer.svg", l.Background)
	assert.Equal(t, "/tmp/preview.png", l.QRImage)
	assert.Equal(t, Position{Top: 44, Left: 33, Width: 34}, l.QRPos)
	assert.InDelta(t, 0.8, l.AspectRatio, 1e-9)
}

func TestCompose_UnknownSticker_FallsBackToBareQR(t *testing.T) {
	l := Compose("vanished", "/tmp/preview.png")

	assert.False(t, l.HasSticker)
	assert.Empty(t, l.Background)
	assert.Equal(t, "/tmp/preview.png", l.QRImage)
}
