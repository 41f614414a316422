package devserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"

	"qrstudio/internal/client/models"
)

// mockModules is the side length of the placeholder pattern. Real QR codes
// start at 21 modules; the stub only needs to look plausible.
const mockModules = 21

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "malformed request body")
		return
	}
	if err := req.Validate(); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	payload, contentType, err := renderMock(req)
	if err != nil {
		s.log.Error(r.Context(), "mock render failed", "error", err)
		writeDetail(w, http.StatusInternalServerError, "could not render QR code")
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(payload)
}

// renderMock produces a deterministic placeholder image in the requested
// format. The module pattern is derived from the request content, so
// different content yields visibly different output.
func renderMock(req models.GenerateRequest) ([]byte, string, error) {
	grid := mockGrid(req.Content, req.ErrorCorrection)

	switch req.Format {
	case models.FormatPNG:
		var buf bytes.Buffer
		if err := png.Encode(&buf, rasterize(grid, req)); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/png", nil

	case models.FormatJPEG:
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, rasterize(grid, req), nil); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/jpeg", nil

	case models.FormatSVG:
		return renderSVG(grid, req), "image/svg+xml", nil

	case models.FormatPDF:
		return renderPDF(req), "application/pdf", nil
	}
	return nil, "", fmt.Errorf("unknown format %q", req.Format)
}

// mockGrid derives a module bitmap from the content. The hash seeds a
// simple PRNG so the pattern is stable for a given content string.
func mockGrid(content string, ec models.ErrorCorrection) [][]bool {
	h := fnv.New64a()
	h.Write([]byte(content))
	h.Write([]byte(ec))
	seed := h.Sum64()

	grid := make([][]bool, mockModules)
	for y := range grid {
		grid[y] = make([]bool, mockModules)
		for x := range grid[y] {
			seed = seed*6364136223846793005 + 1442695040888963407
			grid[y][x] = seed>>62&1 == 1
		}
	}

	// finder squares in three corners, like the real thing
	stampFinder(grid, 0, 0)
	stampFinder(grid, mockModules-7, 0)
	stampFinder(grid, 0, mockModules-7)
	return grid
}

func stampFinder(grid [][]bool, ox, oy int) {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			border := x == 0 || x == 6 || y == 0 || y == 6
			core := x >= 2 && x <= 4 && y >= 2 && y <= 4
			grid[oy+y][ox+x] = border || core
		}
	}
}

func rasterize(grid [][]bool, req models.GenerateRequest) image.Image {
	fg := parseHexColor(req.Color, color.RGBA{A: 0xff})
	bg := parseHexColor(req.Background, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	total := mockModules + 2*req.Margin
	scale := req.Size / total
	if scale < 1 {
		scale = 1
	}
	side := total * scale

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for py := 0; py < side; py++ {
		for px := 0; px < side; px++ {
			mx := px/scale - req.Margin
			my := py/scale - req.Margin
			c := bg
			if mx >= 0 && mx < mockModules && my >= 0 && my < mockModules && grid[my][mx] {
				c = fg
			}
			img.SetRGBA(px, py, c)
		}
	}
	return img
}

func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fallback
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallback
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func renderSVG(grid [][]bool, req models.GenerateRequest) []byte {
	total := mockModules + 2*req.Margin

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		req.Size, req.Size, total, total)
	fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="%s"/>`, total, total, req.Background)
	for y, row := range grid {
		for x, set := range row {
			if set {
				fmt.Fprintf(&buf, `<rect x="%d" y="%d" width="1" height="1" fill="%s"/>`,
					x+req.Margin, y+req.Margin, req.Color)
			}
		}
	}
	buf.WriteString(`</svg>`)
	return buf.Bytes()
}

// renderPDF emits a minimal single-page PDF skeleton. Viewers open it as a
// blank page; the pipeline only cares that it is well-formed and non-tiny.
func renderPDF(req models.GenerateRequest) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	buf.WriteString("1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n")
	buf.WriteString("2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>endobj\n")
	fmt.Fprintf(&buf, "3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 %d %d]>>endobj\n",
		req.Size, req.Size)
	buf.WriteString("trailer<</Root 1 0 R>>\n%%EOF\n")
	return buf.Bytes()
}
