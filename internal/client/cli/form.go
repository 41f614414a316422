package cli

import (
	"context"
	"fmt"
	"strconv"

	"qrstudio/internal/client/models"
	"qrstudio/internal/client/preview"
	"qrstudio/internal/client/stickers"
)

// SetField mutates one form field. Every accepted change re-arms the
// debounce; the preview regenerates once edits quiet down.
func (a *App) SetField(ctx context.Context, field, value string) error {
	switch field {
	case "content":
		a.orch.Update(func(f *preview.FormState) { f.Content = value })

	case "color":
		a.orch.Update(func(f *preview.FormState) { f.Color = value })

	case "background", "bg":
		a.orch.Update(func(f *preview.FormState) { f.Background = value })

	case "size":
		n, err := strconv.Atoi(value)
		if err != nil || n < models.MinSize || n > models.MaxSize {
			return fmt.Errorf("size must be an integer in [%d, %d]", models.MinSize, models.MaxSize)
		}
		a.orch.Update(func(f *preview.FormState) { f.Size = n })

	case "margin":
		n, err := strconv.Atoi(value)
		if err != nil || n < models.MinMargin || n > models.MaxMargin {
			return fmt.Errorf("margin must be an integer in [%d, %d]", models.MinMargin, models.MaxMargin)
		}
		a.orch.Update(func(f *preview.FormState) { f.Margin = n })

	case "format":
		format := models.Format(value)
		if !format.Valid() {
			return fmt.Errorf("format must be one of png, jpeg, svg, pdf")
		}
		a.orch.Update(func(f *preview.FormState) { f.Format = format })

	case "ec":
		ec := models.ErrorCorrection(value)
		if !ec.Valid() {
			return fmt.Errorf("error correction must be one of L, M, Q, H")
		}
		a.orch.Update(func(f *preview.FormState) { f.ErrorCorrection = ec })

	case "body":
		style := models.BodyStyle(value)
		if !style.Valid() {
			return fmt.Errorf("body style must be one of square, circle, rounded, gapped, vertical, horizontal")
		}
		a.orch.Update(func(f *preview.FormState) { f.BodyStyle = style })

	case "eye":
		style := models.EyeStyle(value)
		if !style.Valid() {
			return fmt.Errorf("eye style must be one of square, circle, rounded")
		}
		a.orch.Update(func(f *preview.FormState) { f.EyeStyle = style })

	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// SetContentType switches the content type; the content resets to the
// type's default value as a side effect.
func (a *App) SetContentType(ctx context.Context, value string) error {
	ct := models.ContentType(value)
	if !ct.Valid() {
		return fmt.Errorf("content type must be one of url, text, email, document, review, phone")
	}
	a.orch.SetContentType(ct)
	fmt.Fprintf(a.out, "Content set to %q\n", a.orch.Form().Content)
	return nil
}

// SetSticker selects a sticker from the catalog, or clears it with "none".
func (a *App) SetSticker(ctx context.Context, id string) error {
	if id == "none" {
		a.orch.Update(func(f *preview.FormState) { f.Sticker = "" })
		return nil
	}
	if _, ok := stickers.Find(id); !ok {
		return fmt.Errorf("unknown sticker %q, see 'stickers'", id)
	}
	a.orch.Update(func(f *preview.FormState) { f.Sticker = id })
	return nil
}

// ListStickers prints the catalog.
func (a *App) ListStickers(ctx context.Context) error {
	for _, s := range stickers.Catalog {
		marker := " "
		if s.Popular {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-8s %s\n", marker, s.ID, s.Description)
	}
	return nil
}

// Show prints the whole form plus the pipeline state.
func (a *App) Show(ctx context.Context) error {
	f := a.orch.Form()
	state, errMsg := a.orch.Status()

	fmt.Fprintf(a.out, "type:       %s\n", f.ContentType)
	fmt.Fprintf(a.out, "content:    %s\n", f.Content)
	fmt.Fprintf(a.out, "color:      %s on %s\n", f.Color, f.Background)
	fmt.Fprintf(a.out, "size:       %d px, margin %d\n", f.Size, f.Margin)
	fmt.Fprintf(a.out, "format:     %s (ec %s)\n", f.Format, f.ErrorCorrection)
	fmt.Fprintf(a.out, "style:      body %s, eyes %s\n", f.BodyStyle, f.EyeStyle)
	if f.LogoURL != "" {
		fmt.Fprintf(a.out, "logo:       %s\n", f.LogoURL)
	}
	if f.Sticker != "" {
		fmt.Fprintf(a.out, "sticker:    %s\n", f.Sticker)
	}
	fmt.Fprintf(a.out, "state:      %s\n", state)
	if errMsg != "" {
		fmt.Fprintf(a.out, "error:      %s\n", errMsg)
	}
	if path := a.orch.PreviewPath(); path != "" {
		fmt.Fprintf(a.out, "preview:    %s\n", path)
		if l := a.orch.Layout(); l.HasSticker {
			fmt.Fprintf(a.out, "overlay:    %s at %.0f%%/%.0f%%, width %.0f%% (ratio %.2f)\n",
				l.Background, l.QRPos.Top, l.QRPos.Left, l.QRPos.Width, l.AspectRatio)
		}
	}
	return nil
}
