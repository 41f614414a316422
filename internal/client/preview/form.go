// Package preview owns the generation pipeline of the client: the form
// state, the debounce that turns edits into requests, the single current
// image resource, and the state machine around it.
package preview

import "qrstudio/internal/client/models"

// FormState is the complete set of user-editable generation parameters.
// It is a plain comparable value; regeneration decisions are a pure function
// of an old and a new state.
type FormState struct {
	ContentType     models.ContentType
	Content         string
	Color           string
	Background      string
	Size            int
	Margin          int
	Format          models.Format
	ErrorCorrection models.ErrorCorrection
	BodyStyle       models.BodyStyle
	EyeStyle        models.EyeStyle
	LogoURL         string
	Sticker         string
}

// DefaultForm mirrors the initial state of the hosted editor.
func DefaultForm() FormState {
	return FormState{
		ContentType:     models.ContentURL,
		Content:         "https://example.com",
		Color:           "#000000",
		Background:      "#ffffff",
		Size:            500,
		Margin:          1,
		Format:          models.FormatPNG,
		ErrorCorrection: models.ECMedium,
		BodyStyle:       models.BodySquare,
		EyeStyle:        models.EyeSquare,
	}
}

// ShouldRegenerate reports whether moving from old to new warrants a new
// generation request: any parameter changed and the new state has content.
func ShouldRegenerate(old, new FormState) bool {
	return old != new && new.Content != ""
}

// WithContentType returns a copy of f switched to the given content type,
// with the content reset to the type's default value.
func (f FormState) WithContentType(ct models.ContentType) FormState {
	f.ContentType = ct
	f.Content = ct.DefaultContent()
	return f
}

// Request builds the wire request for the current state. Preview requests
// coerce document formats to png, because the preview surface can only
// display rasterized content; the true target format is requested only at
// download time.
func (f FormState) Request(forPreview bool) models.GenerateRequest {
	format := f.Format
	if forPreview {
		format = format.PreviewFormat()
	}
	return models.GenerateRequest{
		Content:         f.Content,
		Color:           f.Color,
		Background:      f.Background,
		Size:            f.Size,
		Margin:          f.Margin,
		Format:          format,
		ErrorCorrection: f.ErrorCorrection,
		LogoURL:         f.LogoURL,
		BodyStyle:       f.BodyStyle,
		EyeStyle:        f.EyeStyle,
		StickerType:     f.Sticker,
	}
}
