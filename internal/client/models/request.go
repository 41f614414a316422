// Package models holds the wire-level DTOs and parameter enums of the
// QR Studio backend API, plus validation of generation parameters.
package models

import "fmt"

// Format is an output format accepted by the generation endpoint.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
)

// Valid reports whether f is one of the recognized formats.
func (f Format) Valid() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatSVG, FormatPDF:
		return true
	}
	return false
}

// Extension returns the file extension used when saving, e.g. "jpg" for jpeg.
func (f Format) Extension() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// IsDocument reports whether the format is a document type that the preview
// surface cannot display directly.
func (f Format) IsDocument() bool {
	return f == FormatPDF
}

// IsVector reports whether the format is the vector type. Vector output
// cannot carry a bitmap sticker overlay.
func (f Format) IsVector() bool {
	return f == FormatSVG
}

// PreviewFormat returns the format to request for on-screen previews:
// document formats are coerced to png, everything else passes through.
func (f Format) PreviewFormat() Format {
	if f.IsDocument() {
		return FormatPNG
	}
	return f
}

// ErrorCorrection is a QR redundancy tier.
type ErrorCorrection string

const (
	ECLow      ErrorCorrection = "L"
	ECMedium   ErrorCorrection = "M"
	ECQuartile ErrorCorrection = "Q"
	ECHigh     ErrorCorrection = "H"
)

func (e ErrorCorrection) Valid() bool {
	switch e {
	case ECLow, ECMedium, ECQuartile, ECHigh:
		return true
	}
	return false
}

// BodyStyle shapes the QR body modules.
type BodyStyle string

const (
	BodySquare     BodyStyle = "square"
	BodyCircle     BodyStyle = "circle"
	BodyRounded    BodyStyle = "rounded"
	BodyGapped     BodyStyle = "gapped"
	BodyVertical   BodyStyle = "vertical"
	BodyHorizontal BodyStyle = "horizontal"
)

func (b BodyStyle) Valid() bool {
	switch b {
	case BodySquare, BodyCircle, BodyRounded, BodyGapped, BodyVertical, BodyHorizontal:
		return true
	}
	return false
}

// EyeStyle shapes the QR finder-pattern modules.
type EyeStyle string

const (
	EyeSquare  EyeStyle = "square"
	EyeCircle  EyeStyle = "circle"
	EyeRounded EyeStyle = "rounded"
)

func (e EyeStyle) Valid() bool {
	switch e {
	case EyeSquare, EyeCircle, EyeRounded:
		return true
	}
	return false
}

// Size and margin bounds accepted by the backend.
const (
	MinSize   = 100
	MaxSize   = 1000
	MinMargin = 0
	MaxMargin = 20
)

// GenerateRequest is the JSON body of POST /api/v1/qrcode/generate.
type GenerateRequest struct {
	Content         string          `json:"content"`
	Color           string          `json:"color"`
	Background      string          `json:"background"`
	Size            int             `json:"size"`
	Margin          int             `json:"margin"`
	Format          Format          `json:"format"`
	ErrorCorrection ErrorCorrection `json:"error_correction"`
	LogoURL         string          `json:"logo_url,omitempty"`
	BodyStyle       BodyStyle       `json:"body_style"`
	EyeStyle        EyeStyle        `json:"eye_style"`
	StickerType     string          `json:"sticker_type,omitempty"`
}

// Validate checks the request against the backend's documented parameter
// ranges. Content must be non-empty; a request without content must never
// be issued.
func (r *GenerateRequest) Validate() error {
	if r.Content == "" {
		return fmt.Errorf("content must not be empty")
	}
	if r.Size < MinSize || r.Size > MaxSize {
		return fmt.Errorf("size %d out of range [%d, %d]", r.Size, MinSize, MaxSize)
	}
	if r.Margin < MinMargin || r.Margin > MaxMargin {
		return fmt.Errorf("margin %d out of range [%d, %d]", r.Margin, MinMargin, MaxMargin)
	}
	if !r.Format.Valid() {
		return fmt.Errorf("unknown format %q", r.Format)
	}
	if !r.ErrorCorrection.Valid() {
		return fmt.Errorf("unknown error correction level %q", r.ErrorCorrection)
	}
	if !r.BodyStyle.Valid() {
		return fmt.Errorf("unknown body style %q", r.BodyStyle)
	}
	if !r.EyeStyle.Valid() {
		return fmt.Errorf("unknown eye style %q", r.EyeStyle)
	}
	return nil
}
