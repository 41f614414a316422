package models

// ContentType selects what kind of payload the QR code encodes. Switching
// the type resets the content field to the type's default value.
type ContentType string

const (
	ContentURL      ContentType = "url"
	ContentText     ContentType = "text"
	ContentEmail    ContentType = "email"
	ContentDocument ContentType = "document"
	ContentReview   ContentType = "review"
	ContentPhone    ContentType = "phone"
)

// PhonePrefix is the tel: link prefix used for phone-type content.
const PhonePrefix = "tel:"

func (c ContentType) Valid() bool {
	switch c {
	case ContentURL, ContentText, ContentEmail, ContentDocument, ContentReview, ContentPhone:
		return true
	}
	return false
}

// DefaultContent returns the content value installed when the user switches
// to this type. Document and review types start empty (the value comes from
// an upload or a pasted review link); phone starts with the bare tel: prefix.
func (c ContentType) DefaultContent() string {
	switch c {
	case ContentURL:
		return "https://example.com"
	case ContentEmail:
		return "contact@example.com"
	case ContentPhone:
		return PhonePrefix
	case ContentDocument, ContentReview:
		return ""
	default:
		return "Your text here"
	}
}
