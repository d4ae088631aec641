package core

import (
	"regexp"
	"time"
)

// Media describes an uploaded attachment. The core never inspects the
// bytes; the descriptor comes back from the upload endpoint as-is.
type Media struct {
	URL  string
	Name string
	Type string
	Size int64
}

// Sticker is either a plain emoji or a custom image sticker.
type Sticker struct {
	IsEmoji bool
	Emoji   string
	URL     string
}

// ReplyRef points at the message being replied to, carrying enough of it
// to render a quote without a message store.
type ReplyRef struct {
	ID        string
	VisibleID string
	Text      string
	Color     string
}

// Message is the domain model for a chat message. Once broadcast it is
// immutable; the core does not retain it.
type Message struct {
	ID        string
	Channel   string
	VisibleID string
	Color     string
	Text      string
	Media     *Media
	Sticker   *Sticker
	ReplyTo   *ReplyRef
	Timestamp time.Time
}

// HasContent reports whether the message carries at least one of text,
// media, or sticker. Messages with none are dropped before broadcast.
func (m *Message) HasContent() bool {
	return m.Text != "" || m.Media != nil || m.Sticker != nil
}

var scriptPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)

// SanitizeText strips <script>...</script> sequences from message text.
// This is the only sanitization performed; other HTML passes through raw,
// an inherited trade-off the clients account for.
func SanitizeText(text string) string {
	if text == "" {
		return ""
	}
	return scriptPattern.ReplaceAllString(text, "")
}
