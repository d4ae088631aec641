package core

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"empty", "", ""},
		{"script tag", `a<script>alert(1)</script>b`, "ab"},
		{"script with attrs", `a<script type="text/javascript">x()</script>b`, "ab"},
		{"mixed case", `a<SCRIPT>x</SCRIPT>b`, "ab"},
		{"multiline", "a<script>\nx\n</script>b", "ab"},
		{"other html passes through", `<b>bold</b><img src=x>`, `<b>bold</b><img src=x>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.in); got != tt.want {
				t.Fatalf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMessageHasContent(t *testing.T) {
	if (&Message{}).HasContent() {
		t.Fatal("empty message should have no content")
	}
	if !(&Message{Text: "hi"}).HasContent() {
		t.Fatal("text message should have content")
	}
	if !(&Message{Media: &Media{URL: "/uploads/x.png"}}).HasContent() {
		t.Fatal("media message should have content")
	}
	if !(&Message{Sticker: &Sticker{IsEmoji: true, Emoji: "🗿"}}).HasContent() {
		t.Fatal("sticker message should have content")
	}
}
