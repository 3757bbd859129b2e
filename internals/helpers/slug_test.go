package helper

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Cámara Sótano", 0, "camara-sotano"},
		{"  --Logo__Cisco!!  ", 0, "logo-cisco"},
		{"ñandú", 0, "nandu"},
		{"###", 0, "item"},
		{"abcdef-ghij", 7, "abcdef"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("Slugify(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestMarkdownToHTMLEscapesRawHTML(t *testing.T) {
	out := MarkdownToHTML("**Redes** <script>alert(1)</script>")
	if !strings.Contains(out, "<strong>Redes</strong>") {
		t.Errorf("bold not rendered: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("raw html leaked: %s", out)
	}
	if MarkdownToHTML("") != "" {
		t.Error("empty input must render empty")
	}
}
