package helper

import (
	"bytes"
	"log"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Raw HTML di deskripsi tidak dirender (goldmark default = escape/omit).
var md = goldmark.New(
	goldmark.WithExtensions(extension.Linkify, extension.Strikethrough),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// MarkdownToHTML merender deskripsi konten untuk layer tampilan.
func MarkdownToHTML(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		log.Printf("[WARN] markdown render failed: %v", err)
		return ""
	}
	return buf.String()
}
