// Package markdown renders attribution text to sanitized HTML and strips
// provider-supplied HTML back to plain text.
package markdown

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/russross/blackfriday/v2"
)

// Markdown wraps markdown source and caches its rendered forms.
type Markdown struct {
	// Source is the markdown source code.
	Source string
	// renderedHTML caches the sanitized HTML rendered from Source.
	renderedHTML *template.HTML
	// renderedText caches the plain text rendered from Source.
	renderedText *string
}

var (
	bfRenderer = blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.Safelink | blackfriday.NofollowLinks | blackfriday.HrefTargetBlank | blackfriday.Smartypants | blackfriday.SmartypantsDashes,
	})
	bfExtensions = blackfriday.NoIntraEmphasis | blackfriday.Autolink | blackfriday.Strikethrough
	policy       = bluemonday.UGCPolicy()
	strict       = bluemonday.StrictPolicy()
)

func NewMarkdown(source string) *Markdown {
	return &Markdown{Source: source}
}

func (m *Markdown) html() []byte {
	return blackfriday.Run([]byte(m.Source),
		blackfriday.WithRenderer(bfRenderer),
		blackfriday.WithExtensions(bfExtensions),
	)
}

// Render converts the Markdown Source into sanitized HTML.
func (m *Markdown) Render() template.HTML {
	if m.renderedHTML != nil {
		return *m.renderedHTML
	}
	if strings.TrimSpace(m.Source) == "" {
		h := template.HTML("")
		m.renderedHTML = &h
		return h
	}

	safe := policy.SanitizeBytes(m.html())
	h := template.HTML(bytes.TrimSpace(safe))
	m.renderedHTML = &h
	return h
}

// PlainText renders Source and removes every tag from the result.
func (m *Markdown) PlainText() string {
	if m.renderedText != nil {
		return *m.renderedText
	}
	s := StripHTML(string(m.html()))
	m.renderedText = &s
	return s
}

// MarshalJSON encodes the markdown as its source and sanitized HTML.
func (m *Markdown) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Source string `json:"source"`
		HTML   string `json:"html"`
	}{Source: m.Source, HTML: string(m.Render())})
}

// UnmarshalJSON implements json.Unmarshaler so Markdown can be decoded from a JSON string.
func (m *Markdown) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("Markdown.UnmarshalJSON: %w", err)
	}
	m.Source = s
	m.renderedHTML = nil
	m.renderedText = nil
	return nil
}

// StripHTML removes all markup from s, decodes entities and collapses
// whitespace. Providers such as Wikimedia return author credits as HTML.
func StripHTML(s string) string {
	text := html.UnescapeString(strict.Sanitize(s))
	return strings.Join(strings.Fields(text), " ")
}
