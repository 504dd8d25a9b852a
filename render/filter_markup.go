package render

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// The markup filters rewrite the rendered tail into HTML that is meant
// to be emitted verbatim. Escaping their output would destroy it, so for
// both filters the escaped render is identical to the raw render: safety
// comes from conversion (Markdown) or sanitization (Sanitize), not from
// entity escaping.

type markdownFilter struct{ v any }

// Markdown renders the wrapped value and converts the result from
// Markdown to HTML.
func Markdown(v any) Renderable { return markdownFilter{v} }

func (f markdownFilter) Render(b *Buffer) error {
	start := b.Len()
	if err := Value(b, f.v); err != nil {
		return err
	}
	src := append([]byte(nil), b.Bytes()[start:]...)
	b.setLen(start)
	if err := goldmark.Convert(src, b); err != nil {
		return WrapError(err)
	}
	return nil
}

func (f markdownFilter) RenderEscaped(b *Buffer) error {
	return f.Render(b)
}

// sanitizePolicy allows the formatting, link, and image elements usual in
// user-generated content and strips everything else. Policies are safe
// for concurrent reuse.
var sanitizePolicy = bluemonday.UGCPolicy()

type sanitizeFilter struct{ v any }

// Sanitize renders the wrapped value as HTML and strips every element
// and attribute not allowed for user-generated content.
func Sanitize(v any) Renderable { return sanitizeFilter{v} }

func (f sanitizeFilter) Render(b *Buffer) error {
	start := b.Len()
	if err := Value(b, f.v); err != nil {
		return err
	}
	clean := sanitizePolicy.SanitizeBytes(b.Bytes()[start:])
	b.setLen(start)
	b.Write(clean)
	return nil
}

func (f sanitizeFilter) RenderEscaped(b *Buffer) error {
	return f.Render(b)
}
