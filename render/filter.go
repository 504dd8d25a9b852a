package render

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// TruncationMarker is appended by the Truncate filter when content is cut.
const TruncationMarker = "..."

// Every filter follows the same shape: record the Buffer length, delegate
// to the wrapped value, then rewrite only the tail that delegation
// appended. The Buffer is back in a valid state before any filter returns.

type dispFilter struct{ v any }

// Disp renders the wrapped value's standard textual form, with no
// post-processing.
func Disp(v any) Renderable { return dispFilter{v} }

func (f dispFilter) Render(b *Buffer) error        { return Value(b, f.v) }
func (f dispFilter) RenderEscaped(b *Buffer) error { return ValueEscaped(b, f.v) }

type dbgFilter struct{ v any }

// Dbg renders the wrapped value's diagnostic form, using Go syntax.
func Dbg(v any) Renderable { return dbgFilter{v} }

func (f dbgFilter) Render(b *Buffer) error {
	if _, err := fmt.Fprintf(b, "%#v", f.v); err != nil {
		return WrapError(err)
	}
	return nil
}

func (f dbgFilter) RenderEscaped(b *Buffer) error {
	start := b.Len()
	if err := f.Render(b); err != nil {
		return err
	}
	escapeTail(b, start)
	return nil
}

type upperFilter struct{ v any }

// Upper renders the wrapped value and folds the result to uppercase.
// The escaped form folds first and escapes second, so entity names in
// the output stay intact.
func Upper(v any) Renderable { return upperFilter{v} }

func (f upperFilter) Render(b *Buffer) error {
	start := b.Len()
	if err := Value(b, f.v); err != nil {
		return err
	}
	foldTail(b, start, strings.ToUpper)
	return nil
}

func (f upperFilter) RenderEscaped(b *Buffer) error {
	start := b.Len()
	if err := f.Render(b); err != nil {
		return err
	}
	escapeTail(b, start)
	return nil
}

type lowerFilter struct{ v any }

// Lower renders the wrapped value and folds the result to lowercase.
// Unlike Upper, the escaped form escapes first and folds second; the
// ordering is observable and deliberate, since all escape entities are
// already lowercase and survive the fold.
func Lower(v any) Renderable { return lowerFilter{v} }

func (f lowerFilter) Render(b *Buffer) error {
	start := b.Len()
	if err := Value(b, f.v); err != nil {
		return err
	}
	foldTail(b, start, strings.ToLower)
	return nil
}

func (f lowerFilter) RenderEscaped(b *Buffer) error {
	start := b.Len()
	if err := ValueEscaped(b, f.v); err != nil {
		return err
	}
	foldTail(b, start, strings.ToLower)
	return nil
}

// foldTail replaces the bytes appended after start with their case-folded
// form. Folding can change byte length ("ß" grows to "SS"), so the tail
// is extracted, transformed, and re-appended rather than overwritten in
// place.
func foldTail(b *Buffer, start int, fold func(string) string) {
	s := fold(string(b.Bytes()[start:]))
	b.setLen(start)
	b.WriteString(s)
}

type trimFilter struct{ v any }

// Trim removes leading and trailing whitespace from the rendered result.
func Trim(v any) Renderable { return trimFilter{v} }

func (f trimFilter) Render(b *Buffer) error {
	start := b.Len()
	if err := Value(b, f.v); err != nil {
		return err
	}
	trimTail(b, start)
	return nil
}

func (f trimFilter) RenderEscaped(b *Buffer) error {
	start := b.Len()
	if err := ValueEscaped(b, f.v); err != nil {
		return err
	}
	trimTail(b, start)
	return nil
}

// trimTail trims the bytes appended after start in place. The trimmed
// result is a contiguous subrange of the tail, so a left-shift copy
// (copy tolerates the overlap) plus a length cut does it without
// reallocating.
func trimTail(b *Buffer, start int) {
	tail := b.Bytes()[start:]
	trimmed := bytes.TrimSpace(tail)
	if len(trimmed) == len(tail) {
		return
	}
	copy(tail, trimmed)
	b.setLen(start + len(trimmed))
}

type truncateFilter struct {
	v     any
	limit int
}

// Truncate cuts the rendered result after limit bytes, extended to the
// next rune boundary so no character is split, and appends
// TruncationMarker. Content at or under the limit is left untouched.
func Truncate(v any, limit int) Renderable {
	if limit < 0 {
		limit = 0
	}
	return truncateFilter{v, limit}
}

func (f truncateFilter) Render(b *Buffer) error {
	start := b.Len()
	if err := Value(b, f.v); err != nil {
		return err
	}
	return truncateTail(b, start, f.limit)
}

func (f truncateFilter) RenderEscaped(b *Buffer) error {
	start := b.Len()
	if err := ValueEscaped(b, f.v); err != nil {
		return err
	}
	return truncateTail(b, start, f.limit)
}

func truncateTail(b *Buffer, start, limit int) error {
	appended := b.Len() - start
	if appended < 0 {
		// The wrapped value net-shrank the buffer below where it
		// started, which no well-behaved Renderable does.
		return NewError("buffer shrank while rendering")
	}
	if appended <= limit {
		return nil
	}
	buf := b.Bytes()
	pos := start + limit
	for pos < len(buf) && !utf8.RuneStart(buf[pos]) {
		pos++
	}
	b.setLen(pos)
	b.WriteString(TruncationMarker)
	return nil
}
