package render

import (
	"fmt"
	"strconv"
)

// Renderable is the capability compiled template code relies on: a value
// that can append its own textual form to a Buffer, raw or escaped.
//
// Render appends the raw form. RenderEscaped appends the markup-safe
// form; the common way to derive it is to render the raw form and then
// re-escape the appended tail, which is what Value-based rendering and
// most filters do. Types whose encoding can escape while streaming (the
// structured-data filters) implement RenderEscaped directly instead.
//
// Neither method may have side effects beyond appending to b.
type Renderable interface {
	Render(b *Buffer) error
	RenderEscaped(b *Buffer) error
}

// Value appends the raw textual form of v to b. It is the per-expression
// boundary call emitted by compiled template code when escaping is off.
//
// Renderable values append themselves. Strings, byte slices, booleans,
// integers, and floats use direct strconv appends; fmt.Stringer values
// use their String method; everything else goes through fmt with the %v
// verb.
func Value(b *Buffer, v any) error {
	switch t := v.(type) {
	case Renderable:
		return t.Render(b)
	case string:
		b.WriteString(t)
	case []byte:
		b.Write(t)
	case bool:
		b.buf = strconv.AppendBool(b.grown(5), t)
	case int:
		b.buf = strconv.AppendInt(b.grown(20), int64(t), 10)
	case int8:
		b.buf = strconv.AppendInt(b.grown(4), int64(t), 10)
	case int16:
		b.buf = strconv.AppendInt(b.grown(6), int64(t), 10)
	case int32:
		b.buf = strconv.AppendInt(b.grown(11), int64(t), 10)
	case int64:
		b.buf = strconv.AppendInt(b.grown(20), t, 10)
	case uint:
		b.buf = strconv.AppendUint(b.grown(20), uint64(t), 10)
	case uint8:
		b.buf = strconv.AppendUint(b.grown(3), uint64(t), 10)
	case uint16:
		b.buf = strconv.AppendUint(b.grown(5), uint64(t), 10)
	case uint32:
		b.buf = strconv.AppendUint(b.grown(10), uint64(t), 10)
	case uint64:
		b.buf = strconv.AppendUint(b.grown(20), t, 10)
	case float32:
		b.buf = strconv.AppendFloat(b.grown(32), float64(t), 'g', -1, 32)
	case float64:
		b.buf = strconv.AppendFloat(b.grown(32), t, 'g', -1, 64)
	case fmt.Stringer:
		b.WriteString(t.String())
	default:
		if _, err := fmt.Fprintf(b, "%v", v); err != nil {
			return WrapError(err)
		}
	}
	return nil
}

// ValueEscaped appends the markup-safe textual form of v to b. It is the
// boundary call emitted by compiled template code when escaping is on,
// which is the default.
func ValueEscaped(b *Buffer, v any) error {
	switch t := v.(type) {
	case Renderable:
		return t.RenderEscaped(b)
	case string:
		Escape(b, t)
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		// Numeric and boolean forms contain no reserved characters.
		return Value(b, v)
	default:
		start := b.Len()
		if err := Value(b, v); err != nil {
			return err
		}
		escapeTail(b, start)
	}
	return nil
}

// grown ensures room for n more bytes and returns the underlying slice
// for a strconv-style append. The caller must reassign the result.
func (b *Buffer) grown(n int) []byte {
	b.grow(n)
	return b.buf
}
