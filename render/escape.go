package render

// Entity replacements for the five markup-significant characters. All
// other bytes pass through unchanged. Because every trigger is ASCII,
// copying the text between triggers byte-wise can never split a
// multi-byte rune, so the Buffer stays valid UTF-8 at every step.
var escapeEntity = [256]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

// Escape appends the markup-safe form of s to b, substituting the five
// reserved characters with their entities.
func Escape(b *Buffer, s string) {
	b.Grow(len(s))
	last := 0
	for i := 0; i < len(s); i++ {
		ent := escapeEntity[s[i]]
		if ent == "" {
			continue
		}
		b.WriteString(s[last:i])
		b.WriteString(ent)
		last = i + 1
	}
	b.WriteString(s[last:])
}

// EscapeString returns the markup-safe form of s. Prefer Escape when a
// Buffer is already at hand; this helper allocates.
func EscapeString(s string) string {
	var b Buffer
	Escape(&b, s)
	return b.String()
}

// EscapeWriter is an io.Writer that escapes everything written through it
// into the wrapped Buffer. It lets streaming encoders produce escaped
// output in a single pass instead of escaping after the fact.
//
// Chunk boundaries do not matter: only ASCII bytes are substituted and
// all other bytes pass through, so a rune split across two writes is
// reassembled intact in the Buffer.
type EscapeWriter struct {
	B *Buffer
}

// Write escapes p into the wrapped Buffer. It reports the full input
// length as written, as io.Writer requires, and never fails.
func (w EscapeWriter) Write(p []byte) (int, error) {
	w.B.Grow(len(p))
	last := 0
	for i := 0; i < len(p); i++ {
		ent := escapeEntity[p[i]]
		if ent == "" {
			continue
		}
		w.B.Write(p[last:i])
		w.B.WriteString(ent)
		last = i + 1
	}
	w.B.Write(p[last:])
	return len(p), nil
}

// escapeTail re-escapes the bytes appended after start. It is the derived
// "append escaped" path: render the raw form first, then rewrite the tail
// in its escaped form. The tail is copied out before the rewrite because
// escaping appends into the same storage it reads from.
func escapeTail(b *Buffer, start int) {
	tail := b.Bytes()[start:]
	for _, c := range tail {
		if escapeEntity[c] != "" {
			s := string(tail)
			b.setLen(start)
			Escape(b, s)
			return
		}
	}
}
