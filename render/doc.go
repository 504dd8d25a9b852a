// Package render is the buffer, escaping, and filter layer of the
// sailfish runtime.
//
// Compiled template code holds one *Buffer for the whole render call and
// appends to it through two boundary functions, chosen by the compiler
// per interpolation:
//
//	render.Value(b, expr)        // raw
//	render.ValueEscaped(b, expr) // markup-safe (the default)
//
// # Buffer
//
// Buffer is a growable byte region whose contents are always valid
// UTF-8. Growth is geometric, so total render cost is proportional to
// output size. Nested values write straight into the shared Buffer;
// nothing is accumulated in intermediate strings.
//
// # Escaping
//
// Escape substitutes exactly five characters with entities:
//
//	& < > " '  →  &amp; &lt; &gt; &quot; &#39;
//
// EscapeWriter lifts the same substitution to an io.Writer, which lets
// streaming encoders emit escaped output in a single pass.
//
// # Filters
//
// Filters wrap a value, render it into the Buffer, and rewrite only the
// region the value just appended:
//
//	Disp, Dbg            standard and diagnostic textual forms
//	Upper, Lower         case folding
//	Trim                 whitespace trimming, in place
//	Truncate(v, limit)   rune-safe cut with a "..." marker
//	JSON, YAML, TOML     structured-data serialization
//	Schema               JSON Schema of the value's type
//	Markdown, Sanitize   HTML-producing transforms
//
// Filters compose: Upper(Trim(v)) renders v, trims it, then folds it.
// Every filter restores the Buffer's validity before returning; an Error
// from any level aborts the whole render call.
package render
