package render

import (
	"encoding/json"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// The structured-data filters serialize the wrapped value straight into
// the Buffer through a streaming writer. Their escaped variants swap the
// writer for an EscapeWriter, so the encoding is escaped as it streams
// out rather than in a second pass. Encoders terminate their document
// with a newline, which is noise inside interpolated output, so one
// trailing newline is chomped.

type jsonFilter struct{ v any }

// JSON serializes the wrapped value as JSON. Reserved HTML characters
// are left alone in the raw form; use the escaped render (or pipe through
// ValueEscaped) for markup contexts.
func JSON(v any) Renderable { return jsonFilter{v} }

func (f jsonFilter) Render(b *Buffer) error {
	return encodeTail(b, b, func(w io.Writer) error { return encodeJSON(w, f.v) })
}

func (f jsonFilter) RenderEscaped(b *Buffer) error {
	return encodeTail(b, EscapeWriter{b}, func(w io.Writer) error { return encodeJSON(w, f.v) })
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	// Escaping is the EscapeWriter's job; <-style JSON escapes
	// would double up with entity escaping.
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

type yamlFilter struct{ v any }

// YAML serializes the wrapped value as a YAML document.
func YAML(v any) Renderable { return yamlFilter{v} }

func (f yamlFilter) Render(b *Buffer) error {
	return encodeTail(b, b, func(w io.Writer) error { return encodeYAML(w, f.v) })
}

func (f yamlFilter) RenderEscaped(b *Buffer) error {
	return encodeTail(b, EscapeWriter{b}, func(w io.Writer) error { return encodeYAML(w, f.v) })
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

type tomlFilter struct{ v any }

// TOML serializes the wrapped value as TOML. The value must be
// expressible as a TOML document (a struct or a map at the top level).
func TOML(v any) Renderable { return tomlFilter{v} }

func (f tomlFilter) Render(b *Buffer) error {
	return encodeTail(b, b, func(w io.Writer) error { return toml.NewEncoder(w).Encode(f.v) })
}

func (f tomlFilter) RenderEscaped(b *Buffer) error {
	return encodeTail(b, EscapeWriter{b}, func(w io.Writer) error { return toml.NewEncoder(w).Encode(f.v) })
}

type schemaFilter struct{ v any }

// Schema renders the JSON Schema describing the wrapped value's type,
// for templates that document data shapes rather than data.
func Schema(v any) Renderable { return schemaFilter{v} }

func (f schemaFilter) Render(b *Buffer) error {
	return encodeTail(b, b, func(w io.Writer) error {
		return encodeJSON(w, jsonschema.Reflect(f.v))
	})
}

func (f schemaFilter) RenderEscaped(b *Buffer) error {
	return encodeTail(b, EscapeWriter{b}, func(w io.Writer) error {
		return encodeJSON(w, jsonschema.Reflect(f.v))
	})
}

// encodeTail runs encode against w (either the Buffer itself or an
// EscapeWriter around it) and chomps the encoder's trailing newline.
// The chomp is bounded to the bytes the encoder appended: an encoder
// that emits nothing must not eat a newline from earlier output.
func encodeTail(b *Buffer, w io.Writer, encode func(io.Writer) error) error {
	start := b.Len()
	if err := encode(w); err != nil {
		return WrapError(err)
	}
	if n := b.Len(); n > start && b.Bytes()[n-1] == '\n' {
		b.setLen(n - 1)
	}
	return nil
}
