package sailfish

import "github.com/yaoxi-std/sailfish/render"

// Template is implemented by compiled template code: one call writes the
// whole template body into the given Buffer. On error the Buffer's
// contents are incomplete and must be discarded, not inspected.
type Template interface {
	RenderOnce(buf *render.Buffer) error
}

// TemplateFunc adapts a plain function to the Template interface.
type TemplateFunc func(buf *render.Buffer) error

// RenderOnce calls f.
func (f TemplateFunc) RenderOnce(buf *render.Buffer) error { return f(buf) }

type renderOptions struct {
	capacity int
	hint     *render.SizeHint
}

// Option configures a RenderString call.
type Option func(*renderOptions)

// WithCapacity pre-allocates the output Buffer with at least n bytes.
func WithCapacity(n int) Option {
	return func(o *renderOptions) { o.capacity = n }
}

// WithSizeHint sizes the output Buffer from previous renders recorded in
// h, and records this render's size into it on success. Share one hint
// per template so repeated renders allocate once.
func WithSizeHint(h *render.SizeHint) Option {
	return func(o *renderOptions) { o.hint = h }
}

// RenderString runs one complete render of t against a fresh Buffer and
// returns the finished text. This is the only externally observable
// outcome of a render: there is no streaming, and on failure the partial
// output is discarded.
func RenderString(t Template, opts ...Option) (string, error) {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	capacity := o.capacity
	if o.hint != nil {
		if n := o.hint.Get(); n > capacity {
			capacity = n
		}
	}
	buf := render.NewBufferSize(capacity)
	if err := t.RenderOnce(buf); err != nil {
		return "", err
	}
	if o.hint != nil {
		o.hint.Update(buf.Len())
	}
	return buf.String(), nil
}
