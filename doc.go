// Package sailfish is the runtime for compiled templates.
//
// A template compiler (external to this module) turns template source
// into Go code; that generated code runs against this runtime. The
// runtime's job is small and hot: accumulate output into one growable
// buffer, escape text for markup contexts, and post-process rendered
// fragments through composable filters.
//
//   - sailfish (this package): the top-level entry point that runs one
//     compiled template body and returns the finished text
//   - render: the Buffer, the Renderable contract, the escaper, the
//     unified error type, and the filter library
//
// # Quick Start
//
// Compiled template code is just a function over a Buffer:
//
//	body := sailfish.TemplateFunc(func(b *render.Buffer) error {
//		b.WriteString("<p>")
//		if err := render.ValueEscaped(b, user.Name); err != nil {
//			return err
//		}
//		b.WriteString("</p>")
//		return nil
//	})
//	html, err := sailfish.RenderString(body)
//
// Filters wrap an expression wherever a template pipes one:
//
//	render.ValueEscaped(b, render.Truncate(render.Trim(comment), 280))
//
// # Design
//
// Rendering is synchronous and single-threaded: one Buffer is created
// per RenderString call, every nested value writes directly into it,
// and the first error aborts the whole call. There is no configuration
// object; whether an interpolation escapes is decided by the compiler,
// which emits a call to either render.Value or render.ValueEscaped.
package sailfish
