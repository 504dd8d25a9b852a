package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisp(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, Disp(42).Render(b))
	require.NoError(t, Disp(" text ").Render(b))
	assert.Equal(t, "42 text ", b.String())

	b.Clear()
	require.NoError(t, Disp("<b>").RenderEscaped(b))
	assert.Equal(t, "&lt;b&gt;", b.String())
}

func TestDbg(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, Dbg("quoted").Render(b))
	assert.Equal(t, `"quoted"`, b.String())

	b.Clear()
	require.NoError(t, Dbg("<b>").RenderEscaped(b))
	assert.Equal(t, "&quot;&lt;b&gt;&quot;", b.String())
}

func TestCase(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, Upper("hElLO, WOrLd!").Render(b))
	assert.Equal(t, "HELLO, WORLD!", b.String())

	b.Clear()
	require.NoError(t, Lower("hElLO, WOrLd!").Render(b))
	assert.Equal(t, "hello, world!", b.String())

	b.Clear()
	require.NoError(t, Lower("<h1>TITLE</h1>").RenderEscaped(b))
	assert.Equal(t, "&lt;h1&gt;title&lt;/h1&gt;", b.String())
}

func TestUpperNoLowercaseRemains(t *testing.T) {
	inputs := []string{"hello", "MiXeD 42 cAsE!", "ärger / straße", ""}
	for _, in := range inputs {
		b := NewBuffer()
		require.NoError(t, Upper(in).Render(b))
		for _, r := range b.String() {
			assert.False(t, r >= 'a' && r <= 'z', "lowercase %q left in %q", r, b.String())
		}
	}
}

func TestLowerNoUppercaseRemains(t *testing.T) {
	inputs := []string{"HELLO", "MiXeD 42 cAsE!", "ÄRGER", ""}
	for _, in := range inputs {
		b := NewBuffer()
		require.NoError(t, Lower(in).Render(b))
		for _, r := range b.String() {
			assert.False(t, r >= 'A' && r <= 'Z', "uppercase %q left in %q", r, b.String())
		}
	}
}

func TestCaseFoldChangesByteLength(t *testing.T) {
	// The sharp s folds to two characters, so the tail grows; the fold
	// must splice rather than overwrite in place.
	b := NewBuffer()
	b.WriteString("prefix|")
	require.NoError(t, Upper("straße").Render(b))
	assert.Equal(t, "prefix|STRASSE", b.String())
}

func TestUpperEscapedFoldsThenEscapes(t *testing.T) {
	// Upper derives its escaped form: fold the raw render, then escape
	// the folded tail. Tag names come out uppercased, unlike Lower's
	// escape-then-fold ordering.
	b := NewBuffer()
	require.NoError(t, Upper("<h1>title</h1>").RenderEscaped(b))
	assert.Equal(t, "&lt;H1&gt;TITLE&lt;/H1&gt;", b.String())
}

func TestTrim(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, Trim(" hello  ").Render(b))
	require.NoError(t, Trim("hello ").Render(b))
	require.NoError(t, Trim("   hello").Render(b))
	assert.Equal(t, "hellohellohello", b.String())

	b = NewBuffer()
	require.NoError(t, Trim(" hello").Render(b))
	assert.Equal(t, "hello", b.String())
}

func TestTrimCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no whitespace", input: "hello", want: "hello"},
		{name: "all whitespace", input: " \t\n\r ", want: ""},
		{name: "empty", input: "", want: ""},
		{name: "interior kept", input: "  a b\tc  ", want: "a b\tc"},
		{name: "unicode space", input: " hi ", want: "hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			b.WriteString("pre|")
			require.NoError(t, Trim(tt.input).Render(b))
			assert.Equal(t, "pre|"+tt.want, b.String())
		})
	}
}

func TestTrimIdempotent(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, Trim(Trim("  doubly trimmed  ")).Render(b))
	assert.Equal(t, "doubly trimmed", b.String())
}

func TestTrimEscaped(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, Trim("  <b>  ").RenderEscaped(b))
	assert.Equal(t, "&lt;b&gt;", b.String())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{name: "under limit untouched", input: "short", limit: 10, want: "short"},
		{name: "exactly at limit untouched", input: "exact", limit: 5, want: "exact"},
		{name: "over limit cut with marker", input: "hello world", limit: 5, want: "hello..."},
		{name: "zero limit", input: "x", limit: 0, want: "..."},
		{name: "empty input", input: "", limit: 0, want: ""},
		{name: "negative limit clamped", input: "ab", limit: -7, want: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer()
			require.NoError(t, Truncate(tt.input, tt.limit).Render(b))
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestTruncateNeverSplitsRunes(t *testing.T) {
	input := "こんにちは世界" // seven runes, three bytes each
	for limit := 0; limit <= len(input)+1; limit++ {
		b := NewBuffer()
		require.NoError(t, Truncate(input, limit).Render(b))
		out := b.String()
		assert.True(t, utf8.ValidString(out), "limit %d split a rune: %q", limit, out)

		content := strings.TrimSuffix(out, TruncationMarker)
		if limit >= len(input) {
			assert.Equal(t, input, out, "content at or under limit must be untouched")
		} else {
			// The cut lands on the first rune boundary at or after the
			// limit, so at most two continuation bytes past it.
			assert.True(t, strings.HasPrefix(input, content))
			assert.GreaterOrEqual(t, len(content), limit)
			assert.LessOrEqual(t, len(content), limit+2)
			assert.True(t, strings.HasSuffix(out, TruncationMarker))
		}
	}
}

func TestTruncateMarkerOnlyWhenCut(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, Truncate("abc", 3).Render(b))
	assert.Equal(t, "abc", b.String(), "content at the limit must not get a marker")

	b.Clear()
	require.NoError(t, Truncate("abcd", 3).Render(b))
	assert.Equal(t, "abc...", b.String())
}

func TestTruncateAfterExistingContent(t *testing.T) {
	b := NewBuffer()
	b.WriteString("0123456789")
	require.NoError(t, Truncate("abcdef", 3).Render(b))
	assert.Equal(t, "0123456789abc...", b.String())
}

func TestTruncateEscaped(t *testing.T) {
	// The limit applies to the escaped text, after entity expansion.
	b := NewBuffer()
	require.NoError(t, Truncate("<b>", 4).RenderEscaped(b))
	assert.Equal(t, "&lt;...", b.String())
}

// shrinkingValue violates the append-only contract by cutting the buffer
// below where it started.
type shrinkingValue struct{}

func (shrinkingValue) Render(b *Buffer) error        { b.Clear(); return nil }
func (shrinkingValue) RenderEscaped(b *Buffer) error { b.Clear(); return nil }

func TestTruncateDetectsShrunkBuffer(t *testing.T) {
	for _, limit := range []int{0, 3, 1 << 20} {
		b := NewBuffer()
		b.WriteString("existing content")
		err := Truncate(shrinkingValue{}, limit).Render(b)
		require.Error(t, err, "limit %d", limit)
		assert.Contains(t, err.Error(), "shrank")

		var re *Error
		assert.ErrorAs(t, err, &re)
	}
}

func TestFiltersCompose(t *testing.T) {
	b := NewBuffer()
	require.NoError(t, Upper(Trim("  composed  ")).Render(b))
	assert.Equal(t, "COMPOSED", b.String())

	b.Clear()
	require.NoError(t, Truncate(Upper("shouting match"), 8).Render(b))
	assert.Equal(t, "SHOUTING...", b.String())

	b.Clear()
	require.NoError(t, Trim(Lower("  <X>  ")).RenderEscaped(b))
	assert.Equal(t, "&lt;x&gt;", b.String())
}

func TestFilterErrorsPropagate(t *testing.T) {
	filters := map[string]Renderable{
		"upper":    Upper(failingValue{}),
		"lower":    Lower(failingValue{}),
		"trim":     Trim(failingValue{}),
		"truncate": Truncate(failingValue{}, 5),
		"disp":     Disp(failingValue{}),
	}
	for name, f := range filters {
		t.Run(name, func(t *testing.T) {
			b := NewBuffer()
			assert.ErrorIs(t, f.Render(b), errBoom)
			b.Clear()
			assert.ErrorIs(t, f.RenderEscaped(b), errBoom)
		})
	}
}
