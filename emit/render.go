package emit

import (
	"io"
	"slices"

	"github.com/coregx/ahocorasick"
)

// Context maps placeholder keys to their replacement text. Key k replaces
// the placeholder ${k}.
type Context map[string]string

// Placeholder returns the template text for key.
func Placeholder(key string) string {
	return "${" + key + "}"
}

// Render copies tmpl to w, replacing every placeholder of a key in ctx with
// its value. Placeholders of unknown keys are copied unchanged.
//
// All placeholders are found in one pass of an Aho-Corasick automaton built
// from the keys of ctx.
func Render(w io.Writer, tmpl []byte, ctx Context) error {
	if len(ctx) == 0 {
		_, err := w.Write(tmpl)
		return err
	}

	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	builder := ahocorasick.NewBuilder()
	for _, k := range keys {
		builder.AddPattern([]byte(Placeholder(k)))
	}
	auto, err := builder.Build()
	if err != nil {
		return err
	}

	last := 0
	for last < len(tmpl) {
		m := auto.Find(tmpl, last)
		if m == nil {
			break
		}
		if _, err := w.Write(tmpl[last:m.Start]); err != nil {
			return err
		}
		key := string(tmpl[m.Start+2 : m.End-1])
		if _, err := io.WriteString(w, ctx[key]); err != nil {
			return err
		}
		last = m.End
	}
	_, err = w.Write(tmpl[last:])
	return err
}
