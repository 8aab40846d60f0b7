package views

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
)

// builder accumulates a page so a component writes once or not at all.
type builder struct {
	bytes.Buffer
}

func (b *builder) raw(s string) {
	b.WriteString(s)
}

func (b *builder) text(s string) {
	b.WriteString(templ.EscapeString(s))
}

func (b *builder) attr(name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(value))
	b.WriteByte('"')
}

// href writes an href attribute after templ's URL sanitizing.
func (b *builder) href(u string) {
	b.attr("href", string(templ.URL(u)))
}

func (b *builder) child(ctx context.Context, c templ.Component) error {
	if c == nil {
		return nil
	}
	return c.Render(ctx, b)
}

func component(fn func(ctx context.Context, b *builder) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b builder
		if err := fn(ctx, &b); err != nil {
			return err
		}
		_, err := w.Write(b.Bytes())
		return err
	})
}
