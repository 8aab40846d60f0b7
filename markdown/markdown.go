// Package markdown renders post bodies to sanitized HTML and exposes them as
// templ components.
package markdown

import (
	"bytes"
	"context"
	"io"
	"regexp"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	engine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Footnote),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithXHTML()),
	)
	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^[\w-]+$`)).OnElements("h1", "h2", "h3", "h4", "h5", "h6", "li", "sup")
	p.AllowAttrs("loading").Matching(regexp.MustCompile(`^lazy$`)).OnElements("img")
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Markdown returns a templ.Component that renders content as HTML.
func Markdown(content string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out, err := Render(content)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	})
}

// Render converts markdown to sanitized HTML.
func Render(content string) ([]byte, error) {
	var buf bytes.Buffer
	if err := engine.Convert([]byte(content), &buf); err != nil {
		return nil, err
	}
	return policy.SanitizeBytes(buf.Bytes()), nil
}

// RenderString is Render for callers that want a string and accept an
// empty result on failure.
func RenderString(content string) string {
	out, err := Render(content)
	if err != nil {
		return ""
	}
	return string(out)
}
