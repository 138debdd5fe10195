// package render turns document markup into HTML.
// The generated page does this in the browser with marked; this package does it ahead of time, for readers without javascript.
package render

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/sourcegraph/syntaxhighlight"
)

// Renderer converts source markup to displayable HTML.
type Renderer interface {
	Render(src []byte) ([]byte, error)
}

// Func adapts a plain function to a Renderer.
type Func func(src []byte) ([]byte, error)

func (f Func) Render(src []byte) ([]byte, error) { return f(src) }

// Markdown renders markdown with gomarkdown and highlights fenced code blocks that name a language.
// Raw HTML in the source is dropped: the output is spliced into a larger page.
type Markdown struct{}

var _ Renderer = Markdown{}

func (Markdown) Render(src []byte) ([]byte, error) {
	// parsers are stateful; make a fresh one for each document.
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	out := markdown.ToHTML(markdown.NormalizeNewlines(src), p, r)

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(out))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered markdown: %w", err)
	}
	var highlightErr error
	// find code-parts via css selector and replace them with highlighted versions
	doc.Find(`code[class*="language-"]`).Each(func(_ int, s *goquery.Selection) {
		if highlightErr != nil {
			return
		}
		b, err := syntaxhighlight.AsHTML([]byte(s.Text()))
		if err != nil {
			highlightErr = fmt.Errorf("highlighting code block: %w", err)
			return
		}
		s.SetHtml(string(b))
	})
	if highlightErr != nil {
		return nil, highlightErr
	}
	body, err := doc.Find("body").Html()
	if err != nil {
		return nil, fmt.Errorf("serializing rendered markdown: %w", err)
	}
	return []byte(body), nil
}
