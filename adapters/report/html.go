package report

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTMLRenderer converts the markdown run report into a standalone HTML page
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTML report renderer
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// RenderHTML renders markdown to a complete HTML document
func (r *HTMLRenderer) RenderHTML(md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse(md)

	renderer := html.NewRenderer(html.RendererOptions{
		Title: "Randomness Evaluation Report",
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.Render(doc, renderer)
}
