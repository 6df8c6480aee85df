package assist

import (
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var replyPolicy = bluemonday.UGCPolicy()

// RenderReply converts a markdown assistant answer into sanitized HTML for
// display. Model output is untrusted; any embedded script or event handler
// is stripped.
func RenderReply(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse([]byte(md))

	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags,
	})
	rendered := markdown.Render(doc, renderer)

	return string(replyPolicy.SanitizeBytes(rendered))
}
