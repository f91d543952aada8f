package presenter

import (
	"fmt"
	"strings"

	"github.com/russross/blackfriday/v2"
)

func RenderMarkdown(view View) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s\n\n", view.Title)
	if view.ToneAnalysis != "" {
		fmt.Fprintf(&b, "%s\n\n", view.ToneAnalysis)
	}

	if view.ShowImpliedMeanings() {
		b.WriteString("**Implied Meanings:**\n\n")
		for _, meaning := range view.ImpliedMeanings {
			fmt.Fprintf(&b, "- %s\n", meaning)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Suggested Responses\n\n")
	for _, card := range view.Responses {
		fmt.Fprintf(&b, "#### %s\n\n%s\n\n", card.Label, card.Text)
	}

	return b.String()
}

// RenderHTML wraps the markdown rendering in a block carrying the color
// style. Raw HTML coming from the server is dropped.
func RenderHTML(view View) string {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.CommonHTMLFlags | blackfriday.SkipHTML,
	})
	body := blackfriday.Run([]byte(RenderMarkdown(view)),
		blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(renderer))

	return fmt.Sprintf(
		"<section class=\"tone-analysis\" style=\"background-color:%s;border:2px solid %s;color:%s\">\n%s</section>\n",
		view.Style.Background, view.Style.Border, view.Style.Foreground, body)
}
