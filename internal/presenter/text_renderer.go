package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

type TextRenderer struct {
	// Colors enables truecolor escape codes. Leave it off for pipes and tests.
	Colors bool
}

func (r TextRenderer) Render(w io.Writer, view View) error {
	var b strings.Builder

	b.WriteString(r.title(view))
	b.WriteString("\n")
	if view.ToneAnalysis != "" {
		b.WriteString(view.ToneAnalysis)
		b.WriteString("\n")
	}

	if view.ShowImpliedMeanings() {
		b.WriteString("\n")
		b.WriteString(r.heading("Implied Meanings:"))
		b.WriteString("\n")
		for _, meaning := range view.ImpliedMeanings {
			fmt.Fprintf(&b, "  • %s\n", meaning)
		}
	}

	b.WriteString("\n")
	b.WriteString(r.heading("Suggested Responses"))
	b.WriteString("\n")
	for i, card := range view.Responses {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, r.heading(card.Label))
		for _, line := range strings.Split(card.Text, "\n") {
			fmt.Fprintf(&b, "    %s\n", line)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r TextRenderer) title(view View) string {
	if !r.Colors {
		return view.Title
	}
	style := color.NewRGBStyle(color.HEX(view.Style.Foreground), color.HEX(view.Style.Background))
	return color.HEX(view.Style.Border).Sprint("▌") + style.Sprint(" "+view.Title+" ")
}

func (r TextRenderer) heading(s string) string {
	if !r.Colors {
		return s
	}
	return color.New(color.OpBold).Render(s)
}
