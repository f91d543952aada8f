package main

import (
	"fmt"
	"io"

	"github.com/gookit/color"
)

type terminalNotifier struct {
	w      io.Writer
	colors bool
}

func (n terminalNotifier) Alert(title, message string) {
	if n.colors {
		style := color.New(color.FgGreen, color.OpBold)
		if title != "Copied!" {
			style = color.New(color.FgRed, color.OpBold)
		}
		title = style.Render(title)
	}
	fmt.Fprintf(n.w, "%s: %s\n", title, message)
}
