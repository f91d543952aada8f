package presenter

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spacesedan/toneanalyzer/internal/models"
)

const summaryWidth = 60

func RenderHistory(w io.Writer, history []models.AnalysisResult) {
	if len(history) == 0 {
		_, _ = io.WriteString(w, "No past analyses.\n")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Sentiment", "Color", "Tone Analysis"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for i, result := range history {
		table.Append([]string{
			strconv.Itoa(i + 1),
			TitleCase(string(result.Sentiment)),
			string(result.ColorCode),
			truncate(result.ToneAnalysis, summaryWidth),
		})
	}
	table.Render()
}

func truncate(s string, width int) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
