// Package presenter turns analysis results into something a person can read.
// Nothing in here fails: unknown server values fall back to neutral output.
package presenter

import (
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"
	"github.com/spacesedan/toneanalyzer/internal/models"
)

type ColorStyle struct {
	Background string
	Border     string
	Foreground string
}

var (
	GreenStyle   = ColorStyle{Background: "#d4edda", Border: "#28a745", Foreground: "#155724"}
	YellowStyle  = ColorStyle{Background: "#fff3cd", Border: "#ffc107", Foreground: "#856404"}
	RedStyle     = ColorStyle{Background: "#f8d7da", Border: "#dc3545", Foreground: "#721c24"}
	DefaultStyle = ColorStyle{Background: "#e9ecef", Border: "#6c757d", Foreground: "#495057"}
)

// ColorStyleFor is total: any code it does not know gets DefaultStyle.
func ColorStyleFor(code models.ColorCode) ColorStyle {
	switch code {
	case models.ColorGreen:
		return GreenStyle
	case models.ColorYellow:
		return YellowStyle
	case models.ColorRed:
		return RedStyle
	default:
		return DefaultStyle
	}
}

func TitleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

type ResponseCard struct {
	Style models.ResponseStyle
	Label string
	Text  string
}

type View struct {
	Title        string
	Style        ColorStyle
	ToneAnalysis string
	// ImpliedMeanings is nil when the section should not be shown.
	ImpliedMeanings []string
	Responses       []ResponseCard
}

func (v View) ShowImpliedMeanings() bool {
	return len(v.ImpliedMeanings) > 0
}

func Present(result models.AnalysisResult) View {
	view := View{
		Title:        TitleCase(string(result.Sentiment)) + " Tone",
		Style:        ColorStyleFor(result.ColorCode),
		ToneAnalysis: result.ToneAnalysis,
		Responses: lo.Map(result.SuggestedResponses.Ordered(), func(r models.SuggestedResponse, _ int) ResponseCard {
			return ResponseCard{Style: r.Style, Label: TitleCase(string(r.Style)), Text: r.Text}
		}),
	}
	if len(result.ImpliedMeanings) > 0 {
		view.ImpliedMeanings = append([]string(nil), result.ImpliedMeanings...)
	}
	return view
}
