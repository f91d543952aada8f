//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_screen.go -package=mocks
package screen

import (
	"context"

	"github.com/spacesedan/toneanalyzer/internal/models"
)

type Analyzer interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResult, error)
	History(ctx context.Context) []models.AnalysisResult
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Alert(title, message string)
}

type Clipboard interface {
	WriteAll(text string) error
}
