package screen

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spacesedan/toneanalyzer/internal/clients"
	"github.com/spacesedan/toneanalyzer/internal/mocks"
	"github.com/spacesedan/toneanalyzer/internal/models"
	"github.com/spacesedan/toneanalyzer/internal/presenter"
	"github.com/spacesedan/toneanalyzer/internal/share"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func neutralResult() models.AnalysisResult {
	return models.AnalysisResult{
		Sentiment:       models.SentimentNeutral,
		ColorCode:       models.ColorYellow,
		ToneAnalysis:    "Polite request to postpone.",
		ImpliedMeanings: []string{},
		SuggestedResponses: models.SuggestedResponses{
			models.StyleProfessional: "Of course.",
			models.StyleFriendly:     "Sure thing!",
			models.StyleCasual:       "yep",
			models.StyleDiplomatic:   "Whenever works.",
		},
	}
}

type fixture struct {
	screen    *AnalyzerScreen
	analyzer  *mocks.MockAnalyzer
	notifier  *mocks.MockNotifier
	clipboard *mocks.MockClipboard
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		analyzer:  mocks.NewMockAnalyzer(ctrl),
		notifier:  mocks.NewMockNotifier(ctrl),
		clipboard: mocks.NewMockClipboard(ctrl),
	}
	f.screen = NewAnalyzerScreen(f.analyzer, f.notifier, f.clipboard)
	return f
}

func TestAnalyzerScreen_Submit_Success(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	f.screen.SetMessageText("Can we talk later?")
	f.screen.SetAdditionalContext("  ")
	f.analyzer.EXPECT().
		Analyze(gomock.Any(), models.AnalysisRequest{
			MessageText:       "Can we talk later?",
			MessageType:       models.MessageTypeSMS,
			Relationship:      models.RelationshipFriend,
			AdditionalContext: "  ",
		}).
		Return(neutralResult(), nil)

	req.NoError(f.screen.Submit(ctx))
	req.False(f.screen.Busy())

	view, ok := f.screen.View()
	req.True(ok)
	req.Equal("Neutral Tone", view.Title)
	req.Equal(presenter.YellowStyle, view.Style)
	req.False(view.ShowImpliedMeanings())
	req.Len(view.Responses, 4)
	req.Equal(models.StyleProfessional, view.Responses[0].Style)
	req.Equal(models.StyleDiplomatic, view.Responses[3].Style)
}

func TestAnalyzerScreen_Submit_ReplacesResult(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	f := newFixture(t)

	second := neutralResult()
	second.Sentiment = models.SentimentPositive
	second.ColorCode = models.ColorGreen
	second.ImpliedMeanings = []string{"they are happy"}

	f.screen.SetMessageText("hello")
	f.screen.SetMessageType(models.MessageTypeEmail)
	f.screen.SetRelationship(models.RelationshipCoworker)
	gomock.InOrder(
		f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(neutralResult(), nil),
		f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(second, nil),
	)

	req.NoError(f.screen.Submit(ctx))
	req.NoError(f.screen.Submit(ctx))

	result, ok := f.screen.Result()
	req.True(ok)
	req.Equal(second, result)
}

func TestAnalyzerScreen_Submit_BlankMessage(t *testing.T) {
	ctx := context.Background()

	for _, text := range []string{"", "   ", "\n\t"} {
		f := newFixture(t)
		f.screen.SetMessageText(text)
		f.notifier.EXPECT().Alert("Error", presenter.MsgEmptyMessage)

		err := f.screen.Submit(ctx)

		require.ErrorIs(t, err, ErrEmptyMessage)
		require.False(t, f.screen.CanSubmit())
		_, ok := f.screen.Result()
		require.False(t, ok)
	}
}

func TestAnalyzerScreen_Submit_Failures(t *testing.T) {
	tests := []struct {
		description string
		err         error
		wantMessage string
	}{
		{"server error", &clients.ServerError{Status: 500, StatusText: "Internal Server Error"}, "Server error: 500 - Internal Server Error"},
		{"network error", &clients.NetworkError{Err: errors.New("dial tcp: connection refused")}, presenter.MsgNetwork},
		{"timeout", &clients.TimeoutError{Deadline: clients.ANALYZE_TIMEOUT}, presenter.MsgNetwork},
		{"protocol error", &clients.ProtocolError{Reason: clients.ReasonMissingData}, presenter.MsgUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			f := newFixture(t)
			f.screen.SetMessageText("hello")

			f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.AnalysisResult{}, tt.err)
			f.notifier.EXPECT().Alert("Analysis Failed", tt.wantMessage)

			err := f.screen.Submit(context.Background())

			req.ErrorIs(err, tt.err)
			req.False(f.screen.Busy())
			req.True(f.screen.CanSubmit())
		})
	}
}

func TestAnalyzerScreen_Submit_FailureKeepsPreviousResult(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.screen.SetMessageText("hello")

	gomock.InOrder(
		f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(neutralResult(), nil),
		f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(models.AnalysisResult{}, &clients.ServerError{Status: 503}),
	)
	f.notifier.EXPECT().Alert("Analysis Failed", gomock.Any())

	req.NoError(f.screen.Submit(context.Background()))
	req.Error(f.screen.Submit(context.Background()))

	result, ok := f.screen.Result()
	req.True(ok)
	req.Equal(neutralResult(), result)
}

func TestAnalyzerScreen_Submit_SingleInFlight(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	f.screen.SetMessageText("hello")

	started := make(chan struct{})
	release := make(chan struct{})
	f.analyzer.EXPECT().
		Analyze(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, r models.AnalysisRequest) (models.AnalysisResult, error) {
			close(started)
			<-release
			return neutralResult(), nil
		}).
		Times(1)

	done := make(chan error, 1)
	go func() { done <- f.screen.Submit(context.Background()) }()

	<-started
	req.True(f.screen.Busy())
	req.False(f.screen.CanSubmit())
	req.ErrorIs(f.screen.Submit(context.Background()), ErrBusy)

	close(release)
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		t.Fatal("submit did not return")
	}
	req.False(f.screen.Busy())
	req.True(f.screen.CanSubmit())
}

func TestAnalyzerScreen_CopyResponse(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)

	req.ErrorIs(f.screen.CopyResponse(models.StyleCasual), ErrNoResult)

	f.screen.SetMessageText("hello")
	f.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return(neutralResult(), nil)
	req.NoError(f.screen.Submit(context.Background()))
	before, _ := f.screen.Result()

	f.clipboard.EXPECT().WriteAll("yep").Return(nil)
	f.notifier.EXPECT().Alert("Copied!", "Response copied to clipboard")
	req.NoError(f.screen.CopyResponse(models.StyleCasual))

	f.clipboard.EXPECT().WriteAll("Of course.").Return(errors.New("xclip not found"))
	f.notifier.EXPECT().Alert("Copy Failed", gomock.Any())
	req.Error(f.screen.CopyResponse(models.StyleProfessional))

	req.ErrorIs(f.screen.CopyResponse("sarcastic"), models.ErrUnknownResponseStyle)

	after, _ := f.screen.Result()
	req.Equal(before, after)
}

func TestAnalyzerScreen_History(t *testing.T) {
	f := newFixture(t)
	f.analyzer.EXPECT().History(gomock.Any()).Return([]models.AnalysisResult{})

	history := f.screen.History(context.Background())

	require.NotNil(t, history)
	require.Empty(t, history)
}

func TestAnalyzerScreen_AttachShare(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	inbox := share.NewInbox("shared at startup")

	detach := f.screen.AttachShare(inbox)
	req.Equal("shared at startup", f.screen.MessageText())

	inbox.Publish("shared later")
	req.Equal("shared later", f.screen.MessageText())

	detach()
	inbox.Publish("after detach")
	req.Equal("shared later", f.screen.MessageText())
}
