// Package screen holds the analyzer's presentation state: the input fields,
// the busy flag and the current result. It is the only owner of that state.
package screen

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spacesedan/toneanalyzer/internal/models"
	"github.com/spacesedan/toneanalyzer/internal/presenter"
	"github.com/spacesedan/toneanalyzer/internal/share"
)

var (
	ErrBusy         = errors.New("an analysis is already in progress")
	ErrEmptyMessage = errors.New("message is empty")
	ErrNoResult     = errors.New("no analysis result yet")
)

type AnalyzerScreen struct {
	analyzer  Analyzer
	notifier  Notifier
	clipboard Clipboard

	busy atomic.Bool

	mu                sync.Mutex
	messageText       string
	messageType       models.MessageType
	relationship      models.Relationship
	additionalContext string
	result            *models.AnalysisResult
}

func NewAnalyzerScreen(analyzer Analyzer, notifier Notifier, clipboard Clipboard) *AnalyzerScreen {
	return &AnalyzerScreen{
		analyzer:     analyzer,
		notifier:     notifier,
		clipboard:    clipboard,
		messageType:  models.MessageTypeSMS,
		relationship: models.RelationshipFriend,
	}
}

func (s *AnalyzerScreen) SetMessageText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageText = text
}

func (s *AnalyzerScreen) MessageText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messageText
}

func (s *AnalyzerScreen) SetMessageType(t models.MessageType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messageType = t
}

func (s *AnalyzerScreen) SetRelationship(r models.Relationship) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.relationship = r
}

func (s *AnalyzerScreen) SetAdditionalContext(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.additionalContext = text
}

func (s *AnalyzerScreen) Busy() bool {
	return s.busy.Load()
}

// CanSubmit mirrors the enabled state of the submit action.
func (s *AnalyzerScreen) CanSubmit() bool {
	return !s.Busy() && strings.TrimSpace(s.MessageText()) != ""
}

func (s *AnalyzerScreen) request() models.AnalysisRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.AnalysisRequest{
		MessageText:       s.messageText,
		MessageType:       s.messageType,
		Relationship:      s.relationship,
		AdditionalContext: s.additionalContext,
	}
}

// Submit runs one analysis. Failures are shown through the notifier and
// also returned.
func (s *AnalyzerScreen) Submit(ctx context.Context) error {
	req := s.request()
	if strings.TrimSpace(req.MessageText) == "" {
		s.notifier.Alert("Error", presenter.MsgEmptyMessage)
		return ErrEmptyMessage
	}

	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)

	result, err := s.analyzer.Analyze(ctx, req)
	if err != nil {
		slog.Warn("[AnalyzerScreen] Analysis failed", slog.String("error", err.Error()))
		s.notifier.Alert("Analysis Failed", presenter.UserMessage(err))
		return err
	}

	s.mu.Lock()
	s.result = &result
	s.mu.Unlock()
	return nil
}

func (s *AnalyzerScreen) Result() (models.AnalysisResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.result == nil {
		return models.AnalysisResult{}, false
	}
	return *s.result, true
}

func (s *AnalyzerScreen) View() (presenter.View, bool) {
	result, ok := s.Result()
	if !ok {
		return presenter.View{}, false
	}
	return presenter.Present(result), true
}

// CopyResponse puts one suggested response on the clipboard.
func (s *AnalyzerScreen) CopyResponse(style models.ResponseStyle) error {
	result, ok := s.Result()
	if !ok {
		return ErrNoResult
	}
	text, ok := result.SuggestedResponses[style]
	if !ok {
		return models.ErrUnknownResponseStyle
	}

	if err := s.clipboard.WriteAll(text); err != nil {
		s.notifier.Alert("Copy Failed", err.Error())
		return err
	}
	s.notifier.Alert("Copied!", "Response copied to clipboard")
	return nil
}

func (s *AnalyzerScreen) History(ctx context.Context) []models.AnalysisResult {
	return s.analyzer.History(ctx)
}

// AttachShare fills the message field from the initial share and from every
// later one until the returned func is called.
func (s *AnalyzerScreen) AttachShare(source share.Source) (detach func()) {
	if text, ok := source.Initial(); ok {
		s.SetMessageText(text)
	}
	return source.Subscribe(func(text string) {
		if text != "" {
			s.SetMessageText(text)
		}
	})
}
