package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spacesedan/toneanalyzer/config"
	"github.com/spacesedan/toneanalyzer/internal/clients"
	"github.com/spacesedan/toneanalyzer/internal/screen"
	"github.com/spacesedan/toneanalyzer/internal/share"
	"github.com/stretchr/testify/require"
)

const analyzeResponse = `{"result":{"data":{
	"sentiment":"neutral","colorCode":"yellow","toneAnalysis":"Polite request to postpone.",
	"impliedMeanings":[],
	"suggestedResponses":{"professional":"Of course.","friendly":"Sure thing!","casual":"yep","diplomatic":"Whenever works."}
}}}`

type fakeClipboard struct {
	written []string
	content string
}

func (f *fakeClipboard) WriteAll(text string) error {
	f.written = append(f.written, text)
	return nil
}

func (f *fakeClipboard) ReadAll() (string, error) { return f.content, nil }

type recordingNotifier struct {
	alerts []string
}

func (n *recordingNotifier) Alert(title, message string) {
	n.alerts = append(n.alerts, title+": "+message)
}

func newTestRepl(t *testing.T, handler http.HandlerFunc) (repl, *bytes.Buffer, *recordingNotifier, *fakeClipboard) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	notifier := &recordingNotifier{}
	clip := &fakeClipboard{content: "from the clipboard"}
	analyzer := screen.NewAnalyzerScreen(clients.NewToneAnalyzerClient(server.URL), notifier, clip)
	inbox := share.NewInbox("")
	t.Cleanup(analyzer.AttachShare(inbox))

	healthy := &atomic.Bool{}
	healthy.Store(true)
	out := &bytes.Buffer{}
	return repl{
		cfg:      config.Config{Output: config.OutputText},
		analyzer: analyzer,
		inbox:    inbox,
		clip:     clip,
		healthy:  healthy,
		out:      out,
	}, out, notifier, clip
}

func TestRepl_AnalyzeAndCopy(t *testing.T) {
	req := require.New(t)
	var body map[string]map[string]string

	r, out, notifier, clip := newTestRepl(t, func(w http.ResponseWriter, hr *http.Request) {
		raw, _ := io.ReadAll(hr.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = io.WriteString(w, analyzeResponse)
	})

	input := strings.Join([]string{
		"Can we talk",
		"later?",
		"/type email",
		"/rel coworker",
		"/context we had a deadline",
		"/analyze",
		"/copy casual",
		"/quit",
		"never reached",
	}, "\n")
	req.NoError(r.loop(context.Background(), strings.NewReader(input)))

	req.Equal("Can we talk\nlater?", body["json"]["messageText"])
	req.Equal("email", body["json"]["messageType"])
	req.Equal("coworker", body["json"]["relationship"])
	req.Equal("we had a deadline", body["json"]["additionalContext"])

	req.Contains(out.String(), "Neutral Tone")
	req.Contains(out.String(), "[4] Diplomatic")
	req.Equal([]string{"yep"}, clip.written)
	req.Equal([]string{"Copied!: Response copied to clipboard"}, notifier.alerts)
	req.NotContains(r.analyzer.MessageText(), "never reached")
}

func TestRepl_ServerErrorAndPaste(t *testing.T) {
	req := require.New(t)
	r, out, notifier, _ := newTestRepl(t, func(w http.ResponseWriter, hr *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	input := strings.Join([]string{
		"/analyze",
		"/paste",
		"/analyze",
		"/show",
		"/bogus",
	}, "\n")
	req.NoError(r.loop(context.Background(), strings.NewReader(input)))

	req.Equal([]string{
		"Error: Please enter a message to analyze",
		"Analysis Failed: Server error: 500 - Internal Server Error",
	}, notifier.alerts)
	req.Equal("from the clipboard", r.analyzer.MessageText())
	req.Contains(out.String(), "No analysis yet.")
	req.Contains(out.String(), "unknown command /bogus")
}

func TestRepl_HistoryFailsOpen(t *testing.T) {
	r, out, notifier, _ := newTestRepl(t, func(w http.ResponseWriter, hr *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	require.NoError(t, r.loop(context.Background(), strings.NewReader("/history\n")))

	require.Contains(t, out.String(), "No past analyses.")
	require.Empty(t, notifier.alerts)
}

func TestApplyOptions(t *testing.T) {
	analyzer := screen.NewAnalyzerScreen(nil, nil, nil)

	require.NoError(t, applyOptions(analyzer, "EMAIL", "Other"))
	require.Error(t, applyOptions(analyzer, "fax", "friend"))
	require.Error(t, applyOptions(analyzer, "sms", "boss"))
}
