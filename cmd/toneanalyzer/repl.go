package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spacesedan/toneanalyzer/config"
	"github.com/spacesedan/toneanalyzer/internal/clients"
	"github.com/spacesedan/toneanalyzer/internal/clipboard"
	"github.com/spacesedan/toneanalyzer/internal/models"
	"github.com/spacesedan/toneanalyzer/internal/monitoring"
	"github.com/spacesedan/toneanalyzer/internal/presenter"
	"github.com/spacesedan/toneanalyzer/internal/screen"
	"github.com/spacesedan/toneanalyzer/internal/share"
)

const replHelp = `Type or paste the message, then /analyze.
  /type sms|email            message type
  /rel friend|coworker|other relationship
  /context <text>            additional context (empty clears it)
  /analyze                   send for analysis
  /copy <style>              copy a suggested response
  /paste                     share the clipboard text into the message
  /show                      show the message and the last result
  /history                   list past analyses
  /clear                     clear the message
  /quit                      exit
`

type clipboardReader interface {
	ReadAll() (string, error)
}

type repl struct {
	cfg      config.Config
	analyzer *screen.AnalyzerScreen
	inbox    *share.Inbox
	clip     clipboardReader
	healthy  *atomic.Bool
	out      io.Writer
}

func runInteractive(ctx context.Context, cfg config.Config, analyzer *screen.AnalyzerScreen, client *clients.ToneAnalyzerClient) (int, error) {
	healthy := &atomic.Bool{}
	healthy.Store(true)
	go monitoring.MonitorAnalyzerHealth(ctx, client, healthy, cfg.HealthInterval)

	inbox := share.NewInbox("")
	detach := analyzer.AttachShare(inbox)
	defer detach()

	r := repl{
		cfg:      cfg,
		analyzer: analyzer,
		inbox:    inbox,
		clip:     clipboard.System{},
		healthy:  healthy,
		out:      os.Stdout,
	}
	if err := r.loop(ctx, os.Stdin); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func (r repl) loop(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 64*1024), share.MaxShareBytes)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	fmt.Fprint(r.out, replHelp)
	for {
		r.prompt()
		select {
		case <-ctx.Done():
			slog.Info("Shutting down gracefully...")
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if quit := r.handle(ctx, line); quit {
				return nil
			}
		}
	}
}

func (r repl) prompt() {
	status := ""
	if !r.healthy.Load() {
		status = " (offline)"
	}
	fmt.Fprintf(r.out, "tone%s> ", status)
}

// handle runs one input line and reports whether the session should end.
func (r repl) handle(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, "/") {
		current := r.analyzer.MessageText()
		if current != "" {
			current += "\n"
		}
		r.analyzer.SetMessageText(current + line)
		return false
	}

	command, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(r.out, replHelp)
	case "type":
		mt := models.MessageType(strings.ToLower(arg))
		if !mt.Valid() {
			fmt.Fprintf(r.out, "unknown message type %q\n", arg)
			break
		}
		r.analyzer.SetMessageType(mt)
	case "rel":
		rel := models.Relationship(strings.ToLower(arg))
		if !rel.Valid() {
			fmt.Fprintf(r.out, "unknown relationship %q\n", arg)
			break
		}
		r.analyzer.SetRelationship(rel)
	case "context":
		r.analyzer.SetAdditionalContext(arg)
	case "clear":
		r.analyzer.SetMessageText("")
	case "analyze":
		if err := r.analyzer.Submit(ctx); err != nil {
			break
		}
		r.showResult()
	case "copy":
		if err := r.analyzer.CopyResponse(models.ResponseStyle(strings.ToLower(arg))); err != nil {
			fmt.Fprintf(r.out, "cannot copy: %v\n", err)
		}
	case "paste":
		text, err := r.clip.ReadAll()
		if err != nil {
			fmt.Fprintf(r.out, "cannot paste: %v\n", err)
			break
		}
		r.inbox.Publish(text)
	case "show":
		fmt.Fprintf(r.out, "Message:\n%s\n\n", r.analyzer.MessageText())
		r.showResult()
	case "history":
		presenter.RenderHistory(r.out, r.analyzer.History(ctx))
	default:
		fmt.Fprintf(r.out, "unknown command /%s, try /help\n", command)
	}
	return false
}

func (r repl) showResult() {
	view, ok := r.analyzer.View()
	if !ok {
		fmt.Fprintln(r.out, "No analysis yet.")
		return
	}
	if err := render(r.out, r.cfg, view); err != nil {
		fmt.Fprintf(r.out, "render failed: %v\n", err)
	}
}
