package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spacesedan/toneanalyzer/config"
	"github.com/spacesedan/toneanalyzer/internal/clients"
	"github.com/spacesedan/toneanalyzer/internal/clipboard"
	"github.com/spacesedan/toneanalyzer/internal/logging"
	"github.com/spacesedan/toneanalyzer/internal/models"
	"github.com/spacesedan/toneanalyzer/internal/presenter"
	"github.com/spacesedan/toneanalyzer/internal/screen"
	"github.com/spacesedan/toneanalyzer/internal/share"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const usage = `Usage:
  toneanalyzer                         interactive session
  toneanalyzer analyze [flags] [text]  analyze text (or piped stdin)
  toneanalyzer history                 list past analyses
`

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "toneanalyzer: %v\n", err)
	}
	os.Exit(code)
}

func run(args []string) (int, error) {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		return exitConfig, err
	}
	logging.InitLogger(cfg.LogLevel)
	cfg.Colors = cfg.Colors && isatty.IsTerminal(os.Stdout.Fd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := clients.InitToneAnalyzerClient(cfg.BaseURL)
	notifier := terminalNotifier{w: os.Stderr, colors: cfg.Colors}
	analyzer := screen.NewAnalyzerScreen(client, notifier, clipboard.System{})

	command := ""
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "":
		return runInteractive(ctx, cfg, analyzer, client)
	case "analyze":
		return runAnalyze(ctx, cfg, analyzer, args)
	case "history":
		presenter.RenderHistory(os.Stdout, analyzer.History(ctx))
		return exitOK, nil
	case "help", "-h", "--help":
		fmt.Print(usage)
		return exitOK, nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return exitConfig, fmt.Errorf("unknown command %q", command)
	}
}

func runAnalyze(ctx context.Context, cfg config.Config, analyzer *screen.AnalyzerScreen, args []string) (int, error) {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	messageType := fs.String("type", string(models.MessageTypeSMS), "message type: sms or email")
	relationship := fs.String("rel", string(models.RelationshipFriend), "relationship: friend, coworker or other")
	additional := fs.String("context", "", "optional conversation history or context")
	if err := fs.Parse(args); err != nil {
		return exitConfig, err
	}

	if err := applyOptions(analyzer, *messageType, *relationship); err != nil {
		return exitConfig, err
	}
	analyzer.SetAdditionalContext(*additional)

	initial := strings.Join(fs.Args(), " ")
	if initial == "" && share.StdinIsPiped() {
		text, err := share.FromReader(os.Stdin)
		if err != nil {
			return exitRuntime, err
		}
		initial = text
	}
	detach := analyzer.AttachShare(share.NewInbox(initial))
	defer detach()

	if err := analyzer.Submit(ctx); err != nil {
		return exitRuntime, nil
	}

	view, _ := analyzer.View()
	if err := render(os.Stdout, cfg, view); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}

func applyOptions(analyzer *screen.AnalyzerScreen, messageType, relationship string) error {
	mt := models.MessageType(strings.ToLower(messageType))
	if !mt.Valid() {
		return fmt.Errorf("invalid message type %q (want one of %v)", messageType, models.MessageTypes)
	}
	rel := models.Relationship(strings.ToLower(relationship))
	if !rel.Valid() {
		return fmt.Errorf("invalid relationship %q (want one of %v)", relationship, models.Relationships)
	}
	analyzer.SetMessageType(mt)
	analyzer.SetRelationship(rel)
	return nil
}

func render(w io.Writer, cfg config.Config, view presenter.View) error {
	switch cfg.Output {
	case config.OutputMarkdown:
		_, err := io.WriteString(w, presenter.RenderMarkdown(view))
		return err
	case config.OutputHTML:
		_, err := io.WriteString(w, presenter.RenderHTML(view))
		return err
	default:
		return presenter.TextRenderer{Colors: cfg.Colors}.Render(w, view)
	}
}
