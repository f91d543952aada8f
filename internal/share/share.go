// Package share delivers text shared into the app from outside: the initial
// share at startup and any text shared while the app is running.
package share

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

// MaxShareBytes caps what FromReader accepts.
const MaxShareBytes = 64 << 10

type Source interface {
	// Initial returns the text the app was started with, if any.
	Initial() (string, bool)
	// Subscribe registers fn for every later share. The returned func removes it.
	Subscribe(fn func(text string)) (unsubscribe func())
}

type Inbox struct {
	mu          sync.Mutex
	initial     string
	subscribers map[int]func(string)
	nextID      int
}

func NewInbox(initial string) *Inbox {
	return &Inbox{
		initial:     initial,
		subscribers: make(map[int]func(string)),
	}
}

func (i *Inbox) Initial() (string, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.initial, i.initial != ""
}

func (i *Inbox) Subscribe(fn func(text string)) func() {
	i.mu.Lock()
	defer i.mu.Unlock()
	id := i.nextID
	i.nextID++
	i.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			i.mu.Lock()
			defer i.mu.Unlock()
			delete(i.subscribers, id)
		})
	}
}

// Publish hands text to every subscriber. Empty shares are ignored.
func (i *Inbox) Publish(text string) {
	if text == "" {
		return
	}

	i.mu.Lock()
	subscribers := make([]func(string), 0, len(i.subscribers))
	for _, fn := range i.subscribers {
		subscribers = append(subscribers, fn)
	}
	i.mu.Unlock()

	slog.Debug("[ShareInbox] Delivering share",
		slog.Int("subscribers", len(subscribers)),
		slog.Int("length", len(text)))
	for _, fn := range subscribers {
		fn(text)
	}
}

// FromReader reads a whole share, dropping the trailing newline a shell pipe adds.
func FromReader(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxShareBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read share: %w", err)
	}
	if len(data) > MaxShareBytes {
		return "", fmt.Errorf("share exceeds %d bytes", MaxShareBytes)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// StdinIsPiped reports whether stdin carries shared text rather than a terminal.
func StdinIsPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
