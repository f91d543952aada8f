package clipboard

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
)

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows API depending on the platform).
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		slog.Warn("[Clipboard] Failed to write", slog.String("error", err.Error()))
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}

func (System) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", fmt.Errorf("clipboard is not supported on this system")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read clipboard: %w", err)
	}
	return text, nil
}
