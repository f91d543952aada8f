package presenter

import (
	"errors"
	"fmt"

	"github.com/spacesedan/toneanalyzer/internal/clients"
)

const (
	MsgEmptyMessage = "Please enter a message to analyze"
	MsgNetwork      = "Network error: Unable to reach the server. Please check your internet connection."
	MsgUnknown      = "Unknown error occurred"
)

// UserMessage maps a client error to the text shown to the user. Protocol
// details stay in the logs.
func UserMessage(err error) string {
	var (
		validationErr *clients.ValidationError
		timeoutErr    *clients.TimeoutError
		networkErr    *clients.NetworkError
		serverErr     *clients.ServerError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validationErr):
		if validationErr.Field == "messageText" {
			return MsgEmptyMessage
		}
		return fmt.Sprintf("Invalid %s", validationErr.Field)
	case errors.As(err, &timeoutErr), errors.As(err, &networkErr):
		return MsgNetwork
	case errors.As(err, &serverErr):
		return fmt.Sprintf("Server error: %d - %s", serverErr.Status, serverErr.StatusText)
	default:
		return MsgUnknown
	}
}
