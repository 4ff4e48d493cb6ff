package service

import (
	"errors"

	"github.com/phrazzld/coursebook/internal/domain"
	"github.com/phrazzld/coursebook/internal/store"
)

var (
	// ErrUnknownCommand is returned for a Command type the Dispatcher does not handle.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrNilCommand is returned when Execute is called without a command.
	ErrNilCommand = errors.New("command cannot be nil")
)

// Messages for failures that are not domain conditions. Their details go to
// the log, not to the user.
const (
	msgSaveFailed = "Changes could not be saved. Please try again."
	msgUnexpected = "An unexpected error occurred"
)

// ErrorMessage returns the user-facing text for err. Domain conditions carry
// their own message; persistence failures and anything unexpected get a
// generic one.
func ErrorMessage(err error) string {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domainErr.Error()
	}

	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return msgSaveFailed
	}

	if errors.Is(err, ErrUnknownCommand) || errors.Is(err, ErrNilCommand) {
		return err.Error()
	}

	return msgUnexpected
}
