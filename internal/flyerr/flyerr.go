package flyerr

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// ErrAbort is an error for when the CLI aborts
var ErrAbort = errors.New("abort")

// ErrorDescription is an error with detailed description that will be printed before the CLI exits
type ErrorDescription interface {
	error
	Description() string
}

func GetErrorDescription(err error) string {
	var ferr ErrorDescription
	if errors.As(err, &ferr) {
		return ferr.Description()
	}
	return ""
}

// ErrorSuggestion is an error with a suggested next steps that will be printed before the CLI exits
type ErrorSuggestion interface {
	error
	Suggestion() string
}

func GetErrorSuggestion(err error) string {
	var ferr ErrorSuggestion
	if errors.As(err, &ferr) {
		return ferr.Suggestion()
	}
	return ""
}

type suggestedError struct {
	err        error
	suggestion string
}

func (e *suggestedError) Error() string      { return e.err.Error() }
func (e *suggestedError) Unwrap() error      { return e.err }
func (e *suggestedError) Suggestion() string { return e.suggestion }

// WithSuggestion attaches a next step to err.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &suggestedError{err: err, suggestion: suggestion}
}

// PrintCLIOutput writes err, its description and its suggestion to w.
// Cancellations print nothing.
func PrintCLIOutput(w io.Writer, err error, colors bool) {
	if err == nil || IsCancelledError(err) {
		return
	}

	au := aurora.NewAurora(colors)
	fmt.Fprintln(w)
	fmt.Fprintln(w, au.Red("Error"), err)

	description := GetErrorDescription(err)
	suggestion := GetErrorSuggestion(err)

	if description != "" {
		fmt.Fprintf(w, "\n%s", description)
	}

	if suggestion != "" {
		if description != "" {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "\n%s", au.Bold(suggestion))
	}
	if description != "" || suggestion != "" {
		fmt.Fprintln(w)
	}
}

func IsCancelledError(err error) bool {
	return errors.Is(err, ErrAbort) || errors.Is(err, context.Canceled)
}
