package flyerr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type describedError struct{}

func (describedError) Error() string       { return "bad input" }
func (describedError) Description() string { return "the value was rejected" }

func TestPrintCLIOutput(t *testing.T) {
	var buf bytes.Buffer

	PrintCLIOutput(&buf, errors.New("boom"), false)
	assert.Equal(t, "\nError boom\n", buf.String())

	buf.Reset()
	PrintCLIOutput(&buf, WithSuggestion(describedError{}, "try again"), false)
	assert.Equal(t, "\nError bad input\n\nthe value was rejected\n\ntry again\n", buf.String())
}

func TestPrintCLIOutputSkipsCancellation(t *testing.T) {
	var buf bytes.Buffer

	PrintCLIOutput(&buf, fmt.Errorf("running: %w", context.Canceled), false)
	PrintCLIOutput(&buf, ErrAbort, false)
	PrintCLIOutput(&buf, nil, false)

	assert.Empty(t, buf.String())
}

func TestWithSuggestion(t *testing.T) {
	base := errors.New("base")
	err := WithSuggestion(base, "do this")

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "do this", GetErrorSuggestion(err))
	assert.Empty(t, GetErrorDescription(err))
	assert.NoError(t, WithSuggestion(nil, "ignored"))
}
