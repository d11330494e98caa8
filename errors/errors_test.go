package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depscan/depscan-cli/errors"
)

func TestUnknownErrorRendersBugReportFooter(t *testing.T) {
	cause := stderrors.New("socket exploded")
	err := errors.UnknownError(cause, "depscan encountered an unexpected error")

	msg := err.Error()
	assert.Contains(t, msg, "ERROR:")
	assert.Contains(t, msg, "unexpected error")
	assert.Contains(t, msg, "socket exploded")
	assert.Contains(t, msg, "troubleshooting before")
}

func TestUserErrorOmitsBugReportFooter(t *testing.T) {
	err := &errors.Error{
		Type:            errors.User,
		Message:         "no API key provided",
		Troubleshooting: "Set $DEPSCAN_API_KEY.",
	}

	msg := err.Error()
	assert.Contains(t, msg, "TROUBLESHOOTING:")
	assert.Contains(t, msg, "Set $DEPSCAN_API_KEY.")
	assert.NotContains(t, msg, "filing a bug")
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := stderrors.New("root cause")
	err := errors.UnknownError(cause, "wrapper")
	assert.True(t, stderrors.Is(err, cause))
}
