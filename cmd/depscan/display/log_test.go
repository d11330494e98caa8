package display_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscan/depscan-cli/cmd/depscan/display"
)

func TestFileNamesWritableLogFile(t *testing.T) {
	name := display.File()
	require.NotEmpty(t, name)

	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}
