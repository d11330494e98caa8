package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depscan/depscan-cli/api/vulnscan"
	"github.com/depscan/depscan-cli/pipeline"
)

func TestSummarize(t *testing.T) {
	findings := []vulnscan.Finding{
		{Severity: 1},
		{Severity: 2},
		{Severity: 2},
		{Severity: 3},
		{Severity: 4},
		{Severity: 0},
		{Severity: 99},
	}

	h := pipeline.Summarize(findings)
	assert.Equal(t, pipeline.Histogram{
		Critical: 1,
		High:     2,
		Medium:   1,
		Low:      1,
		Unknown:  2,
	}, h)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, pipeline.Histogram{}, pipeline.Summarize(nil))
}
