package summary

import (
	"context"
	"strings"
	"testing"

	"github.com/bnema/fitcalc/internal/application"
	"github.com/bnema/fitcalc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoReport(t *testing.T) application.Report {
	t.Helper()

	report, err := application.NewService(nil, nil).ProcessAll(context.Background(), application.DemoPackages())
	require.NoError(t, err)
	return report
}

func TestRenderDemoReport(t *testing.T) {
	output, err := Render(demoReport(t), RenderOptions{BarWidth: 20})
	require.NoError(t, err)

	assert.Contains(t, output, "Workout summaries")
	assert.Contains(t, output, "packages: 3")
	assert.Contains(t, output, "Swimming (demo-swm)")
	assert.Contains(t, output, "Running (demo-run)")
	assert.Contains(t, output, "SportsWalking (demo-wlk)")
	assert.Contains(t, output, "9.750 km")
	assert.Contains(t, output, "797.805 kcal")
	assert.Contains(t, output, "["+strings.Repeat("=", 20)+"]")
	assert.NotContains(t, output, "skipped")
}

func TestRenderWithoutBar(t *testing.T) {
	output, err := Render(demoReport(t), RenderOptions{})
	require.NoError(t, err)

	assert.Contains(t, output, "264.000 kcal")
	assert.NotContains(t, output, "[")
}

func TestRenderFailures(t *testing.T) {
	report := application.Report{
		Failures: []application.Failure{
			{
				Package: domain.Package{ID: "bad", Code: "XYZ"},
				Err:     domain.ErrUnknownActivityCode,
				Reason:  `unknown activity code "XYZ"`,
			},
		},
	}

	output, err := Render(report, RenderOptions{BarWidth: 10})
	require.NoError(t, err)
	assert.Contains(t, output, "packages: 1")
	assert.Contains(t, output, "XYZ (bad) [skipped]")
	assert.Contains(t, output, `unknown activity code "XYZ"`)
}

func TestRenderEmptyReport(t *testing.T) {
	output, err := Render(application.Report{}, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, output, "packages: 0")
	assert.Contains(t, output, "No packages to report.")
}

func TestRenderBarBounds(t *testing.T) {
	s := newStyles()

	tests := []struct {
		name  string
		value float64
		max   float64
		want  string
	}{
		{name: "full", value: 10, max: 10, want: "[=====]"},
		{name: "half rounds", value: 5, max: 10, want: "[===--]"},
		{name: "zero max", value: 5, max: 0, want: "[-----]"},
		{name: "over max clamps", value: 20, max: 10, want: "[=====]"},
		{name: "negative clamps", value: -5, max: 10, want: "[-----]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderBar(tt.value, tt.max, 5, s))
		})
	}

	assert.Empty(t, renderBar(1, 1, 0, s))
}

func TestRenderResultTitleWithoutID(t *testing.T) {
	assert.Equal(t, "Running", resultTitle("Running", domain.Package{}))
	assert.Equal(t, "Running (x)", resultTitle("Running", domain.Package{ID: "x"}))
}
