package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/fitcalc/internal/application"
	"github.com/bnema/fitcalc/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// BarWidth is the width of the calorie bar; zero hides it.
	BarWidth int
}

func renderView(report application.Report, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Workout summaries"),
		s.header.Render(fmt.Sprintf("packages: %d", len(report.Results)+len(report.Failures))),
	}

	if len(report.Results) == 0 && len(report.Failures) == 0 {
		lines = append(lines, s.empty.Render("No packages to report."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	maxCalories := 0.0
	for _, result := range report.Results {
		maxCalories = math.Max(maxCalories, result.Summary.CaloriesKcal)
	}

	for _, result := range report.Results {
		lines = append(lines, s.section.Render(renderResult(result, maxCalories, opts, s)))
	}

	for _, failure := range report.Failures {
		lines = append(lines, s.section.Render(renderFailure(failure, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderResult(result application.Result, maxCalories float64, opts RenderOptions, s styles) string {
	summary := result.Summary
	parts := []string{
		s.activity.Render(resultTitle(summary.ActivityName, result.Package)),
		metricLine("duration", fmt.Sprintf("%.3f h", summary.DurationHours), s),
		metricLine("distance", fmt.Sprintf("%.3f km", summary.DistanceKm), s),
		metricLine("speed", fmt.Sprintf("%.3f km/h", summary.MeanSpeedKmh), s),
	}

	calories := s.metricVal.Render(fmt.Sprintf("%.3f kcal", summary.CaloriesKcal))
	if opts.BarWidth > 0 {
		calories = lipgloss.JoinHorizontal(
			lipgloss.Top,
			renderBar(summary.CaloriesKcal, maxCalories, opts.BarWidth, s),
			" ",
			calories,
		)
	}
	parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top, s.metricKey.Render("calories"), calories))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderFailure(failure application.Failure, s styles) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.warning.Render(resultTitle(string(failure.Package.Code), failure.Package)+" [skipped]"),
		s.metricVal.Render(failure.Reason),
	)
}

func resultTitle(name string, pkg domain.Package) string {
	if pkg.ID == "" {
		return name
	}

	return fmt.Sprintf("%s (%s)", name, pkg.ID)
}

func metricLine(key, value string, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.metricKey.Render(key), s.metricVal.Render(value))
}

func renderBar(value, maxValue float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := 0.0
	if maxValue > 0 {
		fraction = value / maxValue
	}
	filled := int(math.Round(float64(width) * fraction))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
