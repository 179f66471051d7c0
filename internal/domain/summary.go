package domain

import "fmt"

const summaryTemplate = "Training type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f."

type Summary struct {
	ActivityName  string
	DurationHours float64
	DistanceKm    float64
	MeanSpeedKmh  float64
	CaloriesKcal  float64
}

// Message renders the summary as a single sentence, numeric fields with three decimals.
func (s Summary) Message() string {
	return fmt.Sprintf(summaryTemplate, s.ActivityName, s.DurationHours, s.DistanceKm, s.MeanSpeedKmh, s.CaloriesKcal)
}

type divisorChecker interface {
	checkDivisors() error
}

// Summarize computes every metric of w. It fails with ErrDivisionByZero
// instead of producing Inf or NaN fields.
func Summarize(w Workout) (Summary, error) {
	if checker, ok := w.(divisorChecker); ok {
		if err := checker.checkDivisors(); err != nil {
			return Summary{}, fmt.Errorf("summarize %s: %w", w.Name(), err)
		}
	}

	return Summary{
		ActivityName:  w.Name(),
		DurationHours: w.Duration(),
		DistanceKm:    w.Distance(),
		MeanSpeedKmh:  w.MeanSpeed(),
		CaloriesKcal:  w.Calories(),
	}, nil
}
