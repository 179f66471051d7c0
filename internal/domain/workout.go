package domain

import "fmt"

const (
	stepLength     = 0.65
	swimStepLength = 1.38
	metersPerKm    = 1000
	minutesPerHour = 60
	cmPerM         = 100
)

// Workout is implemented by every activity variant. There is no base
// calorie formula, a variant without Calories does not satisfy it.
type Workout interface {
	Name() string
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	Calories() float64
}

// WorkoutRecord holds the sensor readings shared by all variants.
type WorkoutRecord struct {
	Action        int
	DurationHours float64
	WeightKg      float64
}

// Duration returns the session length in hours.
func (r WorkoutRecord) Duration() float64 {
	return r.DurationHours
}

// Distance returns the covered distance in km using the step length.
func (r WorkoutRecord) Distance() float64 {
	return r.distance(stepLength)
}

// MeanSpeed returns Distance / DurationHours in km/h.
func (r WorkoutRecord) MeanSpeed() float64 {
	return r.Distance() / r.DurationHours
}

func (r WorkoutRecord) distance(step float64) float64 {
	return float64(r.Action) * step / metersPerKm
}

func (r WorkoutRecord) durationMinutes() float64 {
	return r.DurationHours * minutesPerHour
}

func (r WorkoutRecord) checkDivisors() error {
	if r.DurationHours == 0 {
		return fmt.Errorf("%w: duration is zero", ErrDivisionByZero)
	}

	return nil
}

type Running struct {
	WorkoutRecord
}

const (
	runningSpeedMultiplier = 18
	runningSpeedShift      = 1.79
)

func NewRunning(action int, durationHours, weightKg float64) Running {
	return Running{WorkoutRecord: WorkoutRecord{Action: action, DurationHours: durationHours, WeightKg: weightKg}}
}

func (Running) Name() string { return "Running" }

func (w Running) Calories() float64 {
	return (runningSpeedMultiplier*w.MeanSpeed() + runningSpeedShift) *
		w.WeightKg / metersPerKm * w.durationMinutes()
}

// Walking is sports walking; the athlete's height takes part in the calorie formula.
type Walking struct {
	WorkoutRecord
	HeightCm float64
}

const (
	walkingWeightMultiplier      = 0.035
	walkingSpeedHeightMultiplier = 0.029
	kmhToMs                      = 0.278
)

func NewWalking(action int, durationHours, weightKg, heightCm float64) Walking {
	return Walking{
		WorkoutRecord: WorkoutRecord{Action: action, DurationHours: durationHours, WeightKg: weightKg},
		HeightCm:      heightCm,
	}
}

func (Walking) Name() string { return "SportsWalking" }

func (w Walking) Calories() float64 {
	speedMs := w.MeanSpeed() * kmhToMs
	heightM := w.HeightCm / cmPerM

	return (walkingWeightMultiplier*w.WeightKg +
		(speedMs*speedMs/heightM)*walkingSpeedHeightMultiplier*w.WeightKg) *
		w.durationMinutes()
}

func (w Walking) checkDivisors() error {
	if err := w.WorkoutRecord.checkDivisors(); err != nil {
		return err
	}
	if w.HeightCm == 0 {
		return fmt.Errorf("%w: height is zero", ErrDivisionByZero)
	}

	return nil
}

// Swimming counts strokes. Distance stays stroke based while MeanSpeed is
// derived from the pool geometry, so the two are not consistent with each other.
type Swimming struct {
	WorkoutRecord
	PoolLengthM  float64
	PoolLapCount float64
}

const (
	swimmingSpeedShift      = 2
	swimmingSpeedMultiplier = 1.1
)

func NewSwimming(action int, durationHours, weightKg, poolLengthM, poolLapCount float64) Swimming {
	return Swimming{
		WorkoutRecord: WorkoutRecord{Action: action, DurationHours: durationHours, WeightKg: weightKg},
		PoolLengthM:   poolLengthM,
		PoolLapCount:  poolLapCount,
	}
}

func (Swimming) Name() string { return "Swimming" }

func (w Swimming) Distance() float64 {
	return w.distance(swimStepLength)
}

func (w Swimming) MeanSpeed() float64 {
	return w.PoolLengthM * w.PoolLapCount / metersPerKm / w.DurationHours
}

func (w Swimming) Calories() float64 {
	return (w.MeanSpeed() + swimmingSpeedShift) * swimmingSpeedMultiplier * w.WeightKg * w.DurationHours
}
