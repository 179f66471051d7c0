package domain

import (
	"fmt"
	"strings"
)

type ActivityCode string

const (
	CodeRunning  ActivityCode = "RUN"
	CodeWalking  ActivityCode = "WLK"
	CodeSwimming ActivityCode = "SWM"
)

// Factory builds a variant from positional values after the arity was checked.
type Factory struct {
	Code   ActivityCode
	Params []string
	build  func(values []float64) Workout
}

func (f Factory) Arity() int {
	return len(f.Params)
}

var factories = []Factory{
	{
		Code:   CodeSwimming,
		Params: []string{"action", "duration_hours", "weight_kg", "pool_length_m", "pool_lap_count"},
		build: func(v []float64) Workout {
			return NewSwimming(int(v[0]), v[1], v[2], v[3], v[4])
		},
	},
	{
		Code:   CodeRunning,
		Params: []string{"action", "duration_hours", "weight_kg"},
		build: func(v []float64) Workout {
			return NewRunning(int(v[0]), v[1], v[2])
		},
	},
	{
		Code:   CodeWalking,
		Params: []string{"action", "duration_hours", "weight_kg", "height_cm"},
		build: func(v []float64) Workout {
			return NewWalking(int(v[0]), v[1], v[2], v[3])
		},
	},
}

// Factories returns the registered variants in their declaration order.
func Factories() []Factory {
	out := make([]Factory, len(factories))
	copy(out, factories)
	return out
}

func lookup(code ActivityCode) (Factory, bool) {
	for _, f := range factories {
		if f.Code == code {
			return f, true
		}
	}

	return Factory{}, false
}

// Resolve picks the variant registered for code and binds values to its
// parameters in order.
func Resolve(code ActivityCode, values []float64) (Workout, error) {
	f, ok := lookup(code)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownActivityCode, string(code))
	}
	if len(values) != f.Arity() {
		return nil, fmt.Errorf("%w %s: want %d (%s), got %d",
			ErrArityMismatch, code, f.Arity(), strings.Join(f.Params, ", "), len(values))
	}

	return f.build(values), nil
}
