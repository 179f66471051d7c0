package domain

import (
	"strings"
	"time"
)

type PackageID string

// Package is one raw sensor reading: a workout code and its ordered values.
type Package struct {
	ID        PackageID
	Code      ActivityCode
	Values    []float64
	CreatedAt time.Time
}

// Validate checks that the package resolves to a known variant.
func (p Package) Validate() error {
	_, err := Resolve(p.Code, p.Values)
	return err
}

// NormalizeCode trims a user supplied code. Codes stay case sensitive.
func NormalizeCode(raw string) ActivityCode {
	return ActivityCode(strings.TrimSpace(raw))
}
