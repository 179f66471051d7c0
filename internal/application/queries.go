package application

import "github.com/bnema/fitcalc/internal/domain"

// Result is the outcome of processing one package.
type Result struct {
	Package domain.Package
	Summary domain.Summary
	Message string
}

// Failure records a package that could not be processed.
type Failure struct {
	Package domain.Package
	Err     error `json:"-"`
	Reason  string
}

type Report struct {
	Results  []Result
	Failures []Failure
}

// CodeInfo describes a registered workout code.
type CodeInfo struct {
	Code   domain.ActivityCode
	Params []string
}
