package application

import "github.com/bnema/fitcalc/internal/domain"

type ProcessCommand struct {
	Code   domain.ActivityCode
	Values []float64
}

type AddPackageCommand struct {
	Code   domain.ActivityCode
	Values []float64
}

type RemovePackageCommand struct {
	ID domain.PackageID
}
