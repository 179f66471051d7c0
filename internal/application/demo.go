package application

import "github.com/bnema/fitcalc/internal/domain"

// DemoPackages are the sample readings shipped with the tracker.
func DemoPackages() []domain.Package {
	return []domain.Package{
		{ID: "demo-swm", Code: domain.CodeSwimming, Values: []float64{720, 1, 80, 25, 40}},
		{ID: "demo-run", Code: domain.CodeRunning, Values: []float64{15000, 1, 75}},
		{ID: "demo-wlk", Code: domain.CodeWalking, Values: []float64{9000, 1, 75, 180}},
	}
}
