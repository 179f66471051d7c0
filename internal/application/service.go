package application

import (
	"context"
	"fmt"

	"github.com/bnema/fitcalc/internal/domain"
	"github.com/bnema/fitcalc/internal/ports"
	"github.com/google/uuid"
)

type Service struct {
	repo  ports.PackageRepository
	clock ports.Clock
	newID func() string
}

func NewService(repo ports.PackageRepository, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repo:  repo,
		clock: clock,
		newID: uuid.NewString,
	}
}

// Process resolves a single package and renders its summary.
func (s *Service) Process(ctx context.Context, cmd ProcessCommand) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	return process(domain.Package{Code: cmd.Code, Values: cmd.Values})
}

func process(pkg domain.Package) (Result, error) {
	workout, err := domain.Resolve(pkg.Code, pkg.Values)
	if err != nil {
		return Result{}, fmt.Errorf("resolve workout: %w", err)
	}

	summary, err := domain.Summarize(workout)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Package: pkg,
		Summary: summary,
		Message: summary.Message(),
	}, nil
}

// ProcessAll processes packages in order. A failing package is recorded and
// skipped; the remaining packages are still processed.
func (s *Service) ProcessAll(ctx context.Context, packages []domain.Package) (Report, error) {
	report := Report{Results: make([]Result, 0, len(packages))}
	for _, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := process(pkg)
		if err != nil {
			report.Failures = append(report.Failures, Failure{Package: pkg, Err: err, Reason: err.Error()})
			continue
		}
		report.Results = append(report.Results, result)
	}

	return report, nil
}

// Report processes every stored package.
func (s *Service) Report(ctx context.Context) (Report, error) {
	packages, err := s.repo.List(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("list packages: %w", err)
	}

	return s.ProcessAll(ctx, packages)
}

func (s *Service) AddPackage(ctx context.Context, cmd AddPackageCommand) (domain.Package, error) {
	pkg := domain.Package{
		ID:        domain.PackageID(s.newID()),
		Code:      cmd.Code,
		Values:    append([]float64(nil), cmd.Values...),
		CreatedAt: s.clock.Now(),
	}
	if err := pkg.Validate(); err != nil {
		return domain.Package{}, fmt.Errorf("validate package: %w", err)
	}

	if err := s.repo.Save(ctx, pkg); err != nil {
		return domain.Package{}, fmt.Errorf("save package: %w", err)
	}

	return pkg, nil
}

func (s *Service) ListPackages(ctx context.Context) ([]domain.Package, error) {
	packages, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	return packages, nil
}

func (s *Service) RemovePackage(ctx context.Context, cmd RemovePackageCommand) error {
	if _, err := s.repo.GetByID(ctx, cmd.ID); err != nil {
		return fmt.Errorf("get package by id: %w", err)
	}

	if err := s.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("delete package: %w", err)
	}

	return nil
}

func (s *Service) Codes() []CodeInfo {
	factories := domain.Factories()
	out := make([]CodeInfo, 0, len(factories))
	for _, f := range factories {
		out = append(out, CodeInfo{Code: f.Code, Params: f.Params})
	}

	return out
}
