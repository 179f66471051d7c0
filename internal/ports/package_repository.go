package ports

import (
	"context"

	"github.com/bnema/fitcalc/internal/domain"
)

type PackageRepository interface {
	GetByID(ctx context.Context, id domain.PackageID) (domain.Package, error)
	List(ctx context.Context) ([]domain.Package, error)
	Save(ctx context.Context, pkg domain.Package) error
	Delete(ctx context.Context, id domain.PackageID) error
}
