package mocks

import (
	"context"

	"github.com/bnema/fitcalc/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPackageRepository struct {
	mock.Mock
}

type MockPackageRepository_Expecter struct {
	mock *mock.Mock
}

func NewMockPackageRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPackageRepository {
	m := &MockPackageRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *MockPackageRepository) EXPECT() *MockPackageRepository_Expecter {
	return &MockPackageRepository_Expecter{mock: &_m.Mock}
}

func (_m *MockPackageRepository) GetByID(ctx context.Context, id domain.PackageID) (domain.Package, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Package), ret.Error(1)
}

func (_e *MockPackageRepository_Expecter) GetByID(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("GetByID", ctx, id)
}

func (_m *MockPackageRepository) List(ctx context.Context) ([]domain.Package, error) {
	ret := _m.Called(ctx)

	var packages []domain.Package
	if v := ret.Get(0); v != nil {
		packages = v.([]domain.Package)
	}

	return packages, ret.Error(1)
}

func (_e *MockPackageRepository_Expecter) List(ctx interface{}) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_m *MockPackageRepository) Save(ctx context.Context, pkg domain.Package) error {
	ret := _m.Called(ctx, pkg)
	return ret.Error(0)
}

func (_e *MockPackageRepository_Expecter) Save(ctx interface{}, pkg interface{}) *mock.Call {
	return _e.mock.On("Save", ctx, pkg)
}

func (_m *MockPackageRepository) Delete(ctx context.Context, id domain.PackageID) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_e *MockPackageRepository_Expecter) Delete(ctx interface{}, id interface{}) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}
