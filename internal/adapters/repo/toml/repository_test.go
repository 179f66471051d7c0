package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/fitcalc/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, packagesPath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(PackagesPathKey, packagesPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "packages.toml"))

	createdAt := time.Date(2026, 10, 17, 8, 30, 0, 0, time.UTC)
	first := domain.Package{
		ID:        "pkg-1",
		Code:      domain.CodeSwimming,
		Values:    []float64{720, 1, 80, 25, 40},
		CreatedAt: createdAt,
	}
	second := domain.Package{
		ID:        "pkg-2",
		Code:      domain.CodeWalking,
		Values:    []float64{9000, 1.5, 75.2, 180},
		CreatedAt: createdAt.Add(time.Hour),
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	packages, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Package{first, second}, packages)
}

func TestRepositorySaveReplacesExistingID(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "packages.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Package{ID: "pkg-1", Code: domain.CodeRunning, Values: []float64{1, 1, 70}}))
	require.NoError(t, repo.Save(context.Background(), domain.Package{ID: "pkg-1", Code: domain.CodeRunning, Values: []float64{2, 1, 70}}))

	packages, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, []float64{2, 1, 70}, packages[0].Values)
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "packages.toml"))

	for _, id := range []domain.PackageID{"a", "b", "c"} {
		require.NoError(t, repo.Save(context.Background(), domain.Package{ID: id, Code: domain.CodeRunning, Values: []float64{1, 1, 70}}))
	}

	require.NoError(t, repo.Delete(context.Background(), "b"))

	packages, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, domain.PackageID("a"), packages[0].ID)
	assert.Equal(t, domain.PackageID("c"), packages[1].ID)

	err = repo.Delete(context.Background(), "b")
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestRepositoryReadsHandWrittenFile(t *testing.T) {
	t.Parallel()

	packagesPath := filepath.Join(t.TempDir(), "packages.toml")
	require.NoError(t, os.WriteFile(packagesPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[packages]]",
		"id = \"run-1\"",
		"code = \"RUN\"",
		"values = [15000.0, 1.0, 75.0]",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, packagesPath)

	pkg, err := repo.GetByID(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CodeRunning, pkg.Code)
	assert.Equal(t, []float64{15000, 1, 75}, pkg.Values)
	assert.True(t, pkg.CreatedAt.IsZero())
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	err = repo.Save(context.Background(), domain.Package{ID: "pkg-1", Code: domain.CodeRunning, Values: []float64{1, 1, 70}})
	require.NoError(t, err)

	packagesPath := filepath.Join(homeDir, ".fitcalc", "packages.toml")
	assert.Equal(t, packagesPath, repo.Path())
	info, err := os.Stat(packagesPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryPathFromConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	customPath := filepath.Join(homeDir, "custom", "readings.toml")
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".fitcalc"), 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(homeDir, ".fitcalc", "config.toml"),
		[]byte("[packages]\npath = \""+filepath.ToSlash(customPath)+"\"\n"),
		0o600,
	))

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(customPath), repo.Path())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "packages.toml"))

	packages, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, packages)

	_, err = repo.GetByID(context.Background(), "pkg-1")
	require.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	packagesPath := filepath.Join(t.TempDir(), "packages.toml")
	require.NoError(t, os.WriteFile(packagesPath, []byte("packages = ["), 0o600))

	repo := newTestRepository(t, packagesPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode packages file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "packages.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Package{ID: "pkg-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllPackages(t *testing.T) {
	t.Parallel()

	packagesPath := filepath.Join(t.TempDir(), "packages.toml")

	repoA := newTestRepository(t, packagesPath)
	repoB := newTestRepository(t, packagesPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Package{
				ID:     domain.PackageID(prefix + strconv.Itoa(i)),
				Code:   domain.CodeRunning,
				Values: []float64{float64(i), 1, 70},
			})
		}
	}

	go write(repoA, "pkg-a-")
	go write(repoB, "pkg-b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	packages, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, packages, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	packagesPath := filepath.Join(t.TempDir(), "packages.toml")
	repo := newTestRepository(t, packagesPath)

	require.NoError(t, repo.Save(context.Background(), domain.Package{ID: "pkg-1", Code: domain.CodeRunning, Values: []float64{1, 1, 70}}))

	data, err := os.ReadFile(packagesPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "RUN")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	packagesPath := filepath.Join(t.TempDir(), "packages.toml")
	require.NoError(t, os.WriteFile(packagesPath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"packages = []",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, packagesPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported packages schema version")
}
