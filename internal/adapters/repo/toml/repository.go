package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/fitcalc/internal/domain"
	"github.com/bnema/fitcalc/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName         = "config"
	configType         = "toml"
	PackagesPathKey    = "packages.path"
	packagesFileMode   = 0o600
	packagesDirMode    = 0o700
	packagesConfigDir  = ".fitcalc"
	packagesConfigFile = "packages.toml"
	tempFilePattern    = ".packages-*.toml.tmp"
)

type Repository struct {
	packagesPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.PackageRepository = (*Repository)(nil)

// NewRepository resolves the packages file from cfg. The config file
// ~/.fitcalc/config.toml is read when present; a missing file is not an error.
func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, packagesConfigDir, packagesConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, packagesConfigDir))
	cfg.SetDefault(PackagesPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	packagesPath := cfg.GetString(PackagesPathKey)
	if packagesPath == "" {
		return nil, errors.New("packages path is empty")
	}
	packagesPath, err = normalizePackagesPath(packagesPath)
	if err != nil {
		return nil, err
	}

	return &Repository{packagesPath: packagesPath, mu: lockForPath(packagesPath)}, nil
}

// Path returns the resolved packages file location.
func (r *Repository) Path() string {
	return r.packagesPath
}

func (r *Repository) Save(ctx context.Context, pkg domain.Package) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(pkg)
	updated := false
	for i := range file.Packages {
		if file.Packages[i].ID == encoded.ID {
			file.Packages[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Packages = append(file.Packages, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) Delete(ctx context.Context, id domain.PackageID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Packages[:0]
	found := false
	for _, entry := range file.Packages {
		if entry.ID == string(id) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return domain.ErrPackageNotFound
	}
	file.Packages = kept

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.PackageID) (domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return domain.Package{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Package{}, err
	}

	for _, entry := range file.Packages {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Package{}, domain.ErrPackageNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	packages := make([]domain.Package, 0, len(file.Packages))
	for _, entry := range file.Packages {
		packages = append(packages, fromSchema(entry))
	}

	return packages, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.packagesPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read packages file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode packages file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizePackagesPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve packages path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.packagesPath), packagesDirMode); err != nil {
		return fmt.Errorf("create packages directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode packages file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.packagesPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp packages file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp packages file: %w", err)
	}

	if err := tempFile.Chmod(packagesFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp packages file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp packages file: %w", err)
	}

	if err := os.Rename(tempName, r.packagesPath); err != nil {
		return fmt.Errorf("replace packages file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(pkg domain.Package) packageSchema {
	return packageSchema{
		ID:        string(pkg.ID),
		Code:      string(pkg.Code),
		Values:    append([]float64(nil), pkg.Values...),
		CreatedAt: formatTime(pkg.CreatedAt),
	}
}

func fromSchema(pkg packageSchema) domain.Package {
	return domain.Package{
		ID:        domain.PackageID(pkg.ID),
		Code:      domain.ActivityCode(pkg.Code),
		Values:    pkg.Values,
		CreatedAt: parseTime(pkg.CreatedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
