package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	summaryadapter "github.com/bnema/fitcalc/internal/adapters/render/summary"
	tomlrepo "github.com/bnema/fitcalc/internal/adapters/repo/toml"
	"github.com/bnema/fitcalc/internal/application"
	"github.com/bnema/fitcalc/internal/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix       = "FITCALC"
	outputFormatKey = "output.format"
	barWidthKey     = "output.bar_width"
	dotEnvFile      = ".env"
)

type app struct {
	service        *application.Service
	packagesPath   string
	outputFormat   string
	barWidth       int
	reportRenderer func(application.Report, summaryadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()
	cfg.SetDefault(outputFormatKey, string(outputPlain))
	cfg.SetDefault(barWidthKey, 24)

	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire package repository: %w", err)
	}

	return &app{
		service:        application.NewService(repo, ports.SystemClock{}),
		packagesPath:   repo.Path(),
		outputFormat:   cfg.GetString(outputFormatKey),
		barWidth:       cfg.GetInt(barWidthKey),
		reportRenderer: summaryadapter.Render,
	}, nil
}
