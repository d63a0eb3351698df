package bootstrap

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/unirecords/internal/app/models"
	appRepos "github.com/yigit/unirecords/internal/app/repositories"
	appServices "github.com/yigit/unirecords/internal/app/services"
	"github.com/yigit/unirecords/internal/config"
	"github.com/yigit/unirecords/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Config            *config.Config
	Repos             *appRepos.Repositories
	DepartmentService *appServices.DepartmentService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Log output goes to logOutput.
func LoadConfigAndSetupLogger(configPath string, logOutput io.Writer) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Format: logger.Format(strings.ToLower(cfg.Logging.Format)),
		Output: logOutput,
	})

	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies wires the repositories and the department service. A
// non-empty department overrides the configured one.
func BuildDependencies(cfg *config.Config, department appModels.Department, lgr zerolog.Logger) *Dependencies {
	if department.Name == "" {
		department = appModels.Department{Name: cfg.Department.Name, Code: cfg.Department.Code}
	}

	deps := &Dependencies{Config: cfg, Logger: lgr}
	deps.Repos = appRepos.NewRepositories()
	deps.DepartmentService = appServices.NewDepartmentService(department, deps.Repos, lgr)

	lgr.Debug().Str("department", department.Name).Msg("Dependencies built")
	return deps
}
