package bootstrap

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"sitecheck/internal/bootstrap/config"
	"sitecheck/internal/bootstrap/database"
	"sitecheck/internal/bootstrap/logging"
	domainassessment "sitecheck/internal/domain/assessment"
	authinfra "sitecheck/internal/infrastructure/auth"
	sqliterepo "sitecheck/internal/infrastructure/persistence/sqlite/repository"
	sqliteuow "sitecheck/internal/infrastructure/persistence/sqlite/uow"
	storageinfra "sitecheck/internal/infrastructure/storage"
	"sitecheck/internal/ports"
	assessmentuc "sitecheck/internal/usecase/assessment"
)

var Module = fx.Options(
	fx.Provide(provideConfig),
	fx.Provide(provideDatabase),
	fx.Provide(provideApp),
	fx.Provide(
		fx.Annotate(
			sqliterepo.NewAssessmentRepository,
			fx.As(new(ports.AssessmentRepository)),
		),
	),
	fx.Provide(
		fx.Annotate(
			sqliteuow.NewUnitOfWork,
			fx.As(new(ports.UnitOfWork)),
		),
	),
	fx.Provide(provideStorage),
	fx.Provide(provideVerifier),
	fx.Provide(provideTemplate),
	fx.Provide(assessmentuc.NewService),
)

type configParams struct {
	fx.In

	Ctx        context.Context
	ConfigFile string `name:"configFile"`
}

func provideConfig(p configParams) (config.Config, error) {
	ctx := logging.WithAttrs(p.Ctx, slog.String("component", "bootstrap.fx"))
	return config.Load(ctx, p.ConfigFile)
}

func provideDatabase(lc fx.Lifecycle, ctx context.Context, cfg config.Config) (*gorm.DB, error) {
	logCtx := logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx"))

	db, err := database.Open(logCtx, cfg.Database)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func provideApp(cfg config.Config, db *gorm.DB) *App {
	return &App{
		Config: cfg,
		DB:     db,
	}
}

func provideStorage(cfg config.Config) (ports.ObjectStorage, error) {
	return storageinfra.New(cfg.Storage)
}

func provideVerifier(cfg config.Config) (ports.TokenVerifier, error) {
	return authinfra.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
}

func provideTemplate(ctx context.Context, cfg config.Config) (domainassessment.Template, error) {
	if cfg.Template.File == "" {
		return domainassessment.DefaultTemplate(), nil
	}

	logging.Info(
		logging.WithAttrs(ctx, slog.String("component", "bootstrap.fx")),
		"loading question template",
		slog.String("file", cfg.Template.File),
	)
	return assessmentuc.LoadTemplateFile(cfg.Template.File)
}
