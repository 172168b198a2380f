// Package bootstrap assembles the application dependency graph.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/assemble"
	"resume-tailor/internal/documents"
	"resume-tailor/internal/generate"
	"resume-tailor/internal/latex"
	"resume-tailor/internal/profiles"
	"resume-tailor/internal/provider"
	"resume-tailor/internal/provider/anthropic"
	"resume-tailor/internal/provider/ollama"
	"resume-tailor/internal/provider/openai"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/server"
	"resume-tailor/internal/shared/storage/db"
	"resume-tailor/internal/shared/storage/object"
	localstore "resume-tailor/internal/shared/storage/object/local"
	s3store "resume-tailor/internal/shared/storage/object/s3"
	"resume-tailor/internal/store"
	"resume-tailor/internal/templates"
	"resume-tailor/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB

	Store     object.ObjectStore
	UOW       store.UnitOfWork
	Templates *templates.Cache

	GenerateService  *generate.Service
	GenerateHandler  *generate.Handler
	DocumentsHandler *documents.Handler
	ProfilesHandler  *profiles.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	objects, err := buildObjectStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  objects,
	}

	var documentsRepo documents.Repo
	var profilesRepo profiles.Repo
	var templatesRepo templates.Repo
	var usersRepo users.Repo

	if sqlDB != nil {
		app.UOW = store.NewPGUnitOfWork(sqlDB)
		documentsRepo = &documents.PGRepo{DB: sqlDB}
		profilesRepo = &profiles.PGRepo{DB: sqlDB}
		templatesRepo = &templates.PGRepo{DB: sqlDB}
		usersRepo = &users.PGRepo{DB: sqlDB}
	} else {
		memUOW := store.NewMemoryUnitOfWork()
		app.UOW = memUOW
		documentsRepo = memUOW.DocumentsRepo
		profilesRepo = memUOW.ProfilesRepo
		templatesRepo = memUOW.TemplatesRepo
		usersRepo = memUOW.UsersRepo
	}

	if err := templates.SeedDefaults(ctx, templatesRepo); err != nil {
		return nil, fmt.Errorf("seed templates: %w", err)
	}
	app.Templates = templates.NewCache(templatesRepo)

	assembler := &assemble.Assembler{
		Templates:         app.Templates,
		CheckClearance:    cfg.CheckClearance,
		ClearanceKeywords: cfg.ClearanceKeywords,
	}

	app.GenerateService = &generate.Service{
		UOW:         app.UOW,
		Assembler:   assembler,
		Compiler:    latex.NewCompiler(cfg.LatexCommand, cfg.CompileTimeout),
		Templates:   app.Templates,
		Objects:     objects,
		NewProvider: NewProviderFactory(),
		OutputDir:   cfg.OutputDir,
		DefaultProvider: provider.Config{
			Name:        cfg.ProviderName,
			Model:       cfg.ModelName,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		},
	}

	app.GenerateHandler = generate.NewHandler(app.GenerateService)
	app.DocumentsHandler = documents.NewHandler(documentsRepo, objects)
	app.ProfilesHandler = profiles.NewHandler(profilesRepo, usersRepo)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		GenerateHandler:  app.GenerateHandler,
		DocumentsHandler: app.DocumentsHandler,
		ProfilesHandler:  app.ProfilesHandler,
	})

	return app, nil
}

// NewProviderFactory builds vendor clients from request configs. API
// keys come from the environment, never from requests.
func NewProviderFactory() generate.ProviderFactory {
	return func(cfg provider.Config) (provider.Provider, error) {
		switch strings.ToLower(cfg.Name) {
		case provider.NameAnthropic:
			return anthropic.New(cfg, os.Getenv("ANTHROPIC_API_KEY")), nil
		case provider.NameOllama:
			return ollama.New(cfg, os.Getenv("OLLAMA_BASE_URL")), nil
		default:
			return openai.New(cfg, os.Getenv("OPENAI_API_KEY")), nil
		}
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildObjectStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
