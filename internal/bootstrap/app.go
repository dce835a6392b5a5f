package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-editor/internal/enhance"
	"resume-editor/internal/extract"
	"resume-editor/internal/resumes"
	"resume-editor/internal/services/health"
	"resume-editor/internal/shared/config"
	"resume-editor/internal/shared/server"
	"resume-editor/internal/shared/server/middleware"
	"resume-editor/internal/shared/storage/object"
	localstore "resume-editor/internal/shared/storage/object/local"
	s3store "resume-editor/internal/shared/storage/object/s3"
	"resume-editor/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Objects        object.ObjectStore
	Resumes        *resumes.Store
	Enhancer       enhance.Enhancer
	Extractor      *extract.Extractor
	ResumeHandler  *resumes.Handler
	EnhanceHandler *enhance.Handler
	ExtractHandler *extract.Handler
}

// Build prepares dependencies, loads saved records and wires routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}

	objects, err := BuildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store := resumes.NewStore(objects)
	loaded, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load saved resumes: %w", err)
	}

	app := &App{
		Config:    cfg,
		Objects:   objects,
		Resumes:   store,
		Enhancer:  enhance.NewCanned(nil),
		Extractor: extract.NewExtractor(cfg.ExtractTimeout),
	}
	app.ResumeHandler = resumes.NewHandler(store)
	app.EnhanceHandler = enhance.NewHandler(app.Enhancer)
	app.ExtractHandler = extract.NewHandler(app.Extractor, cfg.MaxUploadBytes)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		Health:         health.NewService(store),
		ResumeHandler:  app.ResumeHandler,
		EnhanceHandler: app.EnhanceHandler,
		ExtractHandler: app.ExtractHandler,
		RateLimiter:    middleware.NewRateLimiter(nil),
	})

	telemetry.Info("bootstrap.ready", map[string]any{
		"env":          cfg.Env,
		"object_store": cfg.ObjectStoreType,
		"resumes":      loaded,
	})
	return app, nil
}

// BuildStore selects the object storage backend for record files.
func BuildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.DataDir), nil
	}
}

// WatchDir returns the local record directory to watch, if watching is enabled.
func (a *App) WatchDir() (string, bool) {
	local, ok := a.Objects.(*localstore.Store)
	if !ok || !a.Config.WatchDataDir {
		return "", false
	}
	return local.Dir(), true
}
