package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-booster/internal/health"
	"resume-booster/internal/identity"
	"resume-booster/internal/llm"
	openai "resume-booster/internal/llm/openai"
	"resume-booster/internal/resumes"
	"resume-booster/internal/shared/config"
	"resume-booster/internal/shared/server"
	"resume-booster/internal/shared/storage/object"
	localstore "resume-booster/internal/shared/storage/object/local"
	miniostore "resume-booster/internal/shared/storage/object/miniostore"
	s3store "resume-booster/internal/shared/storage/object/s3"
	"resume-booster/internal/suggest"
)

// App holds shared dependencies. The object store handle is constructed once
// here and injected; nothing else owns its lifecycle.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Store         object.Store
	LLM           llm.Client
	Verifier      identity.Verifier
	ResumeService *resumes.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	var engine suggest.Engine
	if llmClient != nil {
		engine = suggest.NewPDFEngine(llmClient)
	}

	verifier := identity.NewTokenVerifier()
	resumeSvc := resumes.NewService(store, engine)

	localFilesDir := ""
	if cfg.ObjectStoreType == "local" {
		localFilesDir = cfg.LocalStoreDir
	}

	router := server.NewRouter(server.RouterDeps{
		Config:        cfg,
		Verifier:      verifier,
		ResumeHandler: resumes.NewHandler(resumeSvc),
		AuthHandler:   identity.NewHandler(),
		GoogleAuth:    identity.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL),
		Health:        health.NewService(cfg.Env),
		LocalFilesDir: localFilesDir,
	})

	return &App{
		Config:        cfg,
		Router:        router,
		Store:         store,
		LLM:           llmClient,
		Verifier:      verifier,
		ResumeService: resumeSvc,
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.Store, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID, cfg.SignedURLTTL)
	case "minio":
		return miniostore.New(ctx, miniostore.Options{
			Endpoint:       cfg.MinIOEndpoint,
			AccessKey:      cfg.MinIOAccessKey,
			SecretKey:      cfg.MinIOSecretKey,
			Bucket:         cfg.MinIOBucket,
			UseSSL:         cfg.MinIOUseSSL,
			PublicEndpoint: cfg.MinIOPublicEndpoint,
			SignedTTL:      cfg.SignedURLTTL,
		})
	default:
		return localstore.New(cfg.LocalStoreDir, cfg.PublicBaseURL), nil
	}
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.OpenAIAPIKey) == "" {
		if isDevLike(cfg.Env) {
			// Uploads still succeed; the analysis stage degrades per record.
			log.Printf("bootstrap: OPENAI_API_KEY empty; suggestion engine disabled")
			return nil, nil
		}
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
