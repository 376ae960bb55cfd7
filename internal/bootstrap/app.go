package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/account"
	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/coverletters"
	"resume-builder/internal/extract"
	"resume-builder/internal/jobsearches"
	"resume-builder/internal/llm"
	anthropicllm "resume-builder/internal/llm/anthropic"
	"resume-builder/internal/llm/gateway"
	"resume-builder/internal/profiles"
	"resume-builder/internal/render"
	"resume-builder/internal/resumes"
	"resume-builder/internal/search"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
)

// App holds shared dependencies wired at startup.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Search *search.Index

	ResumesRepo      resumes.Repo
	CoverLettersRepo coverletters.Repo
	ProfilesRepo     profiles.Repo
	JobSearchesRepo  jobsearches.Repo

	LLM llm.Client
	PDF render.PDFRenderer

	ResumesService      *resumes.Service
	CoverLettersService *coverletters.Service
	ProfilesService     *profiles.Service
	JobSearchesService  *jobsearches.Service
	AccountService      *account.Service

	ResumesHandler      *resumes.Handler
	CoverLettersHandler *coverletters.Handler
	ProfilesHandler     *profiles.Handler
	JobSearchesHandler  *jobsearches.Handler
	AccountHandler      *account.Handler
	ExtractHandler      *extract.Handler
	GoogleAuth          *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	idx, err := search.Open(cfg.SearchIndexPath)
	if err != nil {
		return nil, fmt.Errorf("open search index: %w", err)
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Search: idx,
		LLM:    llmClient,
		PDF:    buildPDF(cfg),
	}

	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:      app.Config,
		Resumes:     app.ResumesHandler,
		CoverLetter: app.CoverLettersHandler,
		Profiles:    app.ProfilesHandler,
		JobSearches: app.JobSearchesHandler,
		Account:     app.AccountHandler,
		Extract:     app.ExtractHandler,
		GoogleAuth:  app.GoogleAuth,
	})

	return app, nil
}

// Close releases resources held by the app.
func (a *App) Close() error {
	var firstErr error
	if a.Search != nil {
		if err := a.Search.Close(); err != nil {
			firstErr = err
		}
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
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

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "anthropic":
		return anthropicllm.NewClient(cfg.AnthropicAPIKey, cfg.LLMModel)
	case "gateway":
		if strings.TrimSpace(cfg.GatewayURL) == "" || strings.TrimSpace(cfg.GatewayAPIKey) == "" {
			log.Printf("bootstrap: gateway credentials missing; generation disabled")
			return llm.PlaceholderClient{}, nil
		}
		return gateway.NewClient(cfg.GatewayURL, cfg.GatewayAPIKey, cfg.LLMModel)
	default:
		return llm.PlaceholderClient{}, nil
	}
}

// buildPDF returns a Chrome-backed renderer only when a browser binary is
// actually present; otherwise export endpoints answer 503 instead of failing
// mid-render.
func buildPDF(cfg config.Config) render.PDFRenderer {
	path := strings.TrimSpace(cfg.ChromePath)
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			log.Printf("bootstrap: chrome not found at %s; PDF export disabled", path)
			return nil
		}
		return render.NewChromePDF(path)
	}
	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "headless-shell"} {
		if found, err := exec.LookPath(name); err == nil {
			return render.NewChromePDF(found)
		}
	}
	log.Printf("bootstrap: no chrome binary on PATH; PDF export disabled")
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.CoverLettersRepo = &coverletters.PGRepo{DB: app.DB}
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.JobSearchesRepo = &jobsearches.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.CoverLettersRepo = coverletters.NewMemoryRepo()
		app.ProfilesRepo = profiles.NewMemoryRepo()
		app.JobSearchesRepo = jobsearches.NewMemoryRepo()
	}

	app.ProfilesService = profiles.NewService(app.ProfilesRepo)
	app.ResumesService = &resumes.Service{
		Repo:   app.ResumesRepo,
		LLM:    app.LLM,
		Hints:  app.ProfilesService,
		Search: app.Search,
	}
	app.CoverLettersService = &coverletters.Service{
		Repo:    app.CoverLettersRepo,
		Resumes: app.ResumesService,
		LLM:     app.LLM,
		Hints:   app.ProfilesService,
	}
	app.JobSearchesService = jobsearches.NewService(app.JobSearchesRepo)
	app.AccountService = account.NewService(
		app.ResumesService,
		app.CoverLettersService,
		app.JobSearchesService,
		app.ProfilesService,
	)

	app.ResumesHandler = resumes.NewHandler(app.ResumesService, app.PDF)
	app.CoverLettersHandler = coverletters.NewHandler(app.CoverLettersService, app.PDF)
	app.ProfilesHandler = profiles.NewHandler(app.ProfilesService)
	app.JobSearchesHandler = jobsearches.NewHandler(app.JobSearchesService)
	app.AccountHandler = account.NewHandler(app.AccountService)
	app.ExtractHandler = extract.NewHandler()
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
	)
}
