package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/project-hub/pkg/validator"

	"github.com/johnquangdev/project-hub/internal/adapter/handler"
	"github.com/johnquangdev/project-hub/internal/adapter/presenter"
	"github.com/johnquangdev/project-hub/internal/adapter/repository"
	"github.com/johnquangdev/project-hub/internal/domain/entities"
	"github.com/johnquangdev/project-hub/internal/domain/repositories"
	"github.com/johnquangdev/project-hub/internal/infrastructure/cache"
	"github.com/johnquangdev/project-hub/internal/infrastructure/notify"
	"github.com/johnquangdev/project-hub/internal/infrastructure/storage"
	"github.com/johnquangdev/project-hub/internal/usecase/note"
	"github.com/johnquangdev/project-hub/internal/usecase/project"
	"github.com/johnquangdev/project-hub/internal/usecase/view"
	"github.com/johnquangdev/project-hub/pkg/config"
	projectmw "github.com/johnquangdev/project-hub/pkg/middleware"
)

// @title           Project Hub API
// @version         1.0
// @description     Project workspace API: project catalog, synthesized project details, notes and view sessions

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load workspace time zone: %v", err)
	}
	clock := func() time.Time { return time.Now().In(loc) }

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")
	ctx := context.Background()

	// Project catalog
	log.Println("📚 Loading project catalog...")
	var catalog repositories.ProjectCatalog
	if cfg.Workspace.SeedPath != "" {
		catalog, err = repository.LoadCatalogFile(cfg.Workspace.SeedPath)
		if err != nil {
			log.Fatalf("Failed to load project catalog: %v", err)
		}
		log.Printf("✅ Catalog loaded from %s", cfg.Workspace.SeedPath)
	} else {
		catalog = repository.NewSeedCatalogRepository()
		log.Println("✅ Using built-in seed catalog")
	}

	// Avatars
	avatars := repositories.NoAvatars
	if cfg.Storage.Enabled {
		log.Println("🖼️  Connecting to avatar storage...")
		minioClient, err := storage.NewMinIOClient(ctx, &cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to connect to storage: %v", err)
		}
		index, err := storage.LoadAvatarIndex(ctx, minioClient, cfg.Storage.AvatarPrefix, cfg.Storage.ListTimeout, logger)
		if err != nil {
			log.Printf("⚠️  Avatar index unavailable, falling back to initials: %v", err)
		} else {
			avatars = index
			log.Printf("✅ %d avatars indexed", index.Len())
		}
	} else {
		log.Println("⚠️  Avatar storage disabled, users render with initials")
	}

	// Initialize Redis
	var redisClient redisCloser
	var stateStore repositories.StateStore
	var notifier repositories.Notifier = notify.NewLogNotifier(logger)
	if cfg.UsesRedis() {
		log.Println("📦 Connecting to Redis...")
		client, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		redisClient = client
		if cfg.Cache.Backend == config.CacheBackendRedis {
			stateStore = cache.NewRedisStore(client, cfg.Cache.KeyPrefix)
		}
		if cfg.Notify.Backend == config.NotifyBackendRedis {
			notifier = notify.NewRedisNotifier(client, cfg.Notify.Channel, logger)
		}
	}
	if redisClient != nil {
		defer redisClient.Close()
	}
	if stateStore == nil {
		memoryStore := cache.NewMemoryStore(cfg.Cache.CleanupInterval)
		defer memoryStore.Close()
		stateStore = memoryStore
	}
	log.Printf("✅ View store: %s, notifications: %s", cfg.Cache.Backend, cfg.Notify.Backend)

	// Initialize services
	log.Println("⚙️  Initializing services...")
	synthesizer := project.NewSynthesizer(project.SynthesizerConfig{
		DefaultPICName: cfg.Workspace.DefaultPICName,
		SupportName:    cfg.Workspace.SupportName,
		LocationLabel:  cfg.Workspace.LocationLabel,
	}, clock, avatars, project.DefaultOverrides())
	projectService := project.NewProjectService(catalog, synthesizer, logger)
	noteService := note.NewService(projectService)
	actionService := note.NewActionService(notifier, clock, logger)
	viewService := view.NewService(noteService, stateStore, cfg.Cache.ViewTTL, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	rowDate := presenter.InLocation(presenter.CardDate, loc)
	previewDate := presenter.InLocation(presenter.PreviewDate, loc)

	currentUser := entities.NewUser(cfg.Workspace.CurrentUserName, "", "")
	if url, ok := avatars.AvatarURL(currentUser.Name); ok {
		currentUser.AvatarURL = url
	}

	projectHandler := handler.NewProjectHandler(projectService, rowDate, logger)
	noteHandler := handler.NewNoteHandler(noteService, actionService, rowDate, previewDate, logger)
	viewHandler := handler.NewViewHandler(viewService, rowDate, previewDate, logger)
	avatarHandler := handler.NewAvatarHandler(avatars, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		projectHandler,
		noteHandler,
		viewHandler,
		avatarHandler,
		projectmw.LoadProject(projectService),
		projectmw.CurrentUser(currentUser),
		avatarHandler.Me(currentUser),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

type redisCloser interface {
	Close() error
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
