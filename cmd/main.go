package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hybrid-auth-server/config"
	_ "hybrid-auth-server/docs"
	"hybrid-auth-server/internal/handler"
	"hybrid-auth-server/internal/ports"
	"hybrid-auth-server/internal/repository"
	"hybrid-auth-server/internal/security"
	"hybrid-auth-server/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Hybrid-auth-server
// @version 1.0
// @description REST API аутентификации с парой access/refresh токенов

// @host localhost:4000

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	refreshStore, cleanup, err := setupRefreshStore(cfg)
	if err != nil {
		log.Fatalf("Ошибка создания хранилища refresh-токенов: %v", err)
	}
	defer cleanup()

	userDirectory, err := repository.NewUserRepository(cfg.Users)
	if err != nil {
		log.Fatalf("Ошибка загрузки справочника пользователей: %v", err)
	}

	srv, router := config.SetupServer(cfg.ServerAddr)

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthenticationService(refreshStore, cfg, jwtService, userDirectory)
	moduleService := service.NewModuleService(repository.NewModuleRepository(cfg.Modules))

	authHandler, err := handler.NewAuthenticationHandler(authService, cfg)
	if err != nil {
		log.Fatalf("Ошибка создания обработчика аутентификации: %v", err)
	}
	moduleHandler := handler.NewModuleHandler(moduleService)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupRoutes(router, authHandler, moduleHandler, jwtService)

	runServer(ctx, srv)
}

// setupRefreshStore выбирает реализацию хранилища по конфигурации.
// По умолчанию — хранилище в памяти процесса
func setupRefreshStore(cfg *config.AppConfig) (ports.RefreshStoreInterface, func(), error) {
	switch cfg.Storage.Backend {
	case "redis":
		redisClient, err := config.SetupRedis(&cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Ошибка при закрытии Redis: %v", err)
			}
		}
		return repository.NewRedisRefreshRepository(redisClient), cleanup, nil

	case "postgres":
		db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				log.Printf("Ошибка при закрытии БД: %v", err)
			}
		}
		return repository.NewPostgresRefreshRepository(db), cleanup, nil

	default:
		return repository.NewMemoryRefreshRepository(), func() {}, nil
	}
}

func setupRoutes(r chi.Router, authHandler *handler.AuthenticationHandler, moduleHandler *handler.ModuleHandler, jwtService *security.JWTService) {
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh-token", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Get("/health", moduleHandler.Health)
		})

		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Get("/me", authHandler.GetCurrentUser)
			r.Get("/modules", moduleHandler.ListModules)
		})
	})
}

func runServer(ctx context.Context, srv *http.Server) {
	go func() {
		log.Printf("Сервер запущен на %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка остановки сервера: %v", err)
	}
	log.Println("Сервер остановлен")
}
