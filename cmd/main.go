package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/classhub-2025.net/internal/adapter/crypto"
	googleadapter "gitlab.com/classhub-2025.net/internal/adapter/google"
	"gitlab.com/classhub-2025.net/internal/adapter/postgres/catalogrepository"
	"gitlab.com/classhub-2025.net/internal/adapter/postgres/timetablerepository"
	"gitlab.com/classhub-2025.net/internal/adapter/postgres/userrepository"
	"gitlab.com/classhub-2025.net/internal/adapter/redis/loginstateport"
	"gitlab.com/classhub-2025.net/internal/config"
	auth2 "gitlab.com/classhub-2025.net/internal/core/services/auth"
	"gitlab.com/classhub-2025.net/internal/core/services/catalog"
	"gitlab.com/classhub-2025.net/internal/core/services/session"
	"gitlab.com/classhub-2025.net/internal/core/services/timetable"
	logger2 "gitlab.com/classhub-2025.net/internal/global/logger"
	http2 "gitlab.com/classhub-2025.net/internal/http"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting class schedule service")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		panic(err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})

	// SECONDARY PORTS
	userPort := userrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	timetablePort := timetablerepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	catalogPort := catalogrepository.New(db, logger, sysCfg.PostgresConfig.Schema)
	loginStatePort := loginstateport.NewLoginStateRepository(redisClient, sysCfg.SessionConfig.LoginStateTTL, logger)
	identityPort := googleadapter.NewProvider(sysCfg.GGAuthConfig, logger)

	// primary ports
	tokenCipher := crypto.NewTokenCipher()

	// services
	sessionSvc := session.NewSessionService(userPort, timetablePort, tokenCipher, logger)
	timetableSvc := timetable.NewTimetableService(timetablePort, sessionSvc, logger)
	catalogSvc := catalog.NewCatalogService(catalogPort, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, loginStatePort, identityPort, sessionSvc, tokenCipher, logger)
	serviceProvider := http2.NewServiceProvider(sessionSvc, timetableSvc, catalogSvc, ggAuth, sysCfg.GGAuthConfig.AppHomeURL)

	ctxBg := context.Background()
	if err := catalogSvc.SeedReferenceData(ctxBg); err != nil {
		logger.Error("Failed to seed reference data", "error", err)
		os.Exit(1)
	}

	// server
	httServer := http2.NewServer(sysCfg.ServerConfig.Port, sysCfg.ServerConfig.ServiceName, *serviceProvider, logger)
	err = httServer.Init()
	if err != nil {
		panic(err)
	}
	httServer.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(ctxBg, 5*time.Second)
	defer cancel()
	httServer.Stop(ctx)

	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
	if err := redisClient.Close(); err != nil {
		logger.Error("Failed to close redis client", "error", err)
	}

	logger.Info("successfully shutdown server")
}

// setupDatabase sets up the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
