package main

import (
	"context"
	"fmt"
	"log"

	"localserve/cmd"
	"localserve/internal/data/remote"
	"localserve/internal/data/repository"
	"localserve/internal/wire"
	"localserve/pkg/database"
	"localserve/pkg/utils"

	"go.uber.org/zap"
)

const storageKeyPrefix = "localserve:"

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.Log, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("storage", config.Storage.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	storage, err := openStorage(config, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer storage.Close()

	repos := repository.NewRepository(storage, logger)
	source := remote.NewRandomUserClient(config.Catalog.URL, config.Catalog.Timeout)

	// Wire all dependencies
	app, err := wire.Wiring(context.Background(), repos, source, config, logger)
	if err != nil {
		logger.Fatal("Failed to wire application", zap.Error(err))
	}

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server terminated with error", zap.Error(err))
	}
}

// openStorage picks the key/value backend named by STORAGE_DRIVER
func openStorage(config *utils.Config, logger *zap.Logger) (repository.Storage, error) {
	switch config.Storage.Driver {
	case "memory":
		return repository.NewMemoryStorage(), nil

	case "file", "":
		return repository.NewFileStorage(config.Storage.Path, logger)

	case "postgres":
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connected successfully")
		return repository.NewPostgresStorage(db, logger), nil

	case "redis":
		client, err := database.InitRedis(config.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisStorage(client, storageKeyPrefix, logger), nil

	case "valkey":
		client, err := database.InitValkey(config.Valkey)
		if err != nil {
			return nil, err
		}
		return repository.NewValkeyStorage(client, storageKeyPrefix, logger), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", config.Storage.Driver)
	}
}
