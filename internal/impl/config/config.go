package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	MongoURI      string
	DatabaseName  string
	ServerAddress string
	logger        *zap.Logger
}

var (
	configInstance *Config
	once           sync.Once
)

// InitConfig loads the .env file if present and reads the process
// environment. It is safe to call from multiple entrypoints; the first
// call wins.
func InitConfig() (*Config, error) {
	var initErr error

	once.Do(func() {
		logConfig := zap.NewDevelopmentConfig()
		logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err := logConfig.Build()
		if err != nil {
			logger = zap.NewNop()
			initErr = fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("No .env file found; falling back to system environment variables")
			} else {
				initErr = fmt.Errorf("failed to load .env file: %w", err)
				logger.Error("Config file load error", zap.Error(err))
				return
			}
		}

		mongoURI := os.Getenv("MONGO_URI")
		if mongoURI == "" {
			logger.Warn("MONGO_URI not set in environment variables")
		}

		dbName := os.Getenv("MONGO_DATABASE")
		if dbName == "" {
			dbName = "hirebot"
		}

		address := os.Getenv("HIREBOT_ADDRESS")
		if address == "" {
			address = ":8080"
		}

		configInstance = &Config{
			MongoURI:      mongoURI,
			DatabaseName:  dbName,
			ServerAddress: address,
			logger:        logger,
		}
	})

	if initErr != nil {
		return nil, initErr
	}
	if configInstance == nil {
		return nil, fmt.Errorf("configuration initialization failed unexpectedly")
	}

	return configInstance, nil
}

// MaskKey hides all but the last four characters of a secret so it can be
// shown in logs and diagnostic output.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
