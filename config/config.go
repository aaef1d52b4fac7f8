package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings that are not gameplay constants.
type Config struct {
	UI             string // "window" or "terminal"
	Store          string // "file", "memory" or "redis"
	StorePath      string // JSON file used by the file store
	RedisAddr      string // host:port of the Redis server
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string
	LogFile        string // Log destination in terminal mode
	Seed           uint64 // Food RNG seed, 0 picks one from the clock
}

// Load reads an optional .env file and then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[SNAKE] [INFO] .env file not found or could not be loaded: %v", err)
	}

	redisDB, err := getEnvAsInt("REDIS_DB", 0)
	if err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsUint("SNAKE_SEED", 0)
	if err != nil {
		return Config{}, err
	}

	return Config{
		UI:             getEnvWithDefault("SNAKE_UI", "window"),
		Store:          getEnvWithDefault("SNAKE_STORE", "file"),
		StorePath:      getEnvWithDefault("SNAKE_STORE_PATH", "data/highscore.json"),
		RedisAddr:      getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:        redisDB,
		RedisKeyPrefix: getEnvWithDefault("REDIS_KEY_PREFIX", "snake:"),
		LogFile:        getEnvWithDefault("LOG_FILE", "data/snake.log"),
		Seed:           seed,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

func getEnvAsUint(key string, defaultValue uint64) (uint64, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an unsigned integer: %w", key, err)
	}
	return value, nil
}
