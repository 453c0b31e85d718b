package config

import (
	"time"
)

type DatabaseConfig struct {
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	MaxPoolSize    int           `yaml:"max_pool_size"`
	MinPoolSize    int           `yaml:"min_pool_size"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	SocketTimeout  time.Duration `yaml:"socket_timeout"`
}

func loadDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		URI:            firstEnv("mongodb://localhost:27017/car_booking", "MONGODB_URI", "MONGO_URI"),
		Database:       getEnv("MONGODB_DATABASE", "car_booking"),
		MaxPoolSize:    getEnvAsInt("MONGODB_MAX_POOL_SIZE", 50),
		MinPoolSize:    getEnvAsInt("MONGODB_MIN_POOL_SIZE", 2),
		ConnectTimeout: getEnvAsDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second),
		SocketTimeout:  getEnvAsDuration("MONGODB_SOCKET_TIMEOUT", 30*time.Second),
	}
}
