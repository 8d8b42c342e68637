package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the gateway configuration
type Config struct {
	Server  ServerConfig
	Cipher  CipherConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CipherConfig controls how many keyed cipher instances are kept around
type CipherConfig struct {
	CacheSize int
}

type LoggingConfig struct {
	Debug bool
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("GATEWAY_HOST", "0.0.0.0"),
			Port:         getEnvInt("GATEWAY_PORT", 8080),
			ReadTimeout:  time.Duration(getEnvInt("GATEWAY_READ_TIMEOUT_SEC", 10)) * time.Second,
			WriteTimeout: time.Duration(getEnvInt("GATEWAY_WRITE_TIMEOUT_SEC", 10)) * time.Second,
		},
		Cipher: CipherConfig{
			CacheSize: getEnvInt("GATEWAY_CIPHER_CACHE", 256),
		},
		Logging: LoggingConfig{
			Debug: getEnvBool("GATEWAY_DEBUG", false),
		},
	}
}

// Addr returns host:port for net/http
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(`
Server: %s (read timeout %v, write timeout %v)
Cipher cache: %d keys
Debug logging: %v`,
		c.Addr(), c.Server.ReadTimeout, c.Server.WriteTimeout,
		c.Cipher.CacheSize,
		c.Logging.Debug,
	)
}
