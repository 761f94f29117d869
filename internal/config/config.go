package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort        int    `json:"server_port"`
	JWTSecretKey      string `json:"jwt_secret_key"`
	JWTExpirationDays int    `json:"jwt_expiration_days"`
	DefaultRateLimit  int    `json:"default_rate_limit"`
	GlobalRateLimit   int    `json:"global_rate_limit"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 8080
	}

	jwtExpirationDays, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_DAYS"))
	if jwtExpirationDays == 0 {
		jwtExpirationDays = 7
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per company
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	return &Config{
		ServerPort:        serverPort,
		JWTSecretKey:      os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationDays: jwtExpirationDays,
		DefaultRateLimit:  defaultRateLimit,
		GlobalRateLimit:   globalRateLimit,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
