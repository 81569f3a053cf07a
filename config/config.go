package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotenv picks up a local .env file when one exists. Deployed
// environments set real variables and carry no file, so a missing file is
// not an error.
func LoadDotenv() {
	_ = godotenv.Load()
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

// Port returns the HTTP port to listen on, defaulting to 8080.
func Port() string {
	if port, err := GetSecret("PORT"); err == nil && port != "" {
		return port
	}
	return "8080"
}
