// Package config holds the runtime settings of the color server
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config contains every setting the server needs
type Config struct {
	Debug bool
	Port  string

	// FrontendOrigin is the only Origin accepted on websocket upgrades.
	// Empty allows any origin.
	FrontendOrigin string

	APIKeys []string
}

// Load builds a Config from flags and the environment. Values from an
// optional .env file in the working directory are loaded first; variables
// already set in the environment win.
func Load(debug bool, port string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env: %w", err)
	}

	if port == "" {
		port = "8080"
	}

	return &Config{
		Debug:          debug,
		Port:           port,
		FrontendOrigin: os.Getenv("FRONTEND_PATH"),
		APIKeys:        splitKeys(os.Getenv("API_KEYS")),
	}, nil
}

// splitKeys splits a comma-separated list of API keys
func splitKeys(raw string) []string {
	if raw == "" {
		return nil
	}

	var keys []string
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}
