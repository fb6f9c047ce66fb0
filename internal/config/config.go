package config

import (
	"encoding/base64"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Features are the per-environment feature toggles. They gate behavior only;
// none of them changes the API contract with the backend.
type Features struct {
	RealTimeUpdates    bool
	EmailNotifications bool
	Analytics          bool
}

// Environment is one named deployment target. The backend URL always points
// at the remote reservation service; this process never owns reservation data.
type Environment struct {
	Name         string
	APIURL       string
	IsProduction bool
	Features     Features
}

const defaultAPIURL = "https://fermento-backend--fermento-pizzeria.europe-west4.hosted.app/api"

var environments = map[string]Environment{
	"development": {
		Name:   "Development",
		APIURL: defaultAPIURL,
		Features: Features{
			RealTimeUpdates: true,
		},
	},
	"production": {
		Name:         "Production",
		APIURL:       defaultAPIURL,
		IsProduction: true,
		Features: Features{
			RealTimeUpdates:    true,
			EmailNotifications: true,
			Analytics:          true,
		},
	},
	"staging": {
		Name:   "Staging",
		APIURL: defaultAPIURL,
		Features: Features{
			RealTimeUpdates:    true,
			EmailNotifications: true,
		},
	},
}

type Config struct {
	Env Environment

	ListenAddr string
	BaseURL    string
	LogLevel   string

	// connectivity monitor
	StatusPollInterval time.Duration

	// admin web session
	CookieHashKey  []byte
	CookieBlockKey []byte
	AdminUser      string
	AdminPassHash  string // bcrypt
}

// FromEnv builds the configuration from process environment variables.
// A .env file in the working directory is honored when present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:        Resolve(os.Getenv("FERMENTO_ENV"), os.Getenv("FERMENTO_API_URL")),
		ListenAddr: getenv("LISTEN_ADDR", ":8080"),
		BaseURL:    getenv("BASE_URL", "http://localhost:8080"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		AdminUser:  getenv("ADMIN_USER", "admin"),
	}

	pollSec, err := strconv.Atoi(getenv("STATUS_POLL_SECONDS", "30"))
	if err != nil || pollSec < 1 {
		return Config{}, fmt.Errorf("invalid STATUS_POLL_SECONDS")
	}
	cfg.StatusPollInterval = time.Duration(pollSec) * time.Second

	cfg.AdminPassHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))

	if hashKey := os.Getenv("COOKIE_HASH_KEY"); hashKey != "" {
		blockKey := os.Getenv("COOKIE_BLOCK_KEY")
		if blockKey == "" {
			return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY is required when COOKIE_HASH_KEY is set")
		}
		var derr error
		cfg.CookieHashKey, derr = decodeB64(hashKey)
		if derr != nil {
			return Config{}, fmt.Errorf("COOKIE_HASH_KEY: %w", derr)
		}
		cfg.CookieBlockKey, derr = decodeB64(blockKey)
		if derr != nil {
			return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY: %w", derr)
		}
	}

	return cfg, nil
}

// Resolve returns the environment for name, falling back to development for
// unknown names. A non-empty apiURL override replaces the environment's API
// URL regardless of which environment was selected.
func Resolve(name, apiURL string) Environment {
	if name == "" {
		name = "development"
	}
	env, ok := environments[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		env = environments["development"]
	}
	if u := strings.TrimSpace(apiURL); u != "" {
		env.APIURL = u
	}
	return env
}

func decodeB64(s string) ([]byte, error) {
	if b, err := os.ReadFile(s); err == nil {
		// allow pointing to a file path for k8s secret mounts
		s = string(b)
	}
	s = strings.TrimSpace(s)
	if dec, err := base64.StdEncoding.DecodeString(s); err == nil {
		return dec, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}
