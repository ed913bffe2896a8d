package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort             = "8000"
	defaultAPIBaseURL       = "http://127.0.0.1:5000"
	defaultAPITimeout       = "0s"
	defaultTokenCookieName  = "token"
	defaultCookieSecure     = "false"
	defaultCookieHTTPOnly   = "true"
	defaultCookieSameSite   = "Lax"
	defaultCookiePath       = "/"
	defaultPlacesLimit      = "15"
	defaultPlaceImages      = "images/place1.jpg,images/place2.jpg,images/place3.jpg,images/place4.jpg,images/place5.jpg,images/place6.jpg"
	defaultPlaceDetailImage = "images/place7.jpg"
	defaultStaticDir        = "web/static"
)

type Config struct {
	AppEnv string
	Port   string

	APIBaseURL string
	// APITimeout of zero means outbound calls are bounded only by the request context.
	APITimeout time.Duration

	TokenCookieName string
	CookieSecure    bool
	CookieHTTPOnly  bool
	CookieSameSite  string
	CookiePath      string

	PlacesLimit      int
	PlaceImages      []string
	PlaceDetailImage string
	StaticDir        string
}

func Load() (*Config, error) {
	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("API_BASE_URL", defaultAPIBaseURL)), "/")

	var err error
	cfg.APITimeout, err = parseDurationEnv("API_TIMEOUT", defaultAPITimeout)
	if err != nil {
		return nil, err
	}

	cfg.PlacesLimit, err = parseIntEnv("PLACES_LIMIT", defaultPlacesLimit)
	if err != nil {
		return nil, err
	}

	cfg.TokenCookieName = strings.TrimSpace(getEnv("TOKEN_COOKIE_NAME", defaultTokenCookieName))
	cfg.CookieSecure = parseBoolEnv("COOKIE_SECURE", defaultCookieSecure)
	cfg.CookieHTTPOnly = parseBoolEnv("COOKIE_HTTPONLY", defaultCookieHTTPOnly)
	cfg.CookieSameSite = strings.TrimSpace(getEnv("COOKIE_SAMESITE", defaultCookieSameSite))
	cfg.CookiePath = strings.TrimSpace(getEnv("COOKIE_PATH", defaultCookiePath))

	cfg.PlaceImages = splitList(getEnv("PLACE_IMAGES", defaultPlaceImages))
	cfg.PlaceDetailImage = strings.TrimSpace(getEnv("PLACE_DETAIL_IMAGE", defaultPlaceDetailImage))
	cfg.StaticDir = strings.TrimSpace(getEnv("STATIC_DIR", defaultStaticDir))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("web config: env=%s api=%s cookie=%s secure=%t httpOnly=%t sameSite=%s path=%s",
		cfg.AppEnv, cfg.APIBaseURL, cfg.TokenCookieName, cfg.CookieSecure, cfg.CookieHTTPOnly, cfg.CookieSameSite, cfg.CookiePath)

	return cfg, nil
}

// IsProd reports whether the front end runs with production cookie rules.
func (c *Config) IsProd() bool {
	return isProdLike(c.AppEnv)
}

func validateConfig(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute URL, got %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout < 0 {
		return fmt.Errorf("API_TIMEOUT must be >= 0")
	}
	if cfg.PlacesLimit <= 0 {
		return fmt.Errorf("PLACES_LIMIT must be > 0")
	}
	if len(cfg.PlaceImages) == 0 {
		return fmt.Errorf("PLACE_IMAGES must list at least one image")
	}
	if cfg.TokenCookieName == "" {
		return fmt.Errorf("TOKEN_COOKIE_NAME must not be empty")
	}
	if cfg.CookiePath == "" {
		return fmt.Errorf("COOKIE_PATH must not be empty")
	}
	if cfg.CookieSameSite == "" {
		return fmt.Errorf("COOKIE_SAMESITE must not be empty")
	}
	sameSite := strings.ToLower(strings.TrimSpace(cfg.CookieSameSite))
	if sameSite != "lax" && sameSite != "none" && sameSite != "strict" {
		return fmt.Errorf("COOKIE_SAMESITE must be one of: Lax, None, Strict")
	}
	if sameSite == "none" && !cfg.CookieSecure {
		return fmt.Errorf("COOKIE_SECURE must be true when COOKIE_SAMESITE=None")
	}

	if isProdLike(cfg.AppEnv) {
		if !cfg.CookieSecure {
			return fmt.Errorf("in prod/release COOKIE_SECURE must be true")
		}
		if !cfg.CookieHTTPOnly {
			return fmt.Errorf("in prod/release COOKIE_HTTPONLY must be true")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
