// Package selfcare parses selfcare service flags and launches the service.
package selfcare

import (
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	entrypoint "github.com/haqatak/telcoco/internal/platform/cmd"
	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/platform/i18n/catalog"
	"github.com/haqatak/telcoco/internal/services/selfcare"
	"github.com/haqatak/telcoco/internal/services/selfcare/fixture"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/observability"
	"github.com/haqatak/telcoco/internal/services/selfcare/session"
	redisstore "github.com/haqatak/telcoco/internal/services/selfcare/storage/redis"
	sqlitestore "github.com/haqatak/telcoco/internal/services/selfcare/storage/sqlite"
)

// Session backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

const secretBytes = 32

// Config holds selfcare command configuration.
type Config struct {
	HTTPAddr            string `env:"SELFCARE_HTTP_ADDR" envDefault:"localhost:8090"`
	FixturePath         string `env:"SELFCARE_FIXTURE_PATH"`
	FixtureURL          string `env:"SELFCARE_FIXTURE_URL"`
	TranslationsPath    string `env:"SELFCARE_TRANSLATIONS_PATH"`
	SessionBackend      string `env:"SELFCARE_SESSION_BACKEND" envDefault:"memory"`
	SessionDBPath       string `env:"SELFCARE_SESSION_DB_PATH" envDefault:"data/selfcare-sessions.db"`
	RedisAddr           string `env:"SELFCARE_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword       string `env:"SELFCARE_REDIS_PASSWORD"`
	RedisDB             int    `env:"SELFCARE_REDIS_DB" envDefault:"0"`
	SessionSecret       string `env:"SELFCARE_SESSION_SECRET"`
	TrustForwardedProto bool   `env:"SELFCARE_TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.FixturePath, "fixture-path", cfg.FixturePath, "Fixture JSON file (empty uses the embedded fixture)")
	fs.StringVar(&cfg.FixtureURL, "fixture-url", cfg.FixtureURL, "Fixture JSON URL (overrides -fixture-path)")
	fs.StringVar(&cfg.TranslationsPath, "translations-path", cfg.TranslationsPath, "Translation JSON document (empty uses the embedded catalog)")
	fs.StringVar(&cfg.SessionBackend, "session-backend", cfg.SessionBackend, "Session store: memory, sqlite or redis")
	fs.StringVar(&cfg.SessionDBPath, "session-db-path", cfg.SessionDBPath, "SQLite session database path")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis address for the redis session store")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database for the redis session store")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "HMAC key for session tokens (generated when empty)")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Honor X-Forwarded-Proto for cookie security")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.SessionBackend = strings.ToLower(strings.TrimSpace(cfg.SessionBackend))
	switch cfg.SessionBackend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unsupported session backend %q", cfg.SessionBackend)
	}
	return cfg, nil
}

// Run starts the selfcare HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSelfcare, func(ctx context.Context) error {
		return run(ctx, cfg)
	})
}

func run(ctx context.Context, cfg Config) error {
	translations, err := loadTranslations(cfg.TranslationsPath, log.Default())
	if err != nil {
		return err
	}
	store, closeStore, err := openSessionStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	secret, err := sessionSecret(cfg.SessionSecret)
	if err != nil {
		return err
	}
	metrics, err := observability.NewMetrics()
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}
	source := fixtureSource(cfg)
	log.Printf("selfcare starting addr=%s fixture=%s session_backend=%s", cfg.HTTPAddr, fixture.Describe(source), cfg.SessionBackend)

	server, err := selfcare.NewServer(ctx, selfcare.Config{
		HTTPAddr:            cfg.HTTPAddr,
		Fixtures:            source,
		Translations:        translations,
		SessionStore:        store,
		SessionSecret:       secret,
		TrustForwardedProto: cfg.TrustForwardedProto,
		Logger:              log.Default(),
		Metrics:             metrics,
	})
	if err != nil {
		return fmt.Errorf("init selfcare server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve selfcare: %w", err)
	}
	return nil
}

// fixtureSource prefers the URL, then the file, then the embedded fixture.
func fixtureSource(cfg Config) fixture.Source {
	switch {
	case strings.TrimSpace(cfg.FixtureURL) != "":
		return fixture.Traced(fixture.NewHTTPSource(cfg.FixtureURL))
	case strings.TrimSpace(cfg.FixturePath) != "":
		return fixture.Traced(fixture.FileSource{Path: cfg.FixturePath})
	default:
		return fixture.Traced(fixture.EmbeddedSource{})
	}
}

// loadTranslations reads the translation document at path, or the embedded
// catalog when path is empty. Keys the document leaves out render as the raw
// key, so each gap is logged once at startup.
func loadTranslations(path string, logger *log.Logger) (i18n.Table, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return catalog.Default().Table(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open translations %s: %w", path, err)
	}
	defer f.Close()
	table, err := catalog.LoadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("load translations %s: %w", path, err)
	}
	missing := catalog.Default().MissingKeys(table)
	for _, locale := range catalog.Default().Locales() {
		keys := missing[locale]
		if len(keys) == 0 {
			continue
		}
		logger.Printf("translation document incomplete path=%s lang=%s missing=%d keys=%s", path, locale, len(keys), strings.Join(keys, ","))
	}
	return table, nil
}

func openSessionStore(ctx context.Context, cfg Config) (session.Store, func(), error) {
	switch cfg.SessionBackend {
	case BackendSQLite:
		store, err := sqlitestore.Open(ctx, cfg.SessionDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite session store: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	case BackendRedis:
		store, err := redisstore.Open(ctx, redisstore.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open redis session store: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	case BackendMemory, "":
		return session.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported session backend %q", cfg.SessionBackend)
	}
}

// sessionSecret returns the configured key, or a random per-process key.
func sessionSecret(configured string) ([]byte, error) {
	if configured = strings.TrimSpace(configured); configured != "" {
		if len(configured) < secretBytes {
			return nil, errors.New("session secret must be at least 32 bytes")
		}
		return []byte(configured), nil
	}
	secret := make([]byte, secretBytes)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate session secret: %w", err)
	}
	log.Printf("session secret not configured; sessions will not survive a restart")
	return secret, nil
}
