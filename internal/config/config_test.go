package config

import (
	"testing"
	"time"

	"github.com/riskibarqy/fantasy11/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.CacheDriver != CacheMemory || !cfg.CacheEnabled {
		t.Fatalf("expected memory cache enabled by default, got driver=%q enabled=%t", cfg.CacheDriver, cfg.CacheEnabled)
	}
	if cfg.JWTExpiration != 24*time.Hour {
		t.Fatalf("unexpected JWTExpiration: %s", cfg.JWTExpiration)
	}
	if cfg.JWTSecretKey == "" {
		t.Fatalf("expected dev JWT secret fallback")
	}
	if cfg.ScoringWorkers != 8 {
		t.Fatalf("unexpected ScoringWorkers: %d", cfg.ScoringWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ProdRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when JWT_SECRET_KEY is missing in prod")
	}

	t.Setenv("JWT_SECRET_KEY", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.JWTSecretKey != "s3cret" {
		t.Fatalf("unexpected JWTSecretKey: %q", cfg.JWTSecretKey)
	}
}

func TestLoad_DriverValidation(t *testing.T) {
	t.Run("storage", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORAGE_DRIVER", "mysql")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORAGE_DRIVER")
		}
	})

	t.Run("cache", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("CACHE_DRIVER", "memcached")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown CACHE_DRIVER")
		}
	})

	t.Run("postgres and redis", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORAGE_DRIVER", "Postgres")
		t.Setenv("CACHE_DRIVER", "redis")
		t.Setenv("REDIS_DB", "3")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StoragePostgres || cfg.CacheDriver != CacheRedis || cfg.RedisDB != 3 {
			t.Fatalf("unexpected drivers: storage=%q cache=%q db=%d", cfg.StorageDriver, cfg.CacheDriver, cfg.RedisDB)
		}
	})
}

func TestLoad_NumericBounds(t *testing.T) {
	cases := map[string]string{
		"SCORING_WORKERS":   "0",
		"DB_MAX_OPEN_CONNS": "0",
		"CACHE_TTL":         "0s",
		"JWT_EXPIRATION":    "-1h",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_NATSSubjectPrefixTrimmed(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("NATS_ENABLED", "true")
	t.Setenv("NATS_SUBJECT_PREFIX", ".prod.fantasy11.")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.NATSSubjectPrefix != "prod.fantasy11" {
		t.Fatalf("unexpected NATSSubjectPrefix: %q", cfg.NATSSubjectPrefix)
	}
}

func TestLoad_QStashRequirements(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("QSTASH_ENABLED", "true")
	t.Setenv("QSTASH_TOKEN", "qstash-token")
	t.Setenv("QSTASH_TARGET_BASE_URL", "https://api.fantasy11.example")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when INTERNAL_JOB_TOKEN is missing")
	}

	t.Setenv("INTERNAL_JOB_TOKEN", "job-token")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.QStashFinalizeDelay != 5*time.Minute || cfg.QStashRetries != 3 {
		t.Fatalf("unexpected qstash defaults: delay=%s retries=%d", cfg.QStashFinalizeDelay, cfg.QStashRetries)
	}

	t.Setenv("QSTASH_RETRIES", "-1")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative QSTASH_RETRIES")
	}
}
