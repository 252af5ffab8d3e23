package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreDriver != StoreDriverPostgres {
		t.Fatalf("unexpected store driver: %q", cfg.StoreDriver)
	}
	if cfg.MatchCacheDriver != MatchCacheDriverMemory {
		t.Fatalf("unexpected match cache driver: %q", cfg.MatchCacheDriver)
	}
	if cfg.FootballDataTeamID != 57 {
		t.Fatalf("unexpected team id: %d", cfg.FootballDataTeamID)
	}
	if cfg.MatchResultsCacheTTL != 30*time.Minute || cfg.MatchFixturesCacheTTL != 60*time.Minute {
		t.Fatalf("unexpected cache ttls: results=%s fixtures=%s", cfg.MatchResultsCacheTTL, cfg.MatchFixturesCacheTTL)
	}
	if cfg.MatchWindowDays != 90 {
		t.Fatalf("unexpected window days: %d", cfg.MatchWindowDays)
	}
	if cfg.FootballDataBaseURL != "https://api.football-data.org/v4" {
		t.Fatalf("unexpected base url: %q", cfg.FootballDataBaseURL)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected dev environment")
	}
}

func TestLoad_LogLevel(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("parses known level", func(t *testing.T) {
		t.Setenv("APP_LOG_LEVEL", "WARN")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.LogLevel.String() != "warn" {
			t.Fatalf("unexpected log level: %s", cfg.LogLevel)
		}
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		t.Setenv("APP_LOG_LEVEL", "chatty")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown APP_LOG_LEVEL")
		}
	})
}

func TestLoad_StoreDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("memory accepted", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", " Memory ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StoreDriver != StoreDriverMemory {
			t.Fatalf("unexpected store driver: %q", cfg.StoreDriver)
		}
	})

	t.Run("unknown rejected", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "sqlite")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORE_DRIVER")
		}
	})
}

func TestLoad_DBPoolParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("DB_MAX_IDLE_CONNS", "4")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("DB_SEED", "true")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBMaxOpenConns != 20 || cfg.DBMaxIdleConns != 4 {
		t.Fatalf("unexpected pool sizes: open=%d idle=%d", cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	}
	if cfg.DBConnMaxLifetime != 5*time.Minute {
		t.Fatalf("unexpected conn max lifetime: %s", cfg.DBConnMaxLifetime)
	}
	if !cfg.DBAutoMigrate || !cfg.DBSeed {
		t.Fatalf("expected DBAutoMigrate and DBSeed to be true")
	}
	if cfg.DBSSLMode != "require" {
		t.Fatalf("unexpected ssl mode: %q", cfg.DBSSLMode)
	}

	t.Setenv("DB_MAX_OPEN_CONNS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for DB_MAX_OPEN_CONNS=0")
	}
}

func TestLoad_MatchCacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("MATCH_CACHE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("MATCH_RESULTS_CACHE_TTL", "5m")
	t.Setenv("MATCH_FIXTURES_CACHE_TTL", "10m")
	t.Setenv("MATCH_WINDOW_DAYS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MatchCacheDriver != MatchCacheDriverRedis || cfg.RedisAddr != "cache:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected redis config: %+v", cfg)
	}
	if cfg.MatchResultsCacheTTL != 5*time.Minute || cfg.MatchFixturesCacheTTL != 10*time.Minute {
		t.Fatalf("unexpected ttls: results=%s fixtures=%s", cfg.MatchResultsCacheTTL, cfg.MatchFixturesCacheTTL)
	}
	if cfg.MatchWindowDays != 30 {
		t.Fatalf("unexpected window days: %d", cfg.MatchWindowDays)
	}
}

func TestLoad_MatchCacheValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown driver", key: "MATCH_CACHE_DRIVER", val: "memcached"},
		{name: "zero results ttl", key: "MATCH_RESULTS_CACHE_TTL", val: "0s"},
		{name: "negative fixtures ttl", key: "MATCH_FIXTURES_CACHE_TTL", val: "-1m"},
		{name: "zero window", key: "MATCH_WINDOW_DAYS", val: "0"},
		{name: "negative redis db", key: "REDIS_DB", val: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoad_FootballDataConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FOOTBALL_DATA_ENABLED", "true")
	t.Setenv("FOOTBALL_DATA_API_KEY", "secret-key")
	t.Setenv("FOOTBALL_DATA_TEAM_ID", "65")
	t.Setenv("FOOTBALL_DATA_TIMEOUT", "3s")
	t.Setenv("FOOTBALL_DATA_CIRCUIT_ENABLED", "false")
	t.Setenv("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT", "7")
	t.Setenv("FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT", "45s")
	t.Setenv("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.FootballDataEnabled || cfg.FootballDataAPIKey != "secret-key" {
		t.Fatalf("unexpected football-data auth config")
	}
	if cfg.FootballDataTeamID != 65 {
		t.Fatalf("unexpected team id: %d", cfg.FootballDataTeamID)
	}
	if cfg.FootballDataTimeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.FootballDataTimeout)
	}
	if cfg.FootballDataCircuitEnabled {
		t.Fatalf("expected circuit disabled")
	}
	if cfg.FootballDataCircuitFailureCount != 7 ||
		cfg.FootballDataCircuitOpenTimeout != 45*time.Second ||
		cfg.FootballDataCircuitHalfOpenMaxReq != 2 {
		t.Fatalf("unexpected circuit config: %+v", cfg)
	}
}

func TestLoad_FootballDataRequiresAPIKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FOOTBALL_DATA_ENABLED", "true")
	t.Setenv("FOOTBALL_DATA_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when FOOTBALL_DATA_ENABLED=true without FOOTBALL_DATA_API_KEY")
	}
}

func TestLoad_FootballDataTeamIDValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	for _, raw := range []string{"abc", "0", "-3"} {
		t.Setenv("FOOTBALL_DATA_TEAM_ID", raw)
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for FOOTBALL_DATA_TEAM_ID=%q", raw)
		}
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
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_SERVICE_NAME", "football-team-manager-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-team-manager-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})

	t.Run("only separators rejected", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for empty CORS origins")
		}
	})
}
