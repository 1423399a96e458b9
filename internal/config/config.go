package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/player-scout/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service and its commands.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	StorageDriver           string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBMaxOpenConns          int
	CacheEnabled            bool
	CacheTTL                time.Duration
	CORSAllowedOrigins      []string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	PageSizeDefault         int
	PageSizeMax             int
	MediaRoot               string
	SofifaCDNBaseURL        string
	SofifaPhotoVersion      string
	SofifaTimeout           time.Duration
	SofifaCircuitEnabled    bool
	SofifaCircuitFailures   int
	SofifaCircuitOpenFor    time.Duration
	SofifaCircuitHalfOpen   int
	ImageSyncWorkers        int
	ImportBatchSize         int
	ImportWorkers           int
	PprofEnabled            bool
	PprofAddr               string
	UptraceEnabled          bool
	UptraceDSN              string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
	LogLevel                logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	storageDriver := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", StorageMemory)))
	switch storageDriver {
	case StorageMemory, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", storageDriver, StorageMemory, StoragePostgres)
	}
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storageDriver == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=postgres")
	}
	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	pageSizeDefault, err := getEnvAsInt("PAGE_SIZE_DEFAULT", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse PAGE_SIZE_DEFAULT: %w", err)
	}
	pageSizeMax, err := getEnvAsInt("PAGE_SIZE_MAX", 100)
	if err != nil {
		return Config{}, fmt.Errorf("parse PAGE_SIZE_MAX: %w", err)
	}
	if pageSizeDefault < 1 || pageSizeMax < pageSizeDefault {
		return Config{}, fmt.Errorf("PAGE_SIZE_DEFAULT must be >= 1 and <= PAGE_SIZE_MAX")
	}

	sofifaTimeout, err := time.ParseDuration(getEnv("SOFIFA_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFIFA_TIMEOUT: %w", err)
	}
	if sofifaTimeout <= 0 {
		return Config{}, fmt.Errorf("SOFIFA_TIMEOUT must be > 0")
	}
	sofifaCircuitEnabled, err := strconv.ParseBool(getEnv("SOFIFA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFIFA_CIRCUIT_ENABLED: %w", err)
	}
	sofifaCircuitFailures, err := getEnvAsInt("SOFIFA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFIFA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sofifaCircuitFailures < 1 {
		return Config{}, fmt.Errorf("SOFIFA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sofifaCircuitOpenFor, err := time.ParseDuration(getEnv("SOFIFA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFIFA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if sofifaCircuitOpenFor <= 0 {
		return Config{}, fmt.Errorf("SOFIFA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	sofifaCircuitHalfOpen, err := getEnvAsInt("SOFIFA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOFIFA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sofifaCircuitHalfOpen < 1 {
		return Config{}, fmt.Errorf("SOFIFA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	imageSyncWorkers, err := getEnvAsInt("IMAGE_SYNC_WORKERS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMAGE_SYNC_WORKERS: %w", err)
	}
	if imageSyncWorkers < 1 {
		return Config{}, fmt.Errorf("IMAGE_SYNC_WORKERS must be >= 1")
	}
	importBatchSize, err := getEnvAsInt("IMPORT_BATCH_SIZE", 500)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_BATCH_SIZE: %w", err)
	}
	if importBatchSize < 1 {
		return Config{}, fmt.Errorf("IMPORT_BATCH_SIZE must be >= 1")
	}
	importWorkers, err := getEnvAsInt("IMPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse IMPORT_WORKERS: %w", err)
	}
	if importWorkers < 1 {
		return Config{}, fmt.Errorf("IMPORT_WORKERS must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "player-scout-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		StorageDriver:           storageDriver,
		DBURL:                   dbURL,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		DBMaxOpenConns:          dbMaxOpenConns,
		CacheEnabled:            cacheEnabled,
		CacheTTL:                cacheTTL,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,
		PageSizeDefault:         pageSizeDefault,
		PageSizeMax:             pageSizeMax,
		MediaRoot:               strings.TrimSpace(getEnv("MEDIA_ROOT", "./media")),
		SofifaCDNBaseURL:        strings.TrimRight(strings.TrimSpace(getEnv("SOFIFA_CDN_BASE_URL", "https://cdn.sofifa.net")), "/"),
		SofifaPhotoVersion:      strings.TrimSpace(getEnv("SOFIFA_PHOTO_VERSION", "25_120")),
		SofifaTimeout:           sofifaTimeout,
		SofifaCircuitEnabled:    sofifaCircuitEnabled,
		SofifaCircuitFailures:   sofifaCircuitFailures,
		SofifaCircuitOpenFor:    sofifaCircuitOpenFor,
		SofifaCircuitHalfOpen:   sofifaCircuitHalfOpen,
		ImageSyncWorkers:        imageSyncWorkers,
		ImportBatchSize:         importBatchSize,
		ImportWorkers:           importWorkers,
		PprofEnabled:            pprofEnabled,
		PprofAddr:               pprofAddr,
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
		PyroscopeEnabled:        pyroscopeEnabled,
		PyroscopeServerAddress:  pyroscopeServerAddress,
		PyroscopeAuthToken:      strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:     pyroscopeUploadRate,
		LogLevel:                parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.MediaRoot == "" {
		return Config{}, fmt.Errorf("MEDIA_ROOT cannot be empty")
	}
	if cfg.SofifaPhotoVersion == "" {
		return Config{}, fmt.Errorf("SOFIFA_PHOTO_VERSION cannot be empty")
	}

	return cfg, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}
