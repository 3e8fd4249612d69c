package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config stores runtime configuration shared by the API server and the CLI.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	TBABaseURL               string
	TBATimeout               time.Duration
	TBAUserAgent             string
	TBACircuitEnabled        bool
	TBACircuitFailureCount   int
	TBACircuitOpenTimeout    time.Duration
	TBACircuitHalfOpenMaxReq int
	TBALogoDirectURLFallback bool

	StorageDriver string
	StorageDir    string
	DBURL         string

	HistoryCapacity     int
	TeamLogoPlaceholder string
	PrefetchWorkers     int

	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceCaptureRequestBody  bool
	UptraceRequestBodyMaxBytes int

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := getEnvAsPositiveDuration("HTTP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("HTTP_WRITE_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}

	tbaTimeout, err := getEnvAsPositiveDuration("TBA_TIMEOUT", "20s")
	if err != nil {
		return Config{}, err
	}
	tbaCircuitEnabled, err := strconv.ParseBool(getEnv("TBA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TBA_CIRCUIT_ENABLED: %w", err)
	}
	tbaCircuitFailureCount, err := getEnvAsInt("TBA_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse TBA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if tbaCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("TBA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	tbaCircuitOpenTimeout, err := getEnvAsPositiveDuration("TBA_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	tbaCircuitHalfOpenMaxReq, err := getEnvAsInt("TBA_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse TBA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if tbaCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("TBA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	tbaLogoDirectURLFallback, err := strconv.ParseBool(getEnv("TBA_LOGO_DIRECT_URL_FALLBACK", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TBA_LOGO_DIRECT_URL_FALLBACK: %w", err)
	}

	storageDriver, err := parseStorageDriver(getEnv("STORAGE_DRIVER", StorageFile))
	if err != nil {
		return Config{}, err
	}
	storageDir := strings.TrimSpace(getEnv("STORAGE_DIR", "~/.scout-schedule"))
	dbURL := strings.TrimSpace(getEnv("DB_URL", ""))
	if storageDriver == StoragePostgres && dbURL == "" {
		return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
	}

	historyCapacity, err := getEnvAsInt("HISTORY_CAPACITY", 20)
	if err != nil {
		return Config{}, fmt.Errorf("parse HISTORY_CAPACITY: %w", err)
	}
	if historyCapacity < 1 {
		return Config{}, fmt.Errorf("HISTORY_CAPACITY must be >= 1")
	}
	prefetchWorkers, err := getEnvAsInt("PREFETCH_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse PREFETCH_WORKERS: %w", err)
	}
	if prefetchWorkers < 1 {
		return Config{}, fmt.Errorf("PREFETCH_WORKERS must be >= 1")
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
	uptraceCaptureRequestBody, err := strconv.ParseBool(getEnv("UPTRACE_CAPTURE_REQUEST_BODY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_CAPTURE_REQUEST_BODY: %w", err)
	}
	uptraceRequestBodyMaxBytes, err := getEnvAsInt("UPTRACE_REQUEST_BODY_MAX_BYTES", 8192)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_REQUEST_BODY_MAX_BYTES: %w", err)
	}
	if uptraceRequestBodyMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPTRACE_REQUEST_BODY_MAX_BYTES must be > 0")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "scout-schedule"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logging.ParseLevel(getEnv("LOG_LEVEL", "info")),

		TBABaseURL:               strings.TrimSpace(getEnv("TBA_BASE_URL", "https://www.thebluealliance.com/api/v3")),
		TBATimeout:               tbaTimeout,
		TBAUserAgent:             strings.TrimSpace(getEnv("TBA_USER_AGENT", "")),
		TBACircuitEnabled:        tbaCircuitEnabled,
		TBACircuitFailureCount:   tbaCircuitFailureCount,
		TBACircuitOpenTimeout:    tbaCircuitOpenTimeout,
		TBACircuitHalfOpenMaxReq: tbaCircuitHalfOpenMaxReq,
		TBALogoDirectURLFallback: tbaLogoDirectURLFallback,

		StorageDriver: storageDriver,
		StorageDir:    storageDir,
		DBURL:         dbURL,

		HistoryCapacity:     historyCapacity,
		TeamLogoPlaceholder: strings.TrimSpace(getEnv("TEAM_LOGO_PLACEHOLDER", "icons/first-generic.png")),
		PrefetchWorkers:     prefetchWorkers,

		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		UptraceCaptureRequestBody:  uptraceCaptureRequestBody,
		UptraceRequestBodyMaxBytes: uptraceRequestBodyMaxBytes,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.StorageDriver == StorageFile && cfg.StorageDir == "" {
		return Config{}, fmt.Errorf("STORAGE_DIR cannot be empty when STORAGE_DRIVER=%s", StorageFile)
	}

	return cfg, nil
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

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return out, nil
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

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
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

func parseStorageDriver(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case StorageFile, StoragePostgres, StorageMemory:
		return value, nil
	default:
		return "", fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s, %s", v, StorageFile, StoragePostgres, StorageMemory)
	}
}
