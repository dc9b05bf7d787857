package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lepakko/Six-Kings/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	defaultSheetBaseURL = "https://docs.google.com/spreadsheets/d"
	defaultMatchdayGIDs = "1:2006878690,2:1100254037,3:807924221,4:28187050,5:1387863898,6:955094077," +
		"7:96908954,8:2004360002,9:777935510,10:782646271,11:1260966685,12:1182183385"
)

// Config stores runtime configuration for the service and the report CLI.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level
	CacheTTL           time.Duration

	Sheet SheetConfig

	UptraceEnabled             bool
	UptraceDSN                 string
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	PprofEnabled               bool
	PprofAddr                  string
}

// SheetConfig locates the league spreadsheet and tunes how it is fetched.
type SheetConfig struct {
	ID           string
	BaseURL      string
	PlayersGID   string
	LigaGID      string
	StarterGID   string
	TeamGID      string
	MatchdayGIDs []RoundGID
	Timeout      time.Duration
	MaxRetries   int
	FetchWorkers int

	CircuitEnabled        bool
	CircuitFailureCount   int
	CircuitOpenTimeout    time.Duration
	CircuitHalfOpenMaxReq int
}

// RoundGID binds a matchday round to the sheet tab holding its games.
type RoundGID struct {
	Round int
	GID   string
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := parsePositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := parsePositiveDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	cacheTTL, err := parsePositiveDuration("CACHE_TTL", "5m")
	if err != nil {
		return Config{}, err
	}

	sheet, err := loadSheet()
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
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
	pyroscopeUploadRate, err := parsePositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "six-kings-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                readTimeout,
		WriteTimeout:               writeTimeout,
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:                   logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info")),
		CacheTTL:                   cacheTTL,
		Sheet:                      sheet,
		UptraceEnabled:             uptraceEnabled,
		UptraceDSN:                 uptraceDSN,
		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,
		PprofEnabled:               pprofEnabled,
		PprofAddr:                  pprofAddr,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func loadSheet() (SheetConfig, error) {
	id := strings.TrimSpace(getEnv("SHEET_ID", ""))
	if id == "" {
		return SheetConfig{}, fmt.Errorf("SHEET_ID is required")
	}

	matchdayGIDs, err := parseRoundGIDs(getEnv("SHEET_MATCHDAY_GIDS", defaultMatchdayGIDs))
	if err != nil {
		return SheetConfig{}, fmt.Errorf("parse SHEET_MATCHDAY_GIDS: %w", err)
	}
	if len(matchdayGIDs) == 0 {
		return SheetConfig{}, fmt.Errorf("SHEET_MATCHDAY_GIDS cannot be empty")
	}

	timeout, err := parsePositiveDuration("SHEET_TIMEOUT", "10s")
	if err != nil {
		return SheetConfig{}, err
	}
	maxRetries, err := getEnvAsInt("SHEET_MAX_RETRIES", 2)
	if err != nil {
		return SheetConfig{}, fmt.Errorf("parse SHEET_MAX_RETRIES: %w", err)
	}
	if maxRetries < 0 {
		return SheetConfig{}, fmt.Errorf("SHEET_MAX_RETRIES must be >= 0")
	}
	workers, err := getEnvAsInt("SHEET_FETCH_WORKERS", 4)
	if err != nil {
		return SheetConfig{}, fmt.Errorf("parse SHEET_FETCH_WORKERS: %w", err)
	}
	if workers < 1 {
		return SheetConfig{}, fmt.Errorf("SHEET_FETCH_WORKERS must be >= 1")
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("SHEET_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return SheetConfig{}, fmt.Errorf("parse SHEET_CIRCUIT_ENABLED: %w", err)
	}
	failureCount, err := getEnvAsInt("SHEET_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return SheetConfig{}, fmt.Errorf("parse SHEET_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if failureCount < 1 {
		return SheetConfig{}, fmt.Errorf("SHEET_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	openTimeout, err := parsePositiveDuration("SHEET_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return SheetConfig{}, err
	}
	halfOpenMaxReq, err := getEnvAsInt("SHEET_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return SheetConfig{}, fmt.Errorf("parse SHEET_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if halfOpenMaxReq < 1 {
		return SheetConfig{}, fmt.Errorf("SHEET_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	return SheetConfig{
		ID:                    id,
		BaseURL:               strings.TrimRight(strings.TrimSpace(getEnv("SHEET_BASE_URL", defaultSheetBaseURL)), "/"),
		PlayersGID:            strings.TrimSpace(getEnv("SHEET_GID_PLAYERS", "0")),
		LigaGID:               strings.TrimSpace(getEnv("SHEET_GID_LIGA", "1502641577")),
		StarterGID:            strings.TrimSpace(getEnv("SHEET_GID_STARTER", "1065076276")),
		TeamGID:               strings.TrimSpace(getEnv("SHEET_GID_TEAM", "294324544")),
		MatchdayGIDs:          matchdayGIDs,
		Timeout:               timeout,
		MaxRetries:            maxRetries,
		FetchWorkers:          workers,
		CircuitEnabled:        circuitEnabled,
		CircuitFailureCount:   failureCount,
		CircuitOpenTimeout:    openTimeout,
		CircuitHalfOpenMaxReq: halfOpenMaxReq,
	}, nil
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

func parsePositiveDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return d, nil
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

// parseRoundGIDs reads "round:gid,..." pairs and returns them by ascending round.
func parseRoundGIDs(raw string) ([]RoundGID, error) {
	seen := make(map[int]struct{})
	out := make([]RoundGID, 0)
	for _, item := range splitCSV(raw) {
		segments := strings.SplitN(item, ":", 2)
		if len(segments) != 2 {
			return nil, fmt.Errorf("invalid item %q, expected round:gid", item)
		}

		round, err := strconv.Atoi(strings.TrimSpace(segments[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid round in item %q: %w", item, err)
		}
		if round <= 0 {
			return nil, fmt.Errorf("round must be > 0 in item %q", item)
		}
		if _, dup := seen[round]; dup {
			return nil, fmt.Errorf("duplicate round %d", round)
		}

		gid := strings.TrimSpace(segments[1])
		if gid == "" {
			return nil, fmt.Errorf("empty gid in item %q", item)
		}

		seen[round] = struct{}{}
		out = append(out, RoundGID{Round: round, GID: gid})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Round < out[j].Round })
	return out, nil
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
