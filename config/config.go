package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1MB"
	defaultStatementTimeout   = 240 * time.Second
	defaultRegistrationRetry  = 5
	defaultGeocodeTimeout     = 5 * time.Second
	defaultSlowQueryThreshold = 200 * time.Millisecond

	// EnvPrefix scopes environment overrides to this service.
	EnvPrefix = "LOCINSIGHT_"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// ReportPostgres holds the report/content database. When nil the primary connection serves those tables.
	ReportPostgres *postgres.DBConn `json:"reportPostgres" yaml:"reportPostgres" mapstructure:"reportPostgres"`

	Database *DatabaseConfig `json:"database" yaml:"database"`

	Geocode *GeocodeConfig `json:"geocode" yaml:"geocode"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	CMS *CMSConfig `json:"cms" yaml:"cms"`

	CORS *CORSConfig `json:"cors" yaml:"cors"`

	Statistic *StatisticConfig `json:"statistic" yaml:"statistic"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig tunes query execution.
type DatabaseConfig struct {
	// StatementTimeout is the server-side ceiling applied to every built query.
	StatementTimeout time.Duration `json:"statementTimeout" yaml:"statementTimeout"`

	// RegistrationRetries bounds the conflict-retry loop of business number allocation.
	RegistrationRetries int `json:"registrationRetries" yaml:"registrationRetries"`

	// SlowQueryThreshold is the duration above which gorm logs a query as slow.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// GeocodeConfig configures the road address lookup.
type GeocodeConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	RatePerSecond float64       `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int           `json:"burst" yaml:"burst"`
}

// AuthConfig guards operator-only routes with bearer tokens.
type AuthConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Secret  string `json:"secret" yaml:"secret"`
	Issuer  string `json:"issuer" yaml:"issuer"`
}

type CMSConfig struct {
	ThumbnailBaseURL string `json:"thumbnailBaseUrl" yaml:"thumbnailBaseUrl"`
}

type CORSConfig struct {
	AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
}

// StatisticConfig holds the region shown on the statistics landing view.
type StatisticConfig struct {
	InitRegion struct {
		CityID        int64 `json:"cityId" yaml:"cityId"`
		DistrictID    int64 `json:"districtId" yaml:"districtId"`
		SubDistrictID int64 `json:"subDistrictId" yaml:"subDistrictId"`
	} `json:"initRegion" yaml:"initRegion"`
	InitLimit int `json:"initLimit" yaml:"initLimit"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// LOCINSIGHT_DATABASE_STATEMENTTIMEOUT -> database.statementTimeout
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, currEnv string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres config is required")
	}

	applyDefaults(cfg)

	cfg.Postgres.Replicas = buildReplicasFromEnv("POSTGRES")
	if cfg.ReportPostgres != nil {
		cfg.ReportPostgres.Replicas = buildReplicasFromEnv("REPORTPOSTGRES")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.StatementTimeout <= 0 {
		cfg.Database.StatementTimeout = defaultStatementTimeout
	}
	if cfg.Database.RegistrationRetries <= 0 {
		cfg.Database.RegistrationRetries = defaultRegistrationRetry
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}

	if cfg.Geocode == nil {
		cfg.Geocode = &GeocodeConfig{}
	}
	if cfg.Geocode.Timeout <= 0 {
		cfg.Geocode.Timeout = defaultGeocodeTimeout
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.CMS == nil {
		cfg.CMS = &CMSConfig{}
	}
	if cfg.CORS == nil {
		cfg.CORS = &CORSConfig{}
	}

	if cfg.Statistic == nil {
		cfg.Statistic = &StatisticConfig{}
	}
	if cfg.Statistic.InitLimit <= 0 {
		cfg.Statistic.InitLimit = 10
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads LOCINSIGHT_{section}_REPLICAS_{index}_{HOST|PORT|USERNAME|PASSWORD}.
func buildReplicasFromEnv(section string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := EnvPrefix + section + "_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
