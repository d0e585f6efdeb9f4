package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"database": map[string]any{
			"statementTimeout": "240s",
		},
		"geocode": map[string]any{
			"apiKey":        "",
			"ratePerSecond": 5,
		},
		"cms": map[string]any{
			"thumbnailBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DATABASE_STATEMENTTIMEOUT", want: "database.statementTimeout"},
		{envKey: "GEOCODE_APIKEY", want: "geocode.apiKey"},
		{envKey: "GEOCODE_RATEPERSECOND", want: "geocode.ratePerSecond"},
		{envKey: "CMS_THUMBNAILBASEURL", want: "cms.thumbnailBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.Database.StatementTimeout != 240*time.Second {
		t.Fatalf("StatementTimeout = %s", cfg.Database.StatementTimeout)
	}
	if cfg.Database.RegistrationRetries != defaultRegistrationRetry {
		t.Fatalf("RegistrationRetries = %d", cfg.Database.RegistrationRetries)
	}
	if cfg.Geocode.Timeout != defaultGeocodeTimeout {
		t.Fatalf("Geocode.Timeout = %s", cfg.Geocode.Timeout)
	}
	if cfg.Statistic.InitLimit != 10 {
		t.Fatalf("InitLimit = %d", cfg.Statistic.InitLimit)
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv(EnvPrefix+"POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv(EnvPrefix+"POSTGRES_REPLICAS_0_USERNAME", "reader")

	replicas := buildReplicasFromEnv("POSTGRES")

	if len(replicas) != 1 {
		t.Fatalf("len(replicas) = %d, want 1", len(replicas))
	}
	if replicas[0].Host != "replica-0" || replicas[0].Port != "5433" || replicas[0].UserName != "reader" {
		t.Fatalf("unexpected replica %+v", replicas[0])
	}
}
