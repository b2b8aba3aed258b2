package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"otp": map[string]any{
			"msg91": map[string]any{
				"templateId": "",
			},
			"codeTtl": "5m",
		},
		"storage": map[string]any{
			"publicBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "OTP_MSG91_TEMPLATEID", want: "otp.msg91.templateId"},
		{envKey: "OTP_CODETTL", want: "otp.codeTtl"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
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

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 10*time.Second, cfg.Identity.Timeout)
	assert.Equal(t, 10*time.Second, cfg.OTP.Timeout)
	assert.Equal(t, 10*time.Second, cfg.Storage.Timeout)
	assert.Equal(t, "0 0 8 * * *", cfg.Scheduler.LowStockCron)
	assert.Equal(t, 10, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, 12, cfg.Catalog.DefaultPublicPageSize)
	assert.Equal(t, 100, cfg.Catalog.MaxPageSize)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		OTP:     &OTPConfig{Timeout: 3 * time.Second, StaticCode: "654321"},
		Catalog: &CatalogConfig{MaxPageSize: 50},
	}
	applyDefaults(cfg)

	assert.Equal(t, 3*time.Second, cfg.OTP.Timeout)
	assert.Equal(t, "654321", cfg.OTP.StaticCode)
	assert.Equal(t, 50, cfg.Catalog.MaxPageSize)
	assert.Equal(t, 10, cfg.Catalog.DefaultPageSize)
}
