package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"backend": "bolt",
			"mongo": map[string]any{
				"uri": "",
			},
			"postgres": map[string]any{
				"sslMode": "disable",
				"master": map[string]any{
					"userName": "user",
				},
			},
		},
		"activityLog": map[string]any{
			"retentionDays": 90,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_POSTGRES_SSLMODE", want: "storage.postgres.sslMode"},
		{envKey: "STORAGE_POSTGRES_MASTER_USERNAME", want: "storage.postgres.master.userName"},
		{envKey: "STORAGE_MONGO_URI", want: "storage.mongo.uri"},
		{envKey: "ACTIVITYLOG_RETENTIONDAYS", want: "activityLog.retentionDays"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, DefaultBoltPath, cfg.Storage.Bolt.Path)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Checkout.EnforceStock)
	assert.Equal(t, DefaultCodeAttempts, cfg.Checkout.CodeAttempts)
	assert.Equal(t, "@daily", cfg.ActivityLog.Schedule)
	assert.Equal(t, "local", cfg.Storefront.Mode)
	assert.Equal(t, defaultStorefrontDataPath, cfg.Storefront.DataPath)

	loc, err := cfg.LoadLocation()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Istanbul", loc.String())
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Checkout: &CheckoutConfig{EnforceStock: false, CodeAttempts: 2},
	}
	cfg.Storage.Backend = "mongo"
	cfg.applyDefaults()

	assert.Equal(t, "mongo", cfg.Storage.Backend)
	assert.False(t, cfg.Checkout.EnforceStock)
	assert.Equal(t, 2, cfg.Checkout.CodeAttempts)
}
