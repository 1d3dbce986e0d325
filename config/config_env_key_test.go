package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"sessionCache": map[string]any{
			"ttl": "1h",
			"redis": map[string]any{
				"keyPrefix": "erpgate:",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"odoo": map[string]any{
			"url": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "SESSIONCACHE_TTL", want: "sessionCache.ttl"},
		{envKey: "SESSIONCACHE_REDIS_KEYPREFIX", want: "sessionCache.redis.keyPrefix"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ODOO_URL", want: "odoo.url"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Auth.CredentialTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTTL)
	assert.Empty(t, cfg.Auth.DefaultGrants.PermissionScopes)
	assert.Equal(t, "memory", cfg.SessionCache.Provider)
	assert.Equal(t, time.Hour, cfg.SessionCache.TTL)
	assert.Equal(t, 30*time.Second, cfg.Odoo.Timeout)
	assert.Equal(t, []string{"state"}, cfg.Resolver.ReadFields["purchase.order"])
	assert.Equal(t, []string{"job_id", "department_id"}, cfg.Resolver.ReadFields["hr.employee"])
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		SessionCache: &SessionCacheConfig{Provider: "redis", TTL: 5 * time.Minute},
		Resolver:     &ResolverConfig{ReadFields: map[string][]string{"res.partner": {"email"}}},
	}

	applyDefaults(cfg)

	assert.Equal(t, "redis", cfg.SessionCache.Provider)
	assert.Equal(t, 5*time.Minute, cfg.SessionCache.TTL)
	assert.Equal(t, map[string][]string{"res.partner": {"email"}}, cfg.Resolver.ReadFields)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)
	require.Error(t, cfg.validate())

	cfg.SecretKey = SecretKeyConfig{Access: "a", Refresh: "r"}
	require.Error(t, cfg.validate())

	cfg.Odoo.URL = "http://odoo:8069"
	require.NoError(t, cfg.validate())
}
