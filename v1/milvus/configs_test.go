package milvus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("MILVUS_TOKEN", "")
	t.Setenv("MILVUS_HOST", "")
	t.Setenv("MILVUS_PORT", "")
	t.Setenv("MILVUS_TIMEOUT_SECONDS", "")
	t.Setenv("MILVUS_VERIFY_TLS", "")

	cfg := NewConfig()
	assert.Equal(t, "", cfg.Token)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.VerifyTLS)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("MILVUS_TOKEN", "root:Milvus")
	t.Setenv("MILVUS_HOST", "https://milvus.internal")
	t.Setenv("MILVUS_PORT", "443")
	t.Setenv("MILVUS_TIMEOUT_SECONDS", "5")
	t.Setenv("MILVUS_VERIFY_TLS", "true")

	cfg := NewConfig()
	assert.Equal(t, "root:Milvus", cfg.Token)
	assert.Equal(t, "https://milvus.internal", cfg.Host)
	assert.Equal(t, "443", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.True(t, cfg.VerifyTLS)
}

func TestNewConfig_IgnoresMalformedValues(t *testing.T) {
	t.Setenv("MILVUS_TIMEOUT_SECONDS", "soon")
	t.Setenv("MILVUS_VERIFY_TLS", "maybe")

	cfg := NewConfig()
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.VerifyTLS)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	err := FromHost("", "19530").Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "Host")

	err = FromHost("http://localhost", "").Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	err = DefaultConfig().WithTimeout(-time.Second).Validate()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfig_Builders(t *testing.T) {
	cfg := FromHost("http://milvus", "19530").
		WithToken("key").
		WithTimeout(time.Second).
		WithTLSVerification(true).
		WithHeader("X-Tenant", "a")

	assert.Equal(t, "key", cfg.Token)
	assert.Equal(t, time.Second, cfg.Timeout)
	assert.True(t, cfg.VerifyTLS)
	assert.Equal(t, map[string]string{"X-Tenant": "a"}, cfg.Headers)
}

func TestNewClient_CopiesConfig(t *testing.T) {
	cfg := DefaultConfig().WithHeader("X-Tenant", "a")
	client, err := NewClient(cfg)
	require.NoError(t, err)

	cfg.Host = "http://elsewhere"
	cfg.Headers["X-Tenant"] = "b"

	assert.Equal(t, "http://localhost:19530", client.ResolveBaseURL())
	assert.Equal(t, "a", client.Config().Headers["X-Tenant"])
}

func TestNewClient_RejectsInvalidConfig(t *testing.T) {
	_, err := NewClient(nil)
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	_, err = NewClient(&Config{Host: "http://localhost"})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestResolveBaseURL_NoNormalization(t *testing.T) {
	tests := []struct {
		host, port, want string
	}{
		{"http://localhost", "19530", "http://localhost:19530"},
		{"https://in03.zillizcloud.com", "443", "https://in03.zillizcloud.com:443"},
		{"http://localhost/", "19530", "http://localhost/:19530"},
	}
	for _, tt := range tests {
		client, err := NewClient(FromHost(tt.host, tt.port))
		require.NoError(t, err)
		assert.Equal(t, tt.want, client.ResolveBaseURL())
	}
}
