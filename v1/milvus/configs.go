package milvus

import (
	"fmt"
	"maps"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultHost    = "http://localhost"
	DefaultPort    = "19530"
	DefaultTimeout = 30 * time.Second
)

// Config holds connection settings for the Milvus REST client.
//
// Host and Port are joined verbatim as "{Host}:{Port}"; Host must carry the
// scheme ("http://" or "https://"). Nothing is normalized.
//
// Example (programmatic):
//
//	cfg := milvus.DefaultConfig()
//	cfg.Host = "https://in03-xxxx.api.gcp-us-west1.zillizcloud.com"
//	cfg.Port = "443"
//	cfg.Token = os.Getenv("MILVUS_TOKEN")
//
// Example (builder style):
//
//	cfg := milvus.FromHost("http://localhost", "19530").
//	    WithToken("root:Milvus").
//	    WithTimeout(10 * time.Second)
type Config struct {
	// Token is a bare API key or a "user:password" pair. It is sent as a
	// bearer credential without interpretation. Empty means unauthenticated.
	Token string `yaml:"token" envconfig:"MILVUS_TOKEN"`

	// Host including scheme, e.g. "http://localhost".
	Host string `yaml:"host" envconfig:"MILVUS_HOST"`

	// Port of the REST endpoint, e.g. "19530".
	Port string `yaml:"port" envconfig:"MILVUS_PORT"`

	// Timeout bounds one full HTTP round trip. Zero means DefaultTimeout.
	// NewConfig reads it as whole seconds from MILVUS_TIMEOUT_SECONDS.
	Timeout time.Duration `yaml:"timeout"`

	// VerifyTLS enables certificate verification. It is off by default so
	// that self-signed local deployments work out of the box.
	VerifyTLS bool `yaml:"verify_tls" envconfig:"MILVUS_VERIFY_TLS"`

	// Headers are added to every request after the defaults.
	Headers map[string]string `yaml:"headers"`
}

// DefaultConfig returns a config pointing at a local Milvus standalone.
func DefaultConfig() *Config {
	return &Config{
		Host:    DefaultHost,
		Port:    DefaultPort,
		Timeout: DefaultTimeout,
	}
}

// FromHost returns a default config for the given host and port.
func FromHost(host, port string) *Config {
	cfg := DefaultConfig()
	cfg.Host = host
	cfg.Port = port
	return cfg
}

// NewConfig reads the configuration from environment variables:
//
//	MILVUS_TOKEN, MILVUS_HOST, MILVUS_PORT,
//	MILVUS_TIMEOUT_SECONDS, MILVUS_VERIFY_TLS
//
// Unset variables keep their DefaultConfig values.
func NewConfig() *Config {
	cfg := DefaultConfig()
	cfg.Token = os.Getenv("MILVUS_TOKEN")
	cfg.Host = getenvDefault("MILVUS_HOST", cfg.Host)
	cfg.Port = getenvDefault("MILVUS_PORT", cfg.Port)

	if v := os.Getenv("MILVUS_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("MILVUS_VERIFY_TLS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.VerifyTLS = b
		}
	}
	return cfg
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Validate ensures the fields needed to build a base URL are present.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.Port, validation.Required),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// clone returns a deep copy so a Client never shares mutable state with the caller.
func (c *Config) clone() *Config {
	out := *c
	out.Headers = maps.Clone(c.Headers)
	return &out
}

// WithToken sets the bearer credential.
func (c *Config) WithToken(token string) *Config {
	c.Token = token
	return c
}

// WithTimeout sets the per-request timeout.
func (c *Config) WithTimeout(d time.Duration) *Config {
	c.Timeout = d
	return c
}

// WithTLSVerification turns server certificate checks on or off.
func (c *Config) WithTLSVerification(enabled bool) *Config {
	c.VerifyTLS = enabled
	return c
}

// WithHeader adds a header sent with every request.
func (c *Config) WithHeader(key, value string) *Config {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
	c.Headers[key] = value
	return c
}
