package config

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/labelforge/config"
	ConfigFileName    = "labelforge.yml"
)

// Config holds all LabelForge configuration settings
type Config struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// APIResourceListLimitMax is the maximum number of results for listing requests
	APIResourceListLimitMax int `yaml:"api_resource_list_limit_max" json:"api_resource_list_limit_max"`

	// SessionTokenTTL is the TTL for session tokens in seconds
	SessionTokenTTL int `yaml:"session_token_ttl" json:"session_token_ttl"`

	// BlobEndpoint is the S3-compatible endpoint for image storage
	BlobEndpoint string `yaml:"blob_endpoint" json:"blob_endpoint"`

	// BlobBucket is the bucket holding image objects
	BlobBucket string `yaml:"blob_bucket" json:"blob_bucket"`

	// BlobAccessKey / BlobSecretKey are the blob store credentials
	BlobAccessKey string `yaml:"blob_access_key" json:"blob_access_key"`
	BlobSecretKey string `yaml:"blob_secret_key" json:"-"`

	// BlobUseSSL toggles TLS for the blob endpoint
	BlobUseSSL bool `yaml:"blob_use_ssl" json:"blob_use_ssl"`

	// AuditEnabled toggles audit logging
	AuditEnabled bool `yaml:"audit_enabled" json:"audit_enabled"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		TrustedProxies:          []string{},
		APIResourceListLimitMax: 1000,
		SessionTokenTTL:         28800,
		BlobEndpoint:            "localhost:9000",
		BlobBucket:              "labelforge-images",
		AuditEnabled:            true,
		sources:                 make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("LABELFORGE_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"trusted_proxies", "api_resource_list_limit_max", "session_token_ttl",
		"blob_endpoint", "blob_bucket", "blob_access_key", "blob_secret_key",
		"blob_use_ssl", "audit_enabled",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.APIResourceListLimitMax != 0 {
		c.APIResourceListLimitMax = file.APIResourceListLimitMax
		c.sources["api_resource_list_limit_max"] = "file"
	}
	if file.SessionTokenTTL != 0 {
		c.SessionTokenTTL = file.SessionTokenTTL
		c.sources["session_token_ttl"] = "file"
	}
	if file.BlobEndpoint != "" {
		c.BlobEndpoint = file.BlobEndpoint
		c.sources["blob_endpoint"] = "file"
	}
	if file.BlobBucket != "" {
		c.BlobBucket = file.BlobBucket
		c.sources["blob_bucket"] = "file"
	}
	if file.BlobAccessKey != "" {
		c.BlobAccessKey = file.BlobAccessKey
		c.sources["blob_access_key"] = "file"
	}
	if file.BlobSecretKey != "" {
		c.BlobSecretKey = file.BlobSecretKey
		c.sources["blob_secret_key"] = "file"
	}
	if file.BlobUseSSL {
		c.BlobUseSSL = true
		c.sources["blob_use_ssl"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("LABELFORGE_TRUSTED_PROXIES"); val != "" {
		c.TrustedProxies = splitAndTrim(val)
		c.sources["trusted_proxies"] = "environment"
	}
	if val := os.Getenv("LABELFORGE_API_RESOURCE_LIST_LIMIT_MAX"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.APIResourceListLimitMax = i
			c.sources["api_resource_list_limit_max"] = "environment"
		}
	}
	if val := os.Getenv("LABELFORGE_SESSION_TOKEN_TTL"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.SessionTokenTTL = i
			c.sources["session_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("LABELFORGE_BLOB_ENDPOINT"); val != "" {
		c.BlobEndpoint = val
		c.sources["blob_endpoint"] = "environment"
	}
	if val := os.Getenv("LABELFORGE_BLOB_BUCKET"); val != "" {
		c.BlobBucket = val
		c.sources["blob_bucket"] = "environment"
	}
	if val := os.Getenv("LABELFORGE_BLOB_ACCESS_KEY"); val != "" {
		c.BlobAccessKey = val
		c.sources["blob_access_key"] = "environment"
	}
	if val := os.Getenv("LABELFORGE_BLOB_SECRET_KEY"); val != "" {
		c.BlobSecretKey = val
		c.sources["blob_secret_key"] = "environment"
	}
	if val := os.Getenv("LABELFORGE_BLOB_USE_SSL"); val != "" {
		c.BlobUseSSL = val == "true" || val == "1"
		c.sources["blob_use_ssl"] = "environment"
	}
	if val := os.Getenv("LABELFORGE_AUDIT_ENABLED"); val != "" {
		c.AuditEnabled = val != "false" && val != "0" && val != "no"
		c.sources["audit_enabled"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// SessionTTL returns the session token TTL as a duration
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTokenTTL) * time.Second
}

// IsTrustedProxy checks if an IP is from a trusted proxy
func (c *Config) IsTrustedProxy(ip string) bool {
	if len(c.TrustedProxies) == 0 {
		return false
	}

	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}

	for _, cidr := range c.TrustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try as plain IP
			if net.ParseIP(cidr) != nil && cidr == ip {
				return true
			}
			continue
		}
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, cidr := range c.TrustedProxies {
		if _, _, err := net.ParseCIDR(cidr); err != nil {
			if net.ParseIP(cidr) == nil {
				return fmt.Errorf("invalid trusted_proxies value: %s", cidr)
			}
		}
	}

	if c.SessionTokenTTL < 0 {
		return fmt.Errorf("session_token_ttl must not be negative")
	}
	if c.APIResourceListLimitMax <= 0 {
		return fmt.Errorf("api_resource_list_limit_max must be positive")
	}
	if c.BlobBucket == "" {
		return fmt.Errorf("blob_bucket must not be empty")
	}

	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.Source("trusted_proxies")},
		{Name: "api_resource_list_limit_max", Value: strconv.Itoa(c.APIResourceListLimitMax), Source: c.Source("api_resource_list_limit_max")},
		{Name: "session_token_ttl", Value: strconv.Itoa(c.SessionTokenTTL), Source: c.Source("session_token_ttl")},
		{Name: "blob_endpoint", Value: c.BlobEndpoint, Source: c.Source("blob_endpoint")},
		{Name: "blob_bucket", Value: c.BlobBucket, Source: c.Source("blob_bucket")},
		{Name: "blob_access_key", Value: c.BlobAccessKey, Source: c.Source("blob_access_key")},
		{Name: "blob_secret_key", Value: maskSecret(c.BlobSecretKey), Source: c.Source("blob_secret_key")},
		{Name: "blob_use_ssl", Value: strconv.FormatBool(c.BlobUseSSL), Source: c.Source("blob_use_ssl")},
		{Name: "audit_enabled", Value: strconv.FormatBool(c.AuditEnabled), Source: c.Source("audit_enabled")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-35s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-35s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-35s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
