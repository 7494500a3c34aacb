package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/conduit/config"
	ConfigFileName    = "conduit.yml"
)

// Config holds all Conduit configuration settings
type Config struct {
	// TrustedProxies is a list of CIDR ranges for trusted proxies
	TrustedProxies []string `yaml:"trusted_proxies" json:"trusted_proxies"`

	// APIArticleListLimitDefault is the page size used when the request
	// does not supply a limit
	APIArticleListLimitDefault int `yaml:"api_article_list_limit_default" json:"api_article_list_limit_default"`

	// APIArticleListLimitMax is the maximum number of results for listing requests
	APIArticleListLimitMax int `yaml:"api_article_list_limit_max" json:"api_article_list_limit_max"`

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
		TrustedProxies:             []string{},
		APIArticleListLimitDefault: 20,
		APIArticleListLimitMax:     100,
		sources:                    make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("CONDUIT_CONFIG_PATH")
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

// FilePath returns the path of the config file this configuration reads from.
func (c *Config) FilePath() string {
	return c.configFilePath
}

func attributeNames() []string {
	return []string{
		"trusted_proxies",
		"api_article_list_limit_default",
		"api_article_list_limit_max",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if len(file.TrustedProxies) > 0 {
		c.TrustedProxies = file.TrustedProxies
		c.sources["trusted_proxies"] = "file"
	}
	if file.APIArticleListLimitDefault != 0 {
		c.APIArticleListLimitDefault = file.APIArticleListLimitDefault
		c.sources["api_article_list_limit_default"] = "file"
	}
	if file.APIArticleListLimitMax != 0 {
		c.APIArticleListLimitMax = file.APIArticleListLimitMax
		c.sources["api_article_list_limit_max"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if v := os.Getenv("CONDUIT_TRUSTED_PROXIES"); v != "" {
		c.TrustedProxies = splitAndTrim(v)
		c.sources["trusted_proxies"] = "env"
	}
	if v := os.Getenv("CONDUIT_API_ARTICLE_LIST_LIMIT_DEFAULT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.APIArticleListLimitDefault = n
			c.sources["api_article_list_limit_default"] = "env"
		}
	}
	if v := os.Getenv("CONDUIT_API_ARTICLE_LIST_LIMIT_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.APIArticleListLimitMax = n
			c.sources["api_article_list_limit_max"] = "env"
		}
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Attributes returns all configuration attributes with their sources,
// sorted by name.
func (c *Config) Attributes() []Attribute {
	attrs := []Attribute{
		{Name: "trusted_proxies", Value: strings.Join(c.TrustedProxies, ","), Source: c.sources["trusted_proxies"]},
		{Name: "api_article_list_limit_default", Value: strconv.Itoa(c.APIArticleListLimitDefault), Source: c.sources["api_article_list_limit_default"]},
		{Name: "api_article_list_limit_max", Value: strconv.Itoa(c.APIArticleListLimitMax), Source: c.sources["api_article_list_limit_max"]},
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}
