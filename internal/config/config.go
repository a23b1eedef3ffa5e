package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded value cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	defaultBaseURL  = "http://localhost:5000"
	defaultTimeout  = 10 * time.Second
	defaultPageSize = 5
	defaultPort     = 8080
	defaultSeed     = 12
)

type Config struct {
	Env    string       // Env is the current environment: local, development, production.
	API    APIConfig    // API holds the employee backend configuration.
	View   ViewConfig   // View holds the search and pagination configuration.
	Form   FormConfig   // Form holds the add/edit form behaviour.
	Server ServerConfig // Server holds the directory HTTP server configuration.
	Seed   SeedConfig   // Seed holds the development seeder configuration.
}

// APIConfig struct holds the configuration details for the employee REST API.
type APIConfig struct {
	BaseURL         string        // BaseURL is the url of the API in format `http://localhost:5000`
	Timeout         time.Duration // Timeout bounds every single API call.
	RefreshInterval time.Duration // RefreshInterval re-fetches the list periodically, 0 disables it.
}

type ViewConfig struct {
	PageSize          int  // PageSize is the number of rows shown on one page.
	ResetPageOnSearch bool // ResetPageOnSearch moves back to page 1 whenever the query changes.
}

type FormConfig struct {
	KeepInputOnFailure bool // KeepInputOnFailure keeps typed values when create/update fails.
}

type ServerConfig struct {
	Port int
}

type SeedConfig struct {
	Count int
}

// MustLoad loads the configuration from the YAML file named by CONFIG_PATH and panics on failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		panic("config path is empty")
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	cfg, err := Load(configPath)
	if err != nil {
		panic("config error: " + err.Error())
	}

	return cfg
}

// Load reads the YAML file at configPath. Every key may be overridden by an environment
// variable prefixed with DIRECTORY_, e.g. DIRECTORY_API_BASE_URL.
func Load(configPath string) (*Config, error) {
	vpr := viper.New()
	vpr.SetConfigFile(configPath)
	vpr.SetEnvPrefix("directory")
	vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "local")
	vpr.SetDefault("api.base_url", defaultBaseURL)
	vpr.SetDefault("api.timeout", defaultTimeout)
	vpr.SetDefault("api.refresh_interval", time.Duration(0))
	vpr.SetDefault("view.page_size", defaultPageSize)
	vpr.SetDefault("view.reset_page_on_search", false)
	vpr.SetDefault("form.keep_input_on_failure", false)
	vpr.SetDefault("server.port", defaultPort)
	vpr.SetDefault("seed.count", defaultSeed)

	if err := vpr.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{
		Env: vpr.GetString("env"),
		API: APIConfig{
			BaseURL:         strings.TrimRight(vpr.GetString("api.base_url"), "/"),
			Timeout:         vpr.GetDuration("api.timeout"),
			RefreshInterval: vpr.GetDuration("api.refresh_interval"),
		},
		View: ViewConfig{
			PageSize:          vpr.GetInt("view.page_size"),
			ResetPageOnSearch: vpr.GetBool("view.reset_page_on_search"),
		},
		Form: FormConfig{
			KeepInputOnFailure: vpr.GetBool("form.keep_input_on_failure"),
		},
		Server: ServerConfig{
			Port: vpr.GetInt("server.port"),
		},
		Seed: SeedConfig{
			Count: vpr.GetInt("seed.count"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	parsed, err := url.Parse(c.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: api.base_url %q is not an absolute url", ErrInvalidConfig, c.API.BaseURL)
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("%w: api.timeout must be positive", ErrInvalidConfig)
	}
	if c.API.RefreshInterval < 0 {
		return fmt.Errorf("%w: api.refresh_interval must not be negative", ErrInvalidConfig)
	}
	if c.View.PageSize <= 0 {
		return fmt.Errorf("%w: view.page_size must be positive", ErrInvalidConfig)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("%w: server.port must be positive", ErrInvalidConfig)
	}

	return nil
}
