package folio

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the folio tool.
type Config struct {
	APIURL    string        `yaml:"api_url"`
	Currency  string        `yaml:"currency"`
	Window    Window        `yaml:"window"`
	Watchlist string        `yaml:"watchlist"`
	LogLevel  string        `yaml:"log_level"`
	Timeout   time.Duration `yaml:"timeout"`
	RateLimit float64       `yaml:"rate_limit"` // requests per second
	Burst     int           `yaml:"burst"`
}

// DefaultConfigFile returns the default location of the config file.
func DefaultConfigFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "folio.yaml"
	}
	return filepath.Join(dir, "folio", "config.yaml")
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	watchlist := "watchlist.json"
	if dir, err := os.UserConfigDir(); err == nil {
		watchlist = filepath.Join(dir, "folio", "watchlist.json")
	}
	return Config{
		APIURL:    "http://localhost:8000",
		Currency:  "USD",
		Window:    DefaultWindow,
		Watchlist: watchlist,
		LogLevel:  "info",
		Timeout:   10 * time.Second,
		RateLimit: 5,
		Burst:     5,
	}
}

// environment variables overriding the config file.
var configEnv = []struct {
	name string
	set  func(*Config, string)
}{
	{"FOLIO_API_URL", func(c *Config, v string) { c.APIURL = v }},
	{"FOLIO_CURRENCY", func(c *Config, v string) { c.Currency = v }},
	{"FOLIO_WINDOW", func(c *Config, v string) { c.Window = Window(v) }},
	{"FOLIO_WATCHLIST", func(c *Config, v string) { c.Watchlist = v }},
	{"FOLIO_LOG_LEVEL", func(c *Config, v string) { c.LogLevel = v }},
}

// LoadConfig reads the configuration: defaults, then the YAML file at path
// (a missing file is fine), then the environment. A .env file in the current
// directory is loaded into the environment first.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("cannot load .env: %w", err)
	}

	c := DefaultConfig()
	if path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Debugf("no config file %q, using defaults", path)
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(content, &c); err != nil {
				return Config{}, fmt.Errorf("invalid config file %q: %w", path, err)
			}
		}
	}

	for _, env := range configEnv {
		if v, ok := os.LookupEnv(env.name); ok && v != "" {
			env.set(&c, v)
		}
	}
	return c, c.Validate()
}

// Validate validates c and puts values in canonical form.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api_url %q", c.APIURL)
	}
	c.APIURL = strings.TrimSuffix(c.APIURL, "/")

	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	if c.Currency == "" {
		c.Currency = "USD"
	}

	if c.Window == "" {
		c.Window = DefaultWindow
	}
	w, err := ParseWindow(string(c.Window))
	if err != nil {
		return fmt.Errorf("invalid window: %w", err)
	}
	c.Window = w

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %v", c.Timeout)
	}
	if c.RateLimit <= 0 || c.Burst <= 0 {
		return fmt.Errorf("invalid rate limit %v/s burst %d", c.RateLimit, c.Burst)
	}
	return nil
}

// Client returns an API client configured by c.
func (c Config) Client() (*Client, error) {
	return NewClient(c.APIURL, WithTimeout(c.Timeout), WithRateLimit(c.RateLimit, c.Burst))
}

// ApplyLogging sets the log level.
func (c Config) ApplyLogging() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}
