package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ocinet/ocinet/internal/constants"
	"github.com/ocinet/ocinet/internal/utils"
)

// ErrCompartmentNotSet is returned when /network/config is requested without a compartment.
var ErrCompartmentNotSet = errors.New(constants.CompartmentEnvVar + " environment variable not set")

// Config holds optional defaults loaded from ~/.config/ocinet/config.yaml,
// overlaid by environment variables.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Agent  AgentConfig  `yaml:"agent"`
}

// ServerConfig configures the inventory server.
type ServerConfig struct {
	Host           string        `yaml:"host" env:"SERVER_HOST"`
	Port           int           `yaml:"port" env:"SERVER_PORT"`
	Profile        string        `yaml:"profile" env:"OCI_PROFILE"`
	OCIConfigFile  string        `yaml:"oci_config_file" env:"OCI_CONFIG_FILE"`
	CompartmentID  string        `yaml:"compartment_ocid" env:"OCI_COMPARTMENT_OCID"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT"`
}

// AgentConfig configures the query agent. The API key is only read from the environment.
type AgentConfig struct {
	ServerURL   string        `yaml:"server_url" env:"MCP_SERVER_URL"`
	APIKey      string        `yaml:"-" env:"OPENAI_API_KEY"`
	Model       string        `yaml:"model" env:"OPENAI_MODEL"`
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"AGENT_HTTP_TIMEOUT"`
	LLMTimeout  time.Duration `yaml:"llm_timeout" env:"AGENT_LLM_TIMEOUT"`
}

// Path returns the default config file location.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ocinet", "config.yaml"), nil
}

// DotEnvFile is read from the working directory by Load.
const DotEnvFile = ".env"

// Load reads ./.env, the default config file and the environment.
func Load() (*Config, error) {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}
	path, err := Path()
	if err != nil {
		path = ""
	}
	return LoadFile(path)
}

// LoadDotEnv copies the KEY=VALUE pairs in path into the process environment.
// Variables that are already set keep their value. A missing file is ignored.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// LoadFile reads the config file at path, which may be missing, then applies
// environment overrides and defaults.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// no file, environment and defaults only
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg.Server); err != nil {
		return nil, fmt.Errorf("parsing server config: %w", err)
	}
	if err := env.Parse(&cfg.Agent); err != nil {
		return nil, fmt.Errorf("parsing agent config: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = constants.DefaultServerHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = constants.DefaultServerPort
	}
	if c.Server.Profile == "" {
		c.Server.Profile = constants.DefaultProfile
	}
	if c.Server.OCIConfigFile == "" {
		c.Server.OCIConfigFile = constants.DefaultOCIConfigPath
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = constants.DefaultRequestTimeout
	}
	if c.Agent.ServerURL == "" {
		c.Agent.ServerURL = constants.DefaultServerURL
	}
	if c.Agent.Model == "" {
		c.Agent.Model = constants.DefaultModel
	}
	if c.Agent.HTTPTimeout <= 0 {
		c.Agent.HTTPTimeout = constants.DefaultHTTPTimeout
	}
	if c.Agent.LLMTimeout <= 0 {
		c.Agent.LLMTimeout = constants.DefaultLLMTimeout
	}
}

// Merge applies CLI flag overrides. Flags take precedence over file and environment.
func (c *ServerConfig) Merge(profile, compartmentID, addr string) error {
	if profile != "" {
		c.Profile = profile
	}
	if compartmentID != "" {
		c.CompartmentID = compartmentID
	}
	if addr != "" {
		host, port, err := splitAddr(addr)
		if err != nil {
			return err
		}
		c.Host, c.Port = host, port
	}
	return nil
}

// Addr returns the listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Compartment returns the configured compartment OCID, or ErrCompartmentNotSet.
func (c *ServerConfig) Compartment() (string, error) {
	if c.CompartmentID == "" {
		return "", ErrCompartmentNotSet
	}
	return c.CompartmentID, nil
}

// Validate checks the server configuration. An unset compartment is valid;
// requests that need it fail individually.
func (c *ServerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.CompartmentID != "" {
		id, err := utils.ParseOCID(c.CompartmentID)
		if err != nil {
			return fmt.Errorf("%s: %w", constants.CompartmentEnvVar, err)
		}
		if id.ResourceType != "compartment" && id.ResourceType != "tenancy" {
			return fmt.Errorf("%s: expected a compartment or tenancy OCID, got %q", constants.CompartmentEnvVar, id.ResourceType)
		}
	}
	return nil
}

// Validate checks the agent configuration. A missing API key is not an error
// here; it surfaces on the first completion request.
func (c *AgentConfig) Validate() error {
	u, err := url.Parse(c.ServerURL)
	if err != nil {
		return fmt.Errorf("MCP_SERVER_URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("MCP_SERVER_URL must be an http or https URL, got %q", c.ServerURL)
	}
	if u.Host == "" {
		return fmt.Errorf("MCP_SERVER_URL has no host: %q", c.ServerURL)
	}
	return nil
}

func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in %q: %w", addr, err)
	}
	if host == "" {
		host = "0.0.0.0"
	}
	return host, port, nil
}
