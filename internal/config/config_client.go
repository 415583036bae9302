package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// APIURL is the base URL of the server (e.g. "http://localhost:3000").
	// Env: API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level terminal client configuration.
type ClientConfig struct {
	// Adapter contains client transport settings.
	Adapter ClientAdapter

	// LogFile is where the client writes its logs so they do not corrupt
	// the terminal UI.
	// Env: LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			APIURL:         "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
		LogFile: "natours-client.log",
	}
}

// GetClientConfig builds and validates the client configuration from
// the env file, environment variables, flags and defaults.
func GetClientConfig() (*ClientConfig, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagCfg, err := parseClientFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	cfg, err := mergeClientConfigs(envCfg, flagCfg, defaultClientConfig())
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func parseClientFlags(fs *flag.FlagSet, args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	fs.StringVar(&cfg.Adapter.APIURL, "api", "", "Server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&cfg.LogFile, "log", "", "Log file path")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}

func mergeClientConfigs(sources ...*ClientConfig) (*ClientConfig, error) {
	cfg := new(ClientConfig)
	for _, src := range sources {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return cfg, nil
}
