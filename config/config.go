package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "VOICECART_CONFIG_FILE"
	apiKeyEnvName     = "GEMINI_API_KEY"
)

type gemini struct {
	APIKey         string        `mapstructure:"-"`
	Model          string        `mapstructure:"model"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxRetries     int           `mapstructure:"max_retries"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	CartEventsTopic    string   `mapstructure:"cart_events_topic"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Gemini         gemini     `mapstructure:"gemini"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	// The provider key is a secret: environment only, never the file.
	cfg.Gemini.APIKey = os.Getenv(apiKeyEnvName)

	return cfg
}

// TelemetryEnabled reports whether the cart telemetry producer should
// be wired at all.
func (c Config) TelemetryEnabled() bool {
	return len(c.Broker.SeedBrokers) > 0 && c.Broker.CartEventsTopic != ""
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Gemini:
	APIKey=%s
	Model=%q
	RequestTimeout=%q
	MaxRetries=%d

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	CartEventsTopic=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		maskSecret(c.Gemini.APIKey),
		c.Gemini.Model,
		c.Gemini.RequestTimeout,
		c.Gemini.MaxRetries,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.CartEventsTopic,
	)
}

func maskSecret(s string) string {
	if s == "" {
		return "<unset>"
	}
	return "<set>"
}
