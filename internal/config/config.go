// Package config loads runtime configuration from an optional YAML file,
// a .env file and WORDLEXER_* environment variables.
package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// WORDLEXER_SERVER_ADDR overrides server.addr.
const EnvPrefix = "WORDLEXER"

// ErrInvalidConfig marks configuration that failed validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all runtime configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Lexer  LexerConfig  `mapstructure:"lexer"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// LexerConfig holds the defaults applied when a request does not say.
type LexerConfig struct {
	Splitter    string `mapstructure:"splitter" validate:"required"`
	Punctuation bool   `mapstructure:"punctuation"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Lexer: LexerConfig{
			Splitter: "standard",
		},
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Mark(errors.Wrap(err, "validate config"), ErrInvalidConfig)
	}
	return nil
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), .env in the working directory and the environment, in
// increasing order of precedence.
func Load(path string) (*Config, error) {
	// Best-effort: a missing .env is not an error.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v, Default())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.idle_timeout", d.Server.IdleTimeout)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("lexer.splitter", d.Lexer.Splitter)
	v.SetDefault("lexer.punctuation", d.Lexer.Punctuation)
}
