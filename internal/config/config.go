package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. ACDASH_DATA_DIR.
const EnvPrefix = "ACDASH"

type Config struct {
	Port    string        `mapstructure:"port"`
	Log     LogConfig     `mapstructure:"log"`
	Data    DataConfig    `mapstructure:"data"`
	History HistoryConfig `mapstructure:"history"`
	Command CommandConfig `mapstructure:"command"`
	CORS    CORSConfig    `mapstructure:"cors"`
	Server  ServerConfig  `mapstructure:"server"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

type DataConfig struct {
	Dir            string `mapstructure:"dir"`
	StateFile      string `mapstructure:"state_file"`
	HistoryFile    string `mapstructure:"history_file"`
	CommandLogFile string `mapstructure:"command_log_file"`
}

type HistoryConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
}

type CommandConfig struct {
	DefaultUser string `mapstructure:"default_user"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.state_file", "ac_state.csv")
	v.SetDefault("data.history_file", "temperature_history.csv")
	v.SetDefault("data.command_log_file", "command_log.csv")
	v.SetDefault("history.default_limit", 720)
	v.SetDefault("command.default_user", "Admin")
	v.SetDefault("cors.allowed_origins", []string{"*"})
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// flag name -> config key
var flagKeys = map[string]string{
	"port":      "port",
	"data-dir":  "data.dir",
	"log-level": "log.level",
}

// Load resolves configuration from, in increasing priority: built-in
// defaults, <config-dir>/config.yml, ACDASH_* environment variables and
// command-line flags. A missing config file is not an error.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("acdash", pflag.ContinueOnError)
	configDir := fs.String("config-dir", "configs", "directory containing config.yml")
	fs.String("port", "", "HTTP listen port")
	fs.String("data-dir", "", "directory holding the CSV tables")
	fs.String("log-level", "", "debug | info | warn | error")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(*configDir)
	v.SetConfigName("config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("config: port must not be empty")
	}
	if c.History.DefaultLimit <= 0 {
		return fmt.Errorf("config: history.default_limit must be positive, got %d", c.History.DefaultLimit)
	}
	return nil
}
