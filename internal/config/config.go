package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment and file lookup
const (
	EnvPrefix      = "MEDIADL"
	ConfigName     = "config"
	ConfigType     = "yaml"
	HomeConfigDir  = ".media-downloader"
	DotEnvFileName = ".env"
)

// Defaults for Config
const (
	DefaultOutputTemplate   = "%(title)s.%(ext)s"
	DefaultYTDLPDownload    = true
	DefaultProgressInterval = 250 * time.Millisecond
	DefaultPlaylistTimeout  = 30 * time.Second
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "console"
	DefaultLogOutput        = "stderr"
)

// Config is the static application configuration
type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Log    LogConfig    `mapstructure:"log"`
}

// EngineConfig configures the download engine
type EngineConfig struct {
	FFmpegPath       string        `mapstructure:"ffmpeg_path"`
	YTDLPPath        string        `mapstructure:"ytdlp_path"`
	YTDLPDownload    bool          `mapstructure:"ytdlp_download"`
	OutputTemplate   string        `mapstructure:"output_template"`
	ProgressInterval time.Duration `mapstructure:"progress_interval"`
	PlaylistTimeout  time.Duration `mapstructure:"playlist_timeout"`
}

// LogConfig configures logging
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			YTDLPDownload:    DefaultYTDLPDownload,
			OutputTemplate:   DefaultOutputTemplate,
			ProgressInterval: DefaultProgressInterval,
			PlaylistTimeout:  DefaultPlaylistTimeout,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			Output: DefaultLogOutput,
		},
	}
}

// Load reads configuration from an optional .env file, a config file and
// MEDIADL_* environment variables, in increasing precedence. An empty
// configPath searches ./config.yaml and ~/.media-downloader/config.yaml;
// finding none is not an error.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(DotEnvFileName); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", DotEnvFileName, err)
	}

	defaults := DefaultConfig()

	v := viper.New()
	v.SetConfigType(ConfigType)
	v.SetDefault("engine.ffmpeg_path", defaults.Engine.FFmpegPath)
	v.SetDefault("engine.ytdlp_path", defaults.Engine.YTDLPPath)
	v.SetDefault("engine.ytdlp_download", defaults.Engine.YTDLPDownload)
	v.SetDefault("engine.output_template", defaults.Engine.OutputTemplate)
	v.SetDefault("engine.progress_interval", defaults.Engine.ProgressInterval)
	v.SetDefault("engine.playlist_timeout", defaults.Engine.PlaylistTimeout)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.output", defaults.Log.Output)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, HomeConfigDir))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Engine.FFmpegPath = expandPath(config.Engine.FFmpegPath)
	config.Engine.YTDLPPath = expandPath(config.Engine.YTDLPPath)
	if config.Log.Output != "stdout" && config.Log.Output != "stderr" {
		config.Log.Output = expandPath(config.Log.Output)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Engine.OutputTemplate == "" {
		return fmt.Errorf("engine.output_template must not be empty")
	}
	if filepath.IsAbs(c.Engine.OutputTemplate) {
		return fmt.Errorf("engine.output_template must be relative to the output folder: %s", c.Engine.OutputTemplate)
	}
	if c.Engine.ProgressInterval <= 0 {
		return fmt.Errorf("engine.progress_interval must be positive")
	}
	if c.Engine.PlaylistTimeout < 0 {
		return fmt.Errorf("engine.playlist_timeout cannot be negative")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown log.format: %s", c.Log.Format)
	}
	return nil
}

// expandPath expands environment variables and a leading ~/
func expandPath(path string) string {
	path = os.ExpandEnv(path)
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}
