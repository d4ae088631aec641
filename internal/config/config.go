package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	TypingTTL         time.Duration `mapstructure:"typing_ttl" yaml:"typing_ttl"`
	UploadDir         string        `mapstructure:"upload_dir" yaml:"upload_dir"`
	UploadMaxBytes    int64         `mapstructure:"upload_max_bytes" yaml:"upload_max_bytes"`
	DatabasePath      string        `mapstructure:"database_path" yaml:"database_path"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":5000",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		TypingTTL:         3 * time.Second,
		UploadDir:         "uploads",
		UploadMaxBytes:    10 << 20,
		DatabasePath:      "peerlink.db",
	}
}
