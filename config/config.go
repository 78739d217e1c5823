package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultPort    = "3000"
	DefaultMessage = "Hello from Microservice"

	EnvPort    = "PORT"
	EnvMessage = "MESSAGE"
)

var (
	ErrBadPort     = errors.New("port must be an integer between 0 and 65535")
	ErrBadLogLevel = errors.New("log level must be debug or info")
)

type ServerConfig struct {
	ReadTimeout     time.Duration `toml:"read-timeout"`
	WriteTimeout    time.Duration `toml:"write-timeout"`
	IdleTimeout     time.Duration `toml:"idle-timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown-timeout"`
	Concurrency     int           `toml:"concurrency"`
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		Concurrency:     100,
	}
}

type Config struct {
	ListenPort   string        `toml:"listen-port"`
	Message      string        `toml:"message"`
	LogLevel     string        `toml:"log-level"`
	LogFile      string        `toml:"log-file"`
	ServerConfig *ServerConfig `toml:"server-config"`
}

func NewConfig() *Config {
	return &Config{
		ListenPort:   DefaultPort,
		Message:      DefaultMessage,
		LogLevel:     "info",
		LogFile:      "stdout",
		ServerConfig: NewServerConfig(),
	}
}

// Load decodes the TOML file at path over the current values.
// A missing file leaves the config untouched. Keys the config does not
// know about are returned as warnings.
func (c *Config) Load(path string) ([]string, error) {
	meta, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	var warnings []string
	for _, key := range meta.Undecoded() {
		warnings = append(warnings, "unknown config key: "+key.String())
	}

	return warnings, nil
}

// ApplyEnv overrides the port and message with PORT and MESSAGE.
// Empty variables count as unset.
func (c *Config) ApplyEnv() error {
	if port := strings.TrimSpace(os.Getenv(EnvPort)); port != "" {
		c.ListenPort = port
	}

	if message := os.Getenv(EnvMessage); message != "" {
		c.Message = message
	}

	return c.Validate()
}

func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.ListenPort)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("%w: %q", ErrBadPort, c.ListenPort)
	}

	// the startup line is logged at info and must not be filtered out
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil || lvl > zapcore.InfoLevel {
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return nil
}
