// Package config загружает настройки клиента: флаги, переменные окружения
// и необязательный YAML файл.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfigPath переменная окружения с путем к YAML файлу
const EnvConfigPath = "CONFIG_PATH"

// Config настройки клиента
type Config struct {
	ServerURL string        `yaml:"server"    env:"ADPANEL_SERVER"    env-default:"http://localhost:8080" env-description:"Server URL"`
	DBPath    string        `yaml:"db"        env:"ADPANEL_DB"        env-default:"adpanel-client.db"     env-description:"Path to local database"`
	LogLevel  string        `yaml:"log_level" env:"ADPANEL_LOG_LEVEL" env-default:"warn"                  env-description:"Log level: debug, info, warn, error"`
	Timeout   time.Duration `yaml:"timeout"   env:"ADPANEL_TIMEOUT"   env-default:"30s"                   env-description:"HTTP request timeout"`
}

// Options результат разбора командной строки
type Options struct {
	Config      *Config
	Args        []string // команда и ее аргументы
	ShowVersion bool
}

// Load читает настройки из файла (если путь задан) и окружения
func Load(path string) (*Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("cannot read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return &cfg, nil
}

// Parse разбирает аргументы командной строки.
// Приоритет: флаги, затем окружение, затем файл, затем значения по умолчанию.
func Parse(name string, args []string, output io.Writer) (*Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	showVersion := fs.Bool("version", false, "Show version information")
	configPath := fs.String("config", os.Getenv(EnvConfigPath), "Path to YAML config file")
	serverURL := fs.String("server", "", "Server URL")
	dbPath := fs.String("db", "", "Path to local database")
	timeout := fs.Duration("timeout", 0, "HTTP request timeout")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts := &Options{Args: fs.Args(), ShowVersion: *showVersion}
	if opts.ShowVersion {
		return opts, nil
	}

	cfg, err := Load(*configPath)
	if err != nil {
		return nil, err
	}

	// Переопределяем только явно заданные флаги
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "server":
			cfg.ServerURL = *serverURL
		case "db":
			cfg.DBPath = *dbPath
		case "timeout":
			cfg.Timeout = *timeout
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	opts.Config = cfg
	return opts, nil
}

// SlogLevel возвращает уровень логирования
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func (c *Config) validate() error {
	var errs []error
	if !strings.HasPrefix(c.ServerURL, "http://") && !strings.HasPrefix(c.ServerURL, "https://") {
		errs = append(errs, fmt.Errorf("server URL must start with http:// or https://, got %q", c.ServerURL))
	}
	if c.DBPath == "" {
		errs = append(errs, errors.New("database path is empty"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Server:    %s\n"+
			"Database:  %s\n"+
			"Timeout:   %s\n"+
			"Log level: %s\n",
		c.ServerURL,
		c.DBPath,
		c.Timeout,
		c.LogLevel,
	)
}
