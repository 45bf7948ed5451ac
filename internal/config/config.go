// Package config resolves runtime settings for planboard and planimport.
//
// Settings come from three layers, later layers winning: built-in defaults,
// an optional planboard.yaml next to the binary, and PLANBOARD_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is the optional configuration file looked up in the base dir.
	FileName = "planboard.yaml"

	DefaultPort = 3000

	PlansFile  = "data.json"
	GoalsFile  = "goals.json"
	SQLiteFile = "planboard.db"
)

// Store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds every runtime setting.
type Config struct {
	Port      int    `yaml:"port"`
	DataDir   string `yaml:"data_dir"`
	StaticDir string `yaml:"static_dir"`
	Store     string `yaml:"store"`
	LogMode   string `yaml:"log_mode"`
}

// Default returns the configuration used when nothing is overridden.
// Data and static files live in baseDir.
func Default(baseDir string) Config {
	return Config{
		Port:      DefaultPort,
		DataDir:   baseDir,
		StaticDir: baseDir,
		Store:     StoreJSON,
		LogMode:   "dev",
	}
}

// Load resolves the configuration for baseDir.
func Load(baseDir string) (Config, error) {
	cfg := Default(baseDir)

	if err := cfg.applyFile(filepath.Join(baseDir, FileName)); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	cfg.DataDir = resolveDir(baseDir, cfg.DataDir)
	cfg.StaticDir = resolveDir(baseDir, cfg.StaticDir)
	cfg.Store = strings.ToLower(strings.TrimSpace(cfg.Store))

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	switch c.Store {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("config: unknown store %q (want %q or %q)", c.Store, StoreJSON, StoreSQLite)
	}
	return nil
}

// Addr is the listen address for the HTTP service.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c Config) PlansPath() string  { return filepath.Join(c.DataDir, PlansFile) }
func (c Config) GoalsPath() string  { return filepath.Join(c.DataDir, GoalsFile) }
func (c Config) SQLitePath() string { return filepath.Join(c.DataDir, SQLiteFile) }

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("PLANBOARD_PORT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: PLANBOARD_PORT: %w", err)
		}
		c.Port = n
	}
	if v := strings.TrimSpace(os.Getenv("PLANBOARD_DATA_DIR")); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("PLANBOARD_STATIC_DIR")); v != "" {
		c.StaticDir = v
	}
	if v := strings.TrimSpace(os.Getenv("PLANBOARD_STORE")); v != "" {
		c.Store = v
	}
	if v := strings.TrimSpace(os.Getenv("PLANBOARD_LOG_MODE")); v != "" {
		c.LogMode = v
	}
	return nil
}

func resolveDir(baseDir, dir string) string {
	if dir == "" {
		return baseDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(baseDir, dir)
}

// InstallDir returns the directory holding the running executable. It falls
// back to the working directory under `go run`, where the executable lives
// in a temporary build cache.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err == nil {
		exe, err = filepath.EvalSymlinks(exe)
	}
	if err != nil || strings.Contains(exe, "go-build") {
		return os.Getwd()
	}
	return filepath.Dir(exe), nil
}
