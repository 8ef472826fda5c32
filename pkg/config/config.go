/*
Package config manages TOML config for wordsolve.
*/
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/wordlist"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Solver   SolverConfig   `toml:"solver"`
	WordList WordListConfig `toml:"wordlist"`
	Server   ServerConfig   `toml:"server"`
	CLI      CliConfig      `toml:"cli"`
}

// SolverConfig has the query defaults.
type SolverConfig struct {
	DefaultMaxWords int    `toml:"default_max_words"`
	Crossword       bool   `toml:"crossword"`
	CasingLanguage  string `toml:"casing_language"`
}

// WordListConfig holds word list acquisition options.
type WordListConfig struct {
	BaseURL         string `toml:"base_url"`
	DefaultLanguage string `toml:"default_language"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	RetryAttempts   int    `toml:"retry_attempts"`
	RetryDelayMs    int    `toml:"retry_delay_ms"`
	CacheSize       int    `toml:"cache_size"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	DefaultMaxWords int `toml:"default_max_words"`
	MaxWordsLimit   int `toml:"max_words_limit"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	HistoryFile  string `toml:"history_file"`
	BatchWorkers int    `toml:"batch_workers"`
}

// Timeout returns the HTTP timeout for one fetch attempt.
func (w WordListConfig) Timeout() time.Duration {
	return time.Duration(w.TimeoutSeconds) * time.Second
}

// RetryDelay returns the base delay between fetch attempts.
func (w WordListConfig) RetryDelay() time.Duration {
	return time.Duration(w.RetryDelayMs) * time.Millisecond
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
// 4. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordsolve")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordsolve")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/wordsolve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			DefaultMaxWords: 10,
			Crossword:       false,
			CasingLanguage:  "und",
		},
		WordList: WordListConfig{
			BaseURL:         wordlist.DefaultBaseURL,
			DefaultLanguage: wordlist.DefaultLanguage,
			TimeoutSeconds:  10,
			RetryAttempts:   3,
			RetryDelayMs:    200,
			CacheSize:       16,
		},
		Server: ServerConfig{
			DefaultMaxWords: 10,
			MaxWordsLimit:   1000,
		},
		CLI: CliConfig{
			HistoryFile:  "",
			BatchWorkers: 4,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every section that still decodes
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(section, &config.Solver)
	}
	if section, ok := utils.ExtractSection(tempConfig, "wordlist"); ok {
		extractWordListConfig(section, &config.WordList)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	return config, nil
}

func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractInt64(data, "default_max_words"); ok {
		solver.DefaultMaxWords = val
	}
	if val, ok := utils.ExtractBool(data, "crossword"); ok {
		solver.Crossword = val
	}
	if val, ok := utils.ExtractString(data, "casing_language"); ok {
		solver.CasingLanguage = val
	}
}

func extractWordListConfig(data map[string]any, wl *WordListConfig) {
	if val, ok := utils.ExtractString(data, "base_url"); ok {
		wl.BaseURL = val
	}
	if val, ok := utils.ExtractString(data, "default_language"); ok {
		wl.DefaultLanguage = val
	}
	if val, ok := utils.ExtractInt64(data, "timeout_seconds"); ok {
		wl.TimeoutSeconds = val
	}
	if val, ok := utils.ExtractInt64(data, "retry_attempts"); ok {
		wl.RetryAttempts = val
	}
	if val, ok := utils.ExtractInt64(data, "retry_delay_ms"); ok {
		wl.RetryDelayMs = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		wl.CacheSize = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "default_max_words"); ok {
		server.DefaultMaxWords = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words_limit"); ok {
		server.MaxWordsLimit = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractString(data, "history_file"); ok {
		cli.HistoryFile = val
	}
	if val, ok := utils.ExtractInt64(data, "batch_workers"); ok {
		cli.BatchWorkers = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
