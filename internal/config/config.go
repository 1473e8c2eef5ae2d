package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr                    string `yaml:"addr" json:"addr"`
	BaseURL                 string `yaml:"base_url" json:"base_url"`
	DataDir                 string `yaml:"data_dir" json:"data_dir"`
	Storage                 string `yaml:"storage" json:"storage"`
	DefaultLocale           string `yaml:"default_locale" json:"default_locale"`
	DefaultTheme            string `yaml:"default_theme" json:"default_theme"`
	UndoWindowSeconds       int    `yaml:"undo_window_seconds" json:"undo_window_seconds"`
	DayCheckIntervalSeconds int    `yaml:"day_check_interval_seconds" json:"day_check_interval_seconds"`
}

func (c *Config) ApplyDefaults() {
	if c.Addr == "" {
		c.Addr = ":8370"
	}
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost" + c.Addr
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Storage == "" {
		c.Storage = "file"
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = "en"
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = "light"
	}
	if c.UndoWindowSeconds <= 0 {
		c.UndoWindowSeconds = 5
	}
	if c.DayCheckIntervalSeconds <= 0 {
		c.DayCheckIntervalSeconds = 60
	}
}

// Load reads the yaml config at path, then lets environment variables
// override individual fields. A missing file is fine; defaults apply.
func Load(path string) (*Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	if err == nil {
		if err := yaml.Unmarshal(b, &c); err != nil {
			return nil, err
		}
	}
	c.applyEnv()
	c.ApplyDefaults()
	return &c, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("ROUTINE_ADDR")); v != "" {
		c.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("ROUTINE_BASE_URL")); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("ROUTINE_DATA_DIR")); v != "" {
		c.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("ROUTINE_STORAGE")); v != "" {
		c.Storage = v
	}
	if v := strings.TrimSpace(os.Getenv("ROUTINE_LOCALE")); v != "" {
		c.DefaultLocale = v
	}
	if v := strings.TrimSpace(os.Getenv("ROUTINE_THEME")); v != "" {
		c.DefaultTheme = v
	}
	if v := getEnvInt("ROUTINE_UNDO_WINDOW_SECONDS"); v > 0 {
		c.UndoWindowSeconds = v
	}
	if v := getEnvInt("ROUTINE_DAY_CHECK_INTERVAL_SECONDS"); v > 0 {
		c.DayCheckIntervalSeconds = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
