package config

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Default values applied when the file leaves a setting empty.
const (
	DefaultPort     = 100
	DefaultFormat   = "json"
	DefaultLogLevel = "INFO"
)

// Settings configures the decoder CLI.
type Settings struct {
	Port          int    `yaml:"port"`
	Format        string `yaml:"format"`
	LogLevel      string `yaml:"log_level"`
	LogFilePath   string `yaml:"log_file_path"`
	LogMaxAgeDays int    `yaml:"log_max_age_days"`
}

// Default returns settings used when no configuration file is given.
func Default() Settings {
	return Settings{
		Port:     DefaultPort,
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
	}
}

// GetLogLevel maps LogLevel to a logrus level. Unknown names fall back to INFO.
func (s *Settings) GetLogLevel() log.Level {
	var lvl log.Level

	switch strings.ToUpper(s.LogLevel) {
	case "TRACE":
		lvl = log.TraceLevel
	case "DEBUG":
		lvl = log.DebugLevel
	case "INFO":
		lvl = log.InfoLevel
	case "WARN":
		lvl = log.WarnLevel
	case "ERROR":
		lvl = log.ErrorLevel
	default:
		lvl = log.InfoLevel
	}
	return lvl
}

// New reads a YAML settings file. An empty path returns Default().
func New(confPath string) (Settings, error) {
	c := Default()
	if confPath == "" {
		return c, nil
	}
	data, err := os.ReadFile(confPath)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}

	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogMaxAgeDays < 0 {
		log.Errorf("Invalid log_max_age_days (%d), keeping log files indefinitely", c.LogMaxAgeDays)
		c.LogMaxAgeDays = 0
	}
	return c, nil
}
