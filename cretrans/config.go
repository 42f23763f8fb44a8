package cretrans

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the ambient configuration for a cretrans-based tool, loaded
// from a YAML file alongside it.
type Config struct {
	// CRESystem is the default "{\*\cxsystem NAME}" label used when
	// constructing a fresh Dictionary that wasn't parsed from a file.
	CRESystem string `yaml:"cre_system"`
	// LogLevel is parsed into a logrus.Level by Level.
	LogLevel string `yaml:"log_level"`
}

// Level parses LogLevel, defaulting to logrus.WarnLevel if unset or
// unrecognized.
func (c Config) Level() logrus.Level {
	if c.LogLevel == "" {
		return logrus.WarnLevel
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

// LoadConfig reads and unmarshals a YAML config file at path.
func LoadConfig(path string) (Config, error) {
	var result Config

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, errors.New("no cretrans config file found at " + path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
