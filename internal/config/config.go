// Package config holds the YAML configuration for the sn3218ctl tool.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Bus  string `yaml:"bus"`            // e.g. "/dev/i2c-1" or "1"; empty picks the first bus
	Addr uint16 `yaml:"addr,omitempty"` // 0 means the chip default 0x54

	// Names maps channel aliases to 1-based channel numbers, e.g.
	//   names:
	//     STATUS: 1
	//     FAULT: 2
	Names map[string]int `yaml:"names,omitempty"`

	Brightness int `yaml:"brightness"` // demo level 0..255
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
