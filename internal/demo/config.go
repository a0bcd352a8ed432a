// SPDX-License-Identifier: MIT

package demo

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lafras/quaternions/internal/config"
	"github.com/lafras/quaternions/quaternion"
)

// Config holds the demo settings. Environment variables provide the base
// values; command-line flags override them.
type Config struct {
	// Seed drives the quaternion draws. 0 asks for a fresh random seed.
	Seed             int64  `env:"QUATDEMO_SEED" envDefault:"0"`
	Precision        uint32 `env:"QUATDEMO_PRECISION" envDefault:"32"`
	ComparePrecision uint32 `env:"QUATDEMO_COMPARE_PRECISION" envDefault:"16"`
	LogLevel         string `env:"QUATDEMO_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects precisions the quaternion options would panic on.
func (c Config) Validate() error {
	if c.Precision == 0 || c.Precision > quaternion.MaxPrecision {
		return fmt.Errorf("precision %d outside [1, %d]", c.Precision, quaternion.MaxPrecision)
	}
	if c.ComparePrecision == 0 || c.ComparePrecision > quaternion.MaxPrecision {
		return fmt.Errorf("compare precision %d outside [1, %d]", c.ComparePrecision, quaternion.MaxPrecision)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	return nil
}

// context builds the quaternion context described by c.
func (c Config) context() (*quaternion.Context, error) {
	return quaternion.NewContext(
		quaternion.WithPrecision(c.Precision),
		quaternion.WithComparePrecision(c.ComparePrecision),
	)
}
