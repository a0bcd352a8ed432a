// SPDX-License-Identifier: MIT

// Package demo implements the quatdemo command: it draws a random quaternion
// and prints it next to log(exp(p)) and exp(log(p)), followed by whether the
// two round trips agree under quaternion equality.
package demo

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lafras/quaternions/quaternion"
)

// Components of the drawn quaternions lie in [drawLo, drawHi).
const (
	drawLo = -1.0
	drawHi = 1.0
)

// NewCommand returns the root quatdemo command logging through logger.
func NewCommand(logger *logrus.Logger) *cobra.Command {
	var flags Config

	cmd := &cobra.Command{
		Use:           "quatdemo",
		Short:         "Round-trip random quaternions through exp and log",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			overrideFromFlags(cmd, &cfg, flags)
			if err = cfg.Validate(); err != nil {
				return err
			}

			level, _ := logrus.ParseLevel(cfg.LogLevel)
			logger.SetLevel(level)

			return Run(cmd.OutOrStdout(), cfg, logger)
		},
	}

	cmd.Flags().Int64Var(&flags.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	cmd.Flags().Uint32Var(&flags.Precision, "precision", quaternion.DefaultPrecision, "working precision in significant digits")
	cmd.Flags().Uint32Var(&flags.ComparePrecision, "compare-precision", quaternion.DefaultComparePrecision, "precision used by equality")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	return cmd
}

// overrideFromFlags copies every flag the user set explicitly into cfg.
func overrideFromFlags(cmd *cobra.Command, cfg *Config, flags Config) {
	fs := cmd.Flags()
	if fs.Changed("seed") {
		cfg.Seed = flags.Seed
	}
	if fs.Changed("precision") {
		cfg.Precision = flags.Precision
	}
	if fs.Changed("compare-precision") {
		cfg.ComparePrecision = flags.ComparePrecision
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
}

// Run draws p and q, then writes four lines to out: p, log(exp(p)),
// exp(log(p)) and whether the last two are equal.
func Run(out io.Writer, cfg Config, logger *logrus.Logger) error {
	ctx, err := cfg.context()
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = newSeed(); err != nil {
			return err
		}
	}
	logger.WithFields(logrus.Fields{
		"seed":              seed,
		"precision":         ctx.Precision(),
		"compare_precision": ctx.ComparePrecision(),
	}).Info("drawing quaternions")

	rng := quaternion.NewRNG(seed)
	p, err := ctx.Random(rng, drawLo, drawHi)
	if err != nil {
		return fmt.Errorf("draw p: %w", err)
	}
	q, err := ctx.Random(rng, drawLo, drawHi)
	if err != nil {
		return fmt.Errorf("draw q: %w", err)
	}
	logger.WithField("q", q.String()).Debug("second operand drawn")

	logExp, err := roundTrip(p, quaternion.Exp, quaternion.Log)
	if err != nil {
		return fmt.Errorf("log(exp(p)): %w", err)
	}
	expLog, err := roundTrip(p, quaternion.Log, quaternion.Exp)
	if err != nil {
		return fmt.Errorf("exp(log(p)): %w", err)
	}

	equal := logExp.Equal(expLog)
	if !equal {
		logger.WithFields(logrus.Fields{
			"log_exp": logExp.String(),
			"exp_log": expLog.String(),
		}).Warn("round trips disagree")
	}

	for _, line := range []any{p, logExp, expLog, equal} {
		if _, err = fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}

// roundTrip applies first and then second to p.
func roundTrip(p quaternion.Quaternion, first, second func(quaternion.Quaternion) (quaternion.Quaternion, error)) (quaternion.Quaternion, error) {
	mid, err := first(p)
	if err != nil {
		return quaternion.Quaternion{}, err
	}

	return second(mid)
}

// newSeed generates a random seed using crypto/rand.
func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
