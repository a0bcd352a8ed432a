// SPDX-License-Identifier: MIT

// Command quatdemo draws a random quaternion and checks that exp and log
// undo each other at the configured precision.
//
// Configuration comes from QUATDEMO_SEED, QUATDEMO_PRECISION,
// QUATDEMO_COMPARE_PRECISION and QUATDEMO_LOG_LEVEL; flags of the same
// names override them.
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/lafras/quaternions/internal/demo"
)

func main() {
	logger := logrus.New()
	if err := demo.NewCommand(logger).Execute(); err != nil {
		logger.WithError(err).Fatal("quatdemo failed")
	}
}
