// SPDX-License-Identifier: GPL-3.0-or-later
package instapaper

import (
	"fmt"
	"time"
)

type ConfigFunc func(c *configuration) error

// MaxAttempts sets the total number of attempts per call, including the first.
func MaxAttempts(attempts int) ConfigFunc {
	return func(c *configuration) error {
		if attempts < 1 {
			return fmt.Errorf("MaxAttempts must be at least 1")
		}

		c.MaxAttempts = attempts
		return nil
	}
}

// InitialDelay sets the delay after the first failed attempt, it doubles with
// every further attempt.
func InitialDelay(delay time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if delay <= 0 {
			return fmt.Errorf("InitialDelay must be positive")
		}

		c.InitialDelay = delay
		return nil
	}
}

func Timeout(timeout time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if timeout <= 0 {
			return fmt.Errorf("Timeout must be positive")
		}

		c.Timeout = timeout
		return nil
	}
}

type configuration struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Timeout      time.Duration
}

func defaultConfiguration() *configuration {
	return &configuration{
		MaxAttempts:  DefaultMaxAttempts,
		InitialDelay: DefaultInitialDelay,
		Timeout:      DefaultTimeout,
	}
}
