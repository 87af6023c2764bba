// SPDX-License-Identifier: GPL-3.0-or-later
package triage

import (
	"fmt"

	"github.com/CrawX/go-instapaper-sorter/domain"
)

type ConfigFunc func(c *configuration) error

// DryRun shows what would be moved without moving anything.
func DryRun() ConfigFunc {
	return func(c *configuration) error {
		c.DryRun = true

		return nil
	}
}

// AutoApply moves bookmarks with a suggestion without asking.
func AutoApply() ConfigFunc {
	return func(c *configuration) error {
		c.AutoApply = true

		return nil
	}
}

func PageSize(size int) ConfigFunc {
	return func(c *configuration) error {
		if size < 1 {
			return fmt.Errorf("PageSize must be at least 1")
		}

		c.PageSize = size
		return nil
	}
}

// WithHistory journals every successful move.
func WithHistory(history domain.History) ConfigFunc {
	return func(c *configuration) error {
		if history == nil {
			return fmt.Errorf("History cannot be nil")
		}

		c.History = history
		return nil
	}
}

type configuration struct {
	DryRun    bool
	AutoApply bool
	PageSize  int

	History domain.History
}
