// SPDX-License-Identifier: GPL-3.0-or-later
package domain

// Prompter is the interactive boundary of a triage session. Prompt returns
// io.EOF once the input is exhausted.
type Prompter interface {
	Prompt(prompt string) (string, error)
	Printf(format string, args ...interface{})
}
