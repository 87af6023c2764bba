// SPDX-License-Identifier: GPL-3.0-or-later
package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/CrawX/go-instapaper-sorter/domain"
)

var ErrEmptyDomain = errors.New("domain must not be empty")

// Table maps domain patterns to folders. Exact host matches win over suffix
// patterns; among suffix patterns the first one in table order wins, even if
// a later one is more specific.
type Table struct {
	patterns []string
	folders  map[string]int64
}

func NewTable(rules []domain.Rule) *Table {
	t := &Table{
		patterns: []string{},
		folders:  map[string]int64{},
	}
	for _, r := range rules {
		if len(r.Pattern) == 0 {
			continue
		}
		t.set(r.Pattern, r.FolderId)
	}
	return t
}

// Suggest returns the folder for host, if any rule matches.
func (t *Table) Suggest(host string) (int64, bool) {
	if len(host) == 0 {
		return 0, false
	}

	if folderId, ok := t.folders[host]; ok {
		return folderId, true
	}

	for _, p := range t.patterns {
		if IsSuffixPattern(p) && strings.HasSuffix(host, p) {
			return t.folders[p], true
		}
	}

	return 0, false
}

// Save binds host to folderId, replacing any existing rule for host.
func (t *Table) Save(host string, folderId int64) error {
	if len(host) == 0 {
		return ErrEmptyDomain
	}
	t.set(host, folderId)
	return nil
}

// Learn binds host to folderId unless host already has a rule. It reports
// whether the table changed.
func (t *Table) Learn(host string, folderId int64) bool {
	if len(host) == 0 {
		return false
	}
	if _, ok := t.folders[host]; ok {
		return false
	}
	t.set(host, folderId)
	return true
}

func (t *Table) Remove(pattern string) bool {
	if _, ok := t.folders[pattern]; !ok {
		return false
	}

	delete(t.folders, pattern)
	for i, p := range t.patterns {
		if p == pattern {
			t.patterns = append(t.patterns[:i], t.patterns[i+1:]...)
			break
		}
	}
	return true
}

func (t *Table) Len() int {
	return len(t.patterns)
}

// Rules returns the table in order.
func (t *Table) Rules() []domain.Rule {
	rules := make([]domain.Rule, 0, len(t.patterns))
	for _, p := range t.patterns {
		rules = append(rules, domain.Rule{Pattern: p, FolderId: t.folders[p]})
	}
	return rules
}

func (t *Table) set(pattern string, folderId int64) {
	if _, ok := t.folders[pattern]; !ok {
		t.patterns = append(t.patterns, pattern)
	}
	t.folders[pattern] = folderId
}

func IsSuffixPattern(pattern string) bool {
	return strings.HasPrefix(pattern, ".")
}

// NormalizePattern lowercases and validates a user supplied pattern.
func NormalizePattern(pattern string) (string, error) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if len(pattern) == 0 {
		return "", ErrEmptyDomain
	}
	if pattern == "." {
		return "", fmt.Errorf("suffix pattern %q needs a domain after the dot", pattern)
	}
	if strings.ContainsAny(pattern, " /\t") {
		return "", fmt.Errorf("pattern %q must be a host name or a .suffix", pattern)
	}
	return pattern, nil
}
