// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/rules.go -package=mocks . RuleRepository

// Rule maps a domain pattern to a folder. A pattern is either an exact
// lowercase host or a suffix starting with "." such as ".example.com".
type Rule struct {
	Pattern  string
	FolderId int64
}

// RuleRepository loads and stores rules in table order.
type RuleRepository interface {
	LoadRules() ([]Rule, error)
	SaveRules(rules []Rule) error
}
