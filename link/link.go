// SPDX-License-Identifier: GPL-3.0-or-later
package link

import (
	"net/url"
	"strings"
)

const NoTitle = "(no title)"

// DomainOf returns the lowercased host (including a port, if any) of rawUrl
// or an empty string if rawUrl cannot be parsed.
func DomainOf(rawUrl string) string {
	u, err := url.Parse(strings.TrimSpace(rawUrl))
	if err != nil {
		return ""
	}

	return strings.ToLower(u.Host)
}

func DisplayTitle(title string) string {
	title = strings.TrimSpace(title)
	if len(title) == 0 {
		return NoTitle
	}
	return title
}

func ShortTitle(title string) string {
	runes := []rune(title)
	if len(runes) > 30 {
		title = string(runes[:30]) + "..."
	}
	return title
}
